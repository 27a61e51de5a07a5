package signup_test

import (
	"context"

	"github.com/givepenny/campaign-signup-helper/pkg/api"
	"github.com/stretchr/testify/mock"
)

// MockSignUpAPI is a mock implementation of signup.API
type MockSignUpAPI struct {
	mock.Mock
}

func (m *MockSignUpAPI) PutSignUp(ctx context.Context, charityID, campaignID string, signUp api.SignUpRequest) error {
	args := m.Called(ctx, charityID, campaignID, signUp)
	return args.Error(0)
}

func (m *MockSignUpAPI) PatchSignUpQuestions(ctx context.Context, charityID, campaignID, signUpID string, questions map[string]string) error {
	args := m.Called(ctx, charityID, campaignID, signUpID, questions)
	return args.Error(0)
}

// methods returns the mocked methods in the order they were called
func (m *MockSignUpAPI) methods() []string {
	methods := make([]string, 0, len(m.Calls))
	for _, call := range m.Calls {
		methods = append(methods, call.Method)
	}
	return methods
}
