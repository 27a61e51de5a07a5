package handlers

import (
	"errors"
	"testing"

	"github.com/givepenny/campaign-signup-helper/pkg/api"
	"github.com/stretchr/testify/assert"
)

func TestParseValidationErrors(t *testing.T) {
	target := -1.0
	signUp := api.SignUpRequest{
		CampaignID:       "c1",
		ChallengeOptions: api.ChallengeOptions{ActivityTarget: &target},
		Status:           "pending",
	}

	errs := ParseValidationErrors(signUp.Validate())

	assert.ElementsMatch(t, []ValidationError{
		{Field: "SignUpRequest.ID", Message: "ID is required"},
		{Field: "SignUpRequest.ChallengeOptions.ActivityTarget", Message: "ActivityTarget must be greater than 0"},
		{Field: "SignUpRequest.Status", Message: "Status must be one of: creating submitted"},
	}, errs)
}

func TestParseValidationErrors_OtherErrors(t *testing.T) {
	assert.Empty(t, ParseValidationErrors(errors.New("boom")))
	assert.Empty(t, ParseValidationErrors(nil))
}
