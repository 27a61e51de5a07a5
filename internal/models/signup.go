package models

import "github.com/givepenny/campaign-signup-helper/pkg/api"

// StoredSignUp is everything the stub server received for one sign-up
type StoredSignUp struct {
	CharityID  string             `json:"charityId"`
	SignUp     *api.SignUpRequest `json:"signUp"`
	Questions  map[string]string  `json:"questions"`
	PutCount   int                `json:"putCount"`
	PatchCount int                `json:"patchCount"`
}
