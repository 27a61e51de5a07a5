package handlers

import (
	"github.com/givepenny/campaign-signup-helper/internal/models"
	"github.com/givepenny/campaign-signup-helper/pkg/api"
)

// CampaignStore serves campaigns and their groupings
type CampaignStore interface {
	CampaignBySlug(slug string) (api.Campaign, bool)
	Groupings(charityID, campaignID string) ([]api.Grouping, bool)
}

// ReferenceStore serves measurements, units and activities
type ReferenceStore interface {
	Measurements() []api.Measurement
	Units() []api.Unit
	Activities(systemDefinedOnly bool) []api.Activity
	Activity(id string) (api.Activity, bool)
}

// SignUpStore records the sign-ups it receives
type SignUpStore interface {
	PutSignUp(charityID string, signUp api.SignUpRequest) bool
	PatchQuestions(charityID, campaignID, signUpID string, questions map[string]string) bool
	SignUp(campaignID, signUpID string) (models.StoredSignUp, bool)
}
