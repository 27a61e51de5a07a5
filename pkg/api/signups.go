package api

import (
	"context"
	"fmt"
	"net/url"

	apperrors "github.com/givepenny/campaign-signup-helper/pkg/errors"
	"github.com/givepenny/campaign-signup-helper/pkg/httpclient"
	"github.com/go-playground/validator/v10"
)

// SignUpStatus is the lifecycle state reported with every sign-up upsert
type SignUpStatus string

const (
	SignUpStatusCreating  SignUpStatus = "creating"
	SignUpStatusSubmitted SignUpStatus = "submitted"
)

// ChallengeOptions holds the optional challenge preferences of a sign-up.
// Every field is nullable on the wire.
type ChallengeOptions struct {
	ActivityID     *string  `json:"activityId"`
	MeasurementID  *string  `json:"measurementId"`
	ActivityTarget *float64 `json:"activityTarget" validate:"omitnil,gt=0"`
	MusicPlaylist  *bool    `json:"musicPlaylist"`
}

// Clone returns a deep copy
func (o ChallengeOptions) Clone() ChallengeOptions {
	return ChallengeOptions{
		ActivityID:     clonePtr(o.ActivityID),
		MeasurementID:  clonePtr(o.MeasurementID),
		ActivityTarget: clonePtr(o.ActivityTarget),
		MusicPlaylist:  clonePtr(o.MusicPlaylist),
	}
}

// SignUpGroup is the group chosen within one grouping
type SignUpGroup struct {
	GroupingID string `json:"groupingId" validate:"required"`
	GroupID    string `json:"groupId" validate:"required"`
}

// SignUpRequest is the full sign-up record stored by the sign-ups service
type SignUpRequest struct {
	ID                   string           `json:"id" validate:"required"`
	CampaignID           string           `json:"campaignId" validate:"required"`
	ChallengeOptions     ChallengeOptions `json:"challengeOptions"`
	Groups               []SignUpGroup    `json:"groups" validate:"max=5,dive"`
	FirstName            *string          `json:"firstName"`
	LastName             *string          `json:"lastName"`
	Email                *string          `json:"email"`
	IsOptedInToMarketing *bool            `json:"isOptedInToMarketing"`
	IsTestResource       bool             `json:"isTestResource"`
	Status               SignUpStatus     `json:"status" validate:"required,oneof=creating submitted"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the record is well formed before it is sent
func (r *SignUpRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("invalid sign-up record: %w: %w", err, apperrors.ErrInvalidInput)
	}
	return nil
}

// SignUpsClient writes sign-ups to the charities campaigns sign-ups service
type SignUpsClient struct {
	client *httpclient.APIClient
}

// NewSignUpsClient creates a sign-ups client on top of an API client
func NewSignUpsClient(client *httpclient.APIClient) *SignUpsClient {
	return &SignUpsClient{client: client}
}

// PutSignUp upserts the full sign-up record
func (c *SignUpsClient) PutSignUp(ctx context.Context, charityID, campaignID string, signUp SignUpRequest) error {
	if err := signUp.Validate(); err != nil {
		return err
	}

	return c.client.PutJSON(ctx, signUpPath(charityID, campaignID, signUp.ID), signUp)
}

// PatchSignUpQuestions replaces the answers to the campaign's free-form questions
func (c *SignUpsClient) PatchSignUpQuestions(ctx context.Context, charityID, campaignID, signUpID string, questions map[string]string) error {
	if questions == nil {
		questions = map[string]string{}
	}

	return c.client.PatchJSON(ctx, signUpPath(charityID, campaignID, signUpID)+"/questions", questions)
}

func signUpPath(charityID, campaignID, signUpID string) string {
	return fmt.Sprintf("/charities/%s/campaigns/%s/signUps/%s",
		url.PathEscape(charityID), url.PathEscape(campaignID), url.PathEscape(signUpID))
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
