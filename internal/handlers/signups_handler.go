package handlers

import (
	"fmt"
	"net/http"
	"unicode/utf8"

	"github.com/givepenny/campaign-signup-helper/pkg/api"
	"github.com/gin-gonic/gin"
)

const (
	maxQuestions      = 30
	maxQuestionLength = 100
)

type SignUpsHandler struct {
	store SignUpStore
}

func NewSignUpsHandler(store SignUpStore) *SignUpsHandler {
	return &SignUpsHandler{store: store}
}

// PutSignUp answers PUT /charities/:charityId/campaigns/:campaignId/signUps/:signUpId
func (h *SignUpsHandler) PutSignUp(c *gin.Context) {
	var signUp api.SignUpRequest
	if err := c.ShouldBindJSON(&signUp); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := signUp.Validate(); err != nil {
		respondErrorWithDetails(c, http.StatusBadRequest, "Validation failed", ParseValidationErrors(err), err)
		return
	}

	if signUp.ID != c.Param("signUpId") || signUp.CampaignID != c.Param("campaignId") {
		respondError(c, http.StatusBadRequest, "Sign-up id and campaign id must match the path",
			fmt.Errorf("body ids %s/%s do not match path", signUp.CampaignID, signUp.ID))
		return
	}

	if !h.store.PutSignUp(c.Param("charityId"), signUp) {
		respondNotFound(c, "Campaign")
		return
	}

	c.Status(http.StatusNoContent)
}

// PatchSignUpQuestions answers
// PATCH /charities/:charityId/campaigns/:campaignId/signUps/:signUpId/questions
func (h *SignUpsHandler) PatchSignUpQuestions(c *gin.Context) {
	var questions map[string]string
	if err := c.ShouldBindJSON(&questions); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if len(questions) > maxQuestions {
		respondError(c, http.StatusBadRequest, "Too many questions",
			fmt.Errorf("%d questions sent, at most %d allowed", len(questions), maxQuestions))
		return
	}
	for question := range questions {
		if question == "" || utf8.RuneCountInString(question) > maxQuestionLength {
			respondError(c, http.StatusBadRequest, "Questions must be between 1 and 100 characters",
				fmt.Errorf("invalid question %q", question))
			return
		}
	}

	if !h.store.PatchQuestions(c.Param("charityId"), c.Param("campaignId"), c.Param("signUpId"), questions) {
		respondNotFound(c, "Campaign")
		return
	}

	c.Status(http.StatusNoContent)
}

// GetSignUp answers GET /charities/:charityId/campaigns/:campaignId/signUps/:signUpId
// with everything received for the sign-up. The real service has no such
// endpoint; it exists so developers can check what was sent.
func (h *SignUpsHandler) GetSignUp(c *gin.Context) {
	stored, ok := h.store.SignUp(c.Param("campaignId"), c.Param("signUpId"))
	if !ok || stored.CharityID != c.Param("charityId") {
		respondNotFound(c, "Sign-up")
		return
	}
	c.JSON(http.StatusOK, stored)
}
