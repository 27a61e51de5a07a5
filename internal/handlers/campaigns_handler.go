package handlers

import (
	"errors"
	"net/http"

	"github.com/givepenny/campaign-signup-helper/pkg/api"
	"github.com/gin-gonic/gin"
)

type CampaignsHandler struct {
	store CampaignStore
}

func NewCampaignsHandler(store CampaignStore) *CampaignsHandler {
	return &CampaignsHandler{store: store}
}

// GetCampaigns answers GET /campaigns?slug=. Like the real service it
// returns a list, empty when nothing matches.
func (h *CampaignsHandler) GetCampaigns(c *gin.Context) {
	slug := c.Query("slug")
	if slug == "" {
		respondError(c, http.StatusBadRequest, "slug query parameter is required", errors.New("missing slug"))
		return
	}

	campaigns := []api.Campaign{}
	if campaign, ok := h.store.CampaignBySlug(slug); ok {
		campaigns = append(campaigns, campaign)
	}
	c.JSON(http.StatusOK, campaigns)
}

// GetGroupings answers GET /charities/:charityId/campaigns/:campaignId/groupings
func (h *CampaignsHandler) GetGroupings(c *gin.Context) {
	groupings, ok := h.store.Groupings(c.Param("charityId"), c.Param("campaignId"))
	if !ok {
		respondNotFound(c, "Campaign")
		return
	}
	c.JSON(http.StatusOK, groupings)
}
