package api

import (
	"context"
	"net/url"

	"github.com/givepenny/campaign-signup-helper/pkg/httpclient"
)

// CampaignMeasuringActivityTarget is one target a fundraiser may pick
type CampaignMeasuringActivityTarget struct {
	Target *float64 `json:"target"`
}

// CampaignMeasuringActivity is an activity allowed for a campaign measurement
type CampaignMeasuringActivity struct {
	ActivityID string                            `json:"activityId"`
	Targets    []CampaignMeasuringActivityTarget `json:"targets"`
}

// CampaignMeasuring describes how a campaign measures progress
type CampaignMeasuring struct {
	Activities      []CampaignMeasuringActivity `json:"activities"`
	MeasurementID   string                      `json:"measurementId"`
	PreferredUnitID string                      `json:"preferredUnitId"`
}

// CampaignChallengeFeatures lists which challenge features a campaign offers.
// Values are "on" or "off".
type CampaignChallengeFeatures struct {
	MusicPlaylist string `json:"musicPlaylist"`
}

// Campaign is a campaign as returned by the campaigns management service
type Campaign struct {
	ID                string                    `json:"id"`
	CharityID         string                    `json:"charityId"`
	Name              string                    `json:"name"`
	Measuring         []CampaignMeasuring       `json:"measuring"`
	ChallengeFeatures CampaignChallengeFeatures `json:"challengeFeatures"`
}

// CampaignsClient reads campaigns from the charities campaigns management service
type CampaignsClient struct {
	client *httpclient.APIClient
}

// NewCampaignsClient creates a campaigns client on top of an API client
func NewCampaignsClient(client *httpclient.APIClient) *CampaignsClient {
	return &CampaignsClient{client: client}
}

// GetCampaignBySlug returns the campaign with the given slug, or nil when
// there is none
func (c *CampaignsClient) GetCampaignBySlug(ctx context.Context, slug string) (*Campaign, error) {
	var campaigns []Campaign
	if err := c.client.GetJSON(ctx, "/campaigns", url.Values{"slug": {slug}}, &campaigns); err != nil {
		return nil, err
	}

	if len(campaigns) == 0 {
		return nil, nil
	}
	return &campaigns[0], nil
}
