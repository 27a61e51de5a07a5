package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/givepenny/campaign-signup-helper/pkg/httpclient"
)

// Group is one option within a grouping, e.g. a team
type Group struct {
	ID                string  `json:"id"`
	Label             string  `json:"label"`
	ImageURL          *string `json:"imageUrl"`
	ThumbnailImageURL *string `json:"thumbnailImageUrl"`
}

// SubGroupSettings controls whether fundraisers may define their own
// sub-groups. Label is only set when Enabled is true.
type SubGroupSettings struct {
	Enabled bool   `json:"enabled"`
	Label   string `json:"label,omitempty"`
}

// Grouping is a categorisation fundraisers pick a group from when signing up
type Grouping struct {
	ID                                string           `json:"id"`
	Label                             string           `json:"label"`
	Groups                            []Group          `json:"groups"`
	FundraiserDefinedSubGroupSettings SubGroupSettings `json:"fundraiserDefinedSubGroupSettings"`
}

// GroupingsClient reads groupings from the fundraisers challenges groupings
// service
type GroupingsClient struct {
	client *httpclient.APIClient
}

// NewGroupingsClient creates a groupings client on top of an API client
func NewGroupingsClient(client *httpclient.APIClient) *GroupingsClient {
	return &GroupingsClient{client: client}
}

// GetGroupings lists the groupings configured for a campaign
func (c *GroupingsClient) GetGroupings(ctx context.Context, charityID, campaignID string) ([]Grouping, error) {
	var groupings []Grouping
	path := fmt.Sprintf("/charities/%s/campaigns/%s/groupings", url.PathEscape(charityID), url.PathEscape(campaignID))
	if err := c.client.GetJSON(ctx, path, nil, &groupings); err != nil {
		return nil, err
	}
	return groupings, nil
}
