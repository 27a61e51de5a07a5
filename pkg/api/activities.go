package api

import (
	"context"
	"net/url"

	apperrors "github.com/givepenny/campaign-signup-helper/pkg/errors"
	"github.com/givepenny/campaign-signup-helper/pkg/httpclient"
)

// Measurement is something a challenge can be measured in, e.g. distance
type Measurement struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Unit is a unit of a measurement, e.g. kilometres
type Unit struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Activity is a challenge activity. System defined activities are shared by
// every charity; the rest belong to a charity or a user.
type Activity struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	CharityID       *string `json:"charityId"`
	UserID          *string `json:"userId"`
	IsSystemDefined bool    `json:"isSystemDefined"`
}

// DiscoveryClient reads reference data from the fundraisers activities
// discovery service
type DiscoveryClient struct {
	client *httpclient.APIClient
}

// NewDiscoveryClient creates a discovery client on top of an API client
func NewDiscoveryClient(client *httpclient.APIClient) *DiscoveryClient {
	return &DiscoveryClient{client: client}
}

// GetMeasurements lists every measurement
func (c *DiscoveryClient) GetMeasurements(ctx context.Context) ([]Measurement, error) {
	var measurements []Measurement
	if err := c.client.GetJSON(ctx, "/measurements", nil, &measurements); err != nil {
		return nil, err
	}
	return measurements, nil
}

// GetUnits lists every unit
func (c *DiscoveryClient) GetUnits(ctx context.Context) ([]Unit, error) {
	var units []Unit
	if err := c.client.GetJSON(ctx, "/units", nil, &units); err != nil {
		return nil, err
	}
	return units, nil
}

// ActivitiesClient reads activities from the fundraisers activities
// management service
type ActivitiesClient struct {
	client *httpclient.APIClient
}

// NewActivitiesClient creates an activities client on top of an API client
func NewActivitiesClient(client *httpclient.APIClient) *ActivitiesClient {
	return &ActivitiesClient{client: client}
}

// GetSystemDefinedActivities lists the activities shared by every charity
func (c *ActivitiesClient) GetSystemDefinedActivities(ctx context.Context) ([]Activity, error) {
	var activities []Activity
	query := url.Values{"isSystemDefined": {"true"}}
	if err := c.client.GetJSON(ctx, "/activities", query, &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

// GetActivity returns a single activity, or nil when the service does not
// know it
func (c *ActivitiesClient) GetActivity(ctx context.Context, activityID string) (*Activity, error) {
	var activity Activity
	err := c.client.GetJSON(ctx, "/activities/"+url.PathEscape(activityID), nil, &activity)
	if apperrors.Is(err, apperrors.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &activity, nil
}
