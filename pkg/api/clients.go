package api

import (
	"fmt"

	"github.com/givepenny/campaign-signup-helper/config"
	"github.com/givepenny/campaign-signup-helper/pkg/httpclient"
	"github.com/givepenny/campaign-signup-helper/pkg/retry"
)

// Service names used in logs, metrics and circuit breakers
const (
	CampaignsManagementService  = "charities-campaigns-management"
	SignUpsService              = "charities-campaigns-signups"
	ActivitiesDiscoveryService  = "fundraisers-activities-discovery"
	ActivitiesManagementService = "fundraisers-activities-management"
	ChallengesGroupingsService  = "fundraisers-challenges-groupings"
)

// Clients bundles a client for every campaign service
type Clients struct {
	Campaigns  *CampaignsClient
	SignUps    *SignUpsClient
	Discovery  *DiscoveryClient
	Activities *ActivitiesClient
	Groupings  *GroupingsClient
}

// NewClients builds every service client from configuration. All clients
// share httpClient; pass nil to use a standard client with the configured
// timeout.
func NewClients(cfg *config.Config, httpClient httpclient.Client) (*Clients, error) {
	if httpClient == nil {
		httpClient = httpclient.NewStandardClientWithTimeout(cfg.HTTPTimeout())
	}

	opts := []httpclient.Option{
		httpclient.WithRetry(retry.FixedConfig(cfg.HTTP.RetryCount, cfg.RetryDelay())),
	}
	if cfg.HTTP.CircuitBreakerEnabled {
		opts = append(opts, httpclient.WithCircuitBreaker())
	}

	build := func(service, baseURL string) (*httpclient.APIClient, error) {
		client, err := httpclient.NewAPIClient(service, baseURL, httpClient, opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s client: %w", service, err)
		}
		return client, nil
	}

	campaigns, err := build(CampaignsManagementService, cfg.APIs.CampaignsManagementBaseURL)
	if err != nil {
		return nil, err
	}
	signUps, err := build(SignUpsService, cfg.APIs.SignUpsBaseURL)
	if err != nil {
		return nil, err
	}
	discovery, err := build(ActivitiesDiscoveryService, cfg.APIs.ActivitiesDiscoveryBaseURL)
	if err != nil {
		return nil, err
	}
	activities, err := build(ActivitiesManagementService, cfg.APIs.ActivitiesManagementBaseURL)
	if err != nil {
		return nil, err
	}
	groupings, err := build(ChallengesGroupingsService, cfg.APIs.ChallengesGroupingsBaseURL)
	if err != nil {
		return nil, err
	}

	return &Clients{
		Campaigns:  NewCampaignsClient(campaigns),
		SignUps:    NewSignUpsClient(signUps),
		Discovery:  NewDiscoveryClient(discovery),
		Activities: NewActivitiesClient(activities),
		Groupings:  NewGroupingsClient(groupings),
	}, nil
}
