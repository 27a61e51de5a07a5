// Package campaign resolves the identifiers in a campaign into the names a
// developer needs when building a sign-up form for it.
package campaign

import (
	"context"
	"fmt"

	"github.com/givepenny/campaign-signup-helper/pkg/api"
	apperrors "github.com/givepenny/campaign-signup-helper/pkg/errors"
	"github.com/givepenny/campaign-signup-helper/pkg/logger"
	"github.com/givepenny/campaign-signup-helper/pkg/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Unknown replaces any name that could not be resolved
const Unknown = "UNKNOWN"

const maxConcurrentActivityLookups = 4

// CampaignLookup finds campaigns by slug
type CampaignLookup interface {
	GetCampaignBySlug(ctx context.Context, slug string) (*api.Campaign, error)
}

// GroupingsLookup lists a campaign's groupings
type GroupingsLookup interface {
	GetGroupings(ctx context.Context, charityID, campaignID string) ([]api.Grouping, error)
}

// ReferenceLookup resolves measurement, unit and activity names.
// *cache.ReferenceCache implements it.
type ReferenceLookup interface {
	GetMeasurements(ctx context.Context) ([]api.Measurement, error)
	GetUnits(ctx context.Context) ([]api.Unit, error)
	GetSystemDefinedActivities(ctx context.Context) ([]api.Activity, error)
	GetActivity(ctx context.Context, activityID string) (*api.Activity, error)
}

// GroupDetails is a group option without its images
type GroupDetails struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// GroupingDetails is a grouping and the groups a fundraiser can pick from
type GroupingDetails struct {
	ID     string         `json:"id"`
	Label  string         `json:"label"`
	Groups []GroupDetails `json:"groups"`
}

// ActivityDetails is a campaign activity with its name resolved
type ActivityDetails struct {
	ActivityID   string                                `json:"activityId"`
	ActivityName string                                `json:"activityName"`
	Targets      []api.CampaignMeasuringActivityTarget `json:"targets"`
}

// MeasurementDetails is a campaign measurement with its names resolved
type MeasurementDetails struct {
	MeasurementID     string            `json:"measurementId"`
	MeasurementName   string            `json:"measurementName"`
	PreferredUnitID   string            `json:"preferredUnitId"`
	PreferredUnitName string            `json:"preferredUnitName"`
	Activities        []ActivityDetails `json:"activities"`
}

// Details is everything needed to build a sign-up form for a campaign
type Details struct {
	Name              string                        `json:"name"`
	CampaignID        string                        `json:"campaignId"`
	CharityID         string                        `json:"charityId"`
	ChallengeFeatures api.CampaignChallengeFeatures `json:"challengeFeatures"`
	Measuring         []MeasurementDetails          `json:"measuring"`
	Groupings         []GroupingDetails             `json:"groupings"`
}

// Helper combines the campaign services to describe campaigns
type Helper struct {
	campaigns CampaignLookup
	groupings GroupingsLookup
	reference ReferenceLookup
}

// NewHelper creates a new campaign helper
func NewHelper(campaigns CampaignLookup, groupings GroupingsLookup, reference ReferenceLookup) *Helper {
	return &Helper{
		campaigns: campaigns,
		groupings: groupings,
		reference: reference,
	}
}

// NotFoundError is returned when no campaign has the requested slug
type NotFoundError struct {
	Slug string
}

func (e *NotFoundError) Error() string {
	return "Could not find a campaign with slug: " + e.Slug
}

// Is lets callers match the error with errors.ErrNotFound
func (e *NotFoundError) Is(target error) bool {
	return target == apperrors.ErrNotFound
}

// GetCampaignDetails looks up a campaign by slug and resolves its
// measurements and groupings
func (h *Helper) GetCampaignDetails(ctx context.Context, slug string) (_ *Details, err error) {
	ctx, span := tracing.StartSpan(ctx, "campaign.GetCampaignDetails", attribute.String("campaign.slug", slug))
	defer func() { tracing.EndSpan(span, err) }()

	campaign, err := h.campaigns.GetCampaignBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to look up campaign: %w", err)
	}
	if campaign == nil {
		return nil, &NotFoundError{Slug: slug}
	}

	details := &Details{
		Name:              campaign.Name,
		CampaignID:        campaign.ID,
		CharityID:         campaign.CharityID,
		ChallengeFeatures: campaign.ChallengeFeatures,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		measuring, err := h.GetMeasurementsDetails(gctx, campaign.Measuring)
		details.Measuring = measuring
		return err
	})
	g.Go(func() error {
		groupings, err := h.GetGroupingsDetails(gctx, campaign.CharityID, campaign.ID)
		details.Groupings = groupings
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.Debug("Resolved campaign details",
		zap.String("slug", slug),
		zap.String("campaign_id", campaign.ID),
		zap.Int("measurements", len(details.Measuring)),
		zap.Int("groupings", len(details.Groupings)))

	return details, nil
}

// GetGroupingsDetails lists a campaign's groupings with their groups
func (h *Helper) GetGroupingsDetails(ctx context.Context, charityID, campaignID string) ([]GroupingDetails, error) {
	groupings, err := h.groupings.GetGroupings(ctx, charityID, campaignID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up groupings: %w", err)
	}

	details := make([]GroupingDetails, 0, len(groupings))
	for _, grouping := range groupings {
		groups := make([]GroupDetails, 0, len(grouping.Groups))
		for _, group := range grouping.Groups {
			groups = append(groups, GroupDetails{ID: group.ID, Label: group.Label})
		}
		details = append(details, GroupingDetails{
			ID:     grouping.ID,
			Label:  grouping.Label,
			Groups: groups,
		})
	}

	return details, nil
}

// GetMeasurementsDetails resolves the measurement, unit and activity names of
// a campaign's measurements. Names that cannot be resolved are Unknown.
// Nothing is looked up when measuring is empty.
func (h *Helper) GetMeasurementsDetails(ctx context.Context, measuring []api.CampaignMeasuring) ([]MeasurementDetails, error) {
	if len(measuring) == 0 {
		return []MeasurementDetails{}, nil
	}

	var (
		measurements []api.Measurement
		units        []api.Unit
		system       []api.Activity
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		measurements, err = h.reference.GetMeasurements(gctx)
		return err
	})
	g.Go(func() (err error) {
		units, err = h.reference.GetUnits(gctx)
		return err
	})
	g.Go(func() (err error) {
		system, err = h.reference.GetSystemDefinedActivities(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to look up reference data: %w", err)
	}

	measurementNames := make(map[string]string, len(measurements))
	for _, m := range measurements {
		measurementNames[m.ID] = m.Name
	}
	unitNames := make(map[string]string, len(units))
	for _, u := range units {
		unitNames[u.ID] = u.Name
	}
	activityNames := make(map[string]string, len(system))
	for _, a := range system {
		activityNames[a.ID] = a.Name
	}

	custom, err := h.lookupCustomActivities(ctx, measuring, activityNames)
	if err != nil {
		return nil, err
	}
	for _, a := range custom {
		activityNames[a.ID] = a.Name
	}

	details := make([]MeasurementDetails, 0, len(measuring))
	for _, m := range measuring {
		activities := make([]ActivityDetails, 0, len(m.Activities))
		for _, a := range m.Activities {
			activities = append(activities, ActivityDetails{
				ActivityID:   a.ActivityID,
				ActivityName: nameOrUnknown(activityNames, a.ActivityID),
				Targets:      a.Targets,
			})
		}
		details = append(details, MeasurementDetails{
			MeasurementID:     m.MeasurementID,
			MeasurementName:   nameOrUnknown(measurementNames, m.MeasurementID),
			PreferredUnitID:   m.PreferredUnitID,
			PreferredUnitName: nameOrUnknown(unitNames, m.PreferredUnitID),
			Activities:        activities,
		})
	}

	return details, nil
}

// lookupCustomActivities fetches every activity not already known. Activities
// the service does not know are skipped.
func (h *Helper) lookupCustomActivities(ctx context.Context, measuring []api.CampaignMeasuring, known map[string]string) ([]api.Activity, error) {
	var ids []string
	seen := map[string]bool{}
	for _, m := range measuring {
		for _, a := range m.Activities {
			if _, ok := known[a.ActivityID]; ok || seen[a.ActivityID] {
				continue
			}
			seen[a.ActivityID] = true
			ids = append(ids, a.ActivityID)
		}
	}
	if len(ids) == 0 {
		return nil, nil
	}

	found := make([]*api.Activity, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentActivityLookups)
	for i, id := range ids {
		g.Go(func() error {
			activity, err := h.reference.GetActivity(gctx, id)
			if err != nil {
				return fmt.Errorf("failed to look up activity %s: %w", id, err)
			}
			found[i] = activity
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	activities := make([]api.Activity, 0, len(found))
	for i, activity := range found {
		if activity == nil {
			logger.Debug("Custom activity not found", zap.String("activity_id", ids[i]))
			continue
		}
		activities = append(activities, *activity)
	}
	return activities, nil
}

func nameOrUnknown(names map[string]string, id string) string {
	if name := names[id]; name != "" {
		return name
	}
	return Unknown
}
