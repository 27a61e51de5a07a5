package stubserver

import "github.com/givepenny/campaign-signup-helper/pkg/api"

// IDs of the default fixtures, fixed so developers can script against them
const (
	DemoCharityID      = "6a4b3c1e-2f0d-4e8a-9b7c-1d2e3f4a5b6c"
	DemoCampaignID     = "0f9e8d7c-6b5a-4c3d-8e2f-1a0b9c8d7e6f"
	DemoCampaignSlug   = "walk-for-wildlife"
	DistanceID         = "b1a2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c5d"
	StepsID            = "c2b3d4e5-f6a7-4b8c-9d0e-1f2a3b4c5d6e"
	KilometresID       = "d3c4e5f6-a7b8-4c9d-8e1f-2a3b4c5d6e7f"
	StepsUnitID        = "e4d5f6a7-b8c9-4d0e-9f2a-3b4c5d6e7f80"
	WalkingID          = "f5e6a7b8-c9d0-4e1f-8a3b-4c5d6e7f8091"
	RunningID          = "a6f7b8c9-d0e1-4f2a-9b4c-5d6e7f8091a2"
	SponsoredSwimID    = "b7a8c9d0-e1f2-4a3b-8c5d-6e7f8091a2b3"
	TeamGroupingID     = "c8b9d0e1-f2a3-4b4c-9d6e-7f8091a2b3c4"
	RedTeamID          = "d9c0e1f2-a3b4-4c5d-8e7f-8091a2b3c4d5"
	BlueTeamID         = "e0d1f2a3-b4c5-4d6e-9f80-91a2b3c4d5e6"
	OfficeGroupingID   = "f1e2a3b4-c5d6-4e7f-8091-a2b3c4d5e6f7"
	LeedsOfficeGroupID = "a2f3b4c5-d6e7-4f80-91a2-b3c4d5e6f708"
)

// DefaultFixtures returns a single campaign measuring walking distance and
// steps, with a team grouping and an office grouping
func DefaultFixtures() Fixtures {
	target := func(v float64) *float64 { return &v }
	charityID := DemoCharityID

	return Fixtures{
		Campaigns: map[string]api.Campaign{
			DemoCampaignSlug: {
				ID:        DemoCampaignID,
				CharityID: DemoCharityID,
				Name:      "Walk for Wildlife",
				Measuring: []api.CampaignMeasuring{
					{
						MeasurementID:   DistanceID,
						PreferredUnitID: KilometresID,
						Activities: []api.CampaignMeasuringActivity{
							{ActivityID: WalkingID, Targets: []api.CampaignMeasuringActivityTarget{{Target: target(50)}, {Target: target(100)}, {Target: nil}}},
							{ActivityID: RunningID, Targets: []api.CampaignMeasuringActivityTarget{{Target: target(100)}}},
							{ActivityID: SponsoredSwimID, Targets: []api.CampaignMeasuringActivityTarget{}},
						},
					},
					{
						MeasurementID:   StepsID,
						PreferredUnitID: StepsUnitID,
						Activities: []api.CampaignMeasuringActivity{
							{ActivityID: WalkingID, Targets: []api.CampaignMeasuringActivityTarget{{Target: target(100000)}}},
						},
					},
				},
				ChallengeFeatures: api.CampaignChallengeFeatures{MusicPlaylist: "on"},
			},
		},
		Measurements: []api.Measurement{
			{ID: DistanceID, Name: "Distance"},
			{ID: StepsID, Name: "Steps"},
		},
		Units: []api.Unit{
			{ID: KilometresID, Name: "Kilometres"},
			{ID: StepsUnitID, Name: "Steps"},
		},
		Activities: []api.Activity{
			{ID: WalkingID, Name: "Walking", IsSystemDefined: true},
			{ID: RunningID, Name: "Running", IsSystemDefined: true},
			{ID: SponsoredSwimID, Name: "Sponsored swim", CharityID: &charityID},
		},
		Groupings: map[string][]api.Grouping{
			DemoCampaignID: {
				{
					ID:    TeamGroupingID,
					Label: "Team",
					Groups: []api.Group{
						{ID: RedTeamID, Label: "Red team"},
						{ID: BlueTeamID, Label: "Blue team"},
					},
				},
				{
					ID:                                OfficeGroupingID,
					Label:                             "Office",
					Groups:                            []api.Group{{ID: LeedsOfficeGroupID, Label: "Leeds"}},
					FundraiserDefinedSubGroupSettings: api.SubGroupSettings{Enabled: true, Label: "Floor"},
				},
			},
		},
	}
}
