// Package stubserver emulates the campaign services in memory so the sign-up
// helper can be developed and tested without the real APIs.
package stubserver

import (
	"maps"
	"slices"
	"sync"

	"github.com/givepenny/campaign-signup-helper/internal/models"
	"github.com/givepenny/campaign-signup-helper/pkg/api"
)

// Fixtures is the reference data the stub server answers with
type Fixtures struct {
	Campaigns    map[string]api.Campaign // keyed by slug
	Measurements []api.Measurement
	Units        []api.Unit
	Activities   []api.Activity
	Groupings    map[string][]api.Grouping // keyed by campaign id
}

// Store holds the fixtures and the sign-ups received by the stub server
type Store struct {
	mu       sync.RWMutex
	fixtures Fixtures
	signUps  map[string]*models.StoredSignUp // keyed by campaign id and sign-up id
}

// NewStore creates a store serving the given fixtures
func NewStore(fixtures Fixtures) *Store {
	return &Store{
		fixtures: fixtures,
		signUps:  make(map[string]*models.StoredSignUp),
	}
}

// CampaignBySlug returns the campaign with the given slug
func (s *Store) CampaignBySlug(slug string) (api.Campaign, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	campaign, ok := s.fixtures.Campaigns[slug]
	return campaign, ok
}

// Measurements lists every measurement
func (s *Store) Measurements() []api.Measurement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return nonNil(slices.Clone(s.fixtures.Measurements))
}

// Units lists every unit
func (s *Store) Units() []api.Unit {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return nonNil(slices.Clone(s.fixtures.Units))
}

// Activities lists activities, optionally only the system defined ones
func (s *Store) Activities(systemDefinedOnly bool) []api.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	activities := []api.Activity{}
	for _, activity := range s.fixtures.Activities {
		if systemDefinedOnly && !activity.IsSystemDefined {
			continue
		}
		activities = append(activities, activity)
	}
	return activities
}

// Activity returns a single activity
func (s *Store) Activity(id string) (api.Activity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, activity := range s.fixtures.Activities {
		if activity.ID == id {
			return activity, true
		}
	}
	return api.Activity{}, false
}

// Groupings lists a campaign's groupings. The campaign must belong to the
// charity.
func (s *Store) Groupings(charityID, campaignID string) ([]api.Grouping, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.hasCampaign(charityID, campaignID) {
		return nil, false
	}
	return nonNil(slices.Clone(s.fixtures.Groupings[campaignID])), true
}

// PutSignUp stores the full sign-up record, replacing any earlier one
func (s *Store) PutSignUp(charityID string, signUp api.SignUpRequest) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasCampaign(charityID, signUp.CampaignID) {
		return false
	}

	stored := s.entry(charityID, signUp.CampaignID, signUp.ID)
	stored.SignUp = &signUp
	stored.PutCount++
	return true
}

// PatchQuestions merges answers into the sign-up's questions. Questions may
// arrive before the sign-up record itself.
func (s *Store) PatchQuestions(charityID, campaignID, signUpID string, questions map[string]string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasCampaign(charityID, campaignID) {
		return false
	}

	stored := s.entry(charityID, campaignID, signUpID)
	maps.Copy(stored.Questions, questions)
	stored.PatchCount++
	return true
}

// SignUp returns a copy of what was received for a sign-up
func (s *Store) SignUp(campaignID, signUpID string) (models.StoredSignUp, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stored, ok := s.signUps[signUpKey(campaignID, signUpID)]
	if !ok {
		return models.StoredSignUp{}, false
	}

	result := *stored
	result.Questions = maps.Clone(stored.Questions)
	if stored.SignUp != nil {
		signUp := *stored.SignUp
		result.SignUp = &signUp
	}
	return result, true
}

// Reset forgets every received sign-up
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.signUps = make(map[string]*models.StoredSignUp)
}

func (s *Store) hasCampaign(charityID, campaignID string) bool {
	for _, campaign := range s.fixtures.Campaigns {
		if campaign.ID == campaignID && campaign.CharityID == charityID {
			return true
		}
	}
	return false
}

func (s *Store) entry(charityID, campaignID, signUpID string) *models.StoredSignUp {
	key := signUpKey(campaignID, signUpID)
	stored, ok := s.signUps[key]
	if !ok {
		stored = &models.StoredSignUp{CharityID: charityID, Questions: map[string]string{}}
		s.signUps[key] = stored
	}
	return stored
}

func signUpKey(campaignID, signUpID string) string {
	return campaignID + "/" + signUpID
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
