package stubserver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/givepenny/campaign-signup-helper/pkg/api"
)

func TestStore_PatchQuestionsMerges(t *testing.T) {
	store := NewStore(DefaultFixtures())

	require.True(t, store.PatchQuestions(DemoCharityID, DemoCampaignID, "s1", map[string]string{"A?": "1"}))
	require.True(t, store.PatchQuestions(DemoCharityID, DemoCampaignID, "s1", map[string]string{"B?": "2", "A?": "one"}))

	stored, ok := store.SignUp(DemoCampaignID, "s1")
	require.True(t, ok)
	assert.Equal(t, map[string]string{"A?": "one", "B?": "2"}, stored.Questions)
	assert.Equal(t, 2, stored.PatchCount)
	assert.Nil(t, stored.SignUp)
}

func TestStore_RejectsCampaignOfAnotherCharity(t *testing.T) {
	store := NewStore(DefaultFixtures())

	assert.False(t, store.PutSignUp("another-charity", api.SignUpRequest{ID: "s1", CampaignID: DemoCampaignID}))
	assert.False(t, store.PatchQuestions("another-charity", DemoCampaignID, "s1", nil))
	_, ok := store.Groupings("another-charity", DemoCampaignID)
	assert.False(t, ok)
}

func TestStore_SignUpReturnsCopy(t *testing.T) {
	store := NewStore(DefaultFixtures())
	first := "Ann"
	require.True(t, store.PutSignUp(DemoCharityID, api.SignUpRequest{ID: "s1", CampaignID: DemoCampaignID, FirstName: &first}))

	stored, _ := store.SignUp(DemoCampaignID, "s1")
	stored.Questions["Injected?"] = "yes"
	stored.SignUp.CampaignID = "changed"

	again, _ := store.SignUp(DemoCampaignID, "s1")
	assert.Empty(t, again.Questions)
	assert.Equal(t, DemoCampaignID, again.SignUp.CampaignID)

	store.Reset()
	_, ok := store.SignUp(DemoCampaignID, "s1")
	assert.False(t, ok)
}

func TestStore_Activities(t *testing.T) {
	store := NewStore(DefaultFixtures())

	assert.Len(t, store.Activities(false), 3)
	assert.Len(t, store.Activities(true), 2)

	activity, ok := store.Activity(SponsoredSwimID)
	require.True(t, ok)
	assert.False(t, activity.IsSystemDefined)

	_, ok = store.Activity("missing")
	assert.False(t, ok)
}
