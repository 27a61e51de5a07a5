package signup_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/givepenny/campaign-signup-helper/pkg/api"
	"github.com/givepenny/campaign-signup-helper/pkg/signup"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const docsSuffix = "\nFor more information, please see the documentation:" +
	"\n\t- https://github.com/GivePenny/CampaignSignUpHelper#readme" +
	"\n\t- https://docs.givepenny.com/content/api/charities/campaigns/signupsservice/sign-up/putsignuprequest.html" +
	"\n\t- https://docs.givepenny.com/content/api/charities/campaigns/signupsservice/questions/patchsignupquestions.html"

func newRequest(t *testing.T) (*signup.Request, *MockSignUpAPI) {
	t.Helper()
	client := new(MockSignUpAPI)
	req, err := signup.New(uuid.NewString(), uuid.NewString(), client)
	require.NoError(t, err)
	return req, client
}

func assertSignUpError(t *testing.T, err error, kind error, message string) {
	t.Helper()
	require.Error(t, err)
	assert.ErrorIs(t, err, kind)
	assert.Equal(t, message+docsSuffix, err.Error())

	var signUpErr *signup.Error
	require.True(t, errors.As(err, &signUpErr))
	assert.Equal(t, message, signUpErr.Message)
}

func ptr[T any](v T) *T {
	return &v
}

func TestNew(t *testing.T) {
	charityID, campaignID := uuid.NewString(), uuid.NewString()
	req, err := signup.New(charityID, campaignID, new(MockSignUpAPI))
	require.NoError(t, err)

	assert.Equal(t, charityID, req.CharityID())
	assert.Equal(t, campaignID, req.CampaignID())
	_, err = uuid.Parse(req.SignUpID())
	assert.NoError(t, err)
	assert.Equal(t, api.SignUpStatusCreating, req.Status())
	assert.False(t, req.Submitted())

	assert.Nil(t, req.FirstName())
	assert.Nil(t, req.LastName())
	assert.Nil(t, req.Email())
	assert.Nil(t, req.IsOptedInToMarketing())
	assert.NotNil(t, req.Groups())
	assert.Empty(t, req.Groups())
	assert.Empty(t, req.AdditionalQuestions())
	assert.Equal(t, api.ChallengeOptions{}, req.ChallengeOptions())
}

func TestNew_GeneratesDistinctIDs(t *testing.T) {
	first, _ := newRequest(t)
	second, _ := newRequest(t)
	assert.NotEqual(t, first.SignUpID(), second.SignUpID())
}

func TestNew_MissingIdentifiers(t *testing.T) {
	_, err := signup.New("", "campaign", new(MockSignUpAPI))
	assertSignUpError(t, err, signup.ErrConstruction, "charityId must be provided")

	_, err = signup.New("charity", "", new(MockSignUpAPI))
	assertSignUpError(t, err, signup.ErrConstruction, "campaignId must be provided")

	_, err = signup.New("", "", new(MockSignUpAPI))
	assertSignUpError(t, err, signup.ErrConstruction, "charityId must be provided")

	_, err = signup.New("charity", "campaign", nil)
	assertSignUpError(t, err, signup.ErrConstruction, "a sign-up API client must be provided")
}

func TestScalarSetters(t *testing.T) {
	req, _ := newRequest(t)

	require.NoError(t, req.SetFirstName("Ann"))
	require.NoError(t, req.SetLastName("Lee"))
	require.NoError(t, req.SetEmail("a@example.com"))
	require.NoError(t, req.SetIsOptedInToMarketing(false))

	assert.Equal(t, ptr("Ann"), req.FirstName())
	assert.Equal(t, ptr("Lee"), req.LastName())
	assert.Equal(t, ptr("a@example.com"), req.Email())
	assert.Equal(t, ptr(false), req.IsOptedInToMarketing())

	require.NoError(t, req.SetFirstName("Anne"))
	assert.Equal(t, ptr("Anne"), req.FirstName())
}

func TestScalarSetters_RejectEmptyValues(t *testing.T) {
	req, _ := newRequest(t)

	assertSignUpError(t, req.SetFirstName(""), signup.ErrValidation, "setFirstName must be passed a value")
	assertSignUpError(t, req.SetLastName(""), signup.ErrValidation, "setLastName must be passed a value")
	assertSignUpError(t, req.SetEmail(""), signup.ErrValidation, "setEmail must be passed a value")

	assert.Nil(t, req.FirstName())
	assert.Nil(t, req.LastName())
	assert.Nil(t, req.Email())
}

func TestSetGroup(t *testing.T) {
	req, _ := newRequest(t)

	require.NoError(t, req.SetGroup("team", "red"))
	require.NoError(t, req.SetGroup("office", "leeds"))
	require.NoError(t, req.SetGroup("team", "blue"))

	assert.Equal(t, []api.SignUpGroup{
		{GroupingID: "team", GroupID: "blue"},
		{GroupingID: "office", GroupID: "leeds"},
	}, req.Groups())
}

func TestSetGroup_RejectsEmptyValues(t *testing.T) {
	req, _ := newRequest(t)

	assertSignUpError(t, req.SetGroup("", "red"), signup.ErrValidation, "setGroup must be passed a value for groupingId")
	assertSignUpError(t, req.SetGroup("team", ""), signup.ErrValidation, "setGroup must be passed a value for groupId")
	assert.Empty(t, req.Groups())
}

func TestSetGroup_Capacity(t *testing.T) {
	req, _ := newRequest(t)
	for i := 0; i < 5; i++ {
		require.NoError(t, req.SetGroup(uuid.NewString(), "group"))
	}

	const message = "Group selections for a maximum of 5 groupings may be added using setGroup"
	assertSignUpError(t, req.SetGroup(uuid.NewString(), "group"), signup.ErrValidation, message)

	// capacity is checked before the key or the values
	existing := req.Groups()[0].GroupingID
	assertSignUpError(t, req.SetGroup(existing, "other"), signup.ErrValidation, message)
	assertSignUpError(t, req.SetGroup("", ""), signup.ErrValidation, message)

	assert.Len(t, req.Groups(), 5)
	assert.Equal(t, "group", req.Groups()[0].GroupID)
}

func TestSetAdditionalQuestion(t *testing.T) {
	req, _ := newRequest(t)

	require.NoError(t, req.SetAdditionalQuestion("Why are you taking part?", "For my gran"))
	require.NoError(t, req.SetAdditionalQuestion("Anything else?", ""))
	require.NoError(t, req.SetAdditionalQuestion("Why are you taking part?", "For my grandad"))

	assert.Equal(t, map[string]string{
		"Why are you taking part?": "For my grandad",
		"Anything else?":           "",
	}, req.AdditionalQuestions())
}

func TestSetAdditionalQuestion_Validation(t *testing.T) {
	req, _ := newRequest(t)

	assertSignUpError(t, req.SetAdditionalQuestion("", "answer"), signup.ErrValidation,
		"setMiscellaneousQuestion must be passed a value for question")

	assert.NoError(t, req.SetAdditionalQuestion(strings.Repeat("q", 100), "answer"))
	assert.NoError(t, req.SetAdditionalQuestion(strings.Repeat("é", 100), "answer"))
	assertSignUpError(t, req.SetAdditionalQuestion(strings.Repeat("q", 101), "answer"), signup.ErrValidation,
		"setMiscellaneousQuestion may not be passed a value for question longer than 100 characters")

	assert.Len(t, req.AdditionalQuestions(), 2)
}

func TestSetAdditionalQuestion_Capacity(t *testing.T) {
	req, _ := newRequest(t)
	for i := 0; i < 30; i++ {
		require.NoError(t, req.SetAdditionalQuestion(uuid.NewString(), "answer"))
	}

	const message = "A maximum of 30 questions may be added using setMiscellaneousQuestion"
	assertSignUpError(t, req.SetAdditionalQuestion(uuid.NewString(), "answer"), signup.ErrValidation, message)
	assertSignUpError(t, req.SetAdditionalQuestion("", ""), signup.ErrValidation, message)
	assert.Len(t, req.AdditionalQuestions(), 30)
}

func TestSetChallengeActivity(t *testing.T) {
	req, _ := newRequest(t)

	target := 10.5
	require.NoError(t, req.SetChallengeActivity("running", "distance", &target))
	target = 1

	assert.Equal(t, api.ChallengeOptions{
		ActivityID:     ptr("running"),
		MeasurementID:  ptr("distance"),
		ActivityTarget: ptr(10.5),
	}, req.ChallengeOptions())

	require.NoError(t, req.SetChallengeActivity("walking", "steps", nil))
	options := req.ChallengeOptions()
	assert.Equal(t, ptr("walking"), options.ActivityID)
	assert.Equal(t, ptr("steps"), options.MeasurementID)
	assert.Nil(t, options.ActivityTarget)
}

func TestSetChallengeActivity_Validation(t *testing.T) {
	req, _ := newRequest(t)

	assertSignUpError(t, req.SetChallengeActivity("", "distance", nil), signup.ErrValidation,
		"setChallengeActivity must be passed a value for activityId")
	assertSignUpError(t, req.SetChallengeActivity("running", "", nil), signup.ErrValidation,
		"setChallengeActivity must be passed a value for measurementId")

	for _, target := range []float64{0, -5, math.NaN(), math.Inf(1), math.Inf(-1)} {
		assertSignUpError(t, req.SetChallengeActivity("running", "distance", &target), signup.ErrValidation,
			"setChallengeActivity must be passed a positive number value for activityTarget")
	}

	assert.Equal(t, api.ChallengeOptions{}, req.ChallengeOptions())
}

func TestSetChallengeMusicPlaylist(t *testing.T) {
	req, _ := newRequest(t)

	require.NoError(t, req.SetChallengeActivity("running", "distance", ptr(5.0)))
	require.NoError(t, req.SetChallengeMusicPlaylist(true))

	options := req.ChallengeOptions()
	assert.Equal(t, ptr(true), options.MusicPlaylist)
	assert.Equal(t, ptr("running"), options.ActivityID)
}

func TestGetters_ReturnCopies(t *testing.T) {
	req, _ := newRequest(t)
	require.NoError(t, req.SetFirstName("Ann"))
	require.NoError(t, req.SetGroup("team", "red"))
	require.NoError(t, req.SetAdditionalQuestion("Why?", "Because"))
	require.NoError(t, req.SetChallengeActivity("running", "distance", ptr(5.0)))
	require.NoError(t, req.SetChallengeMusicPlaylist(true))
	require.NoError(t, req.SetIsOptedInToMarketing(true))

	*req.FirstName() = "changed"
	req.Groups()[0].GroupID = "changed"
	req.AdditionalQuestions()["Why?"] = "changed"
	req.AdditionalQuestions()["New?"] = "added"
	options := req.ChallengeOptions()
	*options.ActivityID = "changed"
	*options.ActivityTarget = 99
	*options.MusicPlaylist = false
	*req.IsOptedInToMarketing() = false

	assert.Equal(t, ptr("Ann"), req.FirstName())
	assert.Equal(t, []api.SignUpGroup{{GroupingID: "team", GroupID: "red"}}, req.Groups())
	assert.Equal(t, map[string]string{"Why?": "Because"}, req.AdditionalQuestions())
	assert.Equal(t, api.ChallengeOptions{
		ActivityID:     ptr("running"),
		MeasurementID:  ptr("distance"),
		ActivityTarget: ptr(5.0),
		MusicPlaylist:  ptr(true),
	}, req.ChallengeOptions())
	assert.Equal(t, ptr(true), req.IsOptedInToMarketing())
}

func TestSnapshot(t *testing.T) {
	req, _ := newRequest(t)
	require.NoError(t, req.SetFirstName("Ann"))
	require.NoError(t, req.SetGroup("team", "red"))
	require.NoError(t, req.SetAdditionalQuestion("Why?", "Because"))

	snapshot := req.Snapshot()
	assert.Equal(t, api.SignUpRequest{
		ID:         req.SignUpID(),
		CampaignID: req.CampaignID(),
		Groups:     []api.SignUpGroup{{GroupingID: "team", GroupID: "red"}},
		FirstName:  ptr("Ann"),
		Status:     api.SignUpStatusCreating,
	}, snapshot)
	assert.NoError(t, snapshot.Validate())
}
