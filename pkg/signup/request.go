package signup

import (
	"context"
	"maps"
	"math"
	"unicode/utf8"

	"github.com/givepenny/campaign-signup-helper/pkg/api"
	"github.com/google/uuid"
)

const (
	maxGroups         = 5
	maxQuestions      = 30
	maxQuestionLength = 100
)

// API is the part of the sign-ups service a Request writes to.
// *api.SignUpsClient implements it.
type API interface {
	PutSignUp(ctx context.Context, charityID, campaignID string, signUp api.SignUpRequest) error
	PatchSignUpQuestions(ctx context.Context, charityID, campaignID, signUpID string, questions map[string]string) error
}

// Request accumulates one fundraiser's sign-up to a campaign
type Request struct {
	client API

	charityID  string
	campaignID string
	signUpID   string

	status    api.SignUpStatus
	submitted bool

	// sections with changes not yet sent
	signUpChanged    bool
	questionsChanged bool

	firstName *string
	lastName  *string
	email     *string

	groupingIDs         []string // first-seen order
	groups              map[string]string
	additionalQuestions map[string]string
	challengeOptions    api.ChallengeOptions

	isOptedInToMarketing *bool
}

// New creates a sign-up request for a campaign with a freshly generated
// sign-up id
func New(charityID, campaignID string, client API) (*Request, error) {
	if charityID == "" {
		return nil, newError(KindConstruction, "charityId must be provided")
	}
	if campaignID == "" {
		return nil, newError(KindConstruction, "campaignId must be provided")
	}
	if client == nil {
		return nil, newError(KindConstruction, "a sign-up API client must be provided")
	}

	return &Request{
		client:              client,
		charityID:           charityID,
		campaignID:          campaignID,
		signUpID:            uuid.NewString(),
		status:              api.SignUpStatusCreating,
		groups:              map[string]string{},
		additionalQuestions: map[string]string{},
	}, nil
}

func (r *Request) CharityID() string  { return r.charityID }
func (r *Request) CampaignID() string { return r.campaignID }
func (r *Request) SignUpID() string   { return r.signUpID }

// Status is "submitted" from the first Submit call that passes validation
func (r *Request) Status() api.SignUpStatus { return r.status }

// Submitted reports whether Submit has completed, after which the request
// can no longer change
func (r *Request) Submitted() bool { return r.submitted }

// FirstName returns nil until SetFirstName is called
func (r *Request) FirstName() *string { return clone(r.firstName) }

// SetFirstName sets the fundraiser's first name
func (r *Request) SetFirstName(firstName string) error {
	if err := r.checkNotSubmitted(); err != nil {
		return err
	}
	if firstName == "" {
		return newError(KindValidation, "setFirstName must be passed a value")
	}

	r.signUpChanged = true
	r.firstName = &firstName
	return nil
}

// LastName returns nil until SetLastName is called
func (r *Request) LastName() *string { return clone(r.lastName) }

// SetLastName sets the fundraiser's last name
func (r *Request) SetLastName(lastName string) error {
	if err := r.checkNotSubmitted(); err != nil {
		return err
	}
	if lastName == "" {
		return newError(KindValidation, "setLastName must be passed a value")
	}

	r.signUpChanged = true
	r.lastName = &lastName
	return nil
}

// Email returns nil until SetEmail is called
func (r *Request) Email() *string { return clone(r.email) }

// SetEmail sets the fundraiser's email address
func (r *Request) SetEmail(email string) error {
	if err := r.checkNotSubmitted(); err != nil {
		return err
	}
	if email == "" {
		return newError(KindValidation, "setEmail must be passed a value")
	}

	r.signUpChanged = true
	r.email = &email
	return nil
}

// Groups returns the selected groups in the order their groupings were first
// set
func (r *Request) Groups() []api.SignUpGroup {
	groups := make([]api.SignUpGroup, 0, len(r.groupingIDs))
	for _, groupingID := range r.groupingIDs {
		groups = append(groups, api.SignUpGroup{GroupingID: groupingID, GroupID: r.groups[groupingID]})
	}
	return groups
}

// SetGroup selects groupID within groupingID, replacing any earlier choice
// for that grouping. At most 5 groupings may be set.
func (r *Request) SetGroup(groupingID, groupID string) error {
	if err := r.checkNotSubmitted(); err != nil {
		return err
	}
	if len(r.groups) == maxGroups {
		return newError(KindValidation, "Group selections for a maximum of 5 groupings may be added using setGroup")
	}
	if groupingID == "" {
		return newError(KindValidation, "setGroup must be passed a value for groupingId")
	}
	if groupID == "" {
		return newError(KindValidation, "setGroup must be passed a value for groupId")
	}

	r.signUpChanged = true
	if _, exists := r.groups[groupingID]; !exists {
		r.groupingIDs = append(r.groupingIDs, groupingID)
	}
	r.groups[groupingID] = groupID
	return nil
}

// AdditionalQuestions returns a copy of the answers keyed by question
func (r *Request) AdditionalQuestions() map[string]string {
	return maps.Clone(r.additionalQuestions)
}

// SetAdditionalQuestion records the answer to a free-form question, replacing
// any earlier answer. At most 30 questions of up to 100 characters may be set;
// the answer may be empty.
func (r *Request) SetAdditionalQuestion(question, answer string) error {
	if err := r.checkNotSubmitted(); err != nil {
		return err
	}
	if len(r.additionalQuestions) == maxQuestions {
		return newError(KindValidation, "A maximum of 30 questions may be added using setMiscellaneousQuestion")
	}
	if question == "" {
		return newError(KindValidation, "setMiscellaneousQuestion must be passed a value for question")
	}
	if utf8.RuneCountInString(question) > maxQuestionLength {
		return newError(KindValidation, "setMiscellaneousQuestion may not be passed a value for question longer than 100 characters")
	}

	r.questionsChanged = true
	r.additionalQuestions[question] = answer
	return nil
}

// ChallengeOptions returns a copy of the challenge preferences
func (r *Request) ChallengeOptions() api.ChallengeOptions {
	return r.challengeOptions.Clone()
}

// SetChallengeActivity sets the challenge activity and measurement together.
// activityTarget is optional; when given it must be a positive number.
func (r *Request) SetChallengeActivity(activityID, measurementID string, activityTarget *float64) error {
	if err := r.checkNotSubmitted(); err != nil {
		return err
	}
	if activityID == "" {
		return newError(KindValidation, "setChallengeActivity must be passed a value for activityId")
	}
	if measurementID == "" {
		return newError(KindValidation, "setChallengeActivity must be passed a value for measurementId")
	}
	if activityTarget != nil && !isPositiveNumber(*activityTarget) {
		return newError(KindValidation, "setChallengeActivity must be passed a positive number value for activityTarget")
	}

	r.signUpChanged = true
	r.challengeOptions.ActivityID = &activityID
	r.challengeOptions.MeasurementID = &measurementID
	r.challengeOptions.ActivityTarget = clone(activityTarget)
	return nil
}

// SetChallengeMusicPlaylist turns the challenge music playlist on or off
func (r *Request) SetChallengeMusicPlaylist(enabled bool) error {
	if err := r.checkNotSubmitted(); err != nil {
		return err
	}

	r.signUpChanged = true
	r.challengeOptions.MusicPlaylist = &enabled
	return nil
}

// IsOptedInToMarketing returns nil until SetIsOptedInToMarketing is called
func (r *Request) IsOptedInToMarketing() *bool { return clone(r.isOptedInToMarketing) }

// SetIsOptedInToMarketing records the fundraiser's marketing preference
func (r *Request) SetIsOptedInToMarketing(optedIn bool) error {
	if err := r.checkNotSubmitted(); err != nil {
		return err
	}

	r.signUpChanged = true
	r.isOptedInToMarketing = &optedIn
	return nil
}

// Snapshot returns the record the next sign-up upsert would send
func (r *Request) Snapshot() api.SignUpRequest {
	return api.SignUpRequest{
		ID:                   r.signUpID,
		CampaignID:           r.campaignID,
		ChallengeOptions:     r.ChallengeOptions(),
		Groups:               r.Groups(),
		FirstName:            r.FirstName(),
		LastName:             r.LastName(),
		Email:                r.Email(),
		IsOptedInToMarketing: r.IsOptedInToMarketing(),
		IsTestResource:       false,
		Status:               r.status,
	}
}

func (r *Request) checkNotSubmitted() error {
	if !r.submitted {
		return nil
	}
	return newError(KindLocked, "Changes are not permitted after the sign-up request has been submitted")
}

func isPositiveNumber(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

func clone[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
