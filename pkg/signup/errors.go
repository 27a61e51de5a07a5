package signup

import "errors"

const documentationLinks = "\nFor more information, please see the documentation:" +
	"\n\t- https://github.com/GivePenny/CampaignSignUpHelper#readme" +
	"\n\t- https://docs.givepenny.com/content/api/charities/campaigns/signupsservice/sign-up/putsignuprequest.html" +
	"\n\t- https://docs.givepenny.com/content/api/charities/campaigns/signupsservice/questions/patchsignupquestions.html"

// Kind classifies a failure raised by a Request
type Kind int

const (
	// KindConstruction means a required identifier was missing at construction
	KindConstruction Kind = iota + 1
	// KindValidation means a setter was passed an unacceptable value
	KindValidation
	// KindLocked means the request was already submitted
	KindLocked
	// KindNotReady means a required field was missing at submit time
	KindNotReady
)

var (
	ErrConstruction = errors.New("sign-up request could not be created")
	ErrValidation   = errors.New("sign-up request value is invalid")
	ErrLocked       = errors.New("sign-up request has been submitted")
	ErrNotReady     = errors.New("sign-up request is not ready to submit")
)

// Error is returned for every precondition a Request enforces
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message + documentationLinks
}

// Is matches the sentinel for the error's kind
func (e *Error) Is(target error) bool {
	switch e.Kind {
	case KindConstruction:
		return target == ErrConstruction
	case KindValidation:
		return target == ErrValidation
	case KindLocked:
		return target == ErrLocked
	case KindNotReady:
		return target == ErrNotReady
	}
	return false
}

func newError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}
