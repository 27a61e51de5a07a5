// Package signup builds a fundraiser's sign-up to a campaign and submits it
// to the charities campaigns sign-ups service.
//
// # Building a Request
//
// Create a [Request] for a charity and campaign, then set the fundraiser's
// details:
//
//	req, err := signup.New(charityID, campaignID, clients.SignUps)
//	if err != nil { ... }
//	err = req.SetFirstName("Ann")
//	err = req.SetGroup(teamGroupingID, redTeamID)
//	err = req.SetAdditionalQuestion("Why are you taking part?", "For my gran")
//
// Every setter validates its arguments and returns a [*Error] describing the
// problem when they are not acceptable.
//
// # Sending and Submitting
//
// [Request.SendData] sends whatever changed since the last successful send.
// Questions are patched first, then the sign-up record is upserted; sections
// that did not change are not sent. Calling it with nothing to send makes no
// remote calls.
//
// [Request.Submit] requires first name, last name and email, marks the
// sign-up as submitted and always upserts the record. Once it succeeds the
// request is locked: every setter and send returns an error matching
// [ErrLocked].
//
// # Error Handling
//
// Failures raised by the request itself are [*Error] values carrying a short
// message followed by links to the documentation. Use errors.Is with
// [ErrConstruction], [ErrValidation], [ErrLocked] or [ErrNotReady] to tell
// them apart. Errors from the sign-ups service are returned unchanged.
//
// # Concurrency
//
// A Request belongs to a single caller and is not safe for concurrent use.
// Overlapping SendData or Submit calls may send the same section twice.
package signup
