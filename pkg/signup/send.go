package signup

import (
	"context"
	"maps"
	"time"

	"github.com/givepenny/campaign-signup-helper/pkg/api"
	"github.com/givepenny/campaign-signup-helper/pkg/logger"
	"github.com/givepenny/campaign-signup-helper/pkg/metrics"
	"github.com/givepenny/campaign-signup-helper/pkg/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

const (
	sectionQuestions = "questions"
	sectionSignUp    = "signup"
)

// SendData sends the sections that changed since the last successful send.
// Questions are patched before the sign-up record is upserted. A section's
// changes stay pending when its call fails, so the next SendData retries it.
func (r *Request) SendData(ctx context.Context) (err error) {
	if err := r.checkNotSubmitted(); err != nil {
		return err
	}

	ctx, span := tracing.StartSpan(ctx, "signup.SendData",
		attribute.String("signup.id", r.signUpID),
		attribute.String("campaign.id", r.campaignID),
		attribute.Bool("signup.questions_changed", r.questionsChanged),
		attribute.Bool("signup.changed", r.signUpChanged),
	)
	defer func() { tracing.EndSpan(span, err) }()

	if r.questionsChanged {
		err := r.send(sectionQuestions, func() error {
			return r.client.PatchSignUpQuestions(ctx, r.charityID, r.campaignID, r.signUpID, maps.Clone(r.additionalQuestions))
		})
		if err != nil {
			return err
		}
		r.questionsChanged = false
	}

	if r.signUpChanged {
		err := r.send(sectionSignUp, func() error {
			return r.client.PutSignUp(ctx, r.charityID, r.campaignID, r.Snapshot())
		})
		if err != nil {
			return err
		}
		r.signUpChanged = false
	}

	return nil
}

// Submit checks that first name, last name and email are set, marks the
// sign-up as submitted and sends it. The request is locked once the send
// succeeds. If the send fails the status stays submitted and Submit may be
// called again.
func (r *Request) Submit(ctx context.Context) error {
	if err := r.checkNotSubmitted(); err != nil {
		return err
	}
	if r.firstName == nil {
		return newError(KindNotReady, "firstName must be set before submit can be called")
	}
	if r.lastName == nil {
		return newError(KindNotReady, "lastName must be set before submit can be called")
	}
	if r.email == nil {
		return newError(KindNotReady, "email must be set before submit can be called")
	}

	r.status = api.SignUpStatusSubmitted
	r.signUpChanged = true

	if err := r.SendData(ctx); err != nil {
		metrics.SignUpSubmissions.WithLabelValues("error").Inc()
		logger.Warn("Sign-up submission failed",
			zap.String("signup_id", r.signUpID),
			zap.String("campaign_id", r.campaignID),
			zap.Error(err))
		return err
	}

	r.submitted = true
	metrics.SignUpSubmissions.WithLabelValues("success").Inc()
	logger.Info("Sign-up submitted",
		zap.String("signup_id", r.signUpID),
		zap.String("campaign_id", r.campaignID))
	return nil
}

func (r *Request) send(section string, call func() error) error {
	start := time.Now()
	err := call()
	duration := metrics.MeasureDuration(start)

	status := "success"
	if err != nil {
		status = "error"
	}
	metrics.SignUpSends.WithLabelValues(section, status).Inc()
	logger.Debug("Sent sign-up section",
		zap.String("section", section),
		zap.String("signup_id", r.signUpID),
		zap.String("status", status),
		zap.Float64("duration", duration))

	return err
}
