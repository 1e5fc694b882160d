// Package webhook applies FastSpring subscription events to the subscriptions table.
package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/nine-hub/api/datastore"
	"github.com/nine-hub/api/models"
)

// SignatureHeader carries base64(HMAC-SHA256(secret, body))
const SignatureHeader = "X-FS-Signature"

var (
	ErrMissingSignature = errors.New("missing signature")
	ErrInvalidSignature = errors.New("invalid signature")
)

// VerifySignature checks the header against the raw body. An empty secret disables the check.
func VerifySignature(secret string, body []byte, header string) error {
	if secret == "" {
		return nil
	}
	if header == "" {
		return ErrMissingSignature
	}

	given, err := base64.StdEncoding.DecodeString(header)
	if err != nil {
		return ErrInvalidSignature
	}
	if !hmac.Equal(given, Sign(secret, body)) {
		return ErrInvalidSignature
	}
	return nil
}

func Sign(secret string, body []byte) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return mac.Sum(nil)
}

// ParseEvents accepts either {"events": [...]} or a single event object.
// A body with an events key is always a batch, even when it is null or empty.
func ParseEvents(body []byte) ([]models.WebhookEvent, error) {
	body = bytes.TrimSpace(body)

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, fmt.Errorf("decode webhook body: %w", err)
	}
	if raw, ok := fields["events"]; ok {
		var events []models.WebhookEvent
		if err := json.Unmarshal(raw, &events); err != nil {
			return nil, fmt.Errorf("decode webhook events: %w", err)
		}
		if events == nil {
			events = []models.WebhookEvent{}
		}
		return events, nil
	}

	var single models.WebhookEvent
	if err := json.Unmarshal(body, &single); err != nil {
		return nil, fmt.Errorf("decode webhook event: %w", err)
	}
	return []models.WebhookEvent{single}, nil
}

type Result string

const (
	Applied   Result = "applied"
	Skipped   Result = "skipped"
	Logged    Result = "logged"
	Unhandled Result = "unhandled"
	Failed    Result = "failed"
)

type Outcome struct {
	EventID string
	Type    string
	Result  Result
	Err     error
}

type Processor struct {
	repo   datastore.SubscriptionRepository
	logger *zap.Logger
	now    func() time.Time
}

func NewProcessor(repo datastore.SubscriptionRepository, logger *zap.Logger) *Processor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Processor{repo: repo, logger: logger, now: time.Now}
}

// Process applies events in order. A failing event is logged and the rest still run.
func (p *Processor) Process(ctx context.Context, events []models.WebhookEvent) []Outcome {
	outcomes := make([]Outcome, 0, len(events))
	for _, event := range events {
		outcome := p.apply(ctx, event)
		if outcome.Err != nil {
			p.logger.Error("webhook event failed",
				zap.String("eventId", event.ID),
				zap.String("type", event.Type),
				zap.String("subscription", event.Data.Subscription),
				zap.Error(outcome.Err))
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes
}

func (p *Processor) apply(ctx context.Context, event models.WebhookEvent) Outcome {
	out := Outcome{EventID: event.ID, Type: event.Type}
	data := event.Data

	email := data.CustomerEmail()
	if email == "" {
		p.logger.Info("no email found in event", zap.String("type", event.Type), zap.String("eventId", event.ID))
		out.Result = Skipped
		return out
	}

	p.logger.Info("processing webhook event",
		zap.String("type", event.Type),
		zap.String("email", email),
		zap.Bool("live", event.Live))

	now := p.now().UTC()
	var err error

	switch event.Type {
	case models.EventSubscriptionActivated, models.EventSubscriptionUpdated:
		sub := models.NewSubscription(email, data.Subscription, data.Account, data.Product, data.PeriodEnd(), now)
		_, err = p.repo.Upsert(ctx, sub)

	case models.EventSubscriptionDeactivated, models.EventSubscriptionCanceled:
		err = p.repo.UpdateStatus(ctx, data.Subscription, models.StatusCanceled, now)

	case models.EventChargeCompleted:
		var next *time.Time
		if data.Next != nil && !data.Next.IsZero() {
			t := data.Next.Time
			next = &t
		}
		err = p.repo.MarkCharged(ctx, data.Subscription, next, now)

	case models.EventChargeFailed:
		p.logger.Warn("charge failed for subscription", zap.String("subscription", data.Subscription))
		out.Result = Logged
		return out

	default:
		p.logger.Info("unhandled event type", zap.String("type", event.Type))
		out.Result = Unhandled
		return out
	}

	if err != nil {
		out.Result = Failed
		out.Err = err
		return out
	}
	out.Result = Applied
	return out
}
