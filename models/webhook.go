package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

const (
	EventSubscriptionActivated   = "subscription.activated"
	EventSubscriptionUpdated     = "subscription.updated"
	EventSubscriptionDeactivated = "subscription.deactivated"
	EventSubscriptionCanceled    = "subscription.canceled"
	EventChargeCompleted         = "subscription.charge.completed"
	EventChargeFailed            = "subscription.charge.failed"
)

type WebhookEvent struct {
	ID   string           `json:"id"`
	Type string           `json:"type"`
	Live bool             `json:"live"`
	Data WebhookEventData `json:"data"`
}

type WebhookCustomer struct {
	Email string `json:"email"`
}

type WebhookEventData struct {
	ID           string           `json:"id"`
	Subscription string           `json:"subscription"`
	Account      string           `json:"account"`
	Product      string           `json:"product"`
	Email        string           `json:"email,omitempty"`
	Customer     *WebhookCustomer `json:"customer,omitempty"`
	Next         *EventTime       `json:"next,omitempty"`
	End          *EventTime       `json:"end,omitempty"`
	State        string           `json:"state,omitempty"`
}

// CustomerEmail prefers the top-level email over the customer record
func (d WebhookEventData) CustomerEmail() string {
	if d.Email != "" {
		return d.Email
	}
	if d.Customer != nil {
		return d.Customer.Email
	}
	return ""
}

// PeriodEnd is next, falling back to end
func (d WebhookEventData) PeriodEnd() *time.Time {
	for _, t := range []*EventTime{d.Next, d.End} {
		if t != nil && !t.IsZero() {
			v := t.Time
			return &v
		}
	}
	return nil
}

// EventTime accepts integer epoch milliseconds, as numbers or strings, and date strings
type EventTime struct {
	time.Time
}

var eventTimeLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02 15:04:05", "2006-01-02"}

func (t *EventTime) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}

	var s string
	if b[0] == '"' {
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if s == "" {
			return nil
		}
	} else {
		s = string(b)
	}

	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		t.Time = time.UnixMilli(ms).UTC()
		return nil
	}
	for _, layout := range eventTimeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}
	return fmt.Errorf("unrecognised event time %q", s)
}

func (t EventTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.UnixMilli())
}

type WebhookResponse struct {
	Success bool `json:"success"`
}
