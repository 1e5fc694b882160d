package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	PlanMonthly = "monthly"
	PlanAnnual  = "annual"

	StatusActive   = "active"
	StatusCanceled = "canceled"
	StatusExpired  = "expired"
)

type Subscription struct {
	ID                       string     `json:"id" db:"id"`
	Email                    string     `json:"email" db:"email"`
	FastSpringSubscriptionID string     `json:"fastspringSubscriptionId" db:"fastspring_subscription_id"`
	FastSpringAccountID      string     `json:"fastspringAccountId" db:"fastspring_account_id"`
	PlanType                 string     `json:"planType" db:"plan_type"`
	Status                   string     `json:"status" db:"status"`
	CurrentPeriodStart       *time.Time `json:"currentPeriodStart,omitempty" db:"current_period_start"`
	CurrentPeriodEnd         *time.Time `json:"currentPeriodEnd,omitempty" db:"current_period_end"`
	CreatedAt                time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt                time.Time  `json:"updatedAt" db:"updated_at"`
}

// IsPro reports whether the subscription currently unlocks paid features
func (s Subscription) IsPro(now time.Time) bool {
	if s.Status != StatusActive {
		return false
	}
	return s.CurrentPeriodEnd == nil || s.CurrentPeriodEnd.After(now)
}

// PlanFor maps a product path to a plan; anything not annual bills monthly
func PlanFor(product string) string {
	if strings.Contains(product, "annual") {
		return PlanAnnual
	}
	return PlanMonthly
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func NewSubscription(email, subscriptionID, accountID, product string, periodEnd *time.Time, now time.Time) Subscription {
	return Subscription{
		ID:                       uuid.New().String(),
		Email:                    NormalizeEmail(email),
		FastSpringSubscriptionID: subscriptionID,
		FastSpringAccountID:      accountID,
		PlanType:                 PlanFor(product),
		Status:                   StatusActive,
		CurrentPeriodStart:       &now,
		CurrentPeriodEnd:         periodEnd,
		CreatedAt:                now,
		UpdatedAt:                now,
	}
}

type SubscriptionStatusResponse struct {
	Email            string     `json:"email"`
	IsPro            bool       `json:"isPro"`
	PlanType         string     `json:"planType,omitempty"`
	Status           string     `json:"status,omitempty"`
	CurrentPeriodEnd *time.Time `json:"currentPeriodEnd,omitempty"`
}
