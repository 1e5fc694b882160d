package datastore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/nine-hub/api/models"
)

type SubscriptionRepository interface {
	// Upsert inserts or replaces the row keyed by the FastSpring subscription id
	Upsert(ctx context.Context, sub models.Subscription) (models.Subscription, error)
	UpdateStatus(ctx context.Context, fastspringID, status string, now time.Time) error
	MarkCharged(ctx context.Context, fastspringID string, periodEnd *time.Time, now time.Time) error
	GetByEmail(ctx context.Context, email string) (models.Subscription, error)
	GetAll(ctx context.Context) ([]models.Subscription, error)
	// ExpireLapsed moves active rows whose period ended before cutoff to expired
	ExpireLapsed(ctx context.Context, cutoff time.Time, now time.Time) (int64, error)
}

func NewSubscriptionDatabase(db *sql.DB) (SubscriptionDatabase, error) {
	var subscriptionDatabase SubscriptionDatabase
	subscriptionDatabase.database = db
	return subscriptionDatabase, nil
}

type SubscriptionDatabase struct {
	database *sql.DB
}

const subscriptionColumns = `
		id,
		email,
		fastspring_subscription_id,
		fastspring_account_id,
		plan_type,
		status,
		current_period_start,
		current_period_end,
		created_at,
		updated_at`

// A missing period end in an event keeps the stored one.
const upsertSubscriptionQuery = `
		INSERT INTO subscriptions (` + subscriptionColumns + `
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		)
		ON CONFLICT (fastspring_subscription_id) DO UPDATE SET
			email = EXCLUDED.email,
			fastspring_account_id = EXCLUDED.fastspring_account_id,
			plan_type = EXCLUDED.plan_type,
			status = EXCLUDED.status,
			current_period_start = COALESCE(EXCLUDED.current_period_start, subscriptions.current_period_start),
			current_period_end = COALESCE(EXCLUDED.current_period_end, subscriptions.current_period_end),
			updated_at = EXCLUDED.updated_at
		RETURNING` + subscriptionColumns + `;`

const markChargedQuery = `
		UPDATE subscriptions
		SET status = $2, current_period_end = COALESCE($3, current_period_end), updated_at = $4
		WHERE fastspring_subscription_id = $1;`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSubscription(row rowScanner) (models.Subscription, error) {
	var sub models.Subscription
	var start, end sql.NullTime
	err := row.Scan(
		&sub.ID,
		&sub.Email,
		&sub.FastSpringSubscriptionID,
		&sub.FastSpringAccountID,
		&sub.PlanType,
		&sub.Status,
		&start,
		&end,
		&sub.CreatedAt,
		&sub.UpdatedAt,
	)
	if err != nil {
		return sub, err
	}
	if start.Valid {
		sub.CurrentPeriodStart = &start.Time
	}
	if end.Valid {
		sub.CurrentPeriodEnd = &end.Time
	}
	return sub, nil
}

func (pgdb SubscriptionDatabase) Upsert(ctx context.Context, sub models.Subscription) (models.Subscription, error) {
	db := pgdb.database

	row := db.QueryRowContext(ctx, upsertSubscriptionQuery,
		sub.ID,
		sub.Email,
		sub.FastSpringSubscriptionID,
		sub.FastSpringAccountID,
		sub.PlanType,
		sub.Status,
		sub.CurrentPeriodStart,
		sub.CurrentPeriodEnd,
		sub.CreatedAt,
		sub.UpdatedAt,
	)

	saved, err := scanSubscription(row)
	if err != nil {
		return sub, fmt.Errorf("upsert subscription %s: %w", sub.FastSpringSubscriptionID, err)
	}
	return saved, nil
}

func (pgdb SubscriptionDatabase) UpdateStatus(ctx context.Context, fastspringID, status string, now time.Time) error {
	db := pgdb.database

	_, err := db.ExecContext(ctx, `
		UPDATE subscriptions
		SET status = $2, updated_at = $3
		WHERE fastspring_subscription_id = $1;`,
		fastspringID, status, now,
	)
	if err != nil {
		return fmt.Errorf("update subscription %s: %w", fastspringID, err)
	}
	return nil
}

func (pgdb SubscriptionDatabase) MarkCharged(ctx context.Context, fastspringID string, periodEnd *time.Time, now time.Time) error {
	db := pgdb.database

	_, err := db.ExecContext(ctx, markChargedQuery,
		fastspringID, models.StatusActive, periodEnd, now,
	)
	if err != nil {
		return fmt.Errorf("mark subscription %s charged: %w", fastspringID, err)
	}
	return nil
}

// GetByEmail returns the most recently updated subscription for email
func (pgdb SubscriptionDatabase) GetByEmail(ctx context.Context, email string) (models.Subscription, error) {
	db := pgdb.database

	row := db.QueryRowContext(ctx, `
	SELECT`+subscriptionColumns+`
	FROM subscriptions
	WHERE email = $1
	ORDER BY updated_at DESC
	LIMIT 1;`, models.NormalizeEmail(email))

	sub, err := scanSubscription(row)
	if errors.Is(err, sql.ErrNoRows) {
		return sub, NoRowsError{NoRows: true, Err: err}
	}
	if err != nil {
		return sub, fmt.Errorf("get subscription by email: %w", err)
	}
	return sub, nil
}

func (pgdb SubscriptionDatabase) GetAll(ctx context.Context) ([]models.Subscription, error) {
	db := pgdb.database

	rows, err := db.QueryContext(ctx, `
	SELECT`+subscriptionColumns+`
	FROM subscriptions
	ORDER BY updated_at DESC;`)
	if err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}
	defer rows.Close()

	subs := []models.Subscription{}
	for rows.Next() {
		sub, err := scanSubscription(rows)
		if err != nil {
			return nil, fmt.Errorf("scan subscription: %w", err)
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

func (pgdb SubscriptionDatabase) ExpireLapsed(ctx context.Context, cutoff time.Time, now time.Time) (int64, error) {
	db := pgdb.database

	res, err := db.ExecContext(ctx, `
		UPDATE subscriptions
		SET status = $1, updated_at = $2
		WHERE status = $3
		AND current_period_end IS NOT NULL
		AND current_period_end < $4;`,
		models.StatusExpired, now, models.StatusActive, cutoff,
	)
	if err != nil {
		return 0, fmt.Errorf("expire lapsed subscriptions: %w", err)
	}
	return res.RowsAffected()
}
