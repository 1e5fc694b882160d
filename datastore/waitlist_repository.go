package datastore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/nine-hub/api/models"
)

type WaitlistRepository interface {
	// Create returns ErrAlreadyExists when the email is already registered
	Create(ctx context.Context, entry models.WaitlistEmail) (models.WaitlistEmail, error)
	GetAll(ctx context.Context) ([]models.WaitlistEmail, error)
	Count(ctx context.Context) (int, error)
}

func NewWaitlistDatabase(db *sql.DB) (WaitlistDatabase, error) {
	var waitlistDatabase WaitlistDatabase
	waitlistDatabase.database = db
	return waitlistDatabase, nil
}

type WaitlistDatabase struct {
	database *sql.DB
}

func (pgdb WaitlistDatabase) Create(ctx context.Context, entry models.WaitlistEmail) (models.WaitlistEmail, error) {
	db := pgdb.database

	_, insertErr := db.ExecContext(ctx, `
		INSERT INTO waitlist_emails (
			id,
			email,
			source,
			created_at
		) VALUES (
			$1,
			$2,
			$3,
			$4
		)`,
		entry.ID,
		entry.Email,
		entry.Source,
		entry.CreatedAt,
	)

	if isUniqueViolation(insertErr) {
		return entry, ErrAlreadyExists
	}
	if insertErr != nil {
		return entry, fmt.Errorf("insert waitlist email: %w", insertErr)
	}
	return entry, nil
}

func (pgdb WaitlistDatabase) GetAll(ctx context.Context) ([]models.WaitlistEmail, error) {
	db := pgdb.database

	rows, err := db.QueryContext(ctx, `
	SELECT
		id,
		email,
		source,
		created_at
	FROM waitlist_emails
	ORDER BY created_at DESC;`)
	if err != nil {
		return nil, fmt.Errorf("list waitlist: %w", err)
	}
	defer rows.Close()

	entries := []models.WaitlistEmail{}
	for rows.Next() {
		var e models.WaitlistEmail
		if err := rows.Scan(&e.ID, &e.Email, &e.Source, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan waitlist email: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (pgdb WaitlistDatabase) Count(ctx context.Context) (int, error) {
	var n int
	err := pgdb.database.QueryRowContext(ctx, `SELECT COUNT(*) FROM waitlist_emails;`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count waitlist: %w", err)
	}
	return n, nil
}
