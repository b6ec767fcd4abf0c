package postgres

import (
	"context"
	"database/sql"

	"clinic-admin/internal/domain/feedback"
)

type FeedbackRepo struct {
	db *sql.DB
}

func NewFeedbackRepo(db *sql.DB) *FeedbackRepo {
	return &FeedbackRepo{db: db}
}

func (r *FeedbackRepo) Create(ctx context.Context, e feedback.Entry) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO feedback (id, user_name, user_email, category, subject, rating, message, status, submitted_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`, e.ID, e.UserName, e.UserEmail, e.Category, e.Subject, e.Rating, e.Message, string(e.Status), e.SubmittedAt)
	return err
}

func (r *FeedbackRepo) GetByID(ctx context.Context, id string) (feedback.Entry, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, user_name, user_email, category, subject, rating, message, status, submitted_at
		FROM feedback WHERE id = $1
	`, id)
	return scanFeedback(row)
}

func (r *FeedbackRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM feedback WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return feedback.ErrNotFound
	}
	return nil
}

func (r *FeedbackRepo) List(ctx context.Context) ([]feedback.Entry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_name, user_email, category, subject, rating, message, status, submitted_at
		FROM feedback ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]feedback.Entry, 0)
	for rows.Next() {
		e, err := scanFeedback(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func scanFeedback(row rowScanner) (feedback.Entry, error) {
	var e feedback.Entry
	var status string
	err := row.Scan(&e.ID, &e.UserName, &e.UserEmail, &e.Category, &e.Subject,
		&e.Rating, &e.Message, &status, &e.SubmittedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return feedback.Entry{}, feedback.ErrNotFound
		}
		return feedback.Entry{}, err
	}
	e.Status = feedback.Status(status)
	return e, nil
}
