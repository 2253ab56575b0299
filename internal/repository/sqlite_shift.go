package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/idamarten/turnus/internal/db"
	"github.com/idamarten/turnus/internal/domain"
)

const dateLayout = "2006-01-02"

// SQLiteShiftRepo implements ShiftRepo on a SQLite database. It accepts a
// db.DBTX so the same repo type works standalone and inside a transaction.
type SQLiteShiftRepo struct {
	db db.DBTX
}

// NewSQLiteShiftRepo creates a new SQLiteShiftRepo.
func NewSQLiteShiftRepo(dbtx db.DBTX) *SQLiteShiftRepo {
	return &SQLiteShiftRepo{db: dbtx}
}

func (r *SQLiteShiftRepo) Create(ctx context.Context, s *domain.ShiftRecord) error {
	date := s.Date.Format(dateLayout)

	// Idempotent insert: an existing record with the identical span is a
	// duplicate outcome, not an error condition for the caller to retry.
	var existing string
	err := r.db.QueryRowContext(ctx,
		`SELECT id FROM shifts WHERE shift_date = ? AND start_time = ? AND end_time = ?`,
		date, s.Start.String(), s.End.String(),
	).Scan(&existing)
	switch {
	case err == nil:
		return fmt.Errorf("shift %s %s-%s: %w", date, s.Start, s.End, ErrDuplicate)
	case !errors.Is(err, sql.ErrNoRows):
		return fmt.Errorf("checking for duplicate shift: %w", err)
	}

	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO shifts (id, shift_date, start_time, end_time, note, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		s.ID, date, s.Start.String(), s.End.String(), s.Note,
		s.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting shift: %w", err)
	}
	return nil
}

func (r *SQLiteShiftRepo) GetByID(ctx context.Context, id string) (*domain.ShiftRecord, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, shift_date, start_time, end_time, note, created_at
		 FROM shifts WHERE id = ?`, id)
	s, err := scanShift(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("shift %s: %w", id, ErrNotFound)
	}
	return s, err
}

// GetBySpan looks up the shift occupying an exact date and time span. Used
// to surface the existing record when a create turns out to be a duplicate.
func (r *SQLiteShiftRepo) GetBySpan(ctx context.Context, date time.Time, start, end domain.TimeOfDay) (*domain.ShiftRecord, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, shift_date, start_time, end_time, note, created_at
		 FROM shifts WHERE shift_date = ? AND start_time = ? AND end_time = ?`,
		date.Format(dateLayout), start.String(), end.String())
	s, err := scanShift(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("shift %s %s-%s: %w", date.Format(dateLayout), start, end, ErrNotFound)
	}
	return s, err
}

func (r *SQLiteShiftRepo) ListByRange(ctx context.Context, dr domain.DateRange) ([]*domain.ShiftRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, shift_date, start_time, end_time, note, created_at
		 FROM shifts WHERE shift_date BETWEEN ? AND ?
		 ORDER BY shift_date, start_time`,
		dr.Start.Format(dateLayout), dr.End.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("listing shifts: %w", err)
	}
	defer rows.Close()

	var shifts []*domain.ShiftRecord
	for rows.Next() {
		s, err := scanShift(rows.Scan)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating shifts: %w", err)
	}
	return shifts, nil
}

func (r *SQLiteShiftRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM shifts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting shift: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("shift %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteShiftRepo) DeleteByRange(ctx context.Context, dr domain.DateRange) (int, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM shifts WHERE shift_date BETWEEN ? AND ?`,
		dr.Start.Format(dateLayout), dr.End.Format(dateLayout))
	if err != nil {
		return 0, fmt.Errorf("deleting shifts in range: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting deleted shifts: %w", err)
	}
	return int(n), nil
}

func scanShift(scan func(dest ...any) error) (*domain.ShiftRecord, error) {
	var s domain.ShiftRecord
	var dateStr, startStr, endStr, createdStr string

	if err := scan(&s.ID, &dateStr, &startStr, &endStr, &s.Note, &createdStr); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning shift row: %w", err)
	}

	var err error
	if s.Date, err = time.Parse(dateLayout, dateStr); err != nil {
		return nil, fmt.Errorf("parsing shift_date: %w", err)
	}
	if s.Start, err = domain.ParseTimeOfDay(startStr); err != nil {
		return nil, fmt.Errorf("parsing start_time: %w", err)
	}
	if s.End, err = domain.ParseTimeOfDay(endStr); err != nil {
		return nil, fmt.Errorf("parsing end_time: %w", err)
	}
	if s.CreatedAt, err = time.Parse(time.RFC3339, createdStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &s, nil
}
