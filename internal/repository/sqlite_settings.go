package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/idamarten/turnus/internal/db"
	"github.com/idamarten/turnus/internal/domain"
)

// SQLiteSettingsRepo persists the single wage_settings row plus the bonus
// windows. Saving replaces the whole window set; settings are small enough
// that diffing buys nothing.
type SQLiteSettingsRepo struct {
	db db.DBTX
}

// NewSQLiteSettingsRepo creates a new SQLiteSettingsRepo.
func NewSQLiteSettingsRepo(dbtx db.DBTX) *SQLiteSettingsRepo {
	return &SQLiteSettingsRepo{db: dbtx}
}

// Get loads the current settings. A missing row yields the default
// configuration: no rate configured, default pause rule, no bonus windows.
func (r *SQLiteSettingsRepo) Get(ctx context.Context) (*Settings, error) {
	s := &Settings{Pause: domain.DefaultPauseRule()}

	var tier sql.NullInt64
	var rate sql.NullString
	var pauseEnabled int
	err := r.db.QueryRowContext(ctx,
		`SELECT preset_tier, custom_rate, pause_enabled FROM wage_settings WHERE id = 1`,
	).Scan(&tier, &rate, &pauseEnabled)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		// Defaults stand; still load any windows.
	case err != nil:
		return nil, fmt.Errorf("loading wage settings: %w", err)
	default:
		if tier.Valid {
			t := int(tier.Int64)
			s.Wage.PresetTier = &t
		}
		if rate.Valid && rate.String != "" {
			d, perr := decimal.NewFromString(rate.String)
			if perr != nil {
				return nil, fmt.Errorf("parsing custom_rate: %w", perr)
			}
			s.Wage.CustomRate = &d
		}
		s.Pause.Enabled = pauseEnabled != 0
	}

	windows, err := r.loadWindows(ctx)
	if err != nil {
		return nil, err
	}
	s.Wage.Bonus = windows
	return s, nil
}

// Save upserts the settings row and replaces all bonus windows.
func (r *SQLiteSettingsRepo) Save(ctx context.Context, s *Settings) error {
	var tier any
	if s.Wage.PresetTier != nil {
		tier = *s.Wage.PresetTier
	}
	var rate any
	if s.Wage.CustomRate != nil {
		rate = s.Wage.CustomRate.String()
	}
	pauseEnabled := 0
	if s.Pause.Enabled {
		pauseEnabled = 1
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO wage_settings (id, preset_tier, custom_rate, pause_enabled, updated_at)
		 VALUES (1, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   preset_tier = excluded.preset_tier,
		   custom_rate = excluded.custom_rate,
		   pause_enabled = excluded.pause_enabled,
		   updated_at = excluded.updated_at`,
		tier, rate, pauseEnabled, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("saving wage settings: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM bonus_windows`); err != nil {
		return fmt.Errorf("clearing bonus windows: %w", err)
	}
	for kind, windows := range s.Wage.Bonus {
		for _, w := range windows {
			_, err := r.db.ExecContext(ctx,
				`INSERT INTO bonus_windows (id, day_kind, from_min, to_min, rate)
				 VALUES (?, ?, ?, ?, ?)`,
				uuid.NewString(), string(kind), w.From.Minutes(), w.To.Minutes(), w.Rate.String())
			if err != nil {
				return fmt.Errorf("inserting bonus window: %w", err)
			}
		}
	}
	return nil
}

func (r *SQLiteSettingsRepo) loadWindows(ctx context.Context) (domain.BonusRuleSet, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT day_kind, from_min, to_min, rate FROM bonus_windows ORDER BY day_kind, from_min`)
	if err != nil {
		return nil, fmt.Errorf("loading bonus windows: %w", err)
	}
	defer rows.Close()

	set := make(domain.BonusRuleSet)
	for rows.Next() {
		var kind string
		var fromMin, toMin int
		var rateStr string
		if err := rows.Scan(&kind, &fromMin, &toMin, &rateStr); err != nil {
			return nil, fmt.Errorf("scanning bonus window: %w", err)
		}
		rate, err := decimal.NewFromString(rateStr)
		if err != nil {
			return nil, fmt.Errorf("parsing bonus rate: %w", err)
		}
		k := domain.DayKind(kind)
		set[k] = append(set[k], domain.TimeWindowRate{
			From: domain.TimeOfDay(fromMin),
			To:   domain.TimeOfDay(toMin),
			Rate: rate,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating bonus windows: %w", err)
	}
	return set, nil
}
