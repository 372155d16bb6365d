package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Demo data inserted by Seed.
const (
	SeedBrandName     = "Lorem Ipsum Inc."
	SeedDailyBudget   = "500.00"
	SeedMonthlyBudget = "15000.00"
	SeedStartTime     = "09:00"
	SeedEndTime       = "17:00"
	SeedDaysOfWeek    = "mon,tue,wed,thu,fri"
)

// SeedCampaigns are created for the demo brand on the demo schedule with the
// given initial daily and monthly spend.
var SeedCampaigns = []struct {
	Name         string
	DailySpend   string
	MonthlySpend string
}{
	{Name: "Lorem Ipsum Summer", DailySpend: "0.00", MonthlySpend: "0.00"},
	{Name: "Dolor Sit Winter", DailySpend: "10.00", MonthlySpend: "100.00"},
}

// Seed inserts one brand, one weekday business-hours schedule and two
// campaigns. It is idempotent: existing rows are left untouched.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	return pgx.BeginFunc(ctx, db, func(tx pgx.Tx) error {
		var brandID int64
		err := tx.QueryRow(ctx, `INSERT INTO brands (name, daily_budget, monthly_budget)
VALUES ($1, $2, $3)
ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
RETURNING id`, SeedBrandName, SeedDailyBudget, SeedMonthlyBudget).Scan(&brandID)
		if err != nil {
			return fmt.Errorf("seed brand: %w", err)
		}

		var scheduleID int64
		err = tx.QueryRow(ctx, `SELECT id FROM dayparting_schedules
WHERE start_time = $1::time AND end_time = $2::time AND days_of_week = $3
ORDER BY id LIMIT 1`, SeedStartTime, SeedEndTime, SeedDaysOfWeek).Scan(&scheduleID)
		if errors.Is(err, pgx.ErrNoRows) {
			err = tx.QueryRow(ctx, `INSERT INTO dayparting_schedules (start_time, end_time, days_of_week, description)
VALUES ($1::time, $2::time, $3, $4) RETURNING id`,
				SeedStartTime, SeedEndTime, SeedDaysOfWeek, "business hours").Scan(&scheduleID)
		}
		if err != nil {
			return fmt.Errorf("seed schedule: %w", err)
		}

		for _, c := range SeedCampaigns {
			_, err = tx.Exec(ctx, `INSERT INTO campaigns
    (brand_id, name, daily_spend, monthly_spend, is_active, dayparting_schedule_id)
VALUES ($1, $2, $3, $4, TRUE, $5)
ON CONFLICT (brand_id, name) DO NOTHING`,
				brandID, c.Name, c.DailySpend, c.MonthlySpend, scheduleID)
			if err != nil {
				return fmt.Errorf("seed campaign %q: %w", c.Name, err)
			}
		}
		return nil
	})
}
