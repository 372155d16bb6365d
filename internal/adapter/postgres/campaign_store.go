package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"ad-budget/internal/core/domain"
	"ad-budget/internal/core/port"
)

// CampaignStore implements port.CampaignStore using pgxpool for PostgreSQL.
// Per-campaign serialization relies on SELECT ... FOR UPDATE of the campaign
// row inside a READ COMMITTED transaction.
type CampaignStore struct {
	pool        *pgxpool.Pool
	lockTimeout time.Duration
}

var _ port.CampaignStore = (*CampaignStore)(nil)

// NewCampaignStore returns a new store. lockTimeout is applied per
// transaction with SET LOCAL lock_timeout; zero waits indefinitely.
func NewCampaignStore(pool *pgxpool.Pool, lockTimeout time.Duration) *CampaignStore {
	return &CampaignStore{pool: pool, lockTimeout: lockTimeout}
}

const campaignColumns = `
            c.id,
            c.brand_id,
            c.name,
            c.daily_spend,
            c.monthly_spend,
            c.is_active,
            c.pause_reason,
            c.dayparting_schedule_id,
            c.last_daily_reset_date,
            c.last_monthly_reset_period,
            c.budget_check_frequency_minutes,
            c.last_budget_check,
            c.created_at,
            c.updated_at`

func campaignDest(c *domain.Campaign, reason *string) []any {
	return []any{
		&c.ID,
		&c.BrandID,
		&c.Name,
		&c.DailySpend,
		&c.MonthlySpend,
		&c.IsActive,
		reason,
		&c.ScheduleID,
		&c.LastDailyReset,
		&c.LastMonthlyReset,
		&c.BudgetCheckFrequency,
		&c.LastBudgetCheck,
		&c.CreatedAt,
		&c.UpdatedAt,
	}
}

// WithCampaignLock implements port.CampaignStore.
func (s *CampaignStore) WithCampaignLock(ctx context.Context, campaignID int64, fn func(ctx context.Context, state *domain.CampaignState, tx port.CampaignTx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return mapErr(err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if cerr := tx.Commit(ctx); cerr != nil {
			err = mapErr(cerr)
		}
	}()

	if s.lockTimeout > 0 {
		// SET does not accept bind parameters
		if _, err = tx.Exec(ctx, fmt.Sprintf("SET LOCAL lock_timeout = %d", s.lockTimeout.Milliseconds())); err != nil {
			return mapErr(err)
		}
	}

	// lock campaign
	var (
		state    domain.CampaignState
		reason   string
		schedID  *int64
		start    pgtype.Time
		end      pgtype.Time
		days     *string
		schedDoc *string
	)
	dest := campaignDest(&state.Campaign, &reason)
	dest = append(dest,
		&state.Brand.ID,
		&state.Brand.Name,
		&state.Brand.DailyBudget,
		&state.Brand.MonthlyBudget,
		&schedID,
		&start,
		&end,
		&days,
		&schedDoc,
	)
	err = tx.QueryRow(ctx, `
        SELECT`+campaignColumns+`,
            b.id,
            b.name,
            b.daily_budget,
            b.monthly_budget,
            s.id,
            s.start_time,
            s.end_time,
            s.days_of_week,
            s.description
        FROM campaigns c
        JOIN brands b ON b.id = c.brand_id
        LEFT JOIN dayparting_schedules s ON s.id = c.dayparting_schedule_id
        WHERE c.id = $1
        FOR UPDATE OF c`, campaignID).Scan(dest...)
	if err != nil {
		err = mapErr(err)
		if errors.Is(err, domain.ErrNotFound) {
			err = fmt.Errorf("campaign %d: %w", campaignID, err)
		}
		return err
	}
	state.Campaign.PauseReason = domain.PauseReason(reason)
	if schedID != nil {
		state.Schedule, err = scheduleFromRow(*schedID, start, end, deref(days), deref(schedDoc))
		if err != nil {
			return err
		}
	}

	return fn(ctx, &state, &campaignTx{tx: tx})
}

// ListCampaigns implements port.CampaignStore.
func (s *CampaignStore) ListCampaigns(ctx context.Context, filter port.CampaignFilter) ([]domain.Campaign, error) {
	rows, err := s.pool.Query(ctx, `
        SELECT`+campaignColumns+`
        FROM campaigns c
        WHERE ($1 = FALSE OR c.is_active)
          AND ($2 = FALSE OR c.dayparting_schedule_id IS NOT NULL)
        ORDER BY c.id`, filter.ActiveOnly, filter.WithSchedule)
	if err != nil {
		return nil, mapErr(err)
	}
	campaigns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		var (
			c      domain.Campaign
			reason string
		)
		err := row.Scan(campaignDest(&c, &reason)...)
		c.PauseReason = domain.PauseReason(reason)
		return c, err
	})
	if err != nil {
		return nil, mapErr(err)
	}
	return campaigns, nil
}

// SpendRecords implements port.CampaignStore.
func (s *CampaignStore) SpendRecords(ctx context.Context, campaignID int64) ([]domain.SpendRecord, error) {
	rows, err := s.pool.Query(ctx, `
        SELECT id, campaign_id, amount, type, source, created_by, reference_id, description,
               daily_spend_before, daily_spend_after, monthly_spend_before, monthly_spend_after,
               meta, timestamp
        FROM spend_records
        WHERE campaign_id = $1
        ORDER BY id`, campaignID)
	if err != nil {
		return nil, mapErr(err)
	}
	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.SpendRecord, error) {
		var (
			r           domain.SpendRecord
			typ, source string
		)
		err := row.Scan(&r.ID, &r.CampaignID, &r.Amount, &typ, &source, &r.CreatedBy, &r.ReferenceID, &r.Description,
			&r.DailySpendBefore, &r.DailySpendAfter, &r.MonthlySpendBefore, &r.MonthlySpendAfter,
			&r.Meta, &r.Timestamp)
		r.Type, r.Source = domain.SpendType(typ), domain.SpendSource(source)
		return r, err
	})
	if err != nil {
		return nil, mapErr(err)
	}
	if len(records) == 0 {
		return records, s.campaignExists(ctx, campaignID)
	}
	return records, nil
}

// StatusHistory implements port.CampaignStore.
func (s *CampaignStore) StatusHistory(ctx context.Context, campaignID int64) ([]domain.StatusChange, error) {
	rows, err := s.pool.Query(ctx, `
        SELECT id, campaign_id, old_status, new_status, reason, timestamp
        FROM campaign_status_history
        WHERE campaign_id = $1
        ORDER BY id`, campaignID)
	if err != nil {
		return nil, mapErr(err)
	}
	history, err := pgx.CollectRows(rows, pgx.RowToStructByPos[domain.StatusChange])
	if err != nil {
		return nil, mapErr(err)
	}
	if len(history) == 0 {
		return history, s.campaignExists(ctx, campaignID)
	}
	return history, nil
}

func (s *CampaignStore) campaignExists(ctx context.Context, id int64) error {
	var exists bool
	if err := s.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM campaigns WHERE id = $1)`, id).Scan(&exists); err != nil {
		return mapErr(err)
	}
	if !exists {
		return fmt.Errorf("campaign %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// GetBrand implements port.CampaignStore.
func (s *CampaignStore) GetBrand(ctx context.Context, id int64) (*domain.Brand, error) {
	var b domain.Brand
	err := s.pool.QueryRow(ctx, `SELECT id, name, daily_budget, monthly_budget FROM brands WHERE id = $1`, id).
		Scan(&b.ID, &b.Name, &b.DailyBudget, &b.MonthlyBudget)
	if err != nil {
		return nil, fmt.Errorf("brand %d: %w", id, mapErr(err))
	}
	return &b, nil
}

// GetSchedule implements port.CampaignStore.
func (s *CampaignStore) GetSchedule(ctx context.Context, id int64) (*domain.DaypartingSchedule, error) {
	var (
		start, end  pgtype.Time
		days, descr string
	)
	err := s.pool.QueryRow(ctx, `SELECT start_time, end_time, days_of_week, description FROM dayparting_schedules WHERE id = $1`, id).
		Scan(&start, &end, &days, &descr)
	if err != nil {
		return nil, fmt.Errorf("schedule %d: %w", id, mapErr(err))
	}
	return scheduleFromRow(id, start, end, days, descr)
}

// DeleteSchedule implements port.CampaignStore. The foreign key is declared
// ON DELETE SET NULL, so referencing campaigns are detached by the database
// under their row locks.
func (s *CampaignStore) DeleteSchedule(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM dayparting_schedules WHERE id = $1`, id)
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("schedule %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// campaignTx implements port.CampaignTx on an open pgx transaction.
type campaignTx struct {
	tx pgx.Tx
}

func (t *campaignTx) SaveCampaign(ctx context.Context, c *domain.Campaign) error {
	_, err := t.tx.Exec(ctx, `
        UPDATE campaigns SET
            daily_spend = $1,
            monthly_spend = $2,
            is_active = $3,
            pause_reason = $4,
            last_daily_reset_date = $5,
            last_monthly_reset_period = $6,
            last_budget_check = $7,
            updated_at = $8
        WHERE id = $9`,
		c.DailySpend, c.MonthlySpend, c.IsActive, string(c.PauseReason),
		c.LastDailyReset, c.LastMonthlyReset, c.LastBudgetCheck, c.UpdatedAt, c.ID)
	return mapErr(err)
}

func (t *campaignTx) AppendSpendRecord(ctx context.Context, r *domain.SpendRecord) error {
	meta := r.Meta
	if meta == nil {
		meta = map[string]string{}
	}
	err := t.tx.QueryRow(ctx, `
        INSERT INTO spend_records
            (campaign_id, amount, type, source, created_by, reference_id, description,
             daily_spend_before, daily_spend_after, monthly_spend_before, monthly_spend_after,
             meta, timestamp)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
        RETURNING id`,
		r.CampaignID, r.Amount, string(r.Type), string(r.Source), r.CreatedBy, r.ReferenceID, r.Description,
		r.DailySpendBefore, r.DailySpendAfter, r.MonthlySpendBefore, r.MonthlySpendAfter,
		meta, r.Timestamp).Scan(&r.ID)
	return mapErr(err)
}

func (t *campaignTx) AppendStatusChange(ctx context.Context, h *domain.StatusChange) error {
	err := t.tx.QueryRow(ctx, `
        INSERT INTO campaign_status_history (campaign_id, old_status, new_status, reason, timestamp)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id`,
		h.CampaignID, h.OldStatus, h.NewStatus, h.Reason, h.Timestamp).Scan(&h.ID)
	return mapErr(err)
}

func scheduleFromRow(id int64, start, end pgtype.Time, days, descr string) (*domain.DaypartingSchedule, error) {
	weekdays, err := domain.ParseWeekdays(days)
	if err != nil {
		return nil, fmt.Errorf("schedule %d: %w", id, err)
	}
	sched := &domain.DaypartingSchedule{
		ID:          id,
		StartTime:   domain.TimeOfDay(time.Duration(start.Microseconds) * time.Microsecond),
		EndTime:     domain.TimeOfDay(time.Duration(end.Microseconds) * time.Microsecond),
		DaysOfWeek:  weekdays,
		Description: descr,
	}
	if err = sched.Validate(); err != nil {
		return nil, fmt.Errorf("schedule %d: %w", id, err)
	}
	return sched, nil
}

// PostgreSQL error codes treated as transient.
const (
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeLockNotAvailable     = "55P03"
)

// mapErr translates driver errors into the domain error taxonomy.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeSerializationFailure, codeDeadlockDetected, codeLockNotAvailable:
			return fmt.Errorf("%w: %s (%s)", domain.ErrTransientConflict, pgErr.Message, pgErr.Code)
		}
	}
	return err
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
