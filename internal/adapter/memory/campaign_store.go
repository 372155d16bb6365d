package memory

import (
	"context"
	"fmt"
	"maps"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"ad-budget/internal/core/domain"
	"ad-budget/internal/core/port"
)

// CampaignStore implements port.CampaignStore in process memory. Each
// campaign row carries its own lock so transactions on different campaigns
// never block each other. Useful for tests and single-process deployments
// without a database.
type CampaignStore struct {
	// mu guards the maps and every committed row value. Lock order is
	// row lock first, then mu.
	mu        sync.RWMutex
	brands    map[int64]domain.Brand
	schedules map[int64]domain.DaypartingSchedule
	campaigns map[int64]*row
	spend     map[int64][]domain.SpendRecord
	history   map[int64][]domain.StatusChange
	lastID    int64

	lockTimeout time.Duration
}

type row struct {
	id  int64
	sem chan struct{}
	c   domain.Campaign
}

func (r *row) lock(ctx context.Context, timeout time.Duration) error {
	var expired <-chan time.Time
	if timeout > 0 {
		t := time.NewTimer(timeout)
		defer t.Stop()
		expired = t.C
	}
	select {
	case r.sem <- struct{}{}:
		return nil
	case <-expired:
		return fmt.Errorf("%w: campaign %d lock wait exceeded %s", domain.ErrTransientConflict, r.id, timeout)
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *row) unlock() { <-r.sem }

// NewCampaignStore returns an empty store. lockTimeout bounds how long a
// transaction waits for a contended campaign; zero waits until ctx is done.
func NewCampaignStore(lockTimeout time.Duration) *CampaignStore {
	return &CampaignStore{
		brands:      make(map[int64]domain.Brand),
		schedules:   make(map[int64]domain.DaypartingSchedule),
		campaigns:   make(map[int64]*row),
		spend:       make(map[int64][]domain.SpendRecord),
		history:     make(map[int64][]domain.StatusChange),
		lockTimeout: lockTimeout,
	}
}

func (s *CampaignStore) nextID() int64 {
	s.lastID++
	return s.lastID
}

// CreateBrand stores b and assigns its ID.
func (s *CampaignStore) CreateBrand(b *domain.Brand) error {
	if b.DailyBudget.IsNegative() || b.MonthlyBudget.IsNegative() {
		return fmt.Errorf("%w: negative budget", domain.ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.brands {
		if existing.Name == b.Name {
			return fmt.Errorf("%w: brand %q already exists", domain.ErrInvalidInput, b.Name)
		}
	}
	b.ID = s.nextID()
	s.brands[b.ID] = *b
	return nil
}

// UpdateBrandBudgets changes the budgets of a brand. The new values apply
// from the next enforcement pass.
func (s *CampaignStore) UpdateBrandBudgets(id int64, daily, monthly decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.brands[id]
	if !ok {
		return fmt.Errorf("brand %d: %w", id, domain.ErrNotFound)
	}
	b.DailyBudget, b.MonthlyBudget = daily, monthly
	s.brands[id] = b
	return nil
}

// CreateSchedule validates and stores sched, assigning its ID.
func (s *CampaignStore) CreateSchedule(sched *domain.DaypartingSchedule) error {
	if err := sched.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	sched.ID = s.nextID()
	s.schedules[sched.ID] = *sched
	return nil
}

// CreateCampaign stores c and assigns its ID. The brand and the optional
// schedule must exist.
func (s *CampaignStore) CreateCampaign(c *domain.Campaign) error {
	if c.DailySpend.IsNegative() || c.MonthlySpend.IsNegative() {
		return domain.ErrInvalidAmount
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.brands[c.BrandID]; !ok {
		return fmt.Errorf("brand %d: %w", c.BrandID, domain.ErrNotFound)
	}
	if c.ScheduleID != nil {
		if _, ok := s.schedules[*c.ScheduleID]; !ok {
			return fmt.Errorf("schedule %d: %w", *c.ScheduleID, domain.ErrNotFound)
		}
	}
	c.ID = s.nextID()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	c.UpdatedAt = c.CreatedAt
	s.campaigns[c.ID] = &row{id: c.ID, sem: make(chan struct{}, 1), c: *c}
	return nil
}

// GetCampaign returns the committed state of a campaign.
func (s *CampaignStore) GetCampaign(_ context.Context, id int64) (*domain.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.campaigns[id]
	if !ok {
		return nil, fmt.Errorf("campaign %d: %w", id, domain.ErrNotFound)
	}
	c := r.c
	return &c, nil
}

// WithCampaignLock implements port.CampaignStore.
func (s *CampaignStore) WithCampaignLock(ctx context.Context, campaignID int64, fn func(ctx context.Context, state *domain.CampaignState, tx port.CampaignTx) error) error {
	s.mu.RLock()
	r, ok := s.campaigns[campaignID]
	s.mu.RUnlock()
	if !ok {
		return fmt.Errorf("campaign %d: %w", campaignID, domain.ErrNotFound)
	}

	if err := r.lock(ctx, s.lockTimeout); err != nil {
		return err
	}
	defer r.unlock()

	s.mu.RLock()
	state := &domain.CampaignState{Campaign: r.c, Brand: s.brands[r.c.BrandID]}
	if r.c.ScheduleID != nil {
		if sched, ok := s.schedules[*r.c.ScheduleID]; ok {
			state.Schedule = &sched
		}
	}
	s.mu.RUnlock()

	tx := &memTx{campaignID: campaignID}
	if err := fn(ctx, state, tx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if tx.saved != nil {
		r.c = *tx.saved
	}
	for _, rec := range tx.records {
		rec.ID = s.nextID()
		cp := *rec
		cp.Meta = maps.Clone(rec.Meta)
		s.spend[campaignID] = append(s.spend[campaignID], cp)
	}
	for _, h := range tx.changes {
		h.ID = s.nextID()
		s.history[campaignID] = append(s.history[campaignID], *h)
	}
	return nil
}

// ListCampaigns implements port.CampaignStore.
func (s *CampaignStore) ListCampaigns(_ context.Context, filter port.CampaignFilter) ([]domain.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Campaign, 0, len(s.campaigns))
	for _, r := range s.campaigns {
		if filter.ActiveOnly && !r.c.IsActive {
			continue
		}
		if filter.WithSchedule && r.c.ScheduleID == nil {
			continue
		}
		out = append(out, r.c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// SpendRecords implements port.CampaignStore.
func (s *CampaignStore) SpendRecords(_ context.Context, campaignID int64) ([]domain.SpendRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.campaigns[campaignID]; !ok {
		return nil, fmt.Errorf("campaign %d: %w", campaignID, domain.ErrNotFound)
	}
	out := make([]domain.SpendRecord, len(s.spend[campaignID]))
	copy(out, s.spend[campaignID])
	return out, nil
}

// StatusHistory implements port.CampaignStore.
func (s *CampaignStore) StatusHistory(_ context.Context, campaignID int64) ([]domain.StatusChange, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.campaigns[campaignID]; !ok {
		return nil, fmt.Errorf("campaign %d: %w", campaignID, domain.ErrNotFound)
	}
	out := make([]domain.StatusChange, len(s.history[campaignID]))
	copy(out, s.history[campaignID])
	return out, nil
}

// GetBrand implements port.CampaignStore.
func (s *CampaignStore) GetBrand(_ context.Context, id int64) (*domain.Brand, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.brands[id]
	if !ok {
		return nil, fmt.Errorf("brand %d: %w", id, domain.ErrNotFound)
	}
	return &b, nil
}

// GetSchedule implements port.CampaignStore.
func (s *CampaignStore) GetSchedule(_ context.Context, id int64) (*domain.DaypartingSchedule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sched, ok := s.schedules[id]
	if !ok {
		return nil, fmt.Errorf("schedule %d: %w", id, domain.ErrNotFound)
	}
	return &sched, nil
}

// DeleteSchedule implements port.CampaignStore. Referencing campaigns are
// detached under their own row lock so no in-flight transaction can write
// the stale reference back.
func (s *CampaignStore) DeleteSchedule(ctx context.Context, id int64) error {
	s.mu.Lock()
	if _, ok := s.schedules[id]; !ok {
		s.mu.Unlock()
		return fmt.Errorf("schedule %d: %w", id, domain.ErrNotFound)
	}
	delete(s.schedules, id)
	var refs []*row
	for _, r := range s.campaigns {
		if r.c.ScheduleID != nil && *r.c.ScheduleID == id {
			refs = append(refs, r)
		}
	}
	s.mu.Unlock()

	for _, r := range refs {
		if err := r.lock(ctx, 0); err != nil {
			return err
		}
		s.mu.Lock()
		if r.c.ScheduleID != nil && *r.c.ScheduleID == id {
			r.c.ScheduleID = nil
		}
		s.mu.Unlock()
		r.unlock()
	}
	return nil
}

// memTx buffers writes until the surrounding transaction commits. Appended
// records receive their IDs at commit.
type memTx struct {
	campaignID int64
	saved      *domain.Campaign
	records    []*domain.SpendRecord
	changes    []*domain.StatusChange
}

func (t *memTx) SaveCampaign(_ context.Context, c *domain.Campaign) error {
	if c.ID != t.campaignID {
		return fmt.Errorf("transaction for campaign %d cannot save campaign %d", t.campaignID, c.ID)
	}
	cp := *c
	t.saved = &cp
	return nil
}

func (t *memTx) AppendSpendRecord(_ context.Context, r *domain.SpendRecord) error {
	if r.Amount.IsNegative() {
		return domain.ErrInvalidAmount
	}
	t.records = append(t.records, r)
	return nil
}

func (t *memTx) AppendStatusChange(_ context.Context, h *domain.StatusChange) error {
	t.changes = append(t.changes, h)
	return nil
}
