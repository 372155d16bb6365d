package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ad-budget/internal/core/domain"
)

func TestSetActive(t *testing.T) {
	f := newFixture(t, "100", "3000")
	id := f.campaign(t, "150", "150", paused(domain.ReasonBudgetExceeded))
	ctx := context.Background()

	out, err := f.engine.SetActive(ctx, id, true)
	require.NoError(t, err)
	assert.Equal(t, domain.Outcome{CampaignID: id, Action: domain.ActionActivated, Reason: domain.ReasonAdmin}, out)
	assert.True(t, f.get(t, id).IsActive)

	// the override holds only until the next budget pass
	f.engine.EnforceBudgets(ctx, []int64{id})
	assert.False(t, f.get(t, id).IsActive)

	out, err = f.engine.SetActive(ctx, id, false)
	require.NoError(t, err)
	assert.Equal(t, domain.ActionChecked, out.Action)
	assert.Equal(t, domain.ReasonManual, f.get(t, id).PauseReason)
}

func TestSetActiveNoop(t *testing.T) {
	f := newFixture(t, "100", "3000")
	id := f.campaign(t, "0", "0")

	out, err := f.engine.SetActive(context.Background(), id, true)
	require.NoError(t, err)
	assert.Equal(t, domain.ActionChecked, out.Action)
	assert.Empty(t, f.sink.Events())
}

func TestSetActiveUnknownCampaign(t *testing.T) {
	f := newFixture(t, "100", "3000")

	out, err := f.engine.SetActive(context.Background(), 42, false)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, domain.ActionFailed, out.Action)
}
