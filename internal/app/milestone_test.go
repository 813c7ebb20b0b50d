package app_test

import (
	"context"
	"testing"

	"github.com/Amund211/notations/internal/app"
	"github.com/Amund211/notations/internal/domain"
	"github.com/Amund211/notations/internal/domaintest"
	"github.com/stretchr/testify/require"
)

func TestDescribeEternityMilestones(t *testing.T) {
	t.Parallel()

	player := domaintest.NewPlayerBuilder().WithEternities(5).WithDisabledMilestone(4).WithDisabledMilestone(8).BuildPtr()

	views := app.DescribeEternityMilestones(player, []int64{1, 4, 8, 100})
	require.Equal(t, []app.MilestoneView{
		{Threshold: 1, Status: domain.MilestoneStatusActive, Toggleable: false},
		{Threshold: 4, Status: domain.MilestoneStatusDisabled, Toggleable: true},
		{Threshold: 8, Status: domain.MilestoneStatusLocked, Toggleable: true},
		{Threshold: 100, Status: domain.MilestoneStatusLocked, Toggleable: false},
	}, views)

	t.Run("no thresholds", func(t *testing.T) {
		t.Parallel()
		require.Empty(t, app.DescribeEternityMilestones(player, nil))
	})
}

func TestBuildToggleEternityMilestone(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	toggle := app.BuildToggleEternityMilestone()

	t.Run("toggleable milestone flips", func(t *testing.T) {
		t.Parallel()

		player := domaintest.NewPlayerBuilder().WithEternities(10).BuildPtr()

		view := toggle(ctx, player, 4)
		require.Equal(t, app.MilestoneView{Threshold: 4, Status: domain.MilestoneStatusDisabled, Toggleable: true}, view)
		require.True(t, player.DisabledMilestones.Four)
		require.False(t, player.DisabledMilestones.Eight)

		view = toggle(ctx, player, 4)
		require.Equal(t, domain.MilestoneStatusActive, view.Status)
		require.False(t, player.DisabledMilestones.Four)
	})

	t.Run("locked milestone still flips", func(t *testing.T) {
		t.Parallel()

		player := domaintest.NewPlayerBuilder().WithEternities(0).BuildPtr()

		view := toggle(ctx, player, 8)
		require.Equal(t, domain.MilestoneStatusLocked, view.Status)
		require.True(t, player.DisabledMilestones.Eight)
	})

	t.Run("other thresholds are ignored", func(t *testing.T) {
		t.Parallel()

		player := domaintest.NewPlayerBuilder().WithEternities(10).BuildPtr()
		before := *player

		view := toggle(ctx, player, 5)
		require.Equal(t, app.MilestoneView{Threshold: 5, Status: domain.MilestoneStatusActive, Toggleable: false}, view)
		require.Equal(t, before, *player)
	})
}
