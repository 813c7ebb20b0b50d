package domain_test

import (
	"fmt"
	"testing"

	"github.com/Amund211/notations/internal/domain"
	"github.com/Amund211/notations/internal/domaintest"
	"github.com/stretchr/testify/require"
)

var allToggleStates = []domain.MilestoneToggles{
	{Four: false, Eight: false},
	{Four: true, Eight: false},
	{Four: false, Eight: true},
	{Four: true, Eight: true},
}

func TestHasEternityMilestone(t *testing.T) {
	tests := []struct {
		eternities int64
		threshold  int64
		has        bool
	}{
		{0, 1, false},
		{0, 0, true},
		{3, 4, false},
		{4, 4, true},
		{5, 4, true},
		{7, 8, false},
		{8, 8, true},
		{1000, 100, true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d eternities, threshold %d", tt.eternities, tt.threshold), func(t *testing.T) {
			player := domaintest.NewPlayerBuilder().WithEternities(tt.eternities).BuildPtr()
			require.Equal(t, tt.has, domain.HasEternityMilestone(player, tt.threshold))
		})
	}
}

func TestIsEternityMilestoneDisabled(t *testing.T) {
	t.Run("only 4 and 8 can be disabled", func(t *testing.T) {
		player := &domain.PlayerState{
			Eternities:         100,
			DisabledMilestones: domain.MilestoneToggles{Four: true, Eight: true},
		}
		for threshold := int64(-5); threshold <= 100; threshold++ {
			expected := threshold == 4 || threshold == 8
			require.Equal(t, expected, domain.IsEternityMilestoneDisabled(player, threshold), "threshold %d", threshold)
		}
	})

	t.Run("flags map to their own threshold", func(t *testing.T) {
		player := domaintest.NewPlayerBuilder().WithDisabledMilestone(8).BuildPtr()
		require.False(t, domain.IsEternityMilestoneDisabled(player, 4))
		require.True(t, domain.IsEternityMilestoneDisabled(player, 8))
	})
}

func TestToggleEternityMilestone(t *testing.T) {
	t.Run("non toggleable thresholds leave state unchanged", func(t *testing.T) {
		for _, toggles := range allToggleStates {
			for _, threshold := range []int64{-1, 0, 1, 2, 3, 5, 6, 7, 9, 12, 40, 80, 1000} {
				player := &domain.PlayerState{Eternities: 10, DisabledMilestones: toggles}
				before := *player

				flipped := domain.ToggleEternityMilestone(player, threshold)

				require.False(t, flipped)
				require.Equal(t, before, *player)
				require.False(t, domain.IsEternityMilestoneToggleable(threshold))
			}
		}
	})

	t.Run("toggling twice is the identity", func(t *testing.T) {
		for _, toggles := range allToggleStates {
			for _, threshold := range domain.ToggleableEternityMilestones {
				player := &domain.PlayerState{Eternities: 10, DisabledMilestones: toggles}
				before := *player

				require.True(t, domain.ToggleEternityMilestone(player, threshold))
				require.NotEqual(t, before, *player)
				require.True(t, domain.ToggleEternityMilestone(player, threshold))
				require.Equal(t, before, *player)
			}
		}
	})

	t.Run("toggling one does not touch the other", func(t *testing.T) {
		player := &domain.PlayerState{}

		domain.ToggleEternityMilestone(player, 4)
		require.Equal(t, domain.MilestoneToggles{Four: true, Eight: false}, player.DisabledMilestones)

		domain.ToggleEternityMilestone(player, 8)
		require.Equal(t, domain.MilestoneToggles{Four: true, Eight: true}, player.DisabledMilestones)

		domain.ToggleEternityMilestone(player, 4)
		require.Equal(t, domain.MilestoneToggles{Four: false, Eight: true}, player.DisabledMilestones)
	})
}

func TestEternityMilestoneStatus(t *testing.T) {
	for _, toggles := range allToggleStates {
		for eternities := int64(0); eternities <= 12; eternities++ {
			for threshold := int64(0); threshold <= 12; threshold++ {
				player := &domain.PlayerState{Eternities: eternities, DisabledMilestones: toggles}
				name := fmt.Sprintf("%+v eternities=%d threshold=%d", toggles, eternities, threshold)

				has := domain.HasEternityMilestone(player, threshold)
				disabled := domain.IsEternityMilestoneDisabled(player, threshold)
				active := domain.IsEternityMilestoneActive(player, threshold)
				status := domain.EternityMilestoneStatus(player, threshold)

				require.Equal(t, has && !disabled, active, name)

				if !has {
					require.Equal(t, domain.MilestoneStatusLocked, status, name)
				}
				require.Equal(t, has && disabled, status == domain.MilestoneStatusDisabled, name)
				require.Equal(t, active, status == domain.MilestoneStatusActive, name)
			}
		}
	}

	t.Run("examples", func(t *testing.T) {
		player := domaintest.NewPlayerBuilder().WithEternities(6).WithDisabledMilestone(4).BuildPtr()
		require.Equal(t, domain.MilestoneStatusDisabled, domain.EternityMilestoneStatus(player, 4))
		require.Equal(t, domain.MilestoneStatusActive, domain.EternityMilestoneStatus(player, 5))
		require.Equal(t, domain.MilestoneStatusLocked, domain.EternityMilestoneStatus(player, 8))
	})
}
