package app

import (
	"context"
	"log/slog"

	"github.com/Amund211/notations/internal/domain"
	"github.com/Amund211/notations/internal/logging"
)

type MilestoneView struct {
	Threshold  int64
	Status     domain.MilestoneStatus
	Toggleable bool
}

func DescribeEternityMilestones(player *domain.PlayerState, thresholds []int64) []MilestoneView {
	views := make([]MilestoneView, 0, len(thresholds))
	for _, threshold := range thresholds {
		views = append(views, MilestoneView{
			Threshold:  threshold,
			Status:     domain.EternityMilestoneStatus(player, threshold),
			Toggleable: domain.IsEternityMilestoneToggleable(threshold),
		})
	}
	return views
}

// ToggleEternityMilestone flips the milestone and returns its new view
type ToggleEternityMilestone func(ctx context.Context, player *domain.PlayerState, threshold int64) MilestoneView

func BuildToggleEternityMilestone() ToggleEternityMilestone {
	return func(ctx context.Context, player *domain.PlayerState, threshold int64) MilestoneView {
		logger := logging.FromContext(ctx).With(slog.Int64("threshold", threshold))

		if !domain.ToggleEternityMilestone(player, threshold) {
			logger.DebugContext(ctx, "Ignoring toggle of milestone without a switch")
		} else {
			logger.InfoContext(
				ctx,
				"Toggled eternity milestone",
				"disabled", domain.IsEternityMilestoneDisabled(player, threshold),
			)
		}

		return MilestoneView{
			Threshold:  threshold,
			Status:     domain.EternityMilestoneStatus(player, threshold),
			Toggleable: domain.IsEternityMilestoneToggleable(threshold),
		}
	}
}
