package domain

import "fmt"

type MilestoneStatus string

const (
	MilestoneStatusActive   MilestoneStatus = "Active"
	MilestoneStatusLocked   MilestoneStatus = "Locked"
	MilestoneStatusDisabled MilestoneStatus = "Disabled"
)

// ToggleableEternityMilestones are the only thresholds the player may switch off
var ToggleableEternityMilestones = []int64{4, 8}

// toggleFor maps a threshold to its disable flag, nil when it cannot be disabled
func toggleFor(player *PlayerState, threshold int64) *bool {
	switch threshold {
	case 4:
		return &player.DisabledMilestones.Four
	case 8:
		return &player.DisabledMilestones.Eight
	default:
		return nil
	}
}

func IsEternityMilestoneToggleable(threshold int64) bool {
	switch threshold {
	case 4, 8:
		return true
	default:
		return false
	}
}

func HasEternityMilestone(player *PlayerState, threshold int64) bool {
	return player.Eternities >= threshold
}

func IsEternityMilestoneDisabled(player *PlayerState, threshold int64) bool {
	toggle := toggleFor(player, threshold)
	if toggle == nil {
		return false
	}
	return *toggle
}

func IsEternityMilestoneActive(player *PlayerState, threshold int64) bool {
	return HasEternityMilestone(player, threshold) && !IsEternityMilestoneDisabled(player, threshold)
}

// ToggleEternityMilestone flips the disable flag for the threshold
//
// Thresholds that cannot be disabled are ignored. Returns true if a flag was flipped.
func ToggleEternityMilestone(player *PlayerState, threshold int64) bool {
	toggle := toggleFor(player, threshold)
	if toggle == nil {
		return false
	}
	*toggle = !*toggle
	return true
}

func EternityMilestoneStatus(player *PlayerState, threshold int64) MilestoneStatus {
	if IsEternityMilestoneActive(player, threshold) {
		return MilestoneStatusActive
	} else if !HasEternityMilestone(player, threshold) {
		return MilestoneStatusLocked
	} else if IsEternityMilestoneDisabled(player, threshold) {
		return MilestoneStatusDisabled
	}

	panic(fmt.Sprintf("logic error: eternity milestone %d is unlocked and enabled but not active", threshold))
}
