package domain

// PlayerState is the slice of the save file the display layer reads
//
// It is owned by the game loop; milestone toggles flip fields in place.
type PlayerState struct {
	// Number of times the player has eternalized. Never decreases.
	Eternities int64

	DisabledMilestones MilestoneToggles
}

// MilestoneToggles holds the flags for the eternity milestones that can be switched off
//
// true means the player turned the milestone off.
type MilestoneToggles struct {
	Four  bool
	Eight bool
}
