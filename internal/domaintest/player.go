package domaintest

import (
	"github.com/Amund211/notations/internal/domain"
)

type playerBuilder struct {
	player *domain.PlayerState
}

func (pb *playerBuilder) WithEternities(eternities int64) *playerBuilder {
	pb.player.Eternities = eternities
	return pb
}

func (pb *playerBuilder) WithDisabledMilestone(threshold int64) *playerBuilder {
	if !domain.IsEternityMilestoneDisabled(pb.player, threshold) {
		domain.ToggleEternityMilestone(pb.player, threshold)
	}
	return pb
}

func (pb *playerBuilder) Build() domain.PlayerState {
	return *pb.player
}

func (pb *playerBuilder) BuildPtr() *domain.PlayerState {
	// Make a copy, so further mutations to the builder don't affect the returned player
	player := pb.Build()
	return &player
}

func NewPlayerBuilder() *playerBuilder {
	return &playerBuilder{
		player: &domain.PlayerState{},
	}
}
