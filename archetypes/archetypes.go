package archetypes

import (
	"github.com/automoto/substitute-soccer/components"
	cfg "github.com/automoto/substitute-soccer/config"
	"github.com/automoto/substitute-soccer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Position,
		components.Home,
		components.Team,
		components.Slot,
		components.Timer,
		components.Peer,
		components.Target,
		components.Animation,
		components.Mark,
		components.Lead,
		components.Body,
	)
	Ball = newArchetype(
		tags.Ball,
		components.Position,
		components.Ball,
		components.Timer,
		components.Body,
	)
	Team = newArchetype(
		components.TeamInfo,
		components.Controls,
	)
	Match = newArchetype(
		components.Match,
	)
	Space = newArchetype(
		components.Space,
	)
	Menu = newArchetype(
		components.Menu,
	)
	Input = newArchetype(
		components.Input,
	)
	HUD = newArchetype(
		components.HUD,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
