package factory

import (
	"github.com/automoto/substitute-soccer/archetypes"
	"github.com/automoto/substitute-soccer/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

func mustSpace(ecs *ecs.ECS) *resolv.Space {
	entry, ok := components.Space.First(ecs.World)
	if !ok {
		panic("factory: space missing")
	}
	return components.Space.Get(entry)
}
