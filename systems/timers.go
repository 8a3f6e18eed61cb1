package systems

import (
	"github.com/automoto/substitute-soccer/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTimers counts every entity timer toward zero, decrements the score
// timer and clears the per-tick match flags.
func UpdateTimers(e *ecs.ECS) {
	for entry := range components.Timer.Iter(e.World) {
		t := components.Timer.Get(entry)
		if *t > 0 {
			*t--
		}
	}

	match := mustMatch(e.World)
	match.Tick++
	match.ScoreTimer--
	match.Shot = [2]bool{}
	match.HasShootTarget = false
	clear(match.Intercepts)
}
