package systems

import (
	"github.com/automoto/substitute-soccer/components"
	"github.com/yohamta/donburi"
)

// syncBody centres an entity's broad-phase body on its position.
func syncBody(e *donburi.Entry) {
	body := components.Body.Get(e)
	if body.Object == nil {
		return
	}
	pos := components.Position.Get(e)
	body.X = pos.X - body.W/2
	body.Y = pos.Y - body.H/2
	body.Update()
}
