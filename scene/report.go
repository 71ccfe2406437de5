package scene

import (
	"github.com/meghashyamc/sat2d/geometry"
)

// Result is the outcome of testing the player against one obstacle.
type Result struct {
	Name      string
	Colliding bool
	MTV       geometry.Vector
	// Err is set when the pair cannot be tested, e.g. geometry.ErrNoAxes for
	// two circles.
	Err error
}

// Collisions tests the player against every obstacle, in scene order.
func (b *Built) Collisions() []Result {
	results := make([]Result, 0, len(b.Obstacles))
	for _, obstacle := range b.Obstacles {
		mtv, ok, err := geometry.Collide(b.Player.Shape, obstacle.Shape)
		results = append(results, Result{
			Name:      obstacle.Name,
			Colliding: ok,
			MTV:       mtv,
			Err:       err,
		})
	}
	return results
}
