package scene

import (
	"math"

	"github.com/glimt/go-whitted-raytracer/pkg/core"
)

// Animate advances the scene to the given tick: the primary light orbits the
// room on a slow elliptical path. Must be called strictly between frames,
// never while a render is in flight - workers share the scene without locks.
func Animate(s *core.Scene, tick float64) {
	if len(s.Lights) == 0 {
		return
	}

	s.Lights[0].Center = core.NewVec3(
		3.2*math.Sin(tick*0.03),
		3.2+2.0*math.Cos(tick*0.02),
		7.0+3.2*math.Cos(tick*0.03),
	)
}
