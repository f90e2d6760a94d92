package material

import (
	"math/rand"

	"github.com/glimt/go-whitted-raytracer/pkg/core"
)

// DebugNormals maps surface normal components onto color channels. No
// lights, no recursion; useful for visually checking geometry.
type DebugNormals struct{}

// NewDebugNormals creates a new normal-visualization material
func NewDebugNormals() *DebugNormals {
	return &DebugNormals{}
}

// ColorAt implements the core.Material interface as a pure function of the normal
func (DebugNormals) ColorAt(point, normal core.Vec3, rayIn core.Ray, scene *core.Scene, depth int, random *rand.Rand) core.Color {
	return core.Color{
		R: (1.0 + normal.X) / 2.0,
		G: (1.0 + normal.Y) / 2.0,
		B: 0.5 - normal.Z,
	}
}
