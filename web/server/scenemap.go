package server

import (
	"image/png"
	"math"
	"net/http"

	"github.com/fogleman/gg"

	"github.com/glimt/go-whitted-raytracer/pkg/core"
	"github.com/glimt/go-whitted-raytracer/pkg/geometry"
	"github.com/glimt/go-whitted-raytracer/pkg/scene"
)

const (
	mapSize = 480
	// World-space window of the overhead view: x in [-minX, maxX],
	// z in [minZ, maxZ], looking straight down the y axis.
	mapMinX = -8.0
	mapMaxX = 8.0
	mapMinZ = -6.0
	mapMaxZ = 18.0
)

// handleSceneMap draws an overhead 2D diagram of the requested scene:
// spheres and walls, light positions, and the camera with its view
// direction. Useful for sanity-checking scene layout without rendering.
func (s *Server) handleSceneMap(w http.ResponseWriter, r *http.Request) {
	req, err := parseFrameRequest(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	builder, err := scene.ByName(req.Scene)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	activeScene, err := builder(req.Width, req.Height)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	scene.Animate(activeScene, req.Tick)

	dc := gg.NewContext(mapSize, mapSize)
	dc.SetRGB(0.12, 0.12, 0.14)
	dc.Clear()

	drawPrimitives(dc, activeScene)
	drawLights(dc, activeScene)
	drawCamera(dc, activeScene)

	w.Header().Set("Content-Type", "image/png")
	png.Encode(w, dc.Image())
}

// mapPoint projects a world-space position onto the overhead canvas
func mapPoint(p core.Vec3) (x, y float64) {
	x = (p.X - mapMinX) / (mapMaxX - mapMinX) * mapSize
	y = (p.Z - mapMinZ) / (mapMaxZ - mapMinZ) * mapSize
	return x, y
}

// mapScale converts a world-space length to canvas pixels on the x axis
func mapScale(worldLen float64) float64 {
	return worldLen / (mapMaxX - mapMinX) * mapSize
}

func drawPrimitives(dc *gg.Context, s *core.Scene) {
	for _, primitive := range s.Primitives {
		switch p := primitive.(type) {
		case *geometry.Sphere:
			x, y := mapPoint(p.Center)
			dc.SetRGB(0.75, 0.78, 0.85)
			dc.DrawCircle(x, y, mapScale(p.Radius))
			dc.Stroke()
		case *geometry.Plane:
			// Horizontal planes (floor/ceiling) have no footprint in a
			// top-down view.
			normal := p.NormalAt(core.Vec3{})
			if math.Abs(normal.Y) > 0.99 {
				continue
			}
			// Draw the wall as a line through its center point,
			// perpendicular to the projected normal.
			along := core.NewVec3(-normal.Z, 0, normal.X).Normalize()
			a := p.Center.Add(along.Multiply(30))
			b := p.Center.Subtract(along.Multiply(30))
			ax, ay := mapPoint(a)
			bx, by := mapPoint(b)
			dc.SetRGB(0.45, 0.5, 0.6)
			dc.DrawLine(ax, ay, bx, by)
			dc.Stroke()
		}
	}
}

func drawLights(dc *gg.Context, s *core.Scene) {
	for _, light := range s.Lights {
		x, y := mapPoint(light.Center)
		radius := mapScale(light.Radius)
		if radius < 3 {
			radius = 3
		}
		dc.SetRGB(1.0, 0.9, 0.3)
		dc.DrawCircle(x, y, radius)
		dc.Fill()
	}
}

func drawCamera(dc *gg.Context, s *core.Scene) {
	camera := s.Camera
	x, y := mapPoint(camera.Eye)

	dc.SetRGB(0.4, 0.9, 0.5)
	dc.DrawCircle(x, y, 4)
	dc.Fill()

	// View direction arrow; the camera looks along
	// (-sin(angle), 0, -cos(angle)).
	angle := camera.Angle()
	tip := camera.Eye.Add(core.NewVec3(-math.Sin(angle), 0, -math.Cos(angle)).Multiply(2))
	tx, ty := mapPoint(tip)
	dc.DrawLine(x, y, tx, ty)
	dc.Stroke()
}
