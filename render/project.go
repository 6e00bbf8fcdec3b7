package render

import (
	"sort"

	"github.com/lixenwraith/drift/engine"
	"github.com/lixenwraith/drift/parameter"
)

// Projected is one element mapped into screen space
type Projected struct {
	CX, CY float64

	// Scale folds perspective shrink into the element's breathing scale
	Scale float64

	// Depth is the distance from the camera, used for painter ordering and
	// brightness falloff
	Depth float64

	Index int
}

// depth range visible across both camera stops and the full spawn cube
const (
	depthMin = parameter.CameraNearZ - parameter.SpawnExtent
	depthMax = parameter.CameraFarZ + parameter.SpawnExtent
)

// Project maps an element into screen cells. The camera sits on the positive
// z axis at cameraZ looking at the origin; x spreads across columns with the
// cell aspect correction, y down rows
func Project(el *engine.Element, cameraZ float64, width, viewH int) Projected {
	depth := cameraZ - el.Pos.Z
	if depth < 1 {
		depth = 1
	}
	invZ := parameter.FocalLength / depth
	scale := float64(viewH) / parameter.ViewSpan

	return Projected{
		CX:    float64(width)/2 + el.Pos.X*invZ*scale*parameter.CellAspect,
		CY:    float64(viewH)/2 - el.Pos.Y*invZ*scale,
		Scale: el.CurrentScale * invZ,
		Depth: depth,
		Index: el.Index,
	}
}

// ProjectAll projects the population and orders it far to near so closer
// elements overdraw the distant ones
func ProjectAll(elements []engine.Element, cameraZ float64, width, viewH int) []Projected {
	out := make([]Projected, len(elements))
	for i := range elements {
		out[i] = Project(&elements[i], cameraZ, width, viewH)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Depth > out[j].Depth
	})
	return out
}

// DepthBrightness maps a projected depth to a brightness factor in
// [1-DepthDim, 1], nearest brightest
func DepthBrightness(depth float64) float64 {
	t := (depth - depthMin) / (depthMax - depthMin)
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return 1 - t*parameter.DepthDim
}
