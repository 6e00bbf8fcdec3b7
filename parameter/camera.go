package parameter

import "time"

// Camera z-depth track
// Two allowed depths, selected by the external expanded flag
const (
	// CameraNearZ is the default depth (collapsed view)
	CameraNearZ = 2500.0

	// CameraFarZ is the pulled-back depth (expanded view requested)
	CameraFarZ = 4500.0

	// CameraMoveDuration is the fixed dolly time between depths
	CameraMoveDuration = 2000 * time.Millisecond
)

// Projection (terminal renderer)
const (
	// FocalLength converts camera depth to a perspective divisor
	FocalLength = 2200.0

	// CellAspect corrects for terminal cells being roughly twice as tall as wide
	CellAspect = 2.0
)
