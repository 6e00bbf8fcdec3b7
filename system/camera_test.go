package system

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/drift/parameter"
)

func TestCameraStartsAtNearDepth(t *testing.T) {
	stage, _, _ := newTestStage(t)
	if stage.CameraZ != parameter.CameraNearZ {
		t.Fatalf("initial depth %v, want %v", stage.CameraZ, parameter.CameraNearZ)
	}
}

func TestCameraDollyReachesFarStop(t *testing.T) {
	stage, clock, _ := newTestStage(t)

	stage.SetExpanded(true)
	runFor(stage, clock, parameter.CameraMoveDuration+200*time.Millisecond)

	if math.Abs(stage.CameraZ-parameter.CameraFarZ) > 1e-9 {
		t.Fatalf("depth %v after dolly, want %v", stage.CameraZ, parameter.CameraFarZ)
	}
	if got := stage.Camera.Active(); got != 0 {
		t.Fatalf("camera tweens = %d after settle, want 0", got)
	}
}

func TestCameraDollyReturnsToNear(t *testing.T) {
	stage, clock, _ := newTestStage(t)

	stage.SetExpanded(true)
	runFor(stage, clock, parameter.CameraMoveDuration+200*time.Millisecond)
	stage.SetExpanded(false)
	runFor(stage, clock, parameter.CameraMoveDuration+200*time.Millisecond)

	if math.Abs(stage.CameraZ-parameter.CameraNearZ) > 1e-9 {
		t.Fatalf("depth %v after return, want %v", stage.CameraZ, parameter.CameraNearZ)
	}
}

func TestRepeatedExpandRestartsTowardSameStop(t *testing.T) {
	stage, clock, _ := newTestStage(t)

	stage.SetExpanded(true)
	runFor(stage, clock, parameter.CameraMoveDuration/2)

	mid := stage.CameraZ
	if mid <= parameter.CameraNearZ || mid >= parameter.CameraFarZ {
		t.Fatalf("mid-dolly depth %v outside (%v, %v)", mid, parameter.CameraNearZ, parameter.CameraFarZ)
	}

	// Same request again: the tween restarts from the current depth but the
	// target stop is unchanged
	stage.SetExpanded(true)
	runFor(stage, clock, parameter.CameraMoveDuration+200*time.Millisecond)

	if math.Abs(stage.CameraZ-parameter.CameraFarZ) > 1e-9 {
		t.Fatalf("depth %v after restart, want %v", stage.CameraZ, parameter.CameraFarZ)
	}
	if got := stage.Camera.Active(); got != 1 && got != 0 {
		t.Fatalf("camera tweens = %d, want at most 1", got)
	}
}

func TestDollyMotionIsMonotonic(t *testing.T) {
	stage, clock, _ := newTestStage(t)

	stage.SetExpanded(true)
	clock.Advance(tickStep)
	stage.Tick(clock.Now())

	prev := stage.CameraZ
	for elapsed := time.Duration(0); elapsed < parameter.CameraMoveDuration; elapsed += tickStep {
		clock.Advance(tickStep)
		stage.Tick(clock.Now())
		if stage.CameraZ < prev-1e-9 {
			t.Fatalf("depth regressed: %v after %v", stage.CameraZ, prev)
		}
		prev = stage.CameraZ
	}
}
