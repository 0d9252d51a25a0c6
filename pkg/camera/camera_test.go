package camera

import (
	"testing"

	"github.com/kdrisco/flareray/pkg/vec3"
)

func TestRayThroughScreenCenterFollowsForward(t *testing.T) {
	c := New(vec3.Zero)
	state := c.Snapshot()
	r := state.RayThroughScreen(0.5, 0.5, 1)
	if r.Direction.Sub(state.Forward).Length() > 1e-4 {
		t.Errorf("expected center ray to follow forward vector, got %v vs %v", r.Direction, state.Forward)
	}
}

func TestMoveForwardTranslatesAlongFlatForward(t *testing.T) {
	c := New(vec3.Zero)
	c.Move(Forward, 1)
	state := c.Snapshot()
	if state.Position.Y() != 0 {
		t.Errorf("expected forward move to stay on the horizontal plane, got y=%v", state.Position.Y())
	}
	if state.Position.Length() < 0.99 {
		t.Errorf("expected camera to move, got position %v", state.Position)
	}
}

func TestRotatePitchClampsShortOfPoles(t *testing.T) {
	c := New(vec3.Zero)
	c.Rotate(0, -1e6)
	state := c.Snapshot()
	if state.Forward.Y() >= 1 {
		t.Errorf("expected pitch to clamp short of straight up, got forward.y=%v", state.Forward.Y())
	}
}

func TestSnapshotOrthonormalBasis(t *testing.T) {
	c := New(vec3.Zero)
	c.Rotate(123, 45)
	s := c.Snapshot()

	if d := s.Forward.Dot(s.Right); d > 1e-4 || d < -1e-4 {
		t.Errorf("expected forward/right orthogonal, dot=%v", d)
	}
	if d := s.Forward.Dot(s.Up); d > 1e-4 || d < -1e-4 {
		t.Errorf("expected forward/up orthogonal, dot=%v", d)
	}
}
