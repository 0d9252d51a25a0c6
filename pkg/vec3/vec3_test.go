package vec3

import (
	"math/rand"
	"testing"
)

func TestCombine(t *testing.T) {
	tests := []struct {
		name     string
		a        Vector3
		alphaA   float32
		b        Vector3
		alphaB   float32
		expected Vector3
	}{
		{
			name:     "plain addition",
			a:        New(1, 0, 0),
			alphaA:   1,
			b:        New(0, 1, 0),
			alphaB:   1,
			expected: New(1, 1, 0),
		},
		{
			name:     "subtraction via negative alpha",
			a:        New(3, 3, 3),
			alphaA:   1,
			b:        New(1, 1, 1),
			alphaB:   -1,
			expected: New(2, 2, 2),
		},
		{
			name:     "scaled midpoint",
			a:        New(2, 4, 6),
			alphaA:   0.5,
			b:        New(0, 0, 0),
			alphaB:   0.5,
			expected: New(1, 2, 3),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Combine(tt.a, tt.alphaA, tt.b, tt.alphaB)
			if result.Sub(tt.expected).Length() > 1e-6 {
				t.Errorf("expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestNormalizeZeroVector(t *testing.T) {
	result := Zero.Normalize()
	if result != Zero {
		t.Errorf("expected zero vector to normalize to zero, got %v", result)
	}
}

func TestNormalizeUnitLength(t *testing.T) {
	v := New(3, 4, 0)
	n := v.Normalize()
	if l := n.Length(); l < 0.999 || l > 1.001 {
		t.Errorf("expected unit length, got %v", l)
	}
}

func TestIsZeroTolerance(t *testing.T) {
	if !New(0.00005, -0.00005, 0).IsZero() {
		t.Error("expected vector within tolerance to be zero")
	}
	if New(0.01, 0, 0).IsZero() {
		t.Error("expected vector outside tolerance to not be zero")
	}
}

func TestClamp01(t *testing.T) {
	result := New(-1, 0.5, 2).Clamp01()
	expected := New(0, 0.5, 1)
	if result != expected {
		t.Errorf("expected %v, got %v", expected, result)
	}
}

func TestAverage(t *testing.T) {
	if avg := New(1, 2, 3).Average(); avg != 2 {
		t.Errorf("expected average 2, got %v", avg)
	}
}

func TestReflect(t *testing.T) {
	// incoming direction straight down onto a flat upward normal reflects straight up
	incoming := New(0, -1, 0)
	normal := New(0, 1, 0)
	result := Reflect(incoming, normal)
	expected := New(0, 1, 0)
	if result.Sub(expected).Length() > 1e-6 {
		t.Errorf("expected %v, got %v", expected, result)
	}
}

func TestRandomDirectionIsUnit(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		d := RandomDirection(rng)
		if l := d.Length(); l < 0.999 || l > 1.001 {
			t.Errorf("expected unit-length direction, got length %v", l)
		}
	}
}
