package scene

import "testing"

func TestNewDefaultSceneHasNineObjects(t *testing.T) {
	s := NewDefaultScene()
	if s.Len() != 9 {
		t.Errorf("expected 9 objects, got %d", s.Len())
	}
}

func TestNewCornellSceneHasExactlyOneEmitter(t *testing.T) {
	s := NewCornellScene()
	emitters := 0
	for i := 0; i < s.Len(); i++ {
		if s.Get(i).Material.IsEmissive() {
			emitters++
		}
	}
	if emitters != 1 {
		t.Errorf("expected exactly one emissive object, got %d", emitters)
	}
}
