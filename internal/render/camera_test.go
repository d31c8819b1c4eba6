package render

import "testing"

func TestCameraIdentity(t *testing.T) {
	cam := NewCamera()

	x, y := cam.Unproject(120, 45)
	if x != 120 || y != 45 {
		t.Errorf("Expected (120, 45), got (%v, %v)", x, y)
	}
}

func TestCameraRoundTrip(t *testing.T) {
	cam := &Camera{X: 50, Y: -20, Zoom: 2}

	wx, wy := cam.Unproject(300, 100)
	if wx != 200 || wy != 30 {
		t.Fatalf("Expected camera point (200, 30), got (%v, %v)", wx, wy)
	}

	sx, sy := cam.Project(wx, wy)
	if sx != 300 || sy != 100 {
		t.Errorf("Expected screen point (300, 100), got (%v, %v)", sx, sy)
	}
}

func TestCameraZeroZoom(t *testing.T) {
	cam := &Camera{}

	if cam.Scale() != 1 {
		t.Errorf("Expected zero zoom to behave as 1, got %v", cam.Scale())
	}

	x, y := cam.Unproject(10, 10)
	if x != 10 || y != 10 {
		t.Errorf("Expected (10, 10), got (%v, %v)", x, y)
	}
}
