package input

import "testing"

var testLayout = NewLayout(800, 480, 100)

func TestEvaluateSinglePointer(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		want Signals
	}{
		{"left", 50, 200, Signals{Left: true}},
		{"right", 150, 200, Signals{Right: true}},
		{"up", 750, 200, Signals{Up: true}},
		{"gap", 400, 200, Signals{}},
		{"off screen", -20, 200, Signals{}},
		{"shared edge", 100, 200, Signals{Left: true, Right: true}},
	}

	for _, tt := range tests {
		got := Evaluate([]Pointer{{Active: true, X: tt.x, Y: tt.y}}, KeyState{}, testLayout)
		if got != tt.want {
			t.Errorf("%s: Expected %+v, got %+v", tt.name, tt.want, got)
		}
	}
}

func TestEvaluateInactivePointerIgnored(t *testing.T) {
	got := Evaluate([]Pointer{{Active: false, X: 50, Y: 200}}, KeyState{}, testLayout)
	if got.Any() {
		t.Errorf("Expected inactive pointer to set nothing, got %+v", got)
	}
}

func TestEvaluateTwoPointers(t *testing.T) {
	pointers := []Pointer{
		{Active: true, X: 20, Y: 300},
		{Active: true, X: 780, Y: 300},
	}

	got := Evaluate(pointers, KeyState{}, testLayout)
	want := Signals{Left: true, Up: true}
	if got != want {
		t.Errorf("Expected move and jump together %+v, got %+v", want, got)
	}
}

func TestEvaluateKeysCombineWithPointers(t *testing.T) {
	pointers := []Pointer{{Active: true, X: 150, Y: 100}}

	got := Evaluate(pointers, KeyState{Left: true}, testLayout)
	if !got.Left || !got.Right {
		t.Errorf("Expected left key and right touch to both register, got %+v", got)
	}
	if got.Up {
		t.Error("Expected up to stay unset")
	}
}

func TestEvaluateKeysAlone(t *testing.T) {
	got := Evaluate(nil, KeyState{Left: true, Right: true, Up: true}, testLayout)
	want := Signals{Left: true, Right: true, Up: true}
	if got != want {
		t.Errorf("Expected %+v, got %+v", want, got)
	}
}

func TestEvaluateNothingHeld(t *testing.T) {
	got := Evaluate(nil, KeyState{}, testLayout)
	if got.Any() {
		t.Errorf("Expected no signals, got %+v", got)
	}
}

func TestEvaluateNeverSetsAction(t *testing.T) {
	pointers := []Pointer{{Active: true, X: 50, Y: 50}, {Active: true, X: 750, Y: 50}}
	got := Evaluate(pointers, KeyState{Left: true, Right: true, Up: true}, testLayout)
	if got.Action {
		t.Error("Expected action signal to stay unset")
	}
}
