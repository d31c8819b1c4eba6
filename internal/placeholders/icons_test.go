package placeholders

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestCreateArrowIconShape(t *testing.T) {
	tests := []struct {
		name   string
		dir    Direction
		tipX   int
		tipY   int
		emptyX int
		emptyY int
	}{
		// Inside the arrow is opaque, behind its base is only backdrop.
		{"left", Left, 14, 16, 26, 16},
		{"right", Right, 17, 16, 5, 16},
		{"up", Up, 16, 14, 16, 26},
	}

	for _, tt := range tests {
		img := CreateArrowIcon(tt.dir)

		if img.Bounds().Dx() != IconSize || img.Bounds().Dy() != IconSize {
			t.Fatalf("%s: Expected %dx%d icon, got %v", tt.name, IconSize, IconSize, img.Bounds())
		}
		if a := img.RGBAAt(tt.tipX, tt.tipY).A; a != 255 {
			t.Errorf("%s: Expected opaque arrow at (%d, %d), got alpha %d", tt.name, tt.tipX, tt.tipY, a)
		}
		if c := img.RGBAAt(tt.emptyX, tt.emptyY); c != ColorPalette.Background {
			t.Errorf("%s: Expected backdrop at (%d, %d), got %v", tt.name, tt.emptyX, tt.emptyY, c)
		}
		if a := img.RGBAAt(0, 0).A; a != 0 {
			t.Errorf("%s: Expected transparent corner, got alpha %d", tt.name, a)
		}
	}
}

func TestGenerateIcons(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "assets")
	names := IconNames{Left: "l.png", Right: "r.png", Up: "u.png"}

	written, err := GenerateIcons(dir, names)
	if err != nil {
		t.Fatalf("Failed to generate icons: %v", err)
	}
	if len(written) != 3 {
		t.Fatalf("Expected 3 files, got %d", len(written))
	}

	for _, path := range written {
		f, err := os.Open(path)
		if err != nil {
			t.Fatalf("Failed to open %s: %v", path, err)
		}
		img, err := png.Decode(f)
		f.Close()
		if err != nil {
			t.Errorf("Failed to decode %s: %v", path, err)
			continue
		}
		if img.Bounds().Dx() != IconSize {
			t.Errorf("Expected %s to be %d wide, got %d", path, IconSize, img.Bounds().Dx())
		}
	}
}
