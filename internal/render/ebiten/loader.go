package ebiten

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"chosenoffset.com/platformkit/internal/render"
)

// EbitenResourceLoader implements the ResourceLoader interface using Ebiten.
// Asset names are resolved against an asset root file system.
type EbitenResourceLoader struct {
	root   fs.FS
	logger *log.Logger
}

// NewResourceLoader creates a loader rooted at the directory assetDir.
func NewResourceLoader(assetDir string, logger *log.Logger) render.ResourceLoader {
	return NewFSResourceLoader(os.DirFS(assetDir), logger)
}

// NewFSResourceLoader creates a loader rooted at fsys.
func NewFSResourceLoader(fsys fs.FS, logger *log.Logger) render.ResourceLoader {
	if logger == nil {
		logger = log.Default()
	}
	return &EbitenResourceLoader{root: fsys, logger: logger}
}

// LoadImage loads and uploads the named image.
func (l *EbitenResourceLoader) LoadImage(name string) (render.Image, error) {
	img, _, err := ebitenutil.NewImageFromFileSystem(l.root, name)
	if err != nil {
		return nil, fmt.Errorf("failed to load image %s: %w", name, err)
	}
	l.logger.Debug("loaded image", "name", name, "width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return &EbitenImage{img: img}, nil
}
