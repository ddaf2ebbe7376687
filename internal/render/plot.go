package render

import (
	"fmt"
	"image"
	"image/png"
	"os"
)

// SavePNG encodes img to a new PNG file at path. The file is opened with
// O_EXCL: an existing file at path fails with os.ErrExist rather than being
// overwritten.
func SavePNG(path string, img image.Image) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("save plot %s: %w", path, err)
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode plot %s: %w", path, err)
	}
	return f.Close()
}
