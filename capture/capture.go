package capture

import (
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/vova616/screenshot"

	"github.com/soocke/gripframe/domain/geometry"
)

// ScreenBounds returns the primary screen rectangle, used as the parent bounds
// of an on-screen region.
func ScreenBounds() (geometry.Rect, error) {
	r, err := screenshot.ScreenRect()
	if err != nil {
		return geometry.Rect{}, fmt.Errorf("screen rect: %w", err)
	}
	return FromImageRect(r), nil
}

// FromImageRect converts an integer pixel rectangle to a geometry.Rect.
func FromImageRect(r image.Rectangle) geometry.Rect {
	return geometry.R(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
}

// ToImageRect snaps a region frame outward to whole pixels.
func ToImageRect(r geometry.Rect) image.Rectangle {
	return image.Rect(
		int(math.Floor(r.X)), int(math.Floor(r.Y)),
		int(math.Ceil(r.MaxX())), int(math.Ceil(r.MaxY())),
	)
}

// GrabRegion captures the screen pixels under the region frame.
func GrabRegion(frame geometry.Rect) (*image.RGBA, error) {
	rect := ToImageRect(frame)
	if rect.Empty() {
		return nil, fmt.Errorf("capture: empty region %v", rect)
	}
	img, err := screenshot.CaptureRect(rect)
	if err != nil {
		return nil, fmt.Errorf("capture rect %v: %w", rect, err)
	}
	return img, nil
}

// SavePNG writes img under dir with a timestamped name and returns the path.
func SavePNG(img image.Image, dir string, now time.Time, logger *slog.Logger) (string, error) {
	if img == nil {
		return "", fmt.Errorf("capture: nil image")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("capture dir: %w", err)
	}
	path := filepath.Join(dir, "region-"+now.Format("20060102-150405.000")+".png")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return "", fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	if logger != nil {
		if st, err := os.Stat(path); err == nil {
			logger.Info("region captured", "path", path, "size", humanize.Bytes(uint64(st.Size())),
				"w", img.Bounds().Dx(), "h", img.Bounds().Dy())
		}
	}
	return path, nil
}
