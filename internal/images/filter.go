package images

import (
	"fmt"
	"image"
	"os"

	// Register the decoders the filter can measure.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// Filter decides which extracted images are worth keeping. A zero threshold
// disables its check, so the zero value keeps everything.
type Filter struct {
	// XYLimit is the minimum pixel length each image side must exceed.
	XYLimit int
	// RelRatio is the minimum ratio of stored bytes to pixel count an image
	// must exceed.
	RelRatio float64
	// AbsSize is the minimum stored size in bytes an image must exceed.
	AbsSize int64
}

// Keep reports whether the image file at path passes the filter, and when it
// does not, which threshold rejected it. Files whose dimensions cannot be
// decoded are kept; the filter only rejects what it can measure.
func (f Filter) Keep(path string) (bool, string) {
	info, err := os.Stat(path)
	if err != nil {
		return true, ""
	}
	size := info.Size()

	if f.AbsSize > 0 && size <= f.AbsSize {
		return false, fmt.Sprintf("size %d <= abs_size %d", size, f.AbsSize)
	}

	if f.XYLimit == 0 && f.RelRatio == 0 {
		return true, ""
	}

	width, height, err := decodeDimensions(path)
	if err != nil {
		return true, ""
	}

	if f.XYLimit > 0 && (width <= f.XYLimit || height <= f.XYLimit) {
		return false, fmt.Sprintf("dimensions %dx%d below xy_limit %d", width, height, f.XYLimit)
	}

	if f.RelRatio > 0 {
		pixels := width * height
		if pixels > 0 && float64(size)/float64(pixels) <= f.RelRatio {
			return false, fmt.Sprintf("bytes-per-pixel below rel_ratio %g", f.RelRatio)
		}
	}

	return true, ""
}

// decodeDimensions reads just enough of the file to learn its pixel
// dimensions.
func decodeDimensions(path string) (int, int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer func() {
		_ = file.Close()
	}()

	cfg, _, err := image.DecodeConfig(file)
	if err != nil {
		return 0, 0, err
	}
	return cfg.Width, cfg.Height, nil
}
