// Package imageprobe reads image dimensions and container format from disk.
package imageprobe

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/blacktop/igpost/internal/igpost"
	"github.com/disintegration/imaging"
	"github.com/spf13/afero"
)

// Probe implements slideshow.ImageProbe over an afero filesystem.
type Probe struct {
	fs afero.Fs
}

// New returns a Probe reading from fs.
func New(fs afero.Fs) *Probe {
	return &Probe{fs: fs}
}

// Probe returns the displayed size of the image at path, honoring EXIF orientation.
func (p *Probe) Probe(path string) (igpost.ImageInfo, error) {
	f, err := p.fs.Open(path)
	if err != nil {
		return igpost.ImageInfo{}, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	_, format, err := image.DecodeConfig(f)
	if err != nil {
		return igpost.ImageInfo{}, fmt.Errorf("decode image header: %w", err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return igpost.ImageInfo{}, fmt.Errorf("rewind image: %w", err)
	}

	img, err := imaging.Decode(f, imaging.AutoOrientation(true))
	if err != nil {
		return igpost.ImageInfo{}, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	return igpost.ImageInfo{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Format: format,
	}, nil
}
