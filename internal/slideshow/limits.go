package slideshow

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "IGPOST"

// Limits are the platform policy thresholds enforced before any upload.
type Limits struct {
	MinImages        int      `envconfig:"MIN_SLIDESHOW_IMAGES" default:"2"`
	MaxImages        int      `envconfig:"MAX_SLIDESHOW_IMAGES" default:"10"`
	MinAspectRatio   float64  `envconfig:"MIN_ASPECT_RATIO" default:"0.8"`
	MaxAspectRatio   float64  `envconfig:"MAX_ASPECT_RATIO" default:"1.91"`
	Formats          []string `envconfig:"FORMATS" default:"jpeg"`
	MaxCaptionLength int      `envconfig:"MAX_CAPTION_LENGTH" default:"2200"`
	MaxHashtags      int      `envconfig:"MAX_HASHTAGS" default:"30"`
}

// DefaultLimits mirrors the platform's current carousel rules.
func DefaultLimits() Limits {
	return Limits{
		MinImages:        2,
		MaxImages:        10,
		MinAspectRatio:   0.8,
		MaxAspectRatio:   1.91,
		Formats:          []string{"jpeg"},
		MaxCaptionLength: 2200,
		MaxHashtags:      30,
	}
}

// LoadLimits reads limits from IGPOST_* environment variables, falling back to defaults.
func LoadLimits() (Limits, error) {
	var l Limits
	if err := envconfig.Process(envPrefix, &l); err != nil {
		return Limits{}, fmt.Errorf("loading limits: %w", err)
	}
	if err := l.Validate(); err != nil {
		return Limits{}, err
	}
	return l, nil
}

// Validate reports inconsistent limits.
func (l Limits) Validate() error {
	switch {
	case l.MinImages < 1:
		return fmt.Errorf("invalid limits: minimum images must be at least 1, got %d", l.MinImages)
	case l.MaxImages < l.MinImages:
		return fmt.Errorf("invalid limits: maximum images %d below minimum %d", l.MaxImages, l.MinImages)
	case l.MinAspectRatio <= 0 || l.MaxAspectRatio < l.MinAspectRatio:
		return fmt.Errorf("invalid limits: aspect ratio band [%g, %g]", l.MinAspectRatio, l.MaxAspectRatio)
	case len(l.Formats) == 0:
		return fmt.Errorf("invalid limits: no accepted formats")
	}
	return nil
}

func (l Limits) acceptsFormat(format string) bool {
	format = normalizeFormat(format)
	for _, f := range l.Formats {
		if normalizeFormat(f) == format {
			return true
		}
	}
	return false
}

func normalizeFormat(format string) string {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "jpg" {
		return "jpeg"
	}
	return format
}
