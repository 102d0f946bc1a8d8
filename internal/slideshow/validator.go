package slideshow

import (
	"errors"
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/blacktop/igpost/internal/igpost"
	"github.com/spf13/afero"
)

var hashtagRe = regexp.MustCompile(`#[\p{L}\p{N}_]+`)

// ValidatedImage is an image that passed every local check.
type ValidatedImage struct {
	Path string
	igpost.ImageInfo
}

// Validator enforces Limits over local images and the caption. It never touches the network.
type Validator struct {
	fs     afero.Fs
	probe  ImageProbe
	limits Limits
}

// NewValidator returns a Validator reading files through fs.
func NewValidator(fs afero.Fs, probe ImageProbe, limits Limits) *Validator {
	return &Validator{fs: fs, probe: probe, limits: limits}
}

// Validate checks the image count, then every image's existence, format and aspect ratio,
// then the caption. Each per-image stage checks all images and joins their failures.
func (v *Validator) Validate(images []string, caption string) ([]ValidatedImage, error) {
	if err := v.ValidateCount(len(images)); err != nil {
		return nil, err
	}

	var errs []error
	for _, path := range images {
		if err := v.checkExists(path); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	validated := make([]ValidatedImage, 0, len(images))
	for _, path := range images {
		info, err := v.probe.Probe(path)
		if err != nil {
			errs = append(errs, igpost.ImageError{Path: path, Err: fmt.Errorf("%w: %v", igpost.ErrUnsupportedFormat, err)})
			continue
		}
		validated = append(validated, ValidatedImage{Path: path, ImageInfo: info})
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	for _, img := range validated {
		if !v.limits.acceptsFormat(img.Format) {
			errs = append(errs, igpost.ImageError{Path: img.Path, Err: fmt.Errorf("%w: %s", igpost.ErrUnsupportedFormat, img.Format)})
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	for _, img := range validated {
		if err := v.checkAspectRatio(img); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	if err := v.ValidateCaption(caption); err != nil {
		return nil, err
	}

	return validated, nil
}

// ValidateCount enforces the [MinImages, MaxImages] bounds.
func (v *Validator) ValidateCount(n int) error {
	if n < v.limits.MinImages {
		return fmt.Errorf("%w: got %d, minimum is %d", igpost.ErrTooFewImages, n, v.limits.MinImages)
	}
	if n > v.limits.MaxImages {
		return fmt.Errorf("%w: got %d, maximum is %d", igpost.ErrTooManyImages, n, v.limits.MaxImages)
	}
	return nil
}

// ValidateCaption enforces caption length and hashtag count.
func (v *Validator) ValidateCaption(caption string) error {
	if n := utf8.RuneCountInString(caption); v.limits.MaxCaptionLength > 0 && n > v.limits.MaxCaptionLength {
		return fmt.Errorf("%w: %d characters, maximum is %d", igpost.ErrCaptionTooLong, n, v.limits.MaxCaptionLength)
	}
	if n := len(hashtagRe.FindAllString(caption, -1)); v.limits.MaxHashtags > 0 && n > v.limits.MaxHashtags {
		return fmt.Errorf("%w: %d hashtags, maximum is %d", igpost.ErrTooManyHashtags, n, v.limits.MaxHashtags)
	}
	return nil
}

func (v *Validator) checkExists(path string) error {
	info, err := v.fs.Stat(path)
	if err != nil || info.IsDir() {
		return igpost.ImageError{Path: path, Err: igpost.ErrImageNotFound}
	}
	f, err := v.fs.Open(path)
	if err != nil {
		return igpost.ImageError{Path: path, Err: fmt.Errorf("%w: %v", igpost.ErrImageNotFound, err)}
	}
	return f.Close()
}

func (v *Validator) checkAspectRatio(img ValidatedImage) error {
	ratio := img.AspectRatio()
	if ratio < v.limits.MinAspectRatio || ratio > v.limits.MaxAspectRatio {
		return igpost.ImageError{
			Path: img.Path,
			Err:  fmt.Errorf("%w: %dx%d (%.2f), accepted %.2f-%.2f", igpost.ErrAspectRatio, img.Width, img.Height, ratio, v.limits.MinAspectRatio, v.limits.MaxAspectRatio),
		}
	}
	return nil
}
