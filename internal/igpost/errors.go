package igpost

import (
	"errors"
	"fmt"
	"strings"
)

// Fixed messages callers may match on.
var (
	ErrTooFewImages      = errors.New("slideshow needs at least the minimum number of images")
	ErrTooManyImages     = errors.New("slideshow exceeds the maximum number of images")
	ErrImageNotFound     = errors.New("image not found")
	ErrUnsupportedFormat = errors.New("unsupported image format")
	ErrAspectRatio       = errors.New("image aspect ratio out of range")
	ErrCaptionTooLong    = errors.New("caption too long")
	ErrTooManyHashtags   = errors.New("caption has too many hashtags")
	ErrLocationNotFound  = errors.New("location not found")
	ErrNoMedia           = errors.New("no uploaded media to compose")
)

// MissingEnvError is returned when required configuration is missing.
type MissingEnvError struct {
	Provider  string
	Variables []string
}

func (e MissingEnvError) Error() string {
	if len(e.Variables) == 0 {
		return fmt.Sprintf("%s credentials not configured", e.Provider)
	}
	return fmt.Sprintf("%s credentials not configured (missing %s)", e.Provider, strings.Join(e.Variables, ", "))
}

// ImageError ties a validation failure to the image that caused it.
type ImageError struct {
	Path string
	Err  error
}

func (e ImageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e ImageError) Unwrap() error { return e.Err }

// APIError is a rejected platform call.
type APIError struct {
	Endpoint   string
	StatusCode int
	Status     string
	Message    string
}

func (e APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Status
	}
	if msg == "" {
		msg = "request failed"
	}
	return fmt.Sprintf("%s: %s (http %d)", e.Endpoint, msg, e.StatusCode)
}
