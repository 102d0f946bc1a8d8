package slideshow

import (
	"context"

	"github.com/blacktop/igpost/internal/igpost"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/slideshow_mocks.go -package=mocks

// ImageProbe reads dimensions and container format of a local image.
type ImageProbe interface {
	Probe(path string) (igpost.ImageInfo, error)
}

// SingleImageUploader uploads one photo and returns its media descriptor.
type SingleImageUploader interface {
	Upload(ctx context.Context, path string) (igpost.UploadedMedia, error)
}

// LocationLookup resolves a free-text place name to venues.
type LocationLookup interface {
	SearchLocation(ctx context.Context, name string) ([]igpost.Venue, error)
}

// Publisher issues the final configure request.
type Publisher interface {
	Publish(ctx context.Context, req igpost.APIRequest) (*igpost.ConfigureResponse, error)
}
