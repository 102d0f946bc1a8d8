package igpost

import "context"

// Request describes a slideshow to publish.
type Request struct {
	Images   []string
	Caption  string
	Location string
	Verbose  bool
}

// ImageInfo is the probed metadata of a local image.
type ImageInfo struct {
	Width  int
	Height int
	Format string
}

// AspectRatio returns width divided by height, or zero for a degenerate image.
func (i ImageInfo) AspectRatio() float64 {
	if i.Height == 0 {
		return 0
	}
	return float64(i.Width) / float64(i.Height)
}

// UploadedMedia is the descriptor the platform returns for one uploaded photo.
// It is embedded as-is in a carousel's children_metadata.
type UploadedMedia struct {
	UploadID       string         `json:"upload_id"`
	XSharingNonces map[string]any `json:"xsharing_nonces,omitempty"`
	Status         string         `json:"status,omitempty"`
}

// UploadFailure records an image that could not be uploaded.
type UploadFailure struct {
	Path    string
	Message string
}

func (f UploadFailure) String() string { return f.Message }

// Venue is a single location search hit.
type Venue struct {
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	ExternalID string  `json:"external_id"`
	Name       string  `json:"name,omitempty"`
	Address    string  `json:"address,omitempty"`
}

// PublishResult is the outcome of a slideshow publish.
type PublishResult struct {
	Succeeded bool
	Code      string
	Failures  []UploadFailure
}

// APIRequest is a single call against the platform API.
type APIRequest struct {
	URI     string
	Method  string
	Payload any
	Headers map[string]string
}

// ConfigureResponse is the platform's answer to a configure call.
type ConfigureResponse struct {
	Status string `json:"status"`
	Media  struct {
		Code string `json:"code"`
		ID   string `json:"id,omitempty"`
	} `json:"media"`
}

// Publisher abstracts something that can publish a slideshow.
type Publisher interface {
	Name() string
	CreateImageSlideshow(ctx context.Context, req Request) (PublishResult, error)
}
