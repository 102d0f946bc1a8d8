package slideshow

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/blacktop/igpost/internal/igpost"
	"github.com/blacktop/igpost/internal/logutil"
)

const (
	configureSidecarURI = "/api/v1/media/configure_sidecar/"

	headerASBDID  = "x-asbd-id"
	headerIGAppID = "x-ig-app-id"
	asbdID        = "198387"
	igAppID       = "936619743392459"

	sourceTypeLibrary = "library"
)

// ConfigurePayload is the body of a configure_sidecar request.
type ConfigurePayload struct {
	Caption                   string                 `json:"caption"`
	ChildrenMetadata          []igpost.UploadedMedia `json:"children_metadata"`
	ClientSidecarID           string                 `json:"client_sidecar_id"`
	DisableComments           string                 `json:"disable_comments"`
	LikeAndViewCountsDisabled bool                   `json:"like_and_view_counts_disabled"`
	SourceType                string                 `json:"source_type"`
	GeotagEnabled             string                 `json:"geotag_enabled,omitempty"`
	Location                  *LocationPayload       `json:"location,omitempty"`
}

// LocationPayload geotags a post.
type LocationPayload struct {
	Lat              float64 `json:"lat"`
	Lng              float64 `json:"lng"`
	FacebookPlacesID string  `json:"facebook_places_id"`
}

// Composer assembles uploaded media into a single carousel post.
type Composer struct {
	locations LocationLookup
	publisher Publisher
	now       func() time.Time
}

// NewComposer returns a Composer using the wall clock for sidecar ids.
func NewComposer(locations LocationLookup, publisher Publisher) *Composer {
	return &Composer{locations: locations, publisher: publisher, now: time.Now}
}

// Compose resolves the optional location, publishes the carousel and maps the response.
// Publish errors are returned unchanged.
func (c *Composer) Compose(ctx context.Context, uploaded []igpost.UploadedMedia, caption, location string) (igpost.PublishResult, error) {
	req, err := c.BuildRequest(ctx, uploaded, caption, location)
	if err != nil {
		return igpost.PublishResult{}, err
	}

	logutil.Debugf("publishing slideshow: children=%d", len(uploaded))
	resp, err := c.publisher.Publish(ctx, req)
	if err != nil {
		return igpost.PublishResult{}, err
	}

	result := igpost.PublishResult{Succeeded: resp.Status == "ok"}
	if result.Succeeded {
		result.Code = resp.Media.Code
	}
	return result, nil
}

// BuildRequest assembles the configure request without sending it.
func (c *Composer) BuildRequest(ctx context.Context, uploaded []igpost.UploadedMedia, caption, location string) (igpost.APIRequest, error) {
	if len(uploaded) == 0 {
		return igpost.APIRequest{}, igpost.ErrNoMedia
	}

	payload := &ConfigurePayload{
		Caption:                   caption,
		ChildrenMetadata:          append([]igpost.UploadedMedia(nil), uploaded...),
		ClientSidecarID:           strconv.FormatInt(c.now().UnixMilli(), 10),
		DisableComments:           "0",
		LikeAndViewCountsDisabled: false,
		SourceType:                sourceTypeLibrary,
	}

	if location != "" {
		loc, err := c.resolveLocation(ctx, location)
		if err != nil {
			return igpost.APIRequest{}, err
		}
		payload.Location = loc
		payload.GeotagEnabled = "true"
	}

	return igpost.APIRequest{
		URI:     configureSidecarURI,
		Method:  http.MethodPost,
		Payload: payload,
		Headers: map[string]string{
			headerASBDID:  asbdID,
			headerIGAppID: igAppID,
		},
	}, nil
}

func (c *Composer) resolveLocation(ctx context.Context, name string) (*LocationPayload, error) {
	venues, err := c.locations.SearchLocation(ctx, name)
	if err != nil {
		logutil.Debugf("location search failed: query=%q err=%v", name, err)
		return nil, fmt.Errorf("%w: %q", igpost.ErrLocationNotFound, name)
	}
	if len(venues) == 0 {
		return nil, fmt.Errorf("%w: %q", igpost.ErrLocationNotFound, name)
	}
	venue := venues[0]
	logutil.Debugf("location resolved: query=%q venue=%q id=%s", name, venue.Name, venue.ExternalID)
	return &LocationPayload{
		Lat:              venue.Lat,
		Lng:              venue.Lng,
		FacebookPlacesID: venue.ExternalID,
	}, nil
}
