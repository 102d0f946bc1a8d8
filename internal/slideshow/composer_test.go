package slideshow_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/blacktop/igpost/internal/igpost"
	"github.com/blacktop/igpost/internal/mocks"
	"github.com/blacktop/igpost/internal/slideshow"
)

var fixedNow = time.UnixMilli(1718000000123)

func newComposer(t *testing.T) (*slideshow.Composer, *mocks.MockLocationLookup, *mocks.MockPublisher) {
	t.Helper()
	ctrl := gomock.NewController(t)
	locations := mocks.NewMockLocationLookup(ctrl)
	publisher := mocks.NewMockPublisher(ctrl)
	c := slideshow.NewComposer(locations, publisher)
	slideshow.SetClock(c, func() time.Time { return fixedNow })
	return c, locations, publisher
}

func okResponse(code string) *igpost.ConfigureResponse {
	resp := &igpost.ConfigureResponse{Status: "ok"}
	resp.Media.Code = code
	return resp
}

func TestComposer_Compose(t *testing.T) {
	uploaded := []igpost.UploadedMedia{{UploadID: "111"}, {UploadID: "222"}, {UploadID: "333"}}

	t.Run("publishes the carousel without a location", func(t *testing.T) {
		c, _, publisher := newComposer(t)
		ctx := context.Background()

		var sent igpost.APIRequest
		publisher.EXPECT().Publish(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, req igpost.APIRequest) (*igpost.ConfigureResponse, error) {
				sent = req
				return okResponse("ABC123"), nil
			})

		result, err := c.Compose(ctx, uploaded, "hello", "")

		require.NoError(t, err)
		assert.True(t, result.Succeeded)
		assert.Equal(t, "ABC123", result.Code)

		assert.Equal(t, "/api/v1/media/configure_sidecar/", sent.URI)
		assert.Equal(t, http.MethodPost, sent.Method)
		assert.Equal(t, map[string]string{"x-asbd-id": "198387", "x-ig-app-id": "936619743392459"}, sent.Headers)

		body, err := json.Marshal(sent.Payload)
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"caption": "hello",
			"children_metadata": [{"upload_id": "111"}, {"upload_id": "222"}, {"upload_id": "333"}],
			"client_sidecar_id": "1718000000123",
			"disable_comments": "0",
			"like_and_view_counts_disabled": false,
			"source_type": "library"
		}`, string(body))
	})

	t.Run("geotags with the first venue", func(t *testing.T) {
		c, locations, publisher := newComposer(t)
		ctx := context.Background()

		locations.EXPECT().SearchLocation(ctx, "Manhattan").Return([]igpost.Venue{
			{Lat: 40.7, Lng: -74.0, ExternalID: "123", Name: "Manhattan"},
			{Lat: 1, Lng: 2, ExternalID: "999"},
		}, nil)

		var payload *slideshow.ConfigurePayload
		publisher.EXPECT().Publish(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, req igpost.APIRequest) (*igpost.ConfigureResponse, error) {
				payload = req.Payload.(*slideshow.ConfigurePayload)
				return okResponse("XYZ"), nil
			})

		result, err := c.Compose(ctx, uploaded, "", "Manhattan")

		require.NoError(t, err)
		assert.Equal(t, "XYZ", result.Code)
		require.NotNil(t, payload.Location)
		assert.Equal(t, slideshow.LocationPayload{Lat: 40.7, Lng: -74.0, FacebookPlacesID: "123"}, *payload.Location)
		assert.Equal(t, "true", payload.GeotagEnabled)

		body, err := json.Marshal(payload)
		require.NoError(t, err)
		assert.Contains(t, string(body), `"location":{"lat":40.7,"lng":-74,"facebook_places_id":"123"}`)
		assert.Contains(t, string(body), `"geotag_enabled":"true"`)
	})

	t.Run("fails when the location has no venues", func(t *testing.T) {
		c, locations, _ := newComposer(t)
		ctx := context.Background()

		locations.EXPECT().SearchLocation(ctx, "Nowhere").Return(nil, nil)

		_, err := c.Compose(ctx, uploaded, "", "Nowhere")

		assert.ErrorIs(t, err, igpost.ErrLocationNotFound)
	})

	t.Run("fails when the location lookup errors", func(t *testing.T) {
		c, locations, _ := newComposer(t)
		ctx := context.Background()

		locations.EXPECT().SearchLocation(ctx, "Paris").Return(nil, errors.New("timeout"))

		_, err := c.Compose(ctx, uploaded, "", "Paris")

		require.ErrorIs(t, err, igpost.ErrLocationNotFound)
		assert.Contains(t, err.Error(), "location not found")
	})

	t.Run("returns publish errors unchanged", func(t *testing.T) {
		c, _, publisher := newComposer(t)
		ctx := context.Background()
		pubErr := igpost.APIError{Endpoint: "/api/v1/media/configure_sidecar/", StatusCode: 403, Message: "login_required"}

		publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil, pubErr)

		_, err := c.Compose(ctx, uploaded, "", "")

		assert.Equal(t, pubErr, err)
	})

	t.Run("reports a non-ok status as not succeeded", func(t *testing.T) {
		c, _, publisher := newComposer(t)
		ctx := context.Background()
		resp := okResponse("IGNORED")
		resp.Status = "fail"

		publisher.EXPECT().Publish(ctx, gomock.Any()).Return(resp, nil)

		result, err := c.Compose(ctx, uploaded, "", "")

		require.NoError(t, err)
		assert.False(t, result.Succeeded)
		assert.Empty(t, result.Code)
	})

	t.Run("refuses an empty carousel", func(t *testing.T) {
		c, _, _ := newComposer(t)

		_, err := c.Compose(context.Background(), nil, "", "")

		assert.ErrorIs(t, err, igpost.ErrNoMedia)
	})
}

func TestComposer_SidecarIDFollowsClock(t *testing.T) {
	c, _, _ := newComposer(t)
	uploaded := []igpost.UploadedMedia{{UploadID: "1"}}

	first, err := c.BuildRequest(context.Background(), uploaded, "", "")
	require.NoError(t, err)

	later := fixedNow.Add(time.Second)
	slideshow.SetClock(c, func() time.Time { return later })
	second, err := c.BuildRequest(context.Background(), uploaded, "", "")
	require.NoError(t, err)

	assert.Equal(t, "1718000000123", first.Payload.(*slideshow.ConfigurePayload).ClientSidecarID)
	assert.Equal(t, "1718000001123", second.Payload.(*slideshow.ConfigurePayload).ClientSidecarID)
}
