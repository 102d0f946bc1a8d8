package slideshow_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/blacktop/igpost/internal/igpost"
	"github.com/blacktop/igpost/internal/logutil"
	"github.com/blacktop/igpost/internal/mocks"
	"github.com/blacktop/igpost/internal/slideshow"
)

func TestOrchestrator_UploadAll(t *testing.T) {
	t.Run("keeps input order when every upload succeeds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uploader := mocks.NewMockSingleImageUploader(ctrl)
		o := slideshow.NewOrchestrator(uploader)
		ctx := context.Background()
		paths := imagePaths(4)

		gomock.InOrder(
			uploader.EXPECT().Upload(ctx, paths[0]).Return(igpost.UploadedMedia{UploadID: "1"}, nil),
			uploader.EXPECT().Upload(ctx, paths[1]).Return(igpost.UploadedMedia{UploadID: "2"}, nil),
			uploader.EXPECT().Upload(ctx, paths[2]).Return(igpost.UploadedMedia{UploadID: "3"}, nil),
			uploader.EXPECT().Upload(ctx, paths[3]).Return(igpost.UploadedMedia{UploadID: "4"}, nil),
		)

		uploaded, failures := o.UploadAll(ctx, paths)

		assert.Empty(t, failures)
		require.Len(t, uploaded, 4)
		for i, media := range uploaded {
			assert.Equal(t, string(rune('1'+i)), media.UploadID)
		}
	})

	t.Run("skips failed images and keeps going", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uploader := mocks.NewMockSingleImageUploader(ctrl)
		o := slideshow.NewOrchestrator(uploader)
		ctx := context.Background()
		paths := imagePaths(4)

		gomock.InOrder(
			uploader.EXPECT().Upload(ctx, paths[0]).Return(igpost.UploadedMedia{UploadID: "1"}, nil),
			uploader.EXPECT().Upload(ctx, paths[1]).Return(igpost.UploadedMedia{}, errors.New("connection reset")),
			uploader.EXPECT().Upload(ctx, paths[2]).Return(igpost.UploadedMedia{UploadID: "3"}, nil),
			uploader.EXPECT().Upload(ctx, paths[3]).Return(igpost.UploadedMedia{}, igpost.APIError{Endpoint: "/rupload", StatusCode: 400, Message: "bad image"}),
		)

		uploaded, failures := o.UploadAll(ctx, paths)

		require.Len(t, uploaded, 2)
		assert.Equal(t, "1", uploaded[0].UploadID)
		assert.Equal(t, "3", uploaded[1].UploadID)

		require.Len(t, failures, 2)
		assert.Equal(t, paths[1], failures[0].Path)
		assert.Contains(t, failures[0].Message, paths[1])
		assert.Contains(t, failures[0].Message, "connection reset")
		assert.Equal(t, paths[3], failures[1].Path)
		assert.Contains(t, failures[1].Message, "bad image")
	})

	t.Run("returns nothing uploaded when every image fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uploader := mocks.NewMockSingleImageUploader(ctrl)
		o := slideshow.NewOrchestrator(uploader)
		paths := imagePaths(3)

		uploader.EXPECT().Upload(gomock.Any(), gomock.Any()).Return(igpost.UploadedMedia{}, errors.New("boom")).Times(3)

		uploaded, failures := o.UploadAll(context.Background(), paths)

		assert.Empty(t, uploaded)
		assert.Len(t, failures, 3)
	})

	t.Run("warns about each skipped image", func(t *testing.T) {
		var buf bytes.Buffer
		logutil.SetOutput(&buf)
		t.Cleanup(func() { logutil.SetOutput(os.Stderr) })

		ctrl := gomock.NewController(t)
		uploader := mocks.NewMockSingleImageUploader(ctrl)
		o := slideshow.NewOrchestrator(uploader)
		paths := imagePaths(2)

		uploader.EXPECT().Upload(gomock.Any(), paths[0]).Return(igpost.UploadedMedia{UploadID: "1"}, nil)
		uploader.EXPECT().Upload(gomock.Any(), paths[1]).Return(igpost.UploadedMedia{}, errors.New("timeout"))

		_, failures := o.UploadAll(context.Background(), paths)

		require.Len(t, failures, 1)
		assert.Equal(t, "Photo "+paths[1]+" not uploaded: timeout", failures[0].Message)
		assert.Contains(t, buf.String(), "WARN")
		assert.Contains(t, buf.String(), "Photo "+paths[1]+" not uploaded: timeout")
		assert.NotContains(t, buf.String(), "Photo "+paths[0])
	})
}
