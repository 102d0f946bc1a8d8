package instagram

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/blacktop/igpost/internal/igpost"
	"github.com/blacktop/igpost/internal/logutil"
	"github.com/google/uuid"
	"github.com/spf13/afero"
)

const ruploadPhotoPrefix = "/rupload_igphoto/fb_uploader_"

type ruploadParams struct {
	UploadID         string `json:"upload_id"`
	MediaType        string `json:"media_type"`
	IsSidecar        string `json:"is_sidecar"`
	ImageCompression string `json:"image_compression"`
	RetryContext     string `json:"retry_context"`
	WaterfallID      string `json:"waterfall_id"`
}

type uploadResponse struct {
	UploadID       string         `json:"upload_id"`
	XSharingNonces map[string]any `json:"xsharing_nonces"`
	Status         string         `json:"status"`
	Message        string         `json:"message"`
}

// Upload sends one photo as a carousel child and returns its media descriptor.
func (c *Client) Upload(ctx context.Context, path string) (igpost.UploadedMedia, error) {
	data, err := c.readImage(path)
	if err != nil {
		return igpost.UploadedMedia{}, err
	}

	uploadID := strconv.FormatInt(c.now().UnixNano(), 10)
	params, err := json.Marshal(ruploadParams{
		UploadID:         uploadID,
		MediaType:        "1",
		IsSidecar:        "1",
		ImageCompression: `{"lib_name":"moz","lib_version":"3.1.m","quality":"80"}`,
		RetryContext:     `{"num_step_auto_retry":0,"num_reupload":0,"num_step_manual_retry":0}`,
		WaterfallID:      uuid.NewString(),
	})
	if err != nil {
		return igpost.UploadedMedia{}, fmt.Errorf("encode upload params: %w", err)
	}

	entityName := "fb_uploader_" + uploadID
	logutil.Debugf("rupload: entity=%s bytes=%d", entityName, len(data))

	var resp uploadResponse
	err = c.Do(ctx, igpost.APIRequest{
		URI:     ruploadPhotoPrefix + uploadID,
		Method:  http.MethodPost,
		Payload: data,
		Headers: map[string]string{
			"X-Instagram-Rupload-Params": string(params),
			"X-Entity-Name":              entityName,
			"X-Entity-Length":            strconv.Itoa(len(data)),
			"X-Entity-Type":              entityType(path, data),
			"Offset":                     "0",
		},
	}, &resp)
	if err != nil {
		return igpost.UploadedMedia{}, err
	}
	if resp.Status != "ok" {
		return igpost.UploadedMedia{}, igpost.APIError{Endpoint: ruploadPhotoPrefix, StatusCode: http.StatusOK, Status: resp.Status, Message: resp.Message}
	}

	media := igpost.UploadedMedia{
		UploadID:       resp.UploadID,
		XSharingNonces: resp.XSharingNonces,
		Status:         resp.Status,
	}
	if media.UploadID == "" {
		media.UploadID = uploadID
	}
	return media, nil
}

func (c *Client) readImage(path string) ([]byte, error) {
	data, err := afero.ReadFile(c.fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, igpost.ImageError{Path: path, Err: igpost.ErrImageNotFound}
		}
		return nil, fmt.Errorf("read image: %w", err)
	}
	return data, nil
}

func entityType(path string, data []byte) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	}
	return http.DetectContentType(data)
}
