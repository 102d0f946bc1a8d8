package slideshow

import (
	"context"
	"fmt"

	"github.com/blacktop/igpost/internal/igpost"
	"github.com/blacktop/igpost/internal/logutil"
)

type uploadOutcome struct {
	media   igpost.UploadedMedia
	failure *igpost.UploadFailure
}

// Orchestrator uploads images one at a time, in input order.
type Orchestrator struct {
	uploader SingleImageUploader
}

// NewOrchestrator wraps a single-image uploader.
func NewOrchestrator(uploader SingleImageUploader) *Orchestrator {
	return &Orchestrator{uploader: uploader}
}

// UploadAll uploads every image and partitions the outcomes. A failed image never aborts
// the batch; uploaded keeps the input order of the images that succeeded.
func (o *Orchestrator) UploadAll(ctx context.Context, images []string) ([]igpost.UploadedMedia, []igpost.UploadFailure) {
	outcomes := make([]uploadOutcome, 0, len(images))
	for idx, path := range images {
		logutil.Debugf("uploading photo %d/%d: path=%s", idx+1, len(images), path)
		outcomes = append(outcomes, o.uploadOne(ctx, path))
	}

	var (
		uploaded []igpost.UploadedMedia
		failures []igpost.UploadFailure
	)
	for _, out := range outcomes {
		if out.failure != nil {
			logutil.Warnf("%s", out.failure.Message)
			failures = append(failures, *out.failure)
			continue
		}
		uploaded = append(uploaded, out.media)
	}
	return uploaded, failures
}

func (o *Orchestrator) uploadOne(ctx context.Context, path string) uploadOutcome {
	media, err := o.uploader.Upload(ctx, path)
	if err != nil {
		return uploadOutcome{failure: &igpost.UploadFailure{
			Path:    path,
			Message: fmt.Sprintf("Photo %s not uploaded: %v", path, err),
		}}
	}
	logutil.Debugf("photo uploaded: path=%s upload_id=%s", path, media.UploadID)
	return uploadOutcome{media: media}
}
