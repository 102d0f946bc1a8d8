package slideshow

import (
	"context"

	"github.com/blacktop/igpost/internal/igpost"
	"github.com/blacktop/igpost/internal/logutil"
)

const defaultProvider = "instagram"

// Service runs the validate, upload and compose pipeline.
type Service struct {
	validator    *Validator
	orchestrator *Orchestrator
	composer     *Composer
}

// NewService wires the three pipeline stages.
func NewService(validator *Validator, orchestrator *Orchestrator, composer *Composer) *Service {
	return &Service{validator: validator, orchestrator: orchestrator, composer: composer}
}

// Name reports the provider slideshows are published to.
func (s *Service) Name() string {
	if named, ok := s.composer.publisher.(interface{ Name() string }); ok {
		return named.Name()
	}
	return defaultProvider
}

// CreateImageSlideshow validates, uploads and publishes req.Images as one carousel.
// When no image uploads, it returns an unsucceeded result without publishing.
func (s *Service) CreateImageSlideshow(ctx context.Context, req igpost.Request) (igpost.PublishResult, error) {
	if _, err := s.validator.Validate(req.Images, req.Caption); err != nil {
		return igpost.PublishResult{}, err
	}

	uploaded, failures := s.orchestrator.UploadAll(ctx, req.Images)
	if len(uploaded) == 0 {
		logutil.Errorf("no photos uploaded out of %d, nothing to publish", len(req.Images))
		return igpost.PublishResult{Failures: failures}, nil
	}

	result, err := s.composer.Compose(ctx, uploaded, req.Caption, req.Location)
	if err != nil {
		return igpost.PublishResult{}, err
	}
	result.Failures = failures

	if req.Verbose {
		logutil.Infof("image slideshow created: succeeded=%t code=%s photos=%d/%d", result.Succeeded, result.Code, len(uploaded), len(req.Images))
	}
	return result, nil
}
