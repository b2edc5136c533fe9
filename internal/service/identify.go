// Package service orchestrates classification and persistence for the
// upload and history workflows.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/breedsnap/breedsnap-go/internal/llm"
	"github.com/breedsnap/breedsnap-go/internal/metrics"
	"github.com/breedsnap/breedsnap-go/internal/models"
)

// Classifier identifies the breed of the cat in an image.
type Classifier interface {
	Classify(ctx context.Context, image []byte, mimeType string) (models.Classification, error)
}

// SightingStore persists classification results and retrieves a
// device's history.
type SightingStore interface {
	CreateSighting(ctx context.Context, input models.SightingInput) (*models.Sighting, error)
	ListSightingsByDevice(ctx context.Context, deviceID string) ([]models.Sighting, error)
}

// IdentifyService runs the classify-then-persist workflow. Both
// collaborators are injected so tests can substitute fakes.
type IdentifyService struct {
	classifier Classifier
	store      SightingStore
	metrics    *metrics.Collector
	logger     *slog.Logger
}

// NewIdentifyService creates the service with its dependencies.
func NewIdentifyService(classifier Classifier, store SightingStore, collector *metrics.Collector, logger *slog.Logger) *IdentifyService {
	if logger == nil {
		logger = slog.Default()
	}
	return &IdentifyService{
		classifier: classifier,
		store:      store,
		metrics:    collector,
		logger:     logger,
	}
}

// Identify classifies the image and persists the result for the
// device. Gate rejections and provider failures propagate unwrapped so
// the handler can map them to status codes; nothing is persisted in
// either case.
func (s *IdentifyService) Identify(ctx context.Context, deviceID string, image []byte, mimeType string) (*models.Sighting, error) {
	start := time.Now()
	classification, err := s.classifier.Classify(ctx, image, mimeType)
	if err != nil {
		var notACat *llm.NotACatError
		if errors.As(err, &notACat) {
			// the model did its job; a rejection is not an operational failure
			s.metrics.RecordTiming(metrics.OpClassify, time.Since(start))
			s.logger.Info("gate rejected image", "device_id", deviceID, "reason", notACat.Reason)
		} else {
			s.metrics.RecordError(metrics.OpClassify, time.Since(start))
			s.logger.Error("classification failed", "device_id", deviceID, "error", err)
		}
		return nil, err
	}
	s.metrics.RecordTiming(metrics.OpClassify, time.Since(start))

	saveStart := time.Now()
	sighting, err := s.store.CreateSighting(ctx, models.SightingInput{
		DeviceID:       deviceID,
		ImageURL:       llm.DataURL(mimeType, image),
		Classification: classification,
	})
	if err != nil {
		s.metrics.RecordError(metrics.OpSave, time.Since(saveStart))
		s.logger.Error("failed to persist sighting", "device_id", deviceID, "error", err)
		return nil, err
	}
	s.metrics.RecordTiming(metrics.OpSave, time.Since(saveStart))

	s.logger.Info("identified cat breed",
		"device_id", deviceID,
		"breed", sighting.BreedName,
		"confidence", sighting.Confidence)
	return sighting, nil
}

// History returns the device's sightings, newest first.
func (s *IdentifyService) History(ctx context.Context, deviceID string) ([]models.Sighting, error) {
	start := time.Now()
	sightings, err := s.store.ListSightingsByDevice(ctx, deviceID)
	if err != nil {
		s.metrics.RecordError(metrics.OpList, time.Since(start))
		return nil, err
	}
	s.metrics.RecordTiming(metrics.OpList, time.Since(start))
	return sightings, nil
}
