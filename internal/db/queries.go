package db

import (
	"context"
	"fmt"

	"github.com/breedsnap/breedsnap-go/internal/models"
	"github.com/surrealdb/surrealdb.go"
)

// CreateSighting persists one identification and returns the stored
// record with its id and created_at filled in. Not idempotent: every
// call creates a distinct record, matching "every identification is a
// new entry" semantics. ULID record ids sort by creation time, which
// breaks ordering ties between records sharing a created_at.
func (c *Client) CreateSighting(ctx context.Context, input models.SightingInput) (*models.Sighting, error) {
	sql := `
		CREATE type::record("sighting", rand::ulid()) CONTENT {
			device_id: $device_id,
			image_url: $image_url,
			breed_name: $breed_name,
			confidence: $confidence,
			alternative_breeds: $alternative_breeds,
			fun_facts: $fun_facts,
			rarity: $rarity,
			difficulty: $difficulty,
			place_of_origin: $place_of_origin
		} RETURN AFTER
	`

	cls := input.Classification
	results, err := surrealdb.Query[[]models.Sighting](ctx, c.db, sql, map[string]any{
		"device_id":          input.DeviceID,
		"image_url":          input.ImageURL,
		"breed_name":         cls.BreedName,
		"confidence":         cls.Confidence,
		"alternative_breeds": cls.AlternativeBreeds,
		"fun_facts":          cls.FunFacts,
		"rarity":             cls.Rarity,
		"difficulty":         cls.Difficulty,
		"place_of_origin":    cls.PlaceOfOrigin,
	})
	if err != nil {
		return nil, fmt.Errorf("create sighting: %w", wrapStoreError(err))
	}

	if results == nil || len(*results) == 0 || len((*results)[0].Result) == 0 {
		return nil, fmt.Errorf("create sighting: %w", wrapStoreError(fmt.Errorf("no record returned")))
	}

	return &(*results)[0].Result[0], nil
}

// ListSightingsByDevice returns the full history for one device,
// newest first. No pagination.
func (c *Client) ListSightingsByDevice(ctx context.Context, deviceID string) ([]models.Sighting, error) {
	sql := `
		SELECT * FROM sighting
		WHERE device_id = $device_id
		ORDER BY created_at DESC, id DESC
	`

	results, err := surrealdb.Query[[]models.Sighting](ctx, c.db, sql, map[string]any{
		"device_id": deviceID,
	})
	if err != nil {
		return nil, fmt.Errorf("list sightings: %w", wrapStoreError(err))
	}

	if results == nil || len(*results) == 0 {
		return []models.Sighting{}, nil
	}
	return (*results)[0].Result, nil
}
