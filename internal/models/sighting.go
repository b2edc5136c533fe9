// Package models defines the domain types for the Breedsnap service.
package models

import (
	"time"

	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"
)

// Rarity values the classifier may assign.
const (
	RarityCommon    = "common"
	RarityUncommon  = "uncommon"
	RarityRare      = "rare"
	RarityUltraRare = "ultra rare"
)

// Care difficulty values the classifier may assign.
const (
	DifficultyEasy    = "easy"
	DifficultyMedium  = "medium"
	DifficultyHard    = "hard"
	DifficultyExtreme = "extreme"
)

// AlternativeBreed is a secondary breed candidate carrying its share of
// the model's confidence.
type AlternativeBreed struct {
	Breed      string  `json:"breed"`
	Percentage float64 `json:"percentage"`
}

// Classification is the output of the breed classifier for a single
// image. It lives only for the duration of a request until it is
// persisted as part of a Sighting.
type Classification struct {
	BreedName         string             `json:"breedName"`
	Confidence        float64            `json:"confidence"`
	AlternativeBreeds []AlternativeBreed `json:"alternativeBreeds"`
	FunFacts          []string           `json:"funFacts"`
	Rarity            string             `json:"rarity"`
	Difficulty        string             `json:"difficulty"`
	PlaceOfOrigin     string             `json:"placeOfOrigin"`
}

// ApplyDefaults fills any field the model left empty. Slices are
// guaranteed non-nil afterwards so they serialize as [] rather than null.
func (c *Classification) ApplyDefaults() {
	if c.BreedName == "" {
		c.BreedName = "Unknown"
	}
	if c.AlternativeBreeds == nil {
		c.AlternativeBreeds = []AlternativeBreed{}
	}
	if c.FunFacts == nil {
		c.FunFacts = []string{}
	}
	if c.Rarity == "" {
		c.Rarity = RarityCommon
	}
	if c.Difficulty == "" {
		c.Difficulty = DifficultyEasy
	}
	if c.PlaceOfOrigin == "" {
		c.PlaceOfOrigin = "Unknown"
	}
}

// Sighting is one persisted identification, scoped to a device.
// Records are immutable after insert and never deleted.
type Sighting struct {
	ID                surrealmodels.RecordID `json:"id"`
	DeviceID          string                 `json:"device_id"`
	ImageURL          string                 `json:"image_url"`
	BreedName         string                 `json:"breed_name"`
	Confidence        float64                `json:"confidence"`
	AlternativeBreeds []AlternativeBreed     `json:"alternative_breeds"`
	FunFacts          []string               `json:"fun_facts"`
	Rarity            string                 `json:"rarity"`
	Difficulty        string                 `json:"difficulty"`
	PlaceOfOrigin     string                 `json:"place_of_origin"`
	CreatedAt         time.Time              `json:"created_at"`
}

// SightingInput is the payload for persisting a new sighting.
type SightingInput struct {
	DeviceID       string
	ImageURL       string
	Classification Classification
}
