package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/breedsnap/breedsnap-go/internal/models"
)

// SightingResponse is the wire shape of one sighting, camelCase as the
// web client expects.
type SightingResponse struct {
	ID                string                    `json:"id"`
	ImageURL          string                    `json:"imageUrl"`
	BreedName         string                    `json:"breedName"`
	Confidence        float64                   `json:"confidence"`
	AlternativeBreeds []models.AlternativeBreed `json:"alternativeBreeds"`
	FunFacts          []string                  `json:"funFacts"`
	Rarity            string                    `json:"rarity"`
	Difficulty        string                    `json:"difficulty"`
	PlaceOfOrigin     string                    `json:"placeOfOrigin"`
	CreatedAt         time.Time                 `json:"createdAt"`
}

func toResponse(s models.Sighting) SightingResponse {
	id, err := models.RecordIDString(s.ID)
	if err != nil {
		id = ""
	}
	resp := SightingResponse{
		ID:                id,
		ImageURL:          s.ImageURL,
		BreedName:         s.BreedName,
		Confidence:        s.Confidence,
		AlternativeBreeds: s.AlternativeBreeds,
		FunFacts:          s.FunFacts,
		Rarity:            s.Rarity,
		Difficulty:        s.Difficulty,
		PlaceOfOrigin:     s.PlaceOfOrigin,
		CreatedAt:         s.CreatedAt,
	}
	if resp.AlternativeBreeds == nil {
		resp.AlternativeBreeds = []models.AlternativeBreed{}
	}
	if resp.FunFacts == nil {
		resp.FunFacts = []string{}
	}
	return resp
}

func respondJSON(w http.ResponseWriter, data any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, message string, status int) {
	respondJSON(w, map[string]string{"error": message}, status)
}
