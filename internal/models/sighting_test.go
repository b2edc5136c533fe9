package models

import (
	"testing"

	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"
)

func TestApplyDefaults(t *testing.T) {
	t.Run("empty classification gets all defaults", func(t *testing.T) {
		var c Classification
		c.ApplyDefaults()

		if c.BreedName != "Unknown" {
			t.Errorf("BreedName = %q, want %q", c.BreedName, "Unknown")
		}
		if c.Confidence != 0 {
			t.Errorf("Confidence = %v, want 0", c.Confidence)
		}
		if c.AlternativeBreeds == nil || len(c.AlternativeBreeds) != 0 {
			t.Errorf("AlternativeBreeds = %v, want empty non-nil slice", c.AlternativeBreeds)
		}
		if c.FunFacts == nil || len(c.FunFacts) != 0 {
			t.Errorf("FunFacts = %v, want empty non-nil slice", c.FunFacts)
		}
		if c.Rarity != RarityCommon {
			t.Errorf("Rarity = %q, want %q", c.Rarity, RarityCommon)
		}
		if c.Difficulty != DifficultyEasy {
			t.Errorf("Difficulty = %q, want %q", c.Difficulty, DifficultyEasy)
		}
		if c.PlaceOfOrigin != "Unknown" {
			t.Errorf("PlaceOfOrigin = %q, want %q", c.PlaceOfOrigin, "Unknown")
		}
	})

	t.Run("populated fields are left alone", func(t *testing.T) {
		c := Classification{
			BreedName:         "Maine Coon",
			Confidence:        82,
			AlternativeBreeds: []AlternativeBreed{{Breed: "Norwegian Forest Cat", Percentage: 18}},
			FunFacts:          []string{"One of the largest domestic breeds."},
			Rarity:            RarityUncommon,
			Difficulty:        DifficultyMedium,
			PlaceOfOrigin:     "United States",
		}
		c.ApplyDefaults()

		if c.BreedName != "Maine Coon" || c.Confidence != 82 {
			t.Errorf("primary identification changed: %q/%v", c.BreedName, c.Confidence)
		}
		if c.Rarity != RarityUncommon || c.Difficulty != DifficultyMedium {
			t.Errorf("rarity/difficulty changed: %q/%q", c.Rarity, c.Difficulty)
		}
		if len(c.AlternativeBreeds) != 1 || len(c.FunFacts) != 1 {
			t.Errorf("slices changed: %v / %v", c.AlternativeBreeds, c.FunFacts)
		}
	})
}

func TestRecordIDString(t *testing.T) {
	t.Run("string id", func(t *testing.T) {
		id := surrealmodels.RecordID{Table: "sighting", ID: "01JC0ZV7Q8R9T2K4M6N8P0S2V4"}
		got, err := RecordIDString(id)
		if err != nil {
			t.Fatalf("RecordIDString returned error: %v", err)
		}
		if got != "01JC0ZV7Q8R9T2K4M6N8P0S2V4" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("non-string id", func(t *testing.T) {
		id := surrealmodels.RecordID{Table: "sighting", ID: 42}
		if _, err := RecordIDString(id); err == nil {
			t.Error("expected error for non-string ID")
		}
	})
}
