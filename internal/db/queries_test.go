// Package db integration tests run against a real SurrealDB container.
package db

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"github.com/breedsnap/breedsnap-go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var testDB *Client
var testContainer testcontainers.Container

// TestMain sets up and tears down the SurrealDB container for all tests.
func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		os.Exit(m.Run())
	}

	// Disable ryuk (cleanup container) as it can cause issues in some environments
	os.Setenv("TESTCONTAINERS_RYUK_DISABLED", "true")

	ctx := context.Background()

	var err error
	testContainer, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "surrealdb/surrealdb:v3.0.0-beta.1",
			ExposedPorts: []string{"8000/tcp"},
			Cmd:          []string{"start", "--log", "info", "--user", "root", "--pass", "root"},
			WaitingFor:   wait.ForLog("Started web server").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		log.Fatalf("Failed to start SurrealDB container: %v", err)
	}

	host, err := testContainer.Host(ctx)
	if err != nil {
		log.Fatalf("Failed to get container host: %v", err)
	}
	// Workaround: testcontainers may return "null" as host in some environments
	if host == "" || host == "null" {
		host = "localhost"
	}
	mappedPort, err := testContainer.MappedPort(ctx, "8000")
	if err != nil {
		log.Fatalf("Failed to get mapped port: %v", err)
	}

	testDB, err = NewClient(ctx, Config{
		URL:       fmt.Sprintf("ws://%s:%s/rpc", host, mappedPort.Port()),
		Namespace: "test",
		Database:  "test",
		Username:  "root",
		Password:  "root",
		AuthLevel: "root",
	}, nil)
	if err != nil {
		log.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := testDB.InitSchema(ctx); err != nil {
		log.Fatalf("Failed to initialize schema: %v", err)
	}

	code := m.Run()

	_ = testDB.Close(ctx)
	_ = testContainer.Terminate(ctx)

	os.Exit(code)
}

func testInput(deviceID, breed string) models.SightingInput {
	return models.SightingInput{
		DeviceID: deviceID,
		ImageURL: "data:image/jpeg;base64,/9j/4AAQSkZJRg==",
		Classification: models.Classification{
			BreedName:  breed,
			Confidence: 80,
			AlternativeBreeds: []models.AlternativeBreed{
				{Breed: "British Shorthair", Percentage: 20},
			},
			FunFacts:      []string{"Fact one.", "Fact two.", "Fact three."},
			Rarity:        models.RarityCommon,
			Difficulty:    models.DifficultyEasy,
			PlaceOfOrigin: "Russia",
		},
	}
}

func skipIfShort(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
}

func TestCreateSighting(t *testing.T) {
	skipIfShort(t)
	ctx := context.Background()

	saved, err := testDB.CreateSighting(ctx, testInput("device-create", "Russian Blue"))
	require.NoError(t, err)

	id, err := models.RecordIDString(saved.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, id, "store must assign an id")
	assert.Equal(t, "device-create", saved.DeviceID)
	assert.Equal(t, "Russian Blue", saved.BreedName)
	assert.Equal(t, float64(80), saved.Confidence)
	require.Len(t, saved.AlternativeBreeds, 1)
	assert.Equal(t, "British Shorthair", saved.AlternativeBreeds[0].Breed)
	assert.Len(t, saved.FunFacts, 3)
	assert.False(t, saved.CreatedAt.IsZero(), "created_at must be set at persistence time")
	assert.WithinDuration(t, time.Now(), saved.CreatedAt, time.Minute)
}

func TestCreateSightingNotIdempotent(t *testing.T) {
	skipIfShort(t)
	ctx := context.Background()

	first, err := testDB.CreateSighting(ctx, testInput("device-dupe", "Sphynx"))
	require.NoError(t, err)
	second, err := testDB.CreateSighting(ctx, testInput("device-dupe", "Sphynx"))
	require.NoError(t, err)

	firstID, err := models.RecordIDString(first.ID)
	require.NoError(t, err)
	secondID, err := models.RecordIDString(second.ID)
	require.NoError(t, err)
	assert.NotEqual(t, firstID, secondID, "repeated saves must create distinct records")
}

func TestListSightingsByDevice(t *testing.T) {
	skipIfShort(t)
	ctx := context.Background()

	breeds := []string{"Abyssinian", "Bengal", "Chartreux"}
	for _, breed := range breeds {
		_, err := testDB.CreateSighting(ctx, testInput("device-list", breed))
		require.NoError(t, err)
	}
	_, err := testDB.CreateSighting(ctx, testInput("device-other", "Manx"))
	require.NoError(t, err)

	sightings, err := testDB.ListSightingsByDevice(ctx, "device-list")
	require.NoError(t, err)
	require.Len(t, sightings, 3)

	// only this device's records
	for _, s := range sightings {
		assert.Equal(t, "device-list", s.DeviceID)
	}

	// newest first: last saved breed leads
	assert.Equal(t, "Chartreux", sightings[0].BreedName)
	assert.Equal(t, "Bengal", sightings[1].BreedName)
	assert.Equal(t, "Abyssinian", sightings[2].BreedName)
	for i := 1; i < len(sightings); i++ {
		assert.False(t, sightings[i].CreatedAt.After(sightings[i-1].CreatedAt),
			"sightings must be ordered by created_at descending")
	}
}

func TestSaveThenListReturnsSavedFirst(t *testing.T) {
	skipIfShort(t)
	ctx := context.Background()

	_, err := testDB.CreateSighting(ctx, testInput("device-first", "Ocicat"))
	require.NoError(t, err)
	saved, err := testDB.CreateSighting(ctx, testInput("device-first", "Savannah"))
	require.NoError(t, err)

	sightings, err := testDB.ListSightingsByDevice(ctx, "device-first")
	require.NoError(t, err)
	require.NotEmpty(t, sightings)

	assert.Equal(t, saved.ID, sightings[0].ID, "just-saved record must be the first element")
}

func TestListSightingsUnknownDevice(t *testing.T) {
	skipIfShort(t)
	ctx := context.Background()

	sightings, err := testDB.ListSightingsByDevice(ctx, "device-that-never-uploaded")
	require.NoError(t, err)
	assert.NotNil(t, sightings)
	assert.Empty(t, sightings)
}
