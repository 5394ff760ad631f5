package dataset

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"unlocode/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestStore_WriteAllThenLoad(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "json-data")
	store := NewStore(dir, testLogger())

	coords := types.NewCoordinates(40.7128, -74.006)
	data := map[string][]*types.Record{
		"US": {
			{
				Country:          "US",
				Location:         "NYC",
				Name:             "New York",
				NameWoDiacritics: "New York",
				Subdivision:      "NY",
				Status:           types.StatusAdoptedByInternationalOrg,
				Function:         []types.FunctionCode{types.FunctionPort, types.FunctionAirport},
				Coordinates:      &coords,
			},
			{
				Country:          "US",
				Location:         "ZZZ",
				Name:             "Somewhere",
				NameWoDiacritics: "Somewhere",
				Status:           types.StatusUnknown,
				Function:         []types.FunctionCode{types.FunctionRoadTerminal},
			},
		},
		"GB": {
			{Country: "GB", Location: "LON", Name: "London", NameWoDiacritics: "London", Status: types.StatusAdoptedByInternationalOrg},
		},
	}

	require.NoError(t, store.WriteAll(data))

	loaded, err := store.Load("US")
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, data["US"][0], loaded[0])
	assert.Equal(t, data["US"][1], loaded[1])

	// Absent coordinates round-trip as JSON null, subdivision is omitted.
	content, err := os.ReadFile(filepath.Join(dir, "US.json"))
	require.NoError(t, err)
	assert.Contains(t, string(content), `"coordinates": null`)
	assert.NotContains(t, string(content), `"subdivision": ""`)
}

func TestStore_LoadMissingCountry(t *testing.T) {
	store := NewStore(t.TempDir(), testLogger())

	records, err := store.Load("XX")
	require.Error(t, err)
	assert.Nil(t, records)
}

func TestStore_LoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "US.json"), []byte("{not json"), 0o644))

	store := NewStore(dir, testLogger())

	records, err := store.Load("US")
	require.Error(t, err)
	assert.Nil(t, records)
}
