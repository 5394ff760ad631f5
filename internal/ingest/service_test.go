package ingest

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"unlocode/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const csvFixture = `Change,Country,Location,Name,NameWoDiacritics,Subdivision,Status,Function,Date,IATA,Coordinates,Remarks
,US,NYC,New York,New York,NY,AI,12345---,0401,,4042N 07400W,
,US,BOS,Boston,Boston,MA,AI,1-345---,0401,,4221N 07104W,
,GB,LON,London,London,,AI,1--45---,0401,,5130N 00008W,
,US,,Nameless,Nameless,TN,RQ,--3-----,0401,,,
,,XYZ,Nowhere,Nowhere,,RQ,--3-----,0401,,,
,"DE","HAM","Hamburg, Hansestadt",Hamburg,HH,AI,12345---,0401,,5333N 01000E,
`

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestIngest_GroupsByCountryPreservingOrder(t *testing.T) {
	svc := NewService(nil, DialectPositional, testLogger())

	data, err := svc.Ingest(NewCSVSource(strings.NewReader(csvFixture)))
	require.NoError(t, err)

	// Rows without a country or location code are dropped.
	require.Len(t, data, 3)
	require.Len(t, data["US"], 2)
	require.Len(t, data["GB"], 1)
	require.Len(t, data["DE"], 1)

	assert.Equal(t, "NYC", data["US"][0].Location)
	assert.Equal(t, "BOS", data["US"][1].Location)

	// Quoted fields survive, commas included.
	assert.Equal(t, "Hamburg, Hansestadt", data["DE"][0].Name)
}

func TestIngest_NormalizesFields(t *testing.T) {
	svc := NewService(nil, DialectPositional, testLogger())

	data, err := svc.Ingest(NewCSVSource(strings.NewReader(csvFixture)))
	require.NoError(t, err)

	nyc := data["US"][0]
	assert.Equal(t, "NY", nyc.Subdivision)
	assert.Equal(t, types.StatusAdoptedByInternationalOrg, nyc.Status)
	assert.Equal(t, []types.FunctionCode{
		types.FunctionPort, types.FunctionRailTerminal, types.FunctionRoadTerminal,
		types.FunctionAirport, types.FunctionPostalExchange,
	}, nyc.Function)
	require.NotNil(t, nyc.Coordinates)
	assert.InDelta(t, 40.7, nyc.Coordinates.Lat, 1e-9)
	assert.InDelta(t, -74.0, nyc.Coordinates.Lon, 1e-9)
	assert.False(t, nyc.Geocoded)
}

func TestIngest_BadRowsDegradeWithoutDroppingFile(t *testing.T) {
	const fixture = `Change,Country,Location,Name,NameWoDiacritics,Subdivision,Status,Function,Date,IATA,Coordinates,Remarks
,US,AAA,Alpha,Alpha,,ZZ,--------,0401,,NOTACOORDINATE,
,US,BBB
,US,CCC,Gamma,Gamma,,AI,1-------,0401,,4042N 07400W,
`
	svc := NewService(nil, DialectPositional, testLogger())

	data, err := svc.Ingest(NewCSVSource(strings.NewReader(fixture)))
	require.NoError(t, err)
	require.Len(t, data["US"], 2)

	// Malformed coordinate column degrades to absent, unknown status token to
	// the explicit unknown value.
	alpha := data["US"][0]
	assert.Nil(t, alpha.Coordinates)
	assert.Equal(t, types.StatusUnknown, alpha.Status)

	assert.Equal(t, "CCC", data["US"][1].Location)
}

func TestIngest_LegacyDialect(t *testing.T) {
	const fixture = `Change,Country,Location,Name,NameWoDiacritics,Subdivision,Status,Function,Date,IATA,Coordinates,Remarks
,US,AAA,Alpha,Alpha,,AI,4,0401,,,
`
	svc := NewService(nil, DialectLegacy, testLogger())

	data, err := svc.Ingest(NewCSVSource(strings.NewReader(fixture)))
	require.NoError(t, err)

	require.Len(t, data["US"], 1)
	assert.Equal(t, []types.FunctionCode{types.FunctionAirport}, data["US"][0].Function)
}

func TestXLSXSource_MatchesColumnsByHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "locode.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	// Shuffled column order: the adapter must match by header name.
	rows := [][]any{
		{"Country", "Location", "Coordinates", "Name", "NameWoDiacritics", "Status", "Function", "Subdivision"},
		{"US", "NYC", "4042N 07400W", "New York", "New York", "AI", "1--4----", "NY"},
		{"US", "", "", "Nameless", "Nameless", "RQ", "", ""},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	svc := NewService(nil, DialectPositional, testLogger())

	data, err := svc.Ingest(NewXLSXSource(path))
	require.NoError(t, err)

	require.Len(t, data["US"], 1)
	rec := data["US"][0]
	assert.Equal(t, "New York", rec.Name)
	assert.Equal(t, "NY", rec.Subdivision)
	assert.Equal(t, []types.FunctionCode{types.FunctionPort, types.FunctionAirport}, rec.Function)
	require.NotNil(t, rec.Coordinates)
	assert.InDelta(t, -74.0, rec.Coordinates.Lon, 1e-9)
}

type settingResolver struct {
	coords types.Coordinates
}

func (r *settingResolver) Resolve(_ context.Context, rec *types.Record) bool {
	c := r.coords
	rec.Coordinates = &c
	rec.Geocoded = true
	return true
}

func (r *settingResolver) EnrichAll(ctx context.Context, data map[string][]*types.Record) {
	for _, records := range data {
		for _, rec := range records {
			if rec.NeedsCoordinates() {
				r.Resolve(ctx, rec)
			}
		}
	}
}

func TestEnrich_FillsOnlyMissingCoordinates(t *testing.T) {
	fromSource := types.NewCoordinates(40.7, -74.0)
	data := map[string][]*types.Record{
		"US": {
			{Country: "US", Location: "NYC", Name: "New York", Coordinates: &fromSource},
			{Country: "US", Location: "ZZZ", Name: "Somewhere"},
		},
	}

	svc := NewService(&settingResolver{coords: types.NewCoordinates(1, 2)}, DialectPositional, testLogger())
	svc.Enrich(context.Background(), data)

	assert.False(t, data["US"][0].Geocoded)
	assert.Equal(t, fromSource, *data["US"][0].Coordinates)

	require.NotNil(t, data["US"][1].Coordinates)
	assert.True(t, data["US"][1].Geocoded)
}
