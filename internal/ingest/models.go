package ingest

// Column order of the UN/LOCODE distribution table. The CSV dialect is
// positional; the spreadsheet dialect matches these names in its header row.
const (
	colChange = iota
	colCountry
	colLocation
	colName
	colNameWoDiacritics
	colSubdivision
	colStatus
	colFunction
	colDate
	colIATA
	colCoordinates
	colRemarks

	columnsPerRecord
)

// columnHeaders maps spreadsheet header names to positional column indexes.
var columnHeaders = map[string]int{
	"Change":           colChange,
	"Country":          colCountry,
	"Location":         colLocation,
	"Name":             colName,
	"NameWoDiacritics": colNameWoDiacritics,
	"Subdivision":      colSubdivision,
	"Status":           colStatus,
	"Function":         colFunction,
	"Date":             colDate,
	"IATA":             colIATA,
	"Coordinates":      colCoordinates,
	"Remarks":          colRemarks,
}

// RawRecord is one source row before normalization. It exists only between
// the source adapter and the normalizer.
type RawRecord struct {
	Change           string
	Country          string
	Location         string
	Name             string
	NameWoDiacritics string
	Subdivision      string
	Status           string
	Function         string
	Date             string
	IATA             string
	Coordinates      string
	Remarks          string
}

func rawFromColumns(cols []string) RawRecord {
	return RawRecord{
		Change:           cols[colChange],
		Country:          cols[colCountry],
		Location:         cols[colLocation],
		Name:             cols[colName],
		NameWoDiacritics: cols[colNameWoDiacritics],
		Subdivision:      cols[colSubdivision],
		Status:           cols[colStatus],
		Function:         cols[colFunction],
		Date:             cols[colDate],
		IATA:             cols[colIATA],
		Coordinates:      cols[colCoordinates],
		Remarks:          cols[colRemarks],
	}
}
