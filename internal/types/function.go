package types

// FunctionCode classifies a facility the location serves.
type FunctionCode string

const (
	FunctionPort                 FunctionCode = "port"
	FunctionRailTerminal         FunctionCode = "rail_terminal"
	FunctionRoadTerminal         FunctionCode = "road_terminal"
	FunctionAirport              FunctionCode = "airport"
	FunctionPostalExchange       FunctionCode = "postal_exchange"
	FunctionInlandClearanceDepot FunctionCode = "inland_clearance_depot"
	FunctionFixedTransport       FunctionCode = "fixed_transport"
	FunctionBorderCrossing       FunctionCode = "border_crossing"
	FunctionUnknown              FunctionCode = "unknown"
)

// functionTable is the positional classification table of the UN/LOCODE
// function column: position i of the column maps to functionTable[i].
var functionTable = [...]FunctionCode{
	FunctionPort,
	FunctionRailTerminal,
	FunctionRoadTerminal,
	FunctionAirport,
	FunctionPostalExchange,
	FunctionInlandClearanceDepot,
	FunctionFixedTransport,
	FunctionBorderCrossing,
}

// ParseFunctionCodes decodes the eight-character positional function column.
// A '-' marks a position as not applicable and is skipped; characters beyond
// the eight known positions are ignored. An empty column yields an empty set.
// Source order is preserved.
func ParseFunctionCodes(raw string) []FunctionCode {
	var result []FunctionCode

	for i := 0; i < len(raw) && i < len(functionTable); i++ {
		if raw[i] != '-' {
			result = append(result, functionTable[i])
		}
	}

	return result
}

// legacyFunctionByChar maps the historical single-digit encoding, where the
// character itself selects the classification regardless of its position.
var legacyFunctionByChar = map[byte]FunctionCode{
	'0': FunctionUnknown,
	'1': FunctionPort,
	'2': FunctionRailTerminal,
	'3': FunctionRoadTerminal,
	'4': FunctionAirport,
	'5': FunctionPostalExchange,
	'6': FunctionInlandClearanceDepot,
	'7': FunctionFixedTransport,
	'B': FunctionBorderCrossing,
}

// ParseLegacyFunctionCodes decodes the legacy function column dialect found in
// historical distributions: each character is matched by equality against the
// classification table. Dashes and unrecognized characters are skipped.
func ParseLegacyFunctionCodes(raw string) []FunctionCode {
	var result []FunctionCode

	for i := 0; i < len(raw); i++ {
		if fc, ok := legacyFunctionByChar[raw[i]]; ok {
			result = append(result, fc)
		}
	}

	return result
}
