package amadeus

import "strings"

// Metropolitan city codes mapped to the airport the sandbox actually has
// inventory for (e.g. LON resolves but only LHR returns offers).
var cityCodeAliases = map[string]string{
	"LON": "LHR",
	"NYC": "JFK",
	"PAR": "CDG",
	"DEL": "DEL",
	"BOM": "BOM",
	"DXB": "DXB",
	"IST": "IST",
	"MAN": "MAN",
	"SFO": "SFO",
	"SIN": "SIN",
}

// NormalizeCityCode maps metropolitan codes to searchable airport codes.
// Unknown codes pass through uppercased.
func NormalizeCityCode(code string) string {
	upper := strings.ToUpper(strings.TrimSpace(code))
	if alias, ok := cityCodeAliases[upper]; ok {
		return alias
	}
	return upper
}
