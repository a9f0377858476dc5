// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package country

// aliases maps dataset country keys to the common names used by the external
// population and area lookup, for the countries where the two disagree.
var aliases = map[string]string{
	"Czech Republic":                   "Czechia",
	"Turkey":                           "Türkiye",
	"East Timor":                       "Timor-Leste",
	"Democratic Republic of the Congo": "DR Congo",
	"Republic of the Congo":            "Congo",
	"Ivory Coast":                      "Côte d'Ivoire",
	"Swaziland":                        "Eswatini",
	"Macedonia":                        "North Macedonia",
	"Burma":                            "Myanmar",
	"Sao Tome and Principe":            "São Tomé and Príncipe",
	"Federated States of Micronesia":   "Micronesia",
	"The Gambia":                       "Gambia",
	"The Bahamas":                      "Bahamas",
}

// LookupName returns the name under which the external lookup lists a dataset key.
func LookupName(key string) string {
	if name, ok := aliases[key]; ok {
		return name
	}
	return key
}

// Resolve re-keys figures indexed by lookup name onto the given dataset keys.
// Keys the lookup does not know are left out and read as zero.
func Resolve(byLookupName map[string]Figures, keys []string) map[string]Figures {
	out := make(map[string]Figures, len(keys))
	for _, key := range keys {
		if figures, ok := byLookupName[LookupName(key)]; ok {
			out[key] = figures
		}
	}
	return out
}
