package country

// builtin maps country/team labels found in Olympic results to the names
// used by the world map features. Keys are matched exactly.
var builtin = map[string]string{
	"USA":                                   "United States of America",
	"United States":                         "United States of America",
	"GBR":                                   "United Kingdom",
	"Great Britain":                         "United Kingdom",
	"CHN":                                   "China",
	"People's Republic of China":            "China",
	"TPE":                                   "Taiwan",
	"Chinese Taipei":                        "Taiwan",
	"KOR":                                   "South Korea",
	"Korea":                                 "South Korea",
	"Republic of Korea":                     "South Korea",
	"PRK":                                   "North Korea",
	"DPR Korea":                             "North Korea",
	"Democratic People's Republic of Korea": "North Korea",
	"IRI":                                   "Iran",
	"IR Iran":                               "Iran",
	"Islamic Republic of Iran":              "Iran",
	"ROC":                                   "Russia",
	"Russian Olympic Committee":             "Russia",
	"Russian Federation":                    "Russia",
	"Türkiye":                               "Turkey",
	"Czech Republic":                        "Czechia",
	"Hong Kong, China":                      "Hong Kong",
	"Virgin Islands, US":                    "United States Virgin Islands",
	"Virgin Islands, British":               "British Virgin Islands",
	"Republic of Moldova":                   "Moldova",
	"Moldova, Republic of":                  "Moldova",
	"Syrian Arab Republic":                  "Syria",
	"Lao People's Democratic Republic":      "Laos",
	"United Republic of Tanzania":           "Tanzania",
	"Democratic Republic of the Congo":      "Dem. Rep. Congo",
	"DR Congo":                              "Dem. Rep. Congo",
	"Congo":                                 "Republic of the Congo",
	"Dominican Republic":                    "Dominican Rep.",
	"Bosnia and Herzegovina":                "Bosnia and Herz.",
	"Central African Republic":              "Central African Rep.",
	"Equatorial Guinea":                     "Eq. Guinea",
	"South Sudan":                           "S. Sudan",
	"Solomon Islands":                       "Solomon Is.",
	"Eswatini":                              "eSwatini",
	"North Macedonia":                       "Macedonia",
	"Cote d'Ivoire":                         "Côte d'Ivoire",
	"Ivory Coast":                           "Côte d'Ivoire",
	"Kyrgyzstan":                            "Kyrgyzstan",
	"Netherlands":                           "Netherlands",
	"FRA":                                   "France",
	"GER":                                   "Germany",
	"JPN":                                   "Japan",
	"AUS":                                   "Australia",
	"ITA":                                   "Italy",
	"NED":                                   "Netherlands",
	"CAN":                                   "Canada",
	"BRA":                                   "Brazil",
	"NZL":                                   "New Zealand",
	"ESP":                                   "Spain",
	"HUN":                                   "Hungary",
}
