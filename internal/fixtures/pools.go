package fixtures

type nation struct {
	code string // NOC code, written to the country column
	long string // written to country_long; some use alias spellings
}

var nations = []nation{
	{"USA", "United States"},
	{"CHN", "People's Republic of China"},
	{"JPN", "Japan"},
	{"FRA", "France"},
	{"GBR", "Great Britain"},
	{"AUS", "Australia"},
	{"KOR", "Republic of Korea"},
	{"NED", "Netherlands"},
	{"GER", "Germany"},
	{"ITA", "Italy"},
	{"CAN", "Canada"},
	{"BRA", "Brazil"},
	{"NZL", "New Zealand"},
	{"KEN", "Kenya"},
	{"TPE", "Chinese Taipei"},
	{"ESP", "Spain"},
}

var disciplines = []string{
	"Athletics", "Swimming", "Cycling Track", "Rowing", "Judo", "Fencing",
	"Gymnastics Artistic", "Wrestling", "Shooting", "Canoe Sprint",
	"Sailing", "Boxing", "Weightlifting", "Table Tennis", "Diving",
}

var medalTypes = []string{"Gold Medal", "Silver Medal", "Bronze Medal"}

var givenNames = []string{
	"Ada", "Ben", "Chloe", "Daniel", "Elena", "Felix", "Grace", "Hugo",
	"Ines", "Jonas", "Kaito", "Lena", "Mateo", "Nadia", "Oscar", "Priya",
	"Quentin", "Rosa", "Samuel", "Tara", "Umar", "Vera", "Wei", "Ximena",
	"Yuki", "Zara", "Arjun", "Bianca", "Caleb", "Dina",
}

var familyNames = []string{
	"Adams", "Bauer", "Costa", "Dubois", "Evans", "Fischer", "Garcia",
	"Hansen", "Ito", "Jensen", "Kim", "Lopez", "Moreau", "Nakamura",
	"Okafor", "Petrov", "Quinn", "Rossi", "Silva", "Tanaka", "Usman",
	"Visser", "Wang", "Xu", "Yilmaz", "Zhang", "Andersen", "Bakker",
	"Chen", "Duarte",
}

// MaxAthletes is the number of distinct names the pools can produce.
func MaxAthletes() int {
	return len(givenNames) * len(familyNames)
}
