package domain

import "slices"

const DefaultCountry = "France"

var Countries = []string{
	"France", "États-Unis", "Royaume-Uni", "Allemagne", "Japon",
	"Canada", "Australie", "Italie", "Espagne", "Brésil",
}

const (
	PrimarySchoolAudience = "Primary school children"
	HighSchoolAudience    = "High school children"
	TechSavvyAudience     = "Tech Savvy people"
	ElderlyAudience       = "Elderly"
	YoungAdultsAudience   = "Young adults eager to learn"
)

var Audiences = []string{
	PrimarySchoolAudience,
	HighSchoolAudience,
	TechSavvyAudience,
	ElderlyAudience,
	YoungAdultsAudience,
}

func IsKnownAudience(audience string) bool {
	return slices.Contains(Audiences, audience)
}

func IsKnownCountry(country string) bool {
	return slices.Contains(Countries, country)
}
