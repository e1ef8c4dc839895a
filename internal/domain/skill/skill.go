package skill

import "strings"

// Skill is a single entry in a profile's teach or learn list. Entries carry
// no identity of their own: duplicates by name are allowed and list order is
// preserved for display.
type Skill struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Proficiency string `json:"proficiency"`
}

const (
	ProficiencyBeginner     = "beginner"
	ProficiencyIntermediate = "intermediate"
	ProficiencyAdvanced     = "advanced"
	ProficiencyExpert       = "expert"
)

var Categories = []string{
	"Programming",
	"Frontend",
	"Backend",
	"Mobile",
	"AI",
	"Design",
	"DevOps",
	"Database",
	"Cloud",
	"Other",
}

var Proficiencies = []string{
	ProficiencyBeginner,
	ProficiencyIntermediate,
	ProficiencyAdvanced,
	ProficiencyExpert,
}

// NormalizeName is the canonical form used for matching: surrounding
// whitespace is ignored and comparison is case-insensitive.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func ValidCategory(c string) bool {
	for _, it := range Categories {
		if it == c {
			return true
		}
	}
	return false
}

func ValidProficiency(p string) bool {
	for _, it := range Proficiencies {
		if it == p {
			return true
		}
	}
	return false
}
