package doctor

import (
	"strings"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// Filter holds the optional predicates of a doctor search. Empty fields, or
// ones equal to NoFilter, are skipped.
type Filter struct {
	Name      string
	Specialty string
	TimeOfDay TimeOfDay
}

func NewFilter(name, specialty, timeOfDay string) (Filter, error) {
	tod, err := ParseTimeOfDay(timeOfDay)
	if err != nil {
		return Filter{}, err
	}
	return Filter{
		Name:      normalize(name),
		Specialty: normalize(specialty),
		TimeOfDay: tod,
	}, nil
}

func (f Filter) Matches(d *models.Doctor) bool {
	if f.Name != "" && !strings.Contains(strings.ToLower(d.Name), strings.ToLower(f.Name)) {
		return false
	}
	if f.Specialty != "" && !strings.EqualFold(d.Specialty, f.Specialty) {
		return false
	}
	return MatchesTimeOfDay(d, f.TimeOfDay)
}

// Apply keeps input order.
func (f Filter) Apply(doctors []models.Doctor) []models.Doctor {
	out := make([]models.Doctor, 0, len(doctors))
	for i := range doctors {
		if f.Matches(&doctors[i]) {
			out = append(out, doctors[i])
		}
	}
	return out
}

func normalize(v string) string {
	v = strings.TrimSpace(v)
	if strings.EqualFold(v, NoFilter) {
		return ""
	}
	return v
}
