package engine

import "fmt"

// FamilyStatistics returns one summary per family, in input order.
//
// A nil slice is treated as a missing argument and rejected with
// ErrNilFamilies; an empty slice yields an empty result. AverageAge is the
// plain float64 mean of the persons' ages, or 0 for a family without persons.
func FamilyStatistics(families []Family) ([]FamilySummary, error) {
	if families == nil {
		return nil, fmt.Errorf("family statistics: %w", ErrNilFamilies)
	}

	summaries := make([]FamilySummary, len(families))
	for i, family := range families {
		persons := personAdapter.Bind(family.Persons)
		summaries[i] = FamilySummary{
			FamilyID:    family.ID,
			AverageAge:  AvgMeasure(persons, "age"),
			MemberCount: persons.Len(),
		}
	}
	return summaries, nil
}
