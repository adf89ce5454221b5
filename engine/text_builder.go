package engine

// ============================================================================
// TEXT BUILDER — Headline figure per query type
// ============================================================================
//   even      → how many even numbers
//   squares   → the largest square
//   families  → mean age across every person of every family
//   letters   → the most frequent letter
// ============================================================================

// BuildText produces the headline TextData for a bound result view.
func BuildText(query string, view RecordView, f Formatter) *TextData {
	switch query {
	case QueryEven:
		n := view.Len()
		return &TextData{Value: f.Int(n), RawValue: float64(n), Count: n}

	case QuerySquares:
		largest, _ := MaxMeasure(view, "value")
		return &TextData{Value: f.Measure(largest), RawValue: largest, Count: view.Len()}

	case QueryFamilies:
		return buildFamiliesText(view, f)

	case QueryLetters:
		return buildLettersText(view, f)
	}
	return &TextData{Value: "0"}
}

// buildFamiliesText weights each family's average by its member count, so
// the headline is the mean over persons rather than over families.
func buildFamiliesText(view RecordView, f Formatter) *TextData {
	members := SumMeasure(view, "member_count")
	var ageSum float64
	for i := 0; i < view.Len(); i++ {
		ageSum += view.Measure(i, "average_age") * view.Measure(i, "member_count")
	}

	var mean float64
	if members > 0 {
		mean = ageSum / members
	}
	return &TextData{Value: f.Measure(mean), RawValue: mean, Count: int(members)}
}

func buildLettersText(view RecordView, f Formatter) *TextData {
	top, at := MaxMeasure(view, "count")
	if at < 0 {
		return &TextData{Value: "", RawValue: 0, Count: 0}
	}
	return &TextData{
		Value:    view.Dimension(at, "letter"),
		RawValue: top,
		Count:    int(SumMeasure(view, "count")),
	}
}
