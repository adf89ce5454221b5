package engine

import "encoding/json"

// ============================================================================
// QUIZ ENGINE TYPES — Records, Summaries, Query Contract
// ============================================================================
// Input records (Family, Person) are owned by the caller and never mutated.
// Output records (FamilySummary, LetterOccurrence) are built per call.
// ============================================================================

// ============================================================================
// INPUT RECORDS
// ============================================================================

// Person is a family member. Only the age matters to the engine.
type Person struct {
	Age int `json:"age" yaml:"age"`
}

// Family groups zero or more persons under an identifier.
type Family struct {
	ID      int      `json:"id" yaml:"id"`
	Persons []Person `json:"persons" yaml:"persons"`
}

// ============================================================================
// OUTPUT RECORDS
// ============================================================================

// FamilySummary is the per-family aggregate produced by FamilyStatistics.
// MemberCount == 0 implies AverageAge == 0.
type FamilySummary struct {
	FamilyID    int     `json:"familyId"`
	AverageAge  float64 `json:"averageAge"`
	MemberCount int     `json:"memberCount"`
}

// LetterOccurrence is a (letter, count) pair. Letter is always 'A'..'Z'
// and Count is always positive.
type LetterOccurrence struct {
	Letter rune `json:"letter"`
	Count  int  `json:"count"`
}

// MarshalJSON renders the letter as a one-character string instead of a code point.
func (o LetterOccurrence) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Letter string `json:"letter"`
		Count  int    `json:"count"`
	}{string(o.Letter), o.Count})
}

// ============================================================================
// QUERYSPEC — Contract between caller (CLI, tests) and Execute
// ============================================================================

// Query names understood by Execute.
const (
	QueryEven     = "even"
	QuerySquares  = "squares"
	QueryFamilies = "families"
	QueryLetters  = "letters"
)

// QuerySpec names one query and carries its input.
// Only the input field matching Query is read.
type QuerySpec struct {
	Query    string   `json:"query"`              // "even", "squares", "families", "letters"
	Limit    int      `json:"limit,omitempty"`    // exclusive upper limit for even/squares
	Text     string   `json:"text,omitempty"`     // input for letters
	Families []Family `json:"families,omitempty"` // input for families; nil = absent
}

// ============================================================================
// RESULT — Render-ready output
// ============================================================================

// Result is the executor's render-ready output.
type Result struct {
	Success bool   `json:"success"`
	Type    string `json:"type"` // mirrors QuerySpec.Query
	Title   string `json:"title"`
	Reply   string `json:"reply"`

	// Exactly one of these is populated based on Type; the others stay nil.
	Numbers  []int              `json:"numbers"`
	Families []FamilySummary    `json:"families"`
	Letters  []LetterOccurrence `json:"letters"`

	TableData *TableData `json:"tableData,omitempty"`
	Data      *TextData  `json:"data,omitempty"`
}

// ============================================================================
// TABLE TYPES
// ============================================================================

// TableData defines how to render a table.
type TableData struct {
	Title   string     `json:"title"`
	Columns []Column   `json:"columns"`
	Rows    [][]string `json:"rows"`
	Summary *Summary   `json:"summary,omitempty"`
}

// Column defines a table column.
type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Type  string `json:"type"`  // "text", "number"
	Align string `json:"align"` // "left", "right"
}

// Summary provides totals for a table.
type Summary struct {
	Label  string            `json:"label"`
	Values map[string]string `json:"values"`
}

// ============================================================================
// TEXT TYPES
// ============================================================================

// TextData is the headline figure of a result.
type TextData struct {
	Value    string  `json:"value"`
	RawValue float64 `json:"rawValue"`
	Count    int     `json:"count"`
}
