package engine

import (
	"encoding/json"
	"errors"
	"slices"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/text/language"
)

// ============================================================================
// DISPATCH
// ============================================================================

func TestExecuteEven(t *testing.T) {
	result, err := Execute(QuerySpec{Query: "even", Limit: 10})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !result.Success || result.Type != QueryEven {
		t.Errorf("result = %+v", result)
	}
	if !slices.Equal(result.Numbers, []int{2, 4, 6, 8}) {
		t.Errorf("Numbers = %v", result.Numbers)
	}
	assertEqual(t, result.Reply, "Found 4 even numbers below 10.", "reply")
	assertEqual(t, result.Title, "Even numbers below 10", "title")
	assertEqual(t, result.TableData.Summary.Values["value"], "20", "sum of evens")
	if len(result.TableData.Rows) != 4 {
		t.Errorf("table has %d rows, want 4", len(result.TableData.Rows))
	}
}

func TestExecuteSquares(t *testing.T) {
	result, err := Execute(QuerySpec{Query: "squares", Limit: 50})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !slices.Equal(result.Numbers, []int{2401, 1764, 1225, 784, 441, 196, 49}) {
		t.Errorf("Numbers = %v", result.Numbers)
	}
	assertEqual(t, result.Data.Value, "2,401", "headline")
	assertEqual(t, result.Reply, "Found 7 squares of multiples of 7 below 50; the largest is 2,401.", "reply")
}

func TestExecuteSquaresEmpty(t *testing.T) {
	result, err := Execute(QuerySpec{Query: "squares", Limit: 0})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	assertEqual(t, result.Reply, "No multiples of 7 below 0.", "reply")
	if len(result.TableData.Rows) != 0 {
		t.Errorf("rows = %v, want none", result.TableData.Rows)
	}
}

func TestExecuteFamilies(t *testing.T) {
	result, err := Execute(QuerySpec{
		Query: "families",
		Families: []Family{
			{ID: 1, Persons: []Person{{Age: 10}, {Age: 20}}},
			{ID: 2},
		},
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	want := []FamilySummary{{1, 15, 2}, {2, 0, 0}}
	if !slices.Equal(result.Families, want) {
		t.Errorf("Families = %+v, want %+v", result.Families, want)
	}
	assertEqual(t, result.Reply, "2 families with 2 members; average age 15.", "reply")
	assertEqual(t, result.TableData.Summary.Values["member_count"], "2", "member total")
}

func TestExecuteLetters(t *testing.T) {
	result, err := Execute(QuerySpec{Query: " Letters ", Text: "Hello, World! 123"})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if len(result.Letters) != 7 {
		t.Fatalf("Letters = %v", result.Letters)
	}
	assertEqual(t, result.Data.Value, "L", "most frequent letter")
	assertEqual(t, result.Reply, "Counted 10 letters; the most frequent is L (3).", "reply")
}

func TestExecuteLettersEmpty(t *testing.T) {
	result, err := Execute(QuerySpec{Query: "letters"})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	assertEqual(t, result.Reply, "No letters found.", "reply")
}

// ============================================================================
// ERRORS
// ============================================================================

func TestExecuteErrors(t *testing.T) {
	tests := []struct {
		spec QuerySpec
		want error
	}{
		{QuerySpec{Query: "even", Limit: 0}, ErrOutOfRange},
		{QuerySpec{Query: "squares", Limit: 50000}, ErrOverflow},
		{QuerySpec{Query: "families"}, ErrNilFamilies},
		{QuerySpec{Query: "primes"}, ErrUnknownQuery},
		{QuerySpec{}, ErrUnknownQuery},
	}

	for _, tt := range tests {
		result, err := Execute(tt.spec)
		if !errors.Is(err, tt.want) {
			t.Errorf("Execute(%+v) error = %v, want %v", tt.spec, err, tt.want)
		}
		if result != nil {
			t.Errorf("Execute(%+v) returned a result alongside an error", tt.spec)
		}
	}
}

// ============================================================================
// OPTIONS
// ============================================================================

func TestExecuteWithLanguageAndTitle(t *testing.T) {
	result, err := Execute(QuerySpec{Query: "squares", Limit: 50},
		WithLanguage(language.German),
		WithTitle("Quadrate"),
	)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	assertEqual(t, result.Data.Value, "2.401", "german grouping")
	assertEqual(t, result.Title, "Quadrate", "title")
	assertEqual(t, result.TableData.Title, "Quadrate", "table title")
}

func TestExecuteWithLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	if _, err := Execute(QuerySpec{Query: "even", Limit: 5}, WithLogger(zap.New(core))); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if n := logs.FilterMessage("query complete").Len(); n != 1 {
		t.Errorf("got %d completion entries, want 1", n)
	}

	core, logs = observer.New(zapcore.DebugLevel)
	_, _ = Execute(QuerySpec{Query: "even", Limit: 0}, WithLogger(zap.New(core)))
	if n := logs.FilterMessage("query rejected").Len(); n != 1 {
		t.Errorf("got %d rejection entries, want 1", n)
	}
}

// ── Helpers ──────────────────────────────────────────────────────────────────

func assertEqual(t *testing.T, got, want, msg string) {
	t.Helper()
	if got != want {
		t.Errorf("%s: got %q, want %q", msg, got, want)
	}
}

func TestResultJSONKeepsEmptyResults(t *testing.T) {
	result, err := Execute(QuerySpec{Query: "even", Limit: 2})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	b, err := json.Marshal(result)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), `"numbers":[]`) {
		t.Errorf("json %s lacks an empty numbers array", b)
	}
}

func TestNormalizeQuery(t *testing.T) {
	for _, in := range []string{"families", " Families", "FAMILIES\t", "\nfamilies "} {
		assertEqual(t, NormalizeQuery(in), QueryFamilies, "normalize "+in)
	}
}
