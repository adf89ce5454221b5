package helpers

import (
	"strings"
	"testing"

	"github.com/spektr-org/quiz/engine"
)

// ============================================================================
// CSV PARSING TESTS
// ============================================================================

var familiesCSV = []byte(`Family ID,Name,Age
1,Anna,10
2,,
1,Ben,20
3,Cleo,41
`)

func TestParseFamiliesCSV(t *testing.T) {
	families, err := ParseFamiliesCSV(familiesCSV)
	if err != nil {
		t.Fatalf("ParseFamiliesCSV failed: %v", err)
	}

	want := []engine.Family{
		{ID: 1, Persons: []engine.Person{{Age: 10}, {Age: 20}}},
		{ID: 2, Persons: []engine.Person{}},
		{ID: 3, Persons: []engine.Person{{Age: 41}}},
	}
	assertFamilies(t, families, want)
}

func TestParseFamiliesCSVHeaderOnly(t *testing.T) {
	families, err := ParseFamiliesCSV([]byte("family_id,age\n"))
	if err != nil {
		t.Fatalf("ParseFamiliesCSV failed: %v", err)
	}
	if families == nil || len(families) != 0 {
		t.Errorf("got %v, want empty non-nil slice", families)
	}
}

func TestParseFamiliesCSVErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"empty", "", "headers"},
		{"no id column", "name,age\nx,1\n", "family_id"},
		{"no age column", "family_id,name\n1,x\n", "age"},
		{"bad id", "family_id,age\none,1\n", "line 2: invalid family_id"},
		{"bad age", "family_id,age\n1,ten\n", "line 2: invalid age"},
		{"negative age", "family_id,age\n1,5\n1,-3\n", "line 3: age -3 is negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFamiliesCSV([]byte(tt.data))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := map[string]string{
		"Family ID": "family_id",
		"family-id": "family_id",
		"AGE":       "age",
	}
	for in, want := range tests {
		if got := toSnakeCase(in); got != want {
			t.Errorf("toSnakeCase(%q) = %q, want %q", in, got, want)
		}
	}
}

// ── Helpers ──────────────────────────────────────────────────────────────────

func assertFamilies(t *testing.T, got, want []engine.Family) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d families, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i].ID != want[i].ID {
			t.Errorf("family %d: ID = %d, want %d", i, got[i].ID, want[i].ID)
		}
		if len(got[i].Persons) != len(want[i].Persons) {
			t.Errorf("family %d: %d persons, want %d", i, len(got[i].Persons), len(want[i].Persons))
			continue
		}
		for j := range want[i].Persons {
			if got[i].Persons[j] != want[i].Persons[j] {
				t.Errorf("family %d person %d = %+v, want %+v", i, j, got[i].Persons[j], want[i].Persons[j])
			}
		}
	}
}
