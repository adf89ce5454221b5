package helpers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spektr-org/quiz/engine"
)

// ============================================================================
// CSV HELPER — Parses CSV data into []engine.Family
// ============================================================================
// One row per person: family_id,age. Rows are grouped by family id in
// first-seen order. A row with an empty age declares a family without
// persons. Extra columns are ignored.
// ============================================================================

// Column keys recognized in the header row (after snake_case normalization).
const (
	colFamilyID = "family_id"
	colAge      = "age"
)

// ParseFamiliesCSV parses CSV bytes into families.
func ParseFamiliesCSV(data []byte) ([]engine.Family, error) {
	reader := csv.NewReader(strings.NewReader(string(data)))
	reader.FieldsPerRecord = -1

	// Read header
	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV headers: %w", err)
	}

	idCol, ageCol := -1, -1
	for i, h := range headers {
		switch toSnakeCase(strings.TrimSpace(h)) {
		case colFamilyID, "id", "family":
			if idCol < 0 {
				idCol = i
			}
		case colAge:
			ageCol = i
		}
	}
	if idCol < 0 {
		return nil, fmt.Errorf("CSV header %v has no %s column", headers, colFamilyID)
	}
	if ageCol < 0 {
		return nil, fmt.Errorf("CSV header %v has no %s column", headers, colAge)
	}

	// Group rows by family id, preserving first-seen order
	families := []engine.Family{}
	index := make(map[int]int)

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}
		line, _ := reader.FieldPos(0)

		id, err := parseCell(row, idCol, colFamilyID)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		pos, exists := index[id]
		if !exists {
			pos = len(families)
			index[id] = pos
			families = append(families, engine.Family{ID: id, Persons: []engine.Person{}})
		}

		if ageCol >= len(row) || strings.TrimSpace(row[ageCol]) == "" {
			continue
		}
		age, err := parseCell(row, ageCol, colAge)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if age < 0 {
			return nil, fmt.Errorf("line %d: %s %d is negative", line, colAge, age)
		}
		families[pos].Persons = append(families[pos].Persons, engine.Person{Age: age})
	}

	return families, nil
}

func parseCell(row []string, col int, name string) (int, error) {
	if col >= len(row) {
		return 0, fmt.Errorf("missing %s", name)
	}
	v, err := strconv.Atoi(strings.TrimSpace(row[col]))
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, row[col], err)
	}
	return v, nil
}

// toSnakeCase converts "Family ID" → "family_id".
func toSnakeCase(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}
