package engine

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// ============================================================================
// EXECUTOR — Dispatcher
// ============================================================================
// Entry point: Execute(spec, opts...)
//
// Pipeline:
//   1. Normalize the query name
//   2. Run the matching pure function
//   3. Bind the typed result to a RecordView
//   4. Build table + text headline
//   5. Compose the reply
//
// Errors from the pure functions are returned wrapped; no partial Result.
// ============================================================================

// Execute runs the query named by spec and returns a render-ready Result.
//
// Options:
//   - WithLogger(l) — debug/info logging of each run
//   - WithLanguage(tag) — locale for number formatting
//   - WithTitle(title) — overrides the default table title
func Execute(spec QuerySpec, opts ...Option) (*Result, error) {
	cfg := applyOptions(opts)
	f := NewFormatter(cfg.Language)
	query := NormalizeQuery(spec.Query)
	log := cfg.Logger.With(zap.String("query", query))

	result := &Result{Type: query}
	var view RecordView
	var totals []string

	switch query {
	case QueryEven:
		log.Debug("running query", zap.Int("limit", spec.Limit))
		numbers, err := EvenNumbers(spec.Limit)
		if err != nil {
			log.Warn("query rejected", zap.Error(err))
			return nil, err
		}
		result.Numbers = numbers
		result.Title = fmt.Sprintf("Even numbers below %s", f.Int(spec.Limit))
		view = numberAdapter.Bind(numbers)
		totals = []string{"value"}

	case QuerySquares:
		log.Debug("running query", zap.Int("limit", spec.Limit))
		numbers, err := Squares(spec.Limit)
		if err != nil {
			log.Warn("query rejected", zap.Error(err))
			return nil, err
		}
		result.Numbers = numbers
		result.Title = fmt.Sprintf("Squares of multiples of 7 below %s", f.Int(spec.Limit))
		view = numberAdapter.Bind(numbers)

	case QueryFamilies:
		log.Debug("running query", zap.Int("families", len(spec.Families)))
		summaries, err := FamilyStatistics(spec.Families)
		if err != nil {
			log.Warn("query rejected", zap.Error(err))
			return nil, err
		}
		result.Families = summaries
		result.Title = "Family statistics"
		view = familySummaryAdapter.Bind(summaries)
		totals = []string{"member_count"}

	case QueryLetters:
		log.Debug("running query", zap.Int("text_bytes", len(spec.Text)))
		letters := LetterStatistics(spec.Text)
		result.Letters = letters
		result.Title = "Letter statistics"
		view = letterAdapter.Bind(letters)
		totals = []string{"count"}

	default:
		return nil, fmt.Errorf("execute %q: %w", spec.Query, ErrUnknownQuery)
	}

	if cfg.Title != "" {
		result.Title = cfg.Title
	}

	result.TableData = BuildTable(result.Title, view, f, totals...)
	result.Data = BuildText(query, view, f)
	result.Reply = buildReply(query, spec, result.Data, f)
	result.Success = true

	log.Info("query complete", zap.Int("rows", view.Len()))
	return result, nil
}

// NormalizeQuery folds a query name to the form Execute dispatches on.
func NormalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// buildReply composes the human-readable one-liner for a result.
func buildReply(query string, spec QuerySpec, data *TextData, f Formatter) string {
	switch query {
	case QueryEven:
		return fmt.Sprintf("Found %s even numbers below %s.", data.Value, f.Int(spec.Limit))

	case QuerySquares:
		if data.Count == 0 {
			return fmt.Sprintf("No multiples of 7 below %s.", f.Int(spec.Limit))
		}
		return fmt.Sprintf("Found %s squares of multiples of 7 below %s; the largest is %s.",
			f.Int(data.Count), f.Int(spec.Limit), data.Value)

	case QueryFamilies:
		if data.Count == 0 {
			return fmt.Sprintf("%s families, no members.", f.Int(len(spec.Families)))
		}
		return fmt.Sprintf("%s families with %s members; average age %s.",
			f.Int(len(spec.Families)), f.Int(data.Count), data.Value)

	case QueryLetters:
		if data.Count == 0 {
			return "No letters found."
		}
		return fmt.Sprintf("Counted %s letters; the most frequent is %s (%s).",
			f.Int(data.Count), data.Value, f.Measure(data.RawValue))
	}
	return ""
}
