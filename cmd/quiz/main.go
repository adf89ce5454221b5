package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/spektr-org/quiz/engine"
	"github.com/spektr-org/quiz/helpers"
	"github.com/spektr-org/quiz/logger"
)

// ============================================================================
// QUIZ CLI — Run one query and render the result
// ============================================================================

const version = "0.1.0"

func main() {
	cfg, err := loadEnvConfig()
	if err != nil {
		fatalf("%v", err)
	}

	// ── Flags ─────────────────────────────────────────────────────────────
	query := flag.String("query", "", "Query to run: even, squares, families, letters (required)")
	limit := flag.Int("limit", 0, "Exclusive upper limit for even/squares")
	text := flag.String("text", "", "Text to analyze for letters (reads stdin when empty)")
	filePath := flag.String("file", "", "Families file (.csv, .yaml, .yml, .json) for families")
	format := flag.String("format", cfg.Format, "Output format: json, pretty, text, csv")
	outFile := flag.String("out", "", "Write output to file instead of stdout")
	showVersion := flag.Bool("version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `quiz — declarative queries over ranges, families and text

Usage:
  quiz --query even --limit 10
  quiz --query squares --limit 50 --format text
  quiz --query families --file families.csv --format csv
  quiz --query letters --text "Hello, World!" --format pretty

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Environment:
  QUIZ_FORMAT       Default output format (json)
  QUIZ_LOG_MODE     dev or prod (dev)
  QUIZ_LOG_LEVEL    debug, info, warn, error (info)
  QUIZ_LANG         Locale for number formatting, BCP 47 (en)

Families CSV:
  family_id,age
  1,10
  1,20
  2,            <- family without persons
`)
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("quiz %s\n", version)
		os.Exit(0)
	}

	if *query == "" {
		fmt.Fprintln(os.Stderr, "Error: --query is required")
		flag.Usage()
		os.Exit(1)
	}

	opts := runOptions{
		query:  *query,
		limit:  *limit,
		text:   *text,
		file:   *filePath,
		format: *format,
		out:    *outFile,
	}
	if err := run(cfg, opts, os.Stdin, os.Stdout); err != nil {
		fatalf("%v", err)
	}
}

// runOptions carries the parsed flags.
type runOptions struct {
	query  string
	limit  int
	text   string
	file   string
	format string
	out    string
}

// run executes one query and renders it. Every failure is returned so the
// deferred logger sync runs before main exits.
func run(cfg envConfig, opts runOptions, stdin io.Reader, stdout io.Writer) error {
	if err := checkFormat(opts.format); err != nil {
		return err
	}

	lang, err := language.Parse(cfg.Lang)
	if err != nil {
		return fmt.Errorf("invalid QUIZ_LANG %q: %w", cfg.Lang, err)
	}

	log, err := logger.New(cfg.LogMode, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	spec, err := buildSpec(opts, stdin)
	if err != nil {
		return err
	}
	if spec.Families != nil {
		log.Info("loaded families", zap.String("file", opts.file), zap.Int("count", len(spec.Families)))
	}

	result, err := engine.Execute(spec, engine.WithLogger(log), engine.WithLanguage(lang))
	if err != nil {
		return describe(err)
	}

	if opts.out == "" {
		return render(stdout, result, opts.format)
	}

	// Render fully before touching the output file.
	var buf bytes.Buffer
	if err := render(&buf, result, opts.format); err != nil {
		return err
	}
	if err := os.WriteFile(opts.out, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	log.Info("output written", zap.String("file", opts.out), zap.String("format", opts.format))
	return nil
}

// buildSpec turns flags into a QuerySpec, loading the input the query needs.
func buildSpec(opts runOptions, stdin io.Reader) (engine.QuerySpec, error) {
	query := engine.NormalizeQuery(opts.query)
	spec := engine.QuerySpec{Query: query, Limit: opts.limit, Text: opts.text}

	switch query {
	case engine.QueryFamilies:
		if opts.file == "" {
			return engine.QuerySpec{}, errors.New("--file is required for families")
		}
		families, err := helpers.LoadFamilies(opts.file)
		if err != nil {
			return engine.QuerySpec{}, err
		}
		spec.Families = families
	case engine.QueryLetters:
		if spec.Text == "" {
			data, err := io.ReadAll(stdin)
			if err != nil {
				return engine.QuerySpec{}, fmt.Errorf("failed to read stdin: %w", err)
			}
			spec.Text = string(data)
		}
	}
	return spec, nil
}

// ============================================================================
// RENDERING
// ============================================================================

func checkFormat(format string) error {
	switch format {
	case "json", "pretty", "text", "csv":
		return nil
	}
	return fmt.Errorf("unknown format %q (expected json, pretty, text or csv)", format)
}

func render(w io.Writer, result *engine.Result, format string) error {
	if err := checkFormat(format); err != nil {
		return err
	}
	switch format {
	case "csv":
		return writeCSV(w, result.TableData)
	case "text":
		_, err := fmt.Fprintln(w, result.Reply)
		return err
	}
	return writeJSON(w, result, format == "pretty")
}

// writeCSV writes the table as CSV: header labels, then one line per row.
func writeCSV(w io.Writer, table *engine.TableData) error {
	cw := csv.NewWriter(w)

	headers := make([]string, len(table.Columns))
	for i, c := range table.Columns {
		headers[i] = c.Label
	}
	if err := cw.Write(headers); err != nil {
		return err
	}
	if err := cw.WriteAll(table.Rows); err != nil {
		return err
	}
	return cw.Error()
}

func writeJSON(w io.Writer, v any, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	return nil
}

// ============================================================================
// HELPERS
// ============================================================================

// describe adds a usage hint to engine errors a CLI user can fix.
func describe(err error) error {
	switch {
	case errors.Is(err, engine.ErrOutOfRange):
		return fmt.Errorf("%w (use --limit 1 or greater)", err)
	case errors.Is(err, engine.ErrOverflow):
		return fmt.Errorf("%w (use a smaller --limit)", err)
	case errors.Is(err, engine.ErrUnknownQuery):
		return fmt.Errorf("%w (expected even, squares, families or letters)", err)
	}
	return err
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
