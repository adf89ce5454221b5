package engine

import "strconv"

// ============================================================================
// RECORD VIEW — Zero-Copy Data Access Interface
// ============================================================================
// The engine never owns caller data. Aggregators and the table builder read
// through this interface.
//
// Implementation:
//   DomainView[T]  — reads typed structs via accessor functions (zero-copy)
//
// Adapters are declared once at package init and bound per call.
// ============================================================================

// RecordView provides indexed access to a dataset.
type RecordView interface {
	Len() int
	Dimension(index int, key string) string
	Measure(index int, key string) float64
	DimensionKeys() []string // available dimension keys, registration order
	MeasureKeys() []string   // available measure keys, registration order
}

// ============================================================================
// DOMAIN ADAPTER — Zero-copy typed struct access
// ============================================================================
//
// Usage:
//
//	adapter := engine.NewDomainAdapter[Person]().
//	    Measure("age", func(p Person) float64 { return float64(p.Age) })
//
//	view := adapter.Bind(family.Persons)
//	avg := engine.AvgMeasure(view, "age")
//
// ============================================================================

// DomainAdapter builds a RecordView from typed structs.
// Declare once, bind many times.
type DomainAdapter[T any] struct {
	dimOrder []string
	mesOrder []string
	dims     map[string]func(T) string
	meas     map[string]func(T) float64
}

// NewDomainAdapter creates a new adapter for type T.
func NewDomainAdapter[T any]() *DomainAdapter[T] {
	return &DomainAdapter[T]{
		dims: make(map[string]func(T) string),
		meas: make(map[string]func(T) float64),
	}
}

// Dimension registers a dimension accessor.
func (a *DomainAdapter[T]) Dimension(key string, fn func(T) string) *DomainAdapter[T] {
	if _, exists := a.dims[key]; !exists {
		a.dimOrder = append(a.dimOrder, key)
	}
	a.dims[key] = fn
	return a
}

// Measure registers a measure accessor.
func (a *DomainAdapter[T]) Measure(key string, fn func(T) float64) *DomainAdapter[T] {
	if _, exists := a.meas[key]; !exists {
		a.mesOrder = append(a.mesOrder, key)
	}
	a.meas[key] = fn
	return a
}

// Bind creates a RecordView from a data slice. Zero-copy — holds reference.
func (a *DomainAdapter[T]) Bind(data []T) RecordView {
	return &DomainView[T]{
		data:     data,
		dims:     a.dims,
		meas:     a.meas,
		dimKeys:  a.dimOrder,
		measKeys: a.mesOrder,
	}
}

// DomainView reads typed struct fields via registered accessor functions.
type DomainView[T any] struct {
	data     []T
	dims     map[string]func(T) string
	meas     map[string]func(T) float64
	dimKeys  []string
	measKeys []string
}

func (v *DomainView[T]) Len() int { return len(v.data) }

func (v *DomainView[T]) Dimension(i int, key string) string {
	if i < 0 || i >= len(v.data) {
		return ""
	}
	if fn, ok := v.dims[key]; ok {
		return fn(v.data[i])
	}
	return ""
}

func (v *DomainView[T]) Measure(i int, key string) float64 {
	if i < 0 || i >= len(v.data) {
		return 0
	}
	if fn, ok := v.meas[key]; ok {
		return fn(v.data[i])
	}
	return 0
}

func (v *DomainView[T]) DimensionKeys() []string { return v.dimKeys }
func (v *DomainView[T]) MeasureKeys() []string   { return v.measKeys }

// ============================================================================
// BINDINGS — adapters for the engine's own record types
// ============================================================================

var (
	personAdapter = NewDomainAdapter[Person]().
		Measure("age", func(p Person) float64 { return float64(p.Age) })

	numberAdapter = NewDomainAdapter[int]().
		Measure("value", func(n int) float64 { return float64(n) })

	familySummaryAdapter = NewDomainAdapter[FamilySummary]().
		Dimension("family_id", func(s FamilySummary) string { return strconv.Itoa(s.FamilyID) }).
		Measure("average_age", func(s FamilySummary) float64 { return s.AverageAge }).
		Measure("member_count", func(s FamilySummary) float64 { return float64(s.MemberCount) })

	letterAdapter = NewDomainAdapter[LetterOccurrence]().
		Dimension("letter", func(o LetterOccurrence) string { return string(o.Letter) }).
		Measure("count", func(o LetterOccurrence) float64 { return float64(o.Count) })
)
