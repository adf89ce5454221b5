// Package quiz provides four small declarative query functions.
//
// Usage:
//
//	import "github.com/spektr-org/quiz/engine"
//
//	evens, err := engine.EvenNumbers(10)          // [2 4 6 8]
//	squares, err := engine.Squares(30)            // [784 441 196 49]
//	stats, err := engine.FamilyStatistics(families)
//	letters := engine.LetterStatistics("Hello")   // E:1 H:1 L:2 O:1
//
// engine.Execute wraps the four functions behind a QuerySpec and returns
// render-ready output (table data, text headline). Input loaders for family
// records live in the helpers package; cmd/quiz is the CLI shim.
//
// The engine never performs I/O — all computation is local.
package quiz
