// Package report renders benchmark results for humans: console tables for
// single runs and comparisons, and an optional standalone HTML chart of
// per-trial execution times.
package report
