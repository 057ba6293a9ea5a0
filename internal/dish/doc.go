// Package dish defines the dish data model shared by both execution
// strategies: the forward-only status lifecycle, the cosmetic kind enum, and
// the seeded generator that produces identical inputs for comparative runs.
//
// Status transitions are strictly ordered (dirty, pre-rinsed, washed, dried,
// stored) and enforced by Dish.Advance; a skipped or repeated stage is a
// programming error, not a runtime condition.
package dish
