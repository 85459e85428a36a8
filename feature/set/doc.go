// Package set assembles compiled products from the per-set join of cards,
// tokens, decks, sealed products, booster configurations, and
// translations. Two assembly modes share one construction path: BuildSet
// compiles a single product, WriteAll streams the whole catalog in sorted
// order holding one product in memory at a time. The package also derives
// the oracle-grouped atomic view and format-filtered subsets.
package set
