// Package lookup pre-merges the per-provider auxiliary tables into exactly
// four canonical join tables, so the main transform never performs an N-way
// join.
//
// Each canonical table has one join key:
//   - Faces:     (provider face id, side)
//   - Oracle:    oracle identity
//   - Printings: (set code, collector number)
//   - Names:     display name
//
// Sub-tables build independently (an absent source is a logged no-op, not
// a failure) and combine via full outer join on the shared key. The result
// travels as a read-only Tables context; after Build returns it is never
// mutated, so workers share it without synchronization.
package lookup
