// Package loader reads provider snapshot extracts and hand-curated resource
// overrides into plain in-memory tables.
//
// Tables are schema-on-read: rows are generic Records with typed accessors,
// and the transform layer decides which provider-native fields it cares
// about. Optional sources that are absent on disk degrade to empty tables
// with a logged no-op so a partial snapshot still builds.
package loader
