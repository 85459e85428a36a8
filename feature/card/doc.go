// Package card defines the typed entity model (printed card, token, deck
// card, and oracle-level atomic card) and the single serialization
// contract they all share.
//
// The contract is a field-presence schema, not procedural marshaling: every
// JSON key is registered in static class tables (contract.go) that decide
// whether an empty value serializes as [], as {}, as an explicit boolean,
// or disappears from output entirely. Entity variants differ only in which
// keys they emit; how presence is decided for a key never varies. Feeding
// the encoder a key outside the tables is a fatal contract error, since it
// means a field was added to a model without being registered.
//
// The builder half of the package turns provider-native snapshot records
// into entities, joining in the consolidated lookup tables and stamping
// generated identities.
package card
