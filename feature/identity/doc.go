// Package identity generates the stable version-5 UUIDs that give every
// card face, token, and foreign-language edition a cross-provider identity.
//
// All derivations are pure functions of their inputs against one fixed
// namespace: identical inputs produce identical identities across runs and
// machines. Two printing derivations exist, the current one and the legacy
// v4-era one; both are locked by golden regression fixtures.
package identity
