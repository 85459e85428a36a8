// Package booster models how a sealed product's randomized contents are
// composed: named weighted sheets of candidate cards, and weighted variants
// listing how many picks each sheet contributes.
//
// One in-memory structure backs two serialized projections: the nested
// object embedded in a compiled set, and the normalized sheet/member/
// variant/slot rows. Flattening then reconstructing is lossless.
package booster
