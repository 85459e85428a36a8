package identity

import (
	"strings"

	"github.com/google/uuid"
)

// namespace is the fixed seed every derivation hangs off. Changing it would
// silently re-key the entire published catalog, so it is a constant of the
// format, not configuration.
var namespace = uuid.NameSpaceDNS

// New derives the stable identity for one printed face.
//
// The seed folds the provider-issued per-printing identifier, the face's
// display name, and its side letter. The set code is deliberately not part
// of the seed: a promo that shares its provider id with the original
// printing resolves to the same identity, which is what de-duplicates
// shared-art printings. Distinct faces of one physical card share a
// provider id and are told apart by side.
func New(providerID, name, side string) uuid.UUID {
	return uuid.NewSHA1(namespace, []byte(providerID+name+side))
}

// Legacy derives the v4-era identity for one printed face.
//
// It folds the set code, display name, color list, provider id, and printed
// text instead of the side letter. Retained for the ids that shipped under
// it; nothing new keys on this derivation.
func Legacy(setCode, name string, colors []string, providerID, text string) uuid.UUID {
	seed := setCode + name + strings.Join(colors, "") + providerID + text
	return uuid.NewSHA1(namespace, []byte(seed))
}

// Foreign derives the identity of a foreign-language edition from the
// identity of the default-language face it translates. The anchor keeps all
// translations of a printing grouped under it even when the printing's own
// provider id changes between snapshot runs.
func Foreign(anchor uuid.UUID, side, language string) uuid.UUID {
	return uuid.NewSHA1(namespace, []byte(anchor.String()+side+language))
}
