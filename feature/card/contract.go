package card

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

// ErrContract signals that a field was emitted with a key/emptiness
// combination the class tables do not recognize. This is a programming
// error in the tables, never bad input data, and aborts the build.
var ErrContract = errors.New("serialization contract violation")

// fieldClass decides how emptiness is handled for a JSON key.
type fieldClass int

const (
	// classScalar is always emitted, even when zero.
	classScalar fieldClass = iota
	// classOptScalar is omitted when empty or nil.
	classOptScalar
	// classRequiredList is emitted as [] when empty, never omitted.
	classRequiredList
	// classOmitList is omitted entirely when empty, never emitted as [].
	classOmitList
	// classAlwaysMap is emitted as {} when empty, never omitted.
	classAlwaysMap
	// classAlwaysBool is always emitted as an explicit boolean.
	classAlwaysBool
	// classOptBool is emitted only when true.
	classOptBool
	// classOptObject is omitted when the nested object serializes to nothing.
	classOptObject
)

// fieldClasses is the full field-presence schema, shared by every entity
// variant. Variants differ only in which keys they emit, never in how
// presence is decided for a key. A key appearing here under the wrong class
// is an output-schema break, so changes need a matching fixture update.
var fieldClasses = map[string]fieldClass{
	// always-emitted scalars
	"borderColor":       classScalar,
	"convertedManaCost": classScalar,
	"count":             classScalar,
	"frameVersion":      classScalar,
	"language":          classScalar,
	"layout":            classScalar,
	"manaValue":         classScalar,
	"name":              classScalar,
	"number":            classScalar,
	"rarity":            classScalar,
	"setCode":           classScalar,
	"type":              classScalar,
	"uuid":              classScalar,

	// omit-when-empty scalars
	"artist":                classOptScalar,
	"asciiName":             classOptScalar,
	"defense":               classOptScalar,
	"duelDeck":              classOptScalar,
	"edhrecRank":            classOptScalar,
	"edhrecSaltiness":       classOptScalar,
	"faceConvertedManaCost": classOptScalar,
	"faceManaValue":         classOptScalar,
	"faceName":              classOptScalar,
	"firstPrinting":         classOptScalar,
	"flavorName":            classOptScalar,
	"flavorText":            classOptScalar,
	"hand":                  classOptScalar,
	"life":                  classOptScalar,
	"loyalty":               classOptScalar,
	"manaCost":              classOptScalar,
	"orientation":           classOptScalar,
	"originalReleaseDate":   classOptScalar,
	"originalText":          classOptScalar,
	"originalType":          classOptScalar,
	"power":                 classOptScalar,
	"securityStamp":         classOptScalar,
	"side":                  classOptScalar,
	"signature":             classOptScalar,
	"text":                  classOptScalar,
	"toughness":             classOptScalar,
	"watermark":             classOptScalar,

	// present-as-[] lists
	"availability":  classRequiredList,
	"colorIdentity": classRequiredList,
	"colors":        classRequiredList,
	"finishes":      classRequiredList,
	"foreignData":   classRequiredList,
	"keywords":      classRequiredList,
	"languages":     classRequiredList,
	"printings":     classRequiredList,
	"subtypes":      classRequiredList,
	"supertypes":    classRequiredList,
	"types":         classRequiredList,

	// omit-when-empty lists
	"artistIds":           classOmitList,
	"boosterTypes":        classOmitList,
	"cardParts":           classOmitList,
	"colorIndicator":      classOmitList,
	"frameEffects":        classOmitList,
	"originalPrintings":   classOmitList,
	"otherFaceIds":        classOmitList,
	"promoTypes":          classOmitList,
	"rebalancedPrintings": classOmitList,
	"reverseRelated":      classOmitList,
	"rulings":             classOmitList,
	"spellbook":           classOmitList,
	"variations":          classOmitList,

	// emitted-as-{} maps
	"identifiers":  classAlwaysMap,
	"legalities":   classAlwaysMap,
	"purchaseUrls": classAlwaysMap,
	"translations": classAlwaysMap,

	// explicit booleans
	"hasFoil":    classAlwaysBool,
	"hasNonFoil": classAlwaysBool,

	// true-or-absent booleans
	"hasAlternativeDeckLimit": classOptBool,
	"hasContentWarning":       classOptBool,
	"isAlternative":           classOptBool,
	"isFoil":                  classOptBool,
	"isFullArt":               classOptBool,
	"isFunny":                 classOptBool,
	"isOnlineOnly":            classOptBool,
	"isOversized":             classOptBool,
	"isPromo":                 classOptBool,
	"isRebalanced":            classOptBool,
	"isReprint":               classOptBool,
	"isReserved":              classOptBool,
	"isStarter":               classOptBool,
	"isStorySpotlight":        classOptBool,
	"isTextless":              classOptBool,
	"isTimeshifted":           classOptBool,

	// nested objects dropped when they serialize to nothing
	"leadershipSkills": classOptObject,
	"relatedCards":     classOptObject,
}

// sortedListFields are emitted alphabetically sorted regardless of source
// order. sourceOrderListFields are emitted exactly as observed. Every list
// key belongs to exactly one set; order-sensitivity is declared here, never
// inferred from the data.
var sortedListFields = map[string]struct{}{
	"availability":        {},
	"colorIdentity":       {},
	"colorIndicator":      {},
	"colors":              {},
	"keywords":            {},
	"languages":           {},
	"originalPrintings":   {},
	"printings":           {},
	"rebalancedPrintings": {},
}

var sourceOrderListFields = map[string]struct{}{
	"artistIds":      {},
	"boosterTypes":   {},
	"cardParts":      {},
	"finishes":       {},
	"frameEffects":   {},
	"otherFaceIds":   {},
	"promoTypes":     {},
	"reverseRelated": {},
	"spellbook":      {},
	"subtypes":       {},
	"supertypes":     {},
	"types":          {},
	"variations":     {},
}

// Encoder writes one entity object with the field-presence contract
// applied per field. Keys must be fed in the order they should appear;
// entity marshalers feed them alphabetically so output is byte-stable.
type Encoder struct {
	buf bytes.Buffer
	n   int
	err error
}

// NewEncoder returns an encoder positioned at the start of an object.
func NewEncoder() *Encoder {
	e := &Encoder{}
	e.buf.WriteByte('{')
	return e
}

// Finish closes the object and returns its bytes, or the first contract
// error hit while encoding.
func (e *Encoder) Finish() ([]byte, error) {
	if e.err != nil {
		return nil, e.err
	}
	e.buf.WriteByte('}')
	return e.buf.Bytes(), nil
}

func (e *Encoder) classOf(key string, allowed ...fieldClass) (fieldClass, bool) {
	if e.err != nil {
		return 0, false
	}
	class, ok := fieldClasses[key]
	if !ok {
		e.err = fmt.Errorf("%w: unregistered field %q", ErrContract, key)
		return 0, false
	}
	for _, a := range allowed {
		if class == a {
			return class, true
		}
	}
	e.err = fmt.Errorf("%w: field %q used with mismatched value kind", ErrContract, key)
	return 0, false
}

func (e *Encoder) emit(key string, v any) {
	if e.err != nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		e.err = fmt.Errorf("marshal field %q: %w", key, err)
		return
	}
	e.emitRaw(key, data)
}

func (e *Encoder) emitRaw(key string, data []byte) {
	if e.n > 0 {
		e.buf.WriteByte(',')
	}
	keyData, _ := json.Marshal(key)
	e.buf.Write(keyData)
	e.buf.WriteByte(':')
	e.buf.Write(data)
	e.n++
}

// String emits a string field under its declared scalar class.
func (e *Encoder) String(key, v string) {
	class, ok := e.classOf(key, classScalar, classOptScalar)
	if !ok {
		return
	}
	if class == classOptScalar && v == "" {
		return
	}
	e.emit(key, v)
}

// Float emits an always-present numeric field.
func (e *Encoder) Float(key string, v float64) {
	if _, ok := e.classOf(key, classScalar); ok {
		e.emit(key, v)
	}
}

// Int emits an always-present integer field.
func (e *Encoder) Int(key string, v int) {
	if _, ok := e.classOf(key, classScalar); ok {
		e.emit(key, v)
	}
}

// FloatPtr emits an optional numeric field, skipped when nil.
func (e *Encoder) FloatPtr(key string, v *float64) {
	if _, ok := e.classOf(key, classOptScalar); ok && v != nil {
		e.emit(key, *v)
	}
}

// IntPtr emits an optional integer field, skipped when nil.
func (e *Encoder) IntPtr(key string, v *int) {
	if _, ok := e.classOf(key, classOptScalar); ok && v != nil {
		e.emit(key, *v)
	}
}

// Bool emits a boolean under its declared class: explicit booleans always,
// optional booleans only when true.
func (e *Encoder) Bool(key string, v bool) {
	class, ok := e.classOf(key, classAlwaysBool, classOptBool)
	if !ok {
		return
	}
	if class == classOptBool && !v {
		return
	}
	e.emit(key, v)
}

// Strings emits a list field. Required lists serialize as [] when empty;
// omit-if-empty lists disappear. The declared order set decides whether the
// emitted copy is sorted.
func (e *Encoder) Strings(key string, v []string) {
	class, ok := e.classOf(key, classRequiredList, classOmitList)
	if !ok {
		return
	}
	if class == classOmitList && len(v) == 0 {
		return
	}

	out := make([]string, len(v))
	copy(out, v)

	if _, sorted := sortedListFields[key]; sorted {
		sort.Strings(out)
	} else if _, keep := sourceOrderListFields[key]; !keep {
		e.err = fmt.Errorf("%w: list field %q has no declared order", ErrContract, key)
		return
	}
	e.emit(key, out)
}

// StringMap emits a map field as a sorted-key object, {} when empty.
func (e *Encoder) StringMap(key string, m map[string]string) {
	if _, ok := e.classOf(key, classAlwaysMap); !ok {
		return
	}
	e.emitRaw(key, encodeStringMap(m))
}

func encodeStringMap(m map[string]string) []byte {
	if len(m) == 0 {
		return []byte("{}")
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kd, _ := json.Marshal(k)
		vd, _ := json.Marshal(m[k])
		buf.Write(kd)
		buf.WriteByte(':')
		buf.Write(vd)
	}
	buf.WriteByte('}')
	return buf.Bytes()
}

// subObject writes a nested entry object. Entry keys belong to the entry,
// not the card, so they never consult the card-level class table.
type subObject struct {
	buf bytes.Buffer
	n   int
}

func newSubObject() *subObject {
	o := &subObject{}
	o.buf.WriteByte('{')
	return o
}

func (o *subObject) str(key, v string) {
	if o.n > 0 {
		o.buf.WriteByte(',')
	}
	kd, _ := json.Marshal(key)
	vd, _ := json.Marshal(v)
	o.buf.Write(kd)
	o.buf.WriteByte(':')
	o.buf.Write(vd)
	o.n++
}

func (o *subObject) optStr(key, v string) {
	if v == "" {
		return
	}
	o.str(key, v)
}

func (o *subObject) strMap(key string, m map[string]string) {
	if o.n > 0 {
		o.buf.WriteByte(',')
	}
	kd, _ := json.Marshal(key)
	o.buf.Write(kd)
	o.buf.WriteByte(':')
	o.buf.Write(encodeStringMap(m))
	o.n++
}

func (o *subObject) bytes() []byte {
	o.buf.WriteByte('}')
	return o.buf.Bytes()
}

// Rulings emits the rulings list sorted by (date, text). The consolidation
// layer keeps rulings newest-first internally; output order is fixed here
// so downstream consumers never depend on that.
func (e *Encoder) Rulings(key string, v []Ruling) {
	class, ok := e.classOf(key, classRequiredList, classOmitList)
	if !ok {
		return
	}
	if class == classOmitList && len(v) == 0 {
		return
	}

	out := make([]Ruling, len(v))
	copy(out, v)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Text < out[j].Text
	})

	var buf bytes.Buffer
	buf.WriteByte('[')
	for i := range out {
		if i > 0 {
			buf.WriteByte(',')
		}
		ro := newSubObject()
		ro.str("date", out[i].Date)
		ro.str("text", out[i].Text)
		buf.Write(ro.bytes())
	}
	buf.WriteByte(']')
	e.emitRaw(key, buf.Bytes())
}

// Foreign emits the foreign-editions list under required-list semantics.
func (e *Encoder) Foreign(key string, v []ForeignEntry) {
	if _, ok := e.classOf(key, classRequiredList); !ok {
		return
	}

	var buf bytes.Buffer
	buf.WriteByte('[')
	for i := range v {
		if i > 0 {
			buf.WriteByte(',')
		}
		fo := newSubObject()
		fo.optStr("faceName", v[i].FaceName)
		fo.optStr("flavorText", v[i].FlavorText)
		fo.strMap("identifiers", v[i].Identifiers)
		fo.str("language", v[i].Language)
		fo.str("name", v[i].Name)
		fo.optStr("text", v[i].Text)
		fo.optStr("type", v[i].Type)
		fo.str("uuid", v[i].UUID)
		buf.Write(fo.bytes())
	}
	buf.WriteByte(']')
	e.emitRaw(key, buf.Bytes())
}

// Object emits a nested object field, dropped when empty reports true.
func (e *Encoder) Object(key string, v any, empty bool) {
	if _, ok := e.classOf(key, classOptObject); !ok {
		return
	}
	if empty {
		return
	}
	e.emit(key, v)
}
