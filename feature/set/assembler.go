package set

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"sort"
	"strings"

	"github.com/mtgjson/mtgjson-sub003/core/loader"
	"github.com/mtgjson/mtgjson-sub003/feature/booster"
	"github.com/mtgjson/mtgjson-sub003/feature/card"
	"github.com/mtgjson/mtgjson-sub003/feature/identity"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Inputs bundles the snapshot tables the assembler joins per product.
type Inputs struct {
	Sets   []loader.Record
	Cards  []loader.Record
	Tokens []loader.Record
	Decks  []loader.Record
	Sealed []loader.Record
}

// Assembler joins every per-product input into compiled set objects. Its
// state is grouped once at construction and read-only afterwards, so
// BuildSet may be called concurrently for different codes.
type Assembler struct {
	builder *card.Builder
	workers int
	log     *zap.Logger

	meta   map[string]Meta
	codes  []string
	cards  map[string][]loader.Record
	tokens map[string][]loader.Record
	decks  map[string][]loader.Record
	sealed map[string][]loader.Record
}

// Skipped records one product-level failure.
type Skipped struct {
	Code   string
	Reason string
}

// Summary is the run report: what was built, what was skipped, and how
// many individual records were dropped along the way. Failures are always
// reported, never swallowed.
type Summary struct {
	Built          []string
	Skipped        []Skipped
	DroppedRecords int
}

// Log writes the summary at completion.
func (s Summary) Log(log *zap.Logger) {
	log.Info("assembly finished",
		zap.Int("built", len(s.Built)),
		zap.Int("skipped", len(s.Skipped)),
		zap.Int("droppedRecords", s.DroppedRecords))
	for _, sk := range s.Skipped {
		log.Warn("set skipped", zap.String("setCode", sk.Code), zap.String("reason", sk.Reason))
	}
}

// NewAssembler groups the input tables by set code. Cards and tokens group
// under their own printing's code; decks and sealed products under the set
// they reference.
func NewAssembler(in Inputs, builder *card.Builder, workers int, log *zap.Logger) *Assembler {
	a := &Assembler{
		builder: builder,
		workers: workers,
		log:     log,
		meta:    make(map[string]Meta),
		cards:   make(map[string][]loader.Record),
		tokens:  make(map[string][]loader.Record),
		decks:   make(map[string][]loader.Record),
		sealed:  make(map[string][]loader.Record),
	}

	for _, rec := range in.Sets {
		m := MetaFromRecord(rec)
		if m.Code == "" {
			log.Warn("set metadata record has no code, dropping")
			continue
		}
		a.meta[m.Code] = m
		a.codes = append(a.codes, m.Code)
	}
	sort.Strings(a.codes)

	group := func(dst map[string][]loader.Record, rows []loader.Record, key string) {
		for _, rec := range rows {
			code := strings.ToUpper(rec.Str(key))
			dst[code] = append(dst[code], rec)
		}
	}
	group(a.cards, in.Cards, "set")
	group(a.tokens, in.Tokens, "set")
	group(a.decks, in.Decks, "set_code")
	group(a.sealed, in.Sealed, "set_code")

	return a
}

// Codes returns every known set code in sorted order.
func (a *Assembler) Codes() []string {
	return a.codes
}

// BuildSet assembles one product. The returned count is the number of
// records dropped while building it.
func (a *Assembler) BuildSet(ctx context.Context, code string) (*Set, int, error) {
	m, ok := a.meta[code]
	if !ok {
		return nil, 0, fmt.Errorf("unknown set code %q", code)
	}

	boosterCfg, err := booster.Parse(m.BoosterBlob)
	if err != nil {
		return nil, 0, fmt.Errorf("set %s: %w", code, err)
	}

	cards, droppedCards := a.transformCards(ctx, a.cards[code])
	tokens, droppedTokens := a.transformTokens(ctx, a.tokenRecords(m))
	decks, droppedEntries := a.buildDecks(code, cards)

	s := &Set{
		BaseSetSize:      m.BaseSetSize,
		Block:            m.Block,
		Booster:          boosterCfg,
		Cards:            cards,
		Code:             m.Code,
		Decks:            decks,
		IsFoilOnly:       m.IsFoilOnly,
		IsForeignOnly:    m.IsForeignOnly,
		IsNonFoilOnly:    m.IsNonFoilOnly,
		IsOnlineOnly:     m.IsOnlineOnly,
		IsPartialPreview: m.IsPartialPreview,
		KeyruneCode:      m.KeyruneCode,
		Languages:        deriveLanguages(m, cards),
		MCMID:            m.MCMID,
		MCMName:          m.MCMName,
		MTGOCode:         m.MTGOCode,
		Name:             m.Name,
		ParentCode:       m.ParentCode,
		ReleaseDate:      m.ReleaseDate,
		SealedProduct:    a.buildSealed(code, m),
		TCGPlayerGroupID: m.TCGPlayerGroupID,
		TokenSetCode:     m.TokenSetCode,
		Tokens:           tokens,
		TotalSetSize:     m.TotalSetSize,
		Translations:     m.Translations,
		Type:             m.Type,
	}
	if s.Translations == nil {
		s.Translations = map[string]string{}
	}
	if s.BaseSetSize == 0 {
		for _, c := range cards {
			if !c.IsReprint {
				s.BaseSetSize++
			}
		}
	}
	if s.TotalSetSize == 0 {
		s.TotalSetSize = len(cards)
	}

	return s, droppedCards + droppedTokens + droppedEntries, nil
}

// WriteAll streams the whole catalog as one object keyed by set code, in
// sorted-code order. It is strictly sequential and owns the writer; each
// set is assembled, written, and released before the next begins, so peak
// memory is bounded by one set. A failed set is skipped and reported in
// the summary without disturbing already written output. Each entry's
// bytes equal what BuildSet plus a plain marshal would produce.
func (a *Assembler) WriteAll(ctx context.Context, w io.Writer) (Summary, error) {
	var sum Summary

	if _, err := io.WriteString(w, "{"); err != nil {
		return sum, err
	}
	first := true
	for _, code := range a.codes {
		s, dropped, err := a.BuildSet(ctx, code)
		sum.DroppedRecords += dropped
		if err != nil {
			a.log.Warn("skipping set", zap.String("setCode", code), zap.Error(err))
			sum.Skipped = append(sum.Skipped, Skipped{Code: code, Reason: err.Error()})
			continue
		}

		data, err := json.Marshal(s)
		if err != nil {
			sum.Skipped = append(sum.Skipped, Skipped{Code: code, Reason: err.Error()})
			continue
		}

		if !first {
			if _, err := io.WriteString(w, ","); err != nil {
				return sum, err
			}
		}
		first = false

		key, _ := json.Marshal(code)
		if _, err := w.Write(key); err != nil {
			return sum, err
		}
		if _, err := io.WriteString(w, ":"); err != nil {
			return sum, err
		}
		if _, err := w.Write(data); err != nil {
			return sum, err
		}
		sum.Built = append(sum.Built, code)
	}
	if _, err := io.WriteString(w, "}"); err != nil {
		return sum, err
	}
	return sum, nil
}

// tokenRecords returns the token rows for a set: its own plus those filed
// under the companion token set code.
func (a *Assembler) tokenRecords(m Meta) []loader.Record {
	rows := a.tokens[m.Code]
	if m.TokenSetCode != "" && m.TokenSetCode != m.Code {
		rows = append(rows, a.tokens[m.TokenSetCode]...)
	}
	return rows
}

// transformCards runs the per-record transform on a worker pool. Records
// that fail to build are dropped with a warning; output order does not
// depend on scheduling.
func (a *Assembler) transformCards(ctx context.Context, recs []loader.Record) ([]*card.Card, int) {
	slots := make([]*card.Card, len(recs))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(a.limit())
	for i, rec := range recs {
		i, rec := i, rec
		g.Go(func() error {
			c, err := a.builder.Build(rec)
			if err != nil {
				a.log.Warn("dropping card record", zap.Error(err))
				return nil
			}
			slots[i] = c
			return nil
		})
	}
	// workers never return errors, they drop instead
	_ = g.Wait()

	cards := make([]*card.Card, 0, len(slots))
	for _, c := range slots {
		if c != nil {
			cards = append(cards, c)
		}
	}
	dropped := len(recs) - len(cards)

	card.ResolveLinks(cards)
	sort.Slice(cards, func(i, j int) bool {
		if cards[i].Name != cards[j].Name {
			return cards[i].Name < cards[j].Name
		}
		if cards[i].Number != cards[j].Number {
			return cards[i].Number < cards[j].Number
		}
		return cards[i].Side < cards[j].Side
	})
	return cards, dropped
}

func (a *Assembler) transformTokens(ctx context.Context, recs []loader.Record) ([]*card.Token, int) {
	slots := make([]*card.Token, len(recs))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(a.limit())
	for i, rec := range recs {
		i, rec := i, rec
		g.Go(func() error {
			t, err := a.builder.BuildToken(rec)
			if err != nil {
				a.log.Warn("dropping token record", zap.Error(err))
				return nil
			}
			slots[i] = t
			return nil
		})
	}
	_ = g.Wait()

	tokens := make([]*card.Token, 0, len(slots))
	for _, t := range slots {
		if t != nil {
			tokens = append(tokens, t)
		}
	}
	dropped := len(recs) - len(tokens)

	sort.Slice(tokens, func(i, j int) bool {
		if tokens[i].Name != tokens[j].Name {
			return tokens[i].Name < tokens[j].Name
		}
		if tokens[i].Number != tokens[j].Number {
			return tokens[i].Number < tokens[j].Number
		}
		return tokens[i].Side < tokens[j].Side
	})
	return tokens, dropped
}

// buildDecks resolves each deck's board entries against the set's own
// cards by collector number. An entry pointing outside the set is dropped
// with a warning; the deck itself still emits.
func (a *Assembler) buildDecks(code string, cards []*card.Card) ([]*Deck, int) {
	byNumber := make(map[string]*card.Card, len(cards))
	for _, c := range cards {
		// Multi-face cards share a number; the first face in sorted
		// order represents the deck entry.
		if _, ok := byNumber[c.Number]; !ok {
			byNumber[c.Number] = c
		}
	}

	dropped := 0
	board := func(deckName string, rows []loader.Record) []*card.DeckCard {
		out := []*card.DeckCard{}
		for _, row := range rows {
			number := row.Str("number")
			c, ok := byNumber[number]
			if !ok {
				a.log.Warn("dropping deck entry, no such card in set",
					zap.String("deck", deckName),
					zap.String("setCode", code),
					zap.String("number", number))
				dropped++
				continue
			}
			out = append(out, &card.DeckCard{
				Card:   *c,
				Count:  row.Int("count"),
				IsFoil: row.Bool("foil"),
			})
		}
		return out
	}

	decks := []*Deck{}
	for _, rec := range a.decks[code] {
		name := rec.Str("name")
		decks = append(decks, &Deck{
			Code:        code,
			Commander:   board(name, rec.Records("commander")),
			MainBoard:   board(name, rec.Records("main_board")),
			Name:        name,
			ReleaseDate: rec.Str("release_date"),
			SideBoard:   board(name, rec.Records("side_board")),
			Type:        rec.Str("type"),
		})
	}
	sort.Slice(decks, func(i, j int) bool { return decks[i].Name < decks[j].Name })
	return decks, dropped
}

func (a *Assembler) buildSealed(code string, m Meta) []*SealedProduct {
	var out []*SealedProduct
	for _, rec := range a.sealed[code] {
		name := rec.Str("name")
		if name == "" {
			a.log.Warn("dropping sealed product record with no name", zap.String("setCode", code))
			continue
		}
		p := &SealedProduct{
			Category:     rec.Str("category"),
			Identifiers:  rec.StringMap("identifiers"),
			Name:         name,
			PurchaseURLs: rec.StringMap("purchase_uris"),
			ReleaseDate:  rec.Str("release_date"),
			Subtype:      rec.Str("subtype"),
			UUID:         identity.New(code+name, name, "").String(),
		}
		if p.ReleaseDate == "" {
			p.ReleaseDate = m.ReleaseDate
		}
		if v, ok := rec["contents"]; ok && v != nil {
			blob, err := json.Marshal(v)
			var contents SealedContents
			if err == nil {
				err = json.Unmarshal(blob, &contents)
			}
			if err != nil {
				a.log.Warn("sealed product has malformed contents, omitting them",
					zap.String("setCode", code), zap.String("name", name), zap.Error(err))
			} else if !contents.Empty() {
				p.Contents = &contents
			}
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// deriveLanguages is the union of the set's primary language and every
// language appearing in any contained card's foreign editions, sorted.
func deriveLanguages(m Meta, cards []*card.Card) []string {
	primary := m.Language
	if primary == "" {
		primary = "English"
	}
	seen := map[string]struct{}{primary: {}}
	for _, c := range cards {
		for _, fe := range c.ForeignData {
			if fe.Language != "" {
				seen[fe.Language] = struct{}{}
			}
		}
	}

	langs := make([]string, 0, len(seen))
	for lang := range seen {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

func (a *Assembler) limit() int {
	if a.workers > 0 {
		return a.workers
	}
	return runtime.GOMAXPROCS(0)
}
