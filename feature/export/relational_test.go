package export

import (
	"testing"

	"github.com/mtgjson/mtgjson-sub003/feature/booster"
	"github.com/mtgjson/mtgjson-sub003/feature/card"
	"github.com/mtgjson/mtgjson-sub003/feature/set"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func sampleSet() *set.Set {
	return &set.Set{
		BaseSetSize: 1,
		Code:        "AAA",
		Cards: []*card.Card{{
			UUID:     "uuid-1",
			Name:     "Bolt",
			Number:   "1",
			SetCode:  "AAA",
			Language: "English",
			Identifiers: map[string]string{
				"scryfallId": "p1",
			},
			Legalities: map[string]string{
				"legacy": "Legal",
			},
			Rulings: []card.Ruling{{Date: "2004-10-04", Text: "A ruling."}},
		}},
		Languages:    []string{"English"},
		Name:         "Alpha Block",
		ReleaseDate:  "1993-08-05",
		TotalSetSize: 1,
		Translations: map[string]string{"German": "Alpha Block DE"},
		Type:         "expansion",
	}
}

func TestInsertSetWritesNormalizedRows(t *testing.T) {
	db, mock := setupMockDB(t)
	r := NewRelational(db, zap.NewNop())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `sets`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `set_translations`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `cards`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `card_identifiers`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `card_legalities`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `card_rulings`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := r.InsertSet(sampleSet())
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertSetSkipsEmptySlices(t *testing.T) {
	db, mock := setupMockDB(t)
	r := NewRelational(db, zap.NewNop())

	s := sampleSet()
	s.Cards = nil
	s.Translations = map[string]string{}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `sets`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := r.InsertSet(s)
	require.NoError(t, err)
	// no card or translation inserts were expected and none may happen
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertBoosterRows(t *testing.T) {
	db, mock := setupMockDB(t)
	r := NewRelational(db, zap.NewNop())

	cfg, err := booster.Parse([]byte(`{
		"draft": {
			"boosters": [{"contents": {"common": 1}, "weight": 1}],
			"sheets": {"common": {"cards": {"uuid-1": 1}, "foil": false, "totalWeight": 1}}
		}
	}`))
	require.NoError(t, err)

	s := sampleSet()
	s.Cards = nil
	s.Translations = map[string]string{}
	s.Booster = cfg

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `sets`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	for _, table := range []string{"booster_sheets", "booster_sheet_cards", "booster_variants", "booster_contents"} {
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO `" + table + "`").WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()
	}

	require.NoError(t, r.InsertSet(s))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCardRowFlattensLists(t *testing.T) {
	c := &card.Card{
		UUID:          "uuid-1",
		ColorIdentity: []string{"R", "W"},
		Colors:        []string{"R"},
		Finishes:      []string{"nonfoil", "foil"},
		ManaValue:     2,
		Name:          "Boros Charm",
		Printings:     []string{"GTC", "MM3"},
		Types:         []string{"Instant"},
	}

	row := cardRow(c)
	assert.Equal(t, "R, W", row.ColorIdentity)
	assert.Equal(t, "nonfoil, foil", row.Finishes)
	assert.Equal(t, "GTC, MM3", row.Printings)
	assert.Equal(t, 2.0, row.ConvertedManaCost)
	assert.Equal(t, 2.0, row.ManaValue)
}
