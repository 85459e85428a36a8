package export

// Normalized relational rows. List-valued fields are flattened into
// companion long-format tables (one row per identifier, legality, ruling,
// foreign edition, purchase link); the remaining list fields are stored
// comma-joined.

type SetRow struct {
	Code             string `gorm:"primaryKey;size:16"`
	BaseSetSize      int
	Block            string
	IsFoilOnly       bool
	IsForeignOnly    bool
	IsNonFoilOnly    bool
	IsOnlineOnly     bool
	IsPartialPreview bool
	KeyruneCode      string
	Languages        string
	MCMID            *int
	MCMName          string
	MTGOCode         string
	Name             string
	ParentCode       string
	ReleaseDate      string
	TCGPlayerGroupID *int
	TokenSetCode     string
	TotalSetSize     int
	Type             string
}

func (SetRow) TableName() string { return "sets" }

type SetTranslationRow struct {
	ID       uint   `gorm:"primaryKey"`
	SetCode  string `gorm:"index;size:16"`
	Language string
	Name     string
}

func (SetTranslationRow) TableName() string { return "set_translations" }

type CardRow struct {
	UUID                  string `gorm:"primaryKey;size:36"`
	Artist                string
	AsciiName             string
	Availability          string
	BorderColor           string
	ColorIdentity         string
	Colors                string
	ConvertedManaCost     float64
	DuelDeck              string
	EdhrecRank            *int
	EdhrecSaltiness       *float64
	FaceConvertedManaCost *float64
	FaceName              string
	Finishes              string
	FlavorText            string
	FrameVersion          string
	HasFoil               bool
	HasNonFoil            bool
	IsAlternative         bool
	IsFullArt             bool
	IsOnlineOnly          bool
	IsPromo               bool
	IsReprint             bool
	Keywords              string
	Language              string
	Layout                string
	Life                  string
	Loyalty               string
	ManaCost              string
	ManaValue             float64
	Name                  string
	Number                string
	Power                 string
	Printings             string
	Rarity                string
	SetCode               string `gorm:"index;size:16"`
	Side                  string
	Signature             string
	Subtypes              string
	Supertypes            string
	Text                  string
	Toughness             string
	Type                  string
	Types                 string
	Watermark             string
}

func (CardRow) TableName() string { return "cards" }

type CardIdentifierRow struct {
	ID    uint   `gorm:"primaryKey"`
	UUID  string `gorm:"index;size:36"`
	Name  string
	Value string
}

func (CardIdentifierRow) TableName() string { return "card_identifiers" }

type CardLegalityRow struct {
	ID     uint   `gorm:"primaryKey"`
	UUID   string `gorm:"index;size:36"`
	Format string
	Status string
}

func (CardLegalityRow) TableName() string { return "card_legalities" }

type CardRulingRow struct {
	ID   uint   `gorm:"primaryKey"`
	UUID string `gorm:"index;size:36"`
	Date string
	Text string
}

func (CardRulingRow) TableName() string { return "card_rulings" }

type CardForeignDataRow struct {
	ID           uint   `gorm:"primaryKey"`
	UUID         string `gorm:"index;size:36"`
	ForeignUUID  string `gorm:"size:36"`
	Language     string
	Name         string
	FaceName     string
	Text         string
	Type         string
	FlavorText   string
	MultiverseID string
}

func (CardForeignDataRow) TableName() string { return "card_foreign_data" }

type CardPurchaseURLRow struct {
	ID       uint   `gorm:"primaryKey"`
	UUID     string `gorm:"index;size:36"`
	Provider string
	URL      string
}

func (CardPurchaseURLRow) TableName() string { return "card_purchase_urls" }

type BoosterSheetRow struct {
	ID            uint   `gorm:"primaryKey"`
	SetCode       string `gorm:"index;size:16"`
	BoosterName   string
	SheetName     string
	BalanceColors bool
	Foil          bool
	TotalWeight   int
}

func (BoosterSheetRow) TableName() string { return "booster_sheets" }

type BoosterSheetCardRow struct {
	ID          uint   `gorm:"primaryKey"`
	SetCode     string `gorm:"index;size:16"`
	BoosterName string
	SheetName   string
	CardUUID    string `gorm:"size:36"`
	Weight      int
}

func (BoosterSheetCardRow) TableName() string { return "booster_sheet_cards" }

type BoosterVariantRow struct {
	ID           uint   `gorm:"primaryKey"`
	SetCode      string `gorm:"index;size:16"`
	BoosterName  string
	VariantIndex int
	Weight       int
}

func (BoosterVariantRow) TableName() string { return "booster_variants" }

type BoosterContentRow struct {
	ID           uint   `gorm:"primaryKey"`
	SetCode      string `gorm:"index;size:16"`
	BoosterName  string
	VariantIndex int
	SheetName    string
	Count        int
}

func (BoosterContentRow) TableName() string { return "booster_contents" }
