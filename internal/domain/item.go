package domain

// Rarity represents the fixed ordered rarity scale for items
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// rarityRanks orders rarities from common (0) upward
var rarityRanks = map[Rarity]int{
	RarityCommon:    0,
	RarityUncommon:  1,
	RarityRare:      2,
	RarityEpic:      3,
	RarityLegendary: 4,
}

// Rank returns the ordinal position of the rarity, -1 for unknown values
func (r Rarity) Rank() int {
	if rank, ok := rarityRanks[r]; ok {
		return rank
	}
	return -1
}

// Valid reports whether the rarity is one of the known values
func (r Rarity) Valid() bool {
	return r.Rank() >= 0
}

// Item represents an item definition
type Item struct {
	ID          int     `json:"item_id" db:"item_id"`
	Name        string  `json:"name" db:"item_name"`
	Description string  `json:"description" db:"item_description"`
	Value       int64   `json:"value" db:"base_value"`
	ImageURL    string  `json:"image_url" db:"image_url"`
	Rarity      Rarity  `json:"rarity" db:"rarity"`
	DropRate    float64 `json:"drop_rate" db:"drop_rate"`
	MinLevel    int     `json:"min_level" db:"min_level"`
}

// InventoryEntry is an item definition joined with the quantity a player owns
type InventoryEntry struct {
	Item     Item `json:"item"`
	Quantity int  `json:"quantity"`
}
