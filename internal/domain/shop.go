package domain

import "time"

// UnlimitedStock marks a global shop entry that never runs out
const UnlimitedStock = -1

// ShopEntry is one row of the global shop catalog
type ShopEntry struct {
	Item      Item  `json:"item"`
	Price     int64 `json:"price"`
	Stock     int   `json:"stock"`
	RestockTo int   `json:"restock_to"`
}

// InStock reports whether at least one unit can be bought
func (e *ShopEntry) InStock() bool {
	return e.Stock == UnlimitedStock || e.Stock > 0
}

// Listing is a player-created marketplace listing. Listings are atomic:
// a purchase takes the whole quantity and deletes the row.
type Listing struct {
	ID        int       `json:"listing_id"`
	SellerID  string    `json:"seller_id"`
	ItemID    int       `json:"item_id"`
	ItemName  string    `json:"item_name,omitempty"`
	Quantity  int       `json:"quantity"`
	Price     int64     `json:"price"`
	CreatedAt time.Time `json:"created_at"`
}
