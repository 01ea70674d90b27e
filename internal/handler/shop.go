package handler

import (
	"net/http"

	"github.com/osse101/DungeonBot_Go/internal/shop"
)

// HandleGetShop returns the global shop catalog
func HandleGetShop(shopService shop.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := shopService.ListShop(r.Context())
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, entries)
	}
}

// HandleGetMarketplace returns all open marketplace listings
func HandleGetMarketplace(shopService shop.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listings, err := shopService.ListMarketplace(r.Context())
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, listings)
	}
}
