package handler

import (
	"fmt"
	"net/http"

	"github.com/osse101/DungeonBot_Go/internal/item"
	"github.com/osse101/DungeonBot_Go/internal/player"
)

// HandleGetPlayer returns the full player record
func HandleGetPlayer(playerService player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Query().Get("id")
		if id == "" {
			respondJSON(w, http.StatusBadRequest, ErrorResponse{
				Error: fmt.Sprintf(ErrMsgMissingQueryParam, "id"),
			})
			return
		}

		p, err := playerService.GetPlayer(r.Context(), id)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, p)
	}
}

// HandleGetInventory returns the player's inventory
func HandleGetInventory(itemService item.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Query().Get("id")
		if id == "" {
			respondJSON(w, http.StatusBadRequest, ErrorResponse{
				Error: fmt.Sprintf(ErrMsgMissingQueryParam, "id"),
			})
			return
		}

		inv, err := itemService.ListInventory(r.Context(), id)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, inv)
	}
}
