//go:build staging

package staging

import (
	"encoding/json"
	"net/http"
	"testing"
)

func TestGetShop(t *testing.T) {
	resp, body := makeRequest(t, "/api/v1/shop")

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", resp.StatusCode, body)
	}

	var entries []struct {
		Item struct {
			Name string `json:"name"`
		} `json:"item"`
		Price int64 `json:"price"`
	}
	if err := json.Unmarshal(body, &entries); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if len(entries) == 0 {
		t.Error("Expected at least one entry in the global shop")
	}
}

func TestGetMarketplace(t *testing.T) {
	resp, _ := makeRequest(t, "/api/v1/market")

	// Empty marketplaces are fine; the endpoint just has to answer
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}
}

func TestGetPlayer_Validation(t *testing.T) {
	t.Run("missing id", func(t *testing.T) {
		resp, _ := makeRequest(t, "/api/v1/player")
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", resp.StatusCode)
		}
	})

	t.Run("unknown player", func(t *testing.T) {
		resp, _ := makeRequest(t, "/api/v1/player?id=does-not-exist")
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", resp.StatusCode)
		}
	})
}
