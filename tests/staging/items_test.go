//go:build staging

package staging

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"testing"
)

type itemListResponse struct {
	Count int `json:"count"`
	Items []struct {
		Name string `json:"name"`
		Slot string `json:"slot"`
		Tier string `json:"tier"`
		Lvl  int    `json:"lvl"`
	} `json:"items"`
}

func TestListItems(t *testing.T) {
	resp, body := makeRequest(t, "GET", "/api/v1/items?limit=25", nil)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", resp.StatusCode, string(body))
	}

	var list itemListResponse
	if err := json.Unmarshal(body, &list); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if list.Count == 0 {
		t.Fatal("Expected a non-empty catalog on staging")
	}
	if len(list.Items) > 25 {
		t.Errorf("Expected at most 25 items, got %d", len(list.Items))
	}
}

func TestGetItemByName(t *testing.T) {
	// Pick a real name from the list so the test survives catalog updates
	resp, body := makeRequest(t, "GET", "/api/v1/items?limit=1", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200 listing items, got %d", resp.StatusCode)
	}

	var list itemListResponse
	if err := json.Unmarshal(body, &list); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(list.Items) == 0 {
		t.Fatal("Expected at least one item in the catalog")
	}

	name := list.Items[0].Name
	path := fmt.Sprintf("/api/v1/items/%s", url.PathEscape(name))
	resp, body = makeRequest(t, "GET", path, nil)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200 for %q, got %d: %s", name, resp.StatusCode, string(body))
	}

	var item struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(body, &item); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if item.Name != name {
		t.Errorf("Expected item %q, got %q", name, item.Name)
	}
}

func TestGetItemNotFound(t *testing.T) {
	resp, _ := makeRequest(t, "GET", "/api/v1/items/definitely-not-a-real-item-name", nil)

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", resp.StatusCode)
	}
}

func TestSearchItems(t *testing.T) {
	resp, body := makeRequest(t, "GET", "/api/v1/items/search?q=a&slot=weapon&limit=10", nil)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", resp.StatusCode, string(body))
	}

	var list itemListResponse
	if err := json.Unmarshal(body, &list); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	for _, item := range list.Items {
		if item.Slot != "weapon" {
			t.Errorf("Expected only weapons, got %q in slot %q", item.Name, item.Slot)
		}
	}
}

func TestSearchItemsRequiresQuery(t *testing.T) {
	resp, _ := makeRequest(t, "GET", "/api/v1/items/search", nil)

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", resp.StatusCode)
	}
}
