package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/api", time.Second)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestAPIPath(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"/chantiers", "/api/chantiers"},
		{"chantiers", "/api/chantiers"},
		{"/api/chantiers", "/api/chantiers"},
		{"/api", "/api"},
		{"/apiary", "/api/apiary"},
	}
	for _, tt := range tests {
		if got := apiPath(tt.in); got != tt.expected {
			t.Errorf("apiPath(%q): expected %q, got %q", tt.in, tt.expected, got)
		}
	}
}

func TestAPIOrigin(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"http://backenddev:3000/api", "http://backenddev:3000"},
		{"http://backenddev:3000/api/", "http://backenddev:3000"},
		{"http://backenddev:3000", "http://backenddev:3000"},
	}
	for _, tt := range tests {
		if got := apiOrigin(tt.in); got != tt.expected {
			t.Errorf("apiOrigin(%q): expected %q, got %q", tt.in, tt.expected, got)
		}
	}
}

func TestClient_SendsInternalHeaderAndSinglePrefix(t *testing.T) {
	var gotPath, gotHeader string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotHeader = r.Header.Get("X-Internal-Request")
		writeJSON(w, http.StatusOK, []Chantier{{ID: "c1", Name: "Pont", Cost: 100}})
	})

	chantiers, err := client.GetChantiersByGuild(context.Background(), "42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/api/chantiers/guild/42" {
		t.Errorf("expected path %q, got %q", "/api/chantiers/guild/42", gotPath)
	}
	if gotHeader != "true" {
		t.Errorf("expected X-Internal-Request %q, got %q", "true", gotHeader)
	}
	if len(chantiers) != 1 || chantiers[0].Name != "Pont" {
		t.Errorf("expected one chantier named Pont, got %+v", chantiers)
	}
}

func TestClient_ErrorMessageExtraction(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     any
		expected string
	}{
		{"message field", http.StatusBadRequest, map[string]string{"message": "Coût invalide"}, "Coût invalide"},
		{"error field", http.StatusBadRequest, map[string]string{"error": "Saison invalide"}, "Saison invalide"},
		{"message wins", http.StatusConflict, map[string]string{"message": "A", "error": "B"}, "A"},
		{"server fallback", http.StatusBadGateway, map[string]string{}, "Le serveur de jeu est indisponible. Réessayez dans un instant."},
		{"client fallback", http.StatusForbidden, map[string]string{}, "La requête a été refusée par le serveur (403)."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, tt.status, tt.body)
			})

			err := client.DeleteChantier(context.Background(), "c1")

			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected *APIError, got %v", err)
			}
			if apiErr.StatusCode != tt.status {
				t.Errorf("expected status %d, got %d", tt.status, apiErr.StatusCode)
			}
			if got := apiErr.UserMessage(); got != tt.expected {
				t.Errorf("expected message %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestAPIError_IsNotFound(t *testing.T) {
	err := error(&APIError{StatusCode: http.StatusNotFound})
	if !errors.Is(err, ErrNotFound) {
		t.Error("expected 404 to match ErrNotFound")
	}
	if errors.Is(&APIError{StatusCode: http.StatusBadRequest}, ErrNotFound) {
		t.Error("expected 400 not to match ErrNotFound")
	}
}

func TestClient_GetTownByGuild_CreatesMissingTown(t *testing.T) {
	var created createTownInput
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/towns/guild/42":
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Ville introuvable"})
		case r.Method == http.MethodPost && r.URL.Path == "/api/towns":
			_ = json.NewDecoder(r.Body).Decode(&created)
			writeJSON(w, http.StatusCreated, Town{ID: "t1", Name: created.Name, GuildID: created.GuildID})
		default:
			http.NotFound(w, r)
		}
	})

	town, err := client.GetTownByGuild(context.Background(), "42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if town.ID != "t1" {
		t.Errorf("expected town id %q, got %q", "t1", town.ID)
	}
	if created.GuildID != "42" {
		t.Errorf("expected guild id %q, got %q", "42", created.GuildID)
	}
}

func TestClient_GetActiveCharacter(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []Character{
			{ID: "dead", UserID: "u1", IsActive: false},
			{ID: "other", UserID: "u2", IsActive: true},
			{ID: "mine", UserID: "u1", IsActive: true},
		})
	})

	ch, err := client.GetActiveCharacter(context.Background(), "u1", "t1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ch.ID != "mine" {
		t.Errorf("expected character %q, got %q", "mine", ch.ID)
	}

	if _, err := client.GetActiveCharacter(context.Background(), "u3", "t1"); !errors.Is(err, ErrNoActiveCharacter) {
		t.Errorf("expected error %v, got %v", ErrNoActiveCharacter, err)
	}
}

func TestClient_CreateChantier_SendsPayload(t *testing.T) {
	var got CreateChantierInput
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/chantiers" {
			http.NotFound(w, r)
			return
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		writeJSON(w, http.StatusCreated, Chantier{ID: "c1", Name: got.Name, Cost: got.Cost})
	})

	in := CreateChantierInput{
		Name:           "Pont",
		Cost:           100,
		ResourceCosts:  []ChantierResourceInput{{ResourceTypeID: 3, Quantity: 20}},
		DiscordGuildID: "42",
		CreatedBy:      "7",
	}
	chantier, err := client.CreateChantier(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if chantier.ID != "c1" {
		t.Errorf("expected chantier id %q, got %q", "c1", chantier.ID)
	}
	if got.Name != "Pont" || got.Cost != 100 || len(got.ResourceCosts) != 1 || got.ResourceCosts[0].Quantity != 20 {
		t.Errorf("unexpected payload %+v", got)
	}
}

func TestClient_EnsureUser_CreatesUnknownUser(t *testing.T) {
	var created CreateUserInput
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "Utilisateur introuvable"})
		case r.Method == http.MethodPost && r.URL.Path == "/api/users":
			_ = json.NewDecoder(r.Body).Decode(&created)
			writeJSON(w, http.StatusCreated, User{ID: "u1", DiscordID: created.DiscordID, Username: created.Username})
		default:
			http.NotFound(w, r)
		}
	})

	user, err := client.EnsureUser(context.Background(), CreateUserInput{DiscordID: "7", Username: "alice"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != "u1" {
		t.Errorf("expected user id %q, got %q", "u1", user.ID)
	}
	if created.Email != "7@discord.placeholder" {
		t.Errorf("expected placeholder email, got %q", created.Email)
	}
}

func TestClient_GetCharacterCapabilities_Flattens(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []map[string]any{
			{"characterId": "ch1", "capabilityId": "cap1", "capability": map[string]any{"name": "Pêcher", "costPA": 1}},
		})
	})

	caps, err := client.GetCharacterCapabilities(context.Background(), "ch1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(caps) != 1 || caps[0].ID != "cap1" || caps[0].Name != "Pêcher" || caps[0].CostPA != 1 {
		t.Errorf("unexpected capabilities %+v", caps)
	}
}

type countingLister struct {
	calls int
	types []ResourceType
}

func (l *countingLister) GetResourceTypes(ctx context.Context) ([]ResourceType, error) {
	l.calls++
	return l.types, nil
}

func TestClient_FoodStockAndResourceTypes(t *testing.T) {
	var food foodStockInput
	var created CreateResourceTypeInput
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/towns/t1":
			writeJSON(w, http.StatusOK, Town{ID: "t1", Name: "Bourg", FoodStock: 12})
		case r.Method == http.MethodPatch && r.URL.Path == "/api/towns/t1/food-stock":
			_ = json.NewDecoder(r.Body).Decode(&food)
			writeJSON(w, http.StatusOK, Town{ID: "t1", Name: "Bourg", FoodStock: food.FoodStock})
		case r.Method == http.MethodPost && r.URL.Path == "/api/resources/types":
			_ = json.NewDecoder(r.Body).Decode(&created)
			writeJSON(w, http.StatusCreated, ResourceType{ID: 9, Name: created.Name, Emoji: created.Emoji, Category: created.Category})
		default:
			http.NotFound(w, r)
		}
	})
	ctx := context.Background()

	town, err := client.GetTown(ctx, "t1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if town.FoodStock != 12 {
		t.Errorf("expected food stock 12, got %d", town.FoodStock)
	}

	town, err = client.UpdateTownFoodStock(ctx, "t1", 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if food.FoodStock != 7 || town.FoodStock != 7 {
		t.Errorf("expected food stock 7 sent and returned, got %d and %d", food.FoodStock, town.FoodStock)
	}

	rt, err := client.CreateResourceType(ctx, CreateResourceTypeInput{Name: "Cuir", Emoji: "🟫", Category: "transformé"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rt.ID != 9 || created.Name != "Cuir" || created.Category != "transformé" {
		t.Errorf("unexpected resource type %+v from payload %+v", rt, created)
	}
}

func TestCatalog_CachesResourceTypes(t *testing.T) {
	lister := &countingLister{types: []ResourceType{{ID: 1, Name: "Bois"}, {ID: 2, Name: "Vivres"}}}
	catalog := NewCatalog(lister, time.Minute)
	ctx := context.Background()

	if _, err := catalog.ResourceTypes(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rt, ok, err := catalog.ResourceType(ctx, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok || rt.Name != "Vivres" {
		t.Errorf("expected resource type Vivres, got %+v", rt)
	}
	if lister.calls != 1 {
		t.Errorf("expected 1 backend call, got %d", lister.calls)
	}

	catalog.Invalidate()
	if _, err := catalog.ResourceTypes(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lister.calls != 2 {
		t.Errorf("expected 2 backend calls after invalidate, got %d", lister.calls)
	}
}
