package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"voyago/config"
	"voyago/database"
	"voyago/database/repository"
	"voyago/handlers"
	authSvc "voyago/services/auth"
	bookingSvc "voyago/services/booking"
	catalogSvc "voyago/services/catalog"
	"voyago/services/fault"
	profileSvc "voyago/services/profile"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// memStore is an in-memory database.Store for end-to-end route tests.
type memStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemStore() *memStore { return &memStore{data: make(map[string][]byte)} }

func (s *memStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	if !ok {
		return nil, database.ErrKeyNotFound
	}
	return v, nil
}

func (s *memStore) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

func (s *memStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

func (s *memStore) KeysByPrefix(ctx context.Context, prefix string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var keys []string
	for k := range s.data {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

func (s *memStore) GetByPrefix(ctx context.Context, prefix string) ([][]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var vals [][]byte
	for k, v := range s.data {
		if strings.HasPrefix(k, prefix) {
			vals = append(vals, v)
		}
	}
	return vals, nil
}

func (s *memStore) Close(ctx context.Context) error { return nil }

// stubProvider resolves fixed tokens to fixed identities.
type stubProvider struct {
	identities map[string]authSvc.Identity
}

func (p *stubProvider) Verify(ctx context.Context, token string) (*authSvc.Identity, error) {
	id, ok := p.identities[token]
	if !ok {
		return nil, fault.ErrUnauthorized
	}
	cp := id
	return &cp, nil
}

func (p *stubProvider) CreateUser(ctx context.Context, email, password, name, role string) (*authSvc.Identity, error) {
	return &authSvc.Identity{ID: uuid.NewString(), Email: email, Name: name}, nil
}

func (p *stubProvider) SetRole(ctx context.Context, userID, name, role string) error { return nil }

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.AppConfig = config.Config{
		Env:               "test",
		ServicePrefix:     "api/travel",
		MaxRequestsPerMin: 10000,
		AdminEmail:        "admin@example.com",
		AdminName:         "Site Admin",
		AdminPassword:     "secret",
	}

	store := newMemStore()
	provider := &stubProvider{identities: map[string]authSvc.Identity{
		"admin-token": {ID: "a1", Email: "admin@example.com", Name: "Site Admin"},
		"user-token":  {ID: "u1", Email: "u1@example.com", Name: "U One"},
	}}

	profileService := &profileSvc.DefaultProfileService{
		Repo:          repository.NewKVProfileRepo(store),
		Provisioner:   provider,
		AdminEmail:    config.AppConfig.AdminEmail,
		AdminName:     config.AppConfig.AdminName,
		AdminPassword: config.AppConfig.AdminPassword,
	}
	catalogService := &catalogSvc.DefaultCatalogService{Repo: repository.NewKVDestinationRepo(store)}
	bookingService := &bookingSvc.DefaultBookingService{Repo: repository.NewKVBookingRepo(store)}

	hb := &HandlerBundle{
		Verifier:       provider,
		ProfileService: profileService,
		Profile:        handlers.NewProfileHandler(profileService),
		Destination:    handlers.NewDestinationHandler(catalogService),
		Booking:        handlers.NewBookingHandler(bookingService),
		Admin:          handlers.NewAdminHandler(profileService),
		Setup:          handlers.NewSetupHandler(profileService, catalogService),
	}

	router := gin.New()
	RegisterRoutes(router, hb)
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

const apiPrefix = "/api/travel"

func TestHealthRoute(t *testing.T) {
	router := newTestRouter(t)
	w := doRequest(t, router, http.MethodGet, "/health", "", nil)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestAuthGuards(t *testing.T) {
	router := newTestRouter(t)

	t.Run("MissingTokenIsUnauthorized", func(t *testing.T) {
		for _, route := range []struct{ method, path string }{
			{http.MethodPost, apiPrefix + "/sync-profile"},
			{http.MethodPost, apiPrefix + "/bookings"},
			{http.MethodGet, apiPrefix + "/my-bookings"},
			{http.MethodGet, apiPrefix + "/admin/bookings"},
		} {
			w := doRequest(t, router, route.method, route.path, "", nil)
			if w.Code != http.StatusUnauthorized {
				t.Errorf("%s %s: expected 401, got %d", route.method, route.path, w.Code)
			}
		}
	})

	t.Run("BadTokenIsUnauthorized", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, apiPrefix+"/sync-profile", "garbage", nil)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("NonAdminIsForbidden", func(t *testing.T) {
		// The profile must exist before the role check can read it.
		doRequest(t, router, http.MethodPost, apiPrefix+"/sync-profile", "user-token", nil)
		for _, route := range []struct{ method, path string }{
			{http.MethodGet, apiPrefix + "/admin/bookings"},
			{http.MethodGet, apiPrefix + "/admin/users"},
			{http.MethodPost, apiPrefix + "/admin/destinations"},
			{http.MethodDelete, apiPrefix + "/admin/destinations/dest_1"},
		} {
			w := doRequest(t, router, route.method, route.path, "user-token", nil)
			if w.Code != http.StatusForbidden {
				t.Errorf("%s %s: expected 403, got %d", route.method, route.path, w.Code)
			}
		}
	})

	t.Run("FixAdminRoleForbiddenForOtherEmails", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, apiPrefix+"/fix-admin-role", "user-token", nil)
		if w.Code != http.StatusForbidden {
			t.Errorf("expected 403, got %d", w.Code)
		}
	})
}

func TestSyncProfileFlow(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodPost, apiPrefix+"/sync-profile", "user-token", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("sync-profile failed: %d %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["synced"] != true {
		t.Errorf("first sync should create the profile: %v", body)
	}

	w = doRequest(t, router, http.MethodPost, apiPrefix+"/sync-profile", "user-token", nil)
	body = decodeBody(t, w)
	if body["synced"] != false {
		t.Errorf("second sync should be idempotent: %v", body)
	}

	// The designated admin converges to the admin role on sync.
	w = doRequest(t, router, http.MethodPost, apiPrefix+"/sync-profile", "admin-token", nil)
	body = decodeBody(t, w)
	profile, _ := body["profile"].(map[string]any)
	if profile["role"] != "admin" {
		t.Errorf("designated admin should sync with admin role: %v", body)
	}
}

func TestBookingFlow(t *testing.T) {
	router := newTestRouter(t)
	doRequest(t, router, http.MethodPost, apiPrefix+"/sync-profile", "user-token", nil)
	doRequest(t, router, http.MethodPost, apiPrefix+"/sync-profile", "admin-token", nil)

	input := map[string]any{
		"destinationId":   "dest_4",
		"destinationName": "Santorini Dreams",
		"travelers":       2,
		"startDate":       "2026-10-01",
		"fullName":        "U One",
		"email":           "u1@example.com",
		"phone":           "555-0101",
		"totalPrice":      3398,
		"duration":        "5 Days, 4 Nights",
	}
	w := doRequest(t, router, http.MethodPost, apiPrefix+"/bookings", "user-token", input)
	if w.Code != http.StatusOK {
		t.Fatalf("create booking failed: %d %s", w.Code, w.Body.String())
	}
	created := decodeBody(t, w)["booking"].(map[string]any)
	if created["status"] != "confirmed" {
		t.Errorf("expected status confirmed, got %v", created["status"])
	}
	if created["totalPrice"] != float64(3398) {
		t.Errorf("expected totalPrice 3398, got %v", created["totalPrice"])
	}

	t.Run("MyBookingsIncludesItExactlyOnce", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, apiPrefix+"/my-bookings", "user-token", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("my-bookings failed: %d", w.Code)
		}
		bookings := decodeBody(t, w)["bookings"].([]any)
		count := 0
		for _, b := range bookings {
			if b.(map[string]any)["id"] == created["id"] {
				count++
			}
		}
		if count != 1 {
			t.Errorf("created booking should appear exactly once, got %d", count)
		}
	})

	t.Run("AdminSeesAllBookings", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, apiPrefix+"/admin/bookings", "admin-token", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("admin bookings failed: %d %s", w.Code, w.Body.String())
		}
		bookings := decodeBody(t, w)["bookings"].([]any)
		found := false
		for _, b := range bookings {
			if b.(map[string]any)["id"] == created["id"] {
				found = true
			}
		}
		if !found {
			t.Error("admin listing should include the user's booking")
		}
	})

	t.Run("AdminSeesAllUsers", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, apiPrefix+"/admin/users", "admin-token", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("admin users failed: %d", w.Code)
		}
		users := decodeBody(t, w)["users"].([]any)
		if len(users) != 2 {
			t.Errorf("expected 2 profiles, got %d", len(users))
		}
	})
}

func TestDestinationFlow(t *testing.T) {
	router := newTestRouter(t)
	doRequest(t, router, http.MethodPost, apiPrefix+"/sync-profile", "admin-token", nil)

	w := doRequest(t, router, http.MethodPost, apiPrefix+"/admin/destinations", "admin-token", map[string]any{
		"name":     "Santorini Dreams",
		"location": "Santorini, Greece",
		"price":    1699,
		"category": "Beach",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("create destination failed: %d %s", w.Code, w.Body.String())
	}
	created := decodeBody(t, w)["destination"].(map[string]any)

	t.Run("ListReturnsExactPrice", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, apiPrefix+"/destinations", "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("list destinations failed: %d", w.Code)
		}
		dests := decodeBody(t, w)["destinations"].([]any)
		if len(dests) != 1 {
			t.Fatalf("expected 1 destination, got %d", len(dests))
		}
		if dests[0].(map[string]any)["price"] != float64(1699) {
			t.Errorf("price must come back unmodified, got %v", dests[0].(map[string]any)["price"])
		}
	})

	t.Run("GetByID", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, apiPrefix+"/destinations/"+created["id"].(string), "", nil)
		if w.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", w.Code)
		}
		w = doRequest(t, router, http.MethodGet, apiPrefix+"/destinations/dest_missing", "", nil)
		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
	})

	t.Run("DeleteIsIdempotent", func(t *testing.T) {
		path := apiPrefix + "/admin/destinations/" + created["id"].(string)
		w := doRequest(t, router, http.MethodDelete, path, "admin-token", nil)
		if w.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", w.Code)
		}
		w = doRequest(t, router, http.MethodDelete, path, "admin-token", nil)
		if w.Code != http.StatusOK {
			t.Errorf("deleting an absent id should still return success, got %d", w.Code)
		}
	})
}

func TestInitSeedsCatalogOnce(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodPost, apiPrefix+"/init", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("init failed: %d %s", w.Code, w.Body.String())
	}
	w = doRequest(t, router, http.MethodGet, apiPrefix+"/destinations", "", nil)
	dests := decodeBody(t, w)["destinations"].([]any)
	if len(dests) != 8 {
		t.Errorf("expected 8 seeded destinations, got %d", len(dests))
	}

	w = doRequest(t, router, http.MethodPost, apiPrefix+"/init", "", nil)
	body := decodeBody(t, w)
	if body["message"] != "Already initialized" {
		t.Errorf("second init should be a no-op: %v", body)
	}
}

func TestSignup(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodPost, apiPrefix+"/signup", "", map[string]any{
		"email":    "new@example.com",
		"password": "pw",
		"name":     "New User",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("signup failed: %d %s", w.Code, w.Body.String())
	}
	user := decodeBody(t, w)["user"].(map[string]any)
	if user["role"] != "user" {
		t.Errorf("signup should create a user role, got %v", user["role"])
	}

	t.Run("MissingFieldsRejected", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, apiPrefix+"/signup", "", map[string]any{"name": "X"})
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}
