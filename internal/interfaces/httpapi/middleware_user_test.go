package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRequireUser_MissingHeader(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run without a user")
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/picks?sport=nfl&week=1", nil)
	RequireUser(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRequireUser_PassesPrincipal(t *testing.T) {
	var gotUserID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, ok := principalFromContext(r.Context())
		if !ok {
			t.Fatal("expected a principal in context")
		}
		gotUserID = principal.UserID
		w.WriteHeader(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/picks?sport=nfl&week=1", nil)
	req.Header.Set("X-User-ID", "user-7")
	RequireUser(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if gotUserID != "user-7" {
		t.Fatalf("unexpected user id: %s", gotUserID)
	}
}
