package legacy

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"agroclima_portal/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
)

func TestClient_LookupUser(t *testing.T) {
	t.Run("missing jwt secret", func(t *testing.T) {
		c := NewClient("http://localhost/lookup?email=", "", "")
		_, err := c.LookupUser(context.Background(), "a@b.com")
		if !errors.Is(err, ErrMissingJWTSecret) {
			t.Fatalf("expected ErrMissingJWTSecret, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		var gotAuth, gotPath string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			gotPath = r.URL.RequestURI()
			json.NewEncoder(w).Encode(map[string]any{
				"ok": true,
				"user": map[string]any{
					"id":           42,
					"nome":         "Ana",
					"login":        "a@b.com",
					"max_sessions": 3,
					"pagante":      "s",
				},
			})
		}))
		defer srv.Close()

		c := NewClient(srv.URL+"/lookup?email=", "", "secret")
		user, err := c.LookupUser(context.Background(), "a@b.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.ID != 42 || user.Login != "a@b.com" || user.MaxSessions != 3 {
			t.Fatalf("unexpected user: %+v", user)
		}

		if gotPath != "/lookup?email=a%40b.com" {
			t.Fatalf("expected escaped email in query, got %q", gotPath)
		}
		if !strings.HasPrefix(gotAuth, "Bearer ") {
			t.Fatalf("expected bearer token, got %q", gotAuth)
		}

		token, err := jwt.Parse(strings.TrimPrefix(gotAuth, "Bearer "), func(t *jwt.Token) (any, error) {
			return []byte("secret"), nil
		})
		if err != nil || !token.Valid {
			t.Fatalf("expected a valid HS256 token, got err=%v", err)
		}
		claims := token.Claims.(jwt.MapClaims)
		if claims["name"] != "AgroClima API" {
			t.Fatalf("unexpected token claims: %v", claims)
		}
	})

	t.Run("404 maps to not found", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		c := NewClient(srv.URL+"/lookup?email=", "", "secret")
		_, err := c.LookupUser(context.Background(), "a@b.com")
		if !errors.Is(err, interfaces.ErrLegacyUserNotFound) {
			t.Fatalf("expected ErrLegacyUserNotFound, got %v", err)
		}
	})

	t.Run("ok false maps to not found", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{"ok": false})
		}))
		defer srv.Close()

		c := NewClient(srv.URL+"/lookup?email=", "", "secret")
		_, err := c.LookupUser(context.Background(), "a@b.com")
		if !errors.Is(err, interfaces.ErrLegacyUserNotFound) {
			t.Fatalf("expected ErrLegacyUserNotFound, got %v", err)
		}
	})

	t.Run("unexpected status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		c := NewClient(srv.URL+"/lookup?email=", "", "secret")
		_, err := c.LookupUser(context.Background(), "a@b.com")
		if err == nil || !strings.Contains(err.Error(), "500") {
			t.Fatalf("expected status error, got %v", err)
		}
	})
}

func TestClient_AlterUser(t *testing.T) {
	t.Run("missing alter url", func(t *testing.T) {
		c := NewClient("http://localhost/lookup?email=", "", "secret")
		err := c.AlterUser(context.Background(), "a@b.com", 3, "s")
		if err == nil || !strings.Contains(err.Error(), "USER_ALTER_URL") {
			t.Fatalf("expected configuration error, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		var gotMethod string
		var gotBody map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			json.NewDecoder(r.Body).Decode(&gotBody)
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		c := NewClient("http://localhost/lookup?email=", srv.URL+"/alter", "secret")
		if err := c.AlterUser(context.Background(), "a@b.com", 5, "s"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if gotMethod != http.MethodPut {
			t.Fatalf("expected PUT, got %s", gotMethod)
		}
		if gotBody["login"] != "a@b.com" || gotBody["max_sessions"] != float64(5) || gotBody["pagante"] != "s" {
			t.Fatalf("unexpected body: %v", gotBody)
		}
	})

	t.Run("error status surfaces body snippet", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte("invalid login"))
		}))
		defer srv.Close()

		c := NewClient("http://localhost/lookup?email=", srv.URL+"/alter", "secret")
		err := c.AlterUser(context.Background(), "a@b.com", 3, "s")
		if err == nil || !strings.Contains(err.Error(), "invalid login") {
			t.Fatalf("expected body snippet in error, got %v", err)
		}
	})
}
