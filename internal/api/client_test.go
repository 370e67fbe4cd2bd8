package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

type staticTokens string

func (t staticTokens) Token() string { return string(t) }

func TestBearerTokenAttachedWhenPresent(t *testing.T) {
	var gotAuth, gotRequestID string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-Id")
		_ = json.NewEncoder(w).Encode([]Product{})
	}))
	defer backend.Close()

	products := NewProductService(backend.URL, time.Second, staticTokens("t1"))
	if _, err := products.List(context.Background()); err != nil {
		t.Fatalf("List returned error: %v", err)
	}

	if gotAuth != "Bearer t1" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
	if gotRequestID == "" {
		t.Fatal("expected X-Request-Id header on outgoing request")
	}
}

func TestNoTokenMeansUnauthenticatedRequest(t *testing.T) {
	var gotAuth string
	seen := false
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = true
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode([]Product{})
	}))
	defer backend.Close()

	products := NewProductService(backend.URL, time.Second, staticTokens(""))
	if _, err := products.List(context.Background()); err != nil {
		t.Fatalf("List returned error: %v", err)
	}

	// The request still goes out, just without credentials.
	if !seen {
		t.Fatal("expected the request to reach the backend")
	}
	if gotAuth != "" {
		t.Fatalf("expected no Authorization header, got %q", gotAuth)
	}
}

func TestLoginDecodesTokenAndUser(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/Auth/login" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var creds Credentials
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			t.Errorf("decode credentials: %v", err)
		}
		if creds.Email != "a@b.com" || creds.Password != "x" {
			t.Errorf("unexpected credentials: %+v", creds)
		}
		_ = json.NewEncoder(w).Encode(AuthResponse{
			Token: "t1",
			User:  User{UserName: "a", Email: "a@b.com"},
		})
	}))
	defer backend.Close()

	auth := NewAuthService(backend.URL, time.Second, staticTokens(""))
	resp, err := auth.Login(context.Background(), Credentials{Email: "a@b.com", Password: "x"})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if resp.Token != "t1" || resp.User.UserName != "a" || resp.User.Email != "a@b.com" {
		t.Fatalf("unexpected auth response: %+v", resp)
	}
}

func TestNotFoundMapsToAPIError(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "seller profile not found"})
	}))
	defer backend.Close()

	sellers := NewSellerService(backend.URL, time.Second, staticTokens("t1"))
	_, err := sellers.MyProfile(context.Background())
	if err == nil {
		t.Fatal("expected error for 404")
	}
	if !IsNotFound(err) {
		t.Fatalf("expected IsNotFound, got %v", err)
	}
	if err.Error() != "seller profile not found" {
		t.Fatalf("expected backend message verbatim, got %q", err.Error())
	}
}

func TestTransportErrorIsNotAPIError(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	backend.Close() // connection refused from here on

	sellers := NewSellerService(backend.URL, time.Second, staticTokens("t1"))
	_, err := sellers.MyProfile(context.Background())
	if err == nil {
		t.Fatal("expected transport error")
	}
	if IsNotFound(err) || IsUnauthorized(err) {
		t.Fatalf("transport error misclassified: %v", err)
	}
}

func TestDeleteToleratesEmptyBody(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/Product/7" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer backend.Close()

	products := NewProductService(backend.URL, time.Second, staticTokens("t1"))
	if err := products.Delete(context.Background(), 7); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
}
