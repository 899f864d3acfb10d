package sdk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/advmanik/casefolio/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStubServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("/api/login", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		var creds map[string]string
		json.NewDecoder(r.Body).Decode(&creds)
		if creds["username"] != "manik12345" || creds["password"] != "admin12345" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"message": "Invalid credentials"})
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"token": "tok123"})
	})

	mux.HandleFunc("/api/cases", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			json.NewEncoder(w).Encode([]schema.Case{
				{ID: "2", Title: "newer", Category: "c", Summary: "s", Outcome: "o", CreatedAt: "2025-02-01T00:00:00.000Z"},
				{ID: "1", Title: "older", Category: "c", Summary: "s", Outcome: "o", CreatedAt: "2025-01-01T00:00:00.000Z"},
			})
			return
		}
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		if r.Header.Get("Authorization") != "Bearer tok123" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"message": "Unauthorized"})
			return
		}
		var d schema.CaseDraft
		json.NewDecoder(r.Body).Decode(&d)
		c := schema.Case{ID: "new-id", CreatedAt: "2025-03-01T00:00:00.000Z"}
		d.Apply(&c)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(c)
	})

	mux.HandleFunc("/api/cases/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			http.NotFound(w, r)
			return
		}
		if strings.HasSuffix(r.URL.Path, "/missing") {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"message": "Not found"})
			return
		}
		json.NewEncoder(w).Encode(map[string]bool{"success": true})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestClientLogin(t *testing.T) {
	srv := newStubServer(t)
	client := New(srv.URL)

	token, err := client.Login(context.Background(), "manik12345", "admin12345")
	require.NoError(t, err)
	assert.Equal(t, "tok123", token)
	assert.Equal(t, "tok123", client.Token())
}

func TestClientLoginRejected(t *testing.T) {
	srv := newStubServer(t)
	client := New(srv.URL)

	_, err := client.Login(context.Background(), "manik12345", "nope")
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, client.Token())
}

func TestClientListCases(t *testing.T) {
	srv := newStubServer(t)
	client := New(srv.URL)

	items, err := client.ListCases(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "newer", items[0].Title)
}

func TestClientCreateSendsBearerToken(t *testing.T) {
	srv := newStubServer(t)
	client := New(srv.URL)

	_, err := client.CreateCase(context.Background(), schema.CaseDraft{Title: "T", Category: "C", Summary: "S", Outcome: "O"})
	assert.ErrorIs(t, err, ErrUnauthorized)

	client.SetToken("tok123")
	item, err := client.CreateCase(context.Background(), schema.CaseDraft{Title: "T", Category: "C", Summary: "S", Outcome: "O"})
	require.NoError(t, err)
	assert.Equal(t, "new-id", item.ID)
	assert.Equal(t, "T", item.Title)
	assert.NotEmpty(t, item.CreatedAt)
}

func TestClientDeleteNotFound(t *testing.T) {
	srv := newStubServer(t)
	client := New(srv.URL)
	client.SetToken("tok123")

	assert.ErrorIs(t, client.DeleteCase(context.Background(), "missing"), ErrNotFound)
	assert.NoError(t, client.DeleteCase(context.Background(), "present"))
}
