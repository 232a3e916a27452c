package store

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AkkAshy/kursi-sub000/internal/client"
	"github.com/AkkAshy/kursi-sub000/internal/credentials"
	"github.com/AkkAshy/kursi-sub000/internal/models"
)

func newStores(t *testing.T, srv *httptest.Server) *Stores {
	t.Helper()

	creds := credentials.NewFileStore(filepath.Join(t.TempDir(), "credentials.json"))
	require.NoError(t, creds.Set(context.Background(), models.TokenPair{Access: "tok", Refresh: "ref"}))

	return New(client.New(srv.URL, creds))
}

// RefreshAll разом наполняет курсы, лиды и подписку.
func TestStores_RefreshAll(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/courses/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[{"id":1,"title":"Go"}]`)
	})
	mux.HandleFunc("/leads/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"results":[{"id":5,"name":"Аноркул","status":"new"}]}`)
	})
	mux.HandleFunc("/subscriptions/current/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"id":10,"status":"active","plan":{"id":2,"slug":"pro"}}`)
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	s := newStores(t, srv)
	require.NoError(t, s.RefreshAll(context.Background()))

	require.Len(t, s.Courses.Items(), 1)
	require.Len(t, s.Leads.Items(), 1)

	current := s.Subscription.Current()
	require.NotNil(t, current)
	require.Equal(t, "pro", current.Plan.Slug)
}

func TestStores_RefreshAll_PropagatesError(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/courses/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	mux.HandleFunc("/leads/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[]`)
	})
	mux.HandleFunc("/subscriptions/current/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"id":10,"status":"active","plan":{"id":2}}`)
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	s := newStores(t, srv)
	require.Error(t, s.RefreshAll(context.Background()))
}
