package tabular

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRESTStore_Execute(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lead_id":"a","category":"Interested","date_received":"2025-03-03T09:00:00Z"}]`))
	}))
	defer srv.Close()

	store := NewRESTStore(srv.URL, "secret", srv.Client())

	start := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.March, 8, 0, 0, 0, 0, time.UTC)
	q := NewQuery(TableReplies).
		Select("lead_id", "category", "date_received").
		Eq("client", "acme").
		DateRange("date_received", start, end).
		Order("date_received", false).
		Page(0, 1000)

	rows, err := store.Execute(context.Background(), q)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "a", rows[0].String("lead_id"))
	assert.Equal(t, time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC), rows[0].Time("date_received"))

	assert.Equal(t, "/replies", gotPath)
	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, []string{"lead_id,category,date_received"}, gotQuery["select"])
	assert.Equal(t, []string{"eq.acme"}, gotQuery["client"])
	assert.Equal(t, []string{"gte.2025-03-01T00:00:00Z", "lt.2025-03-08T00:00:00Z"}, gotQuery["date_received"])
	assert.Equal(t, []string{"date_received.asc"}, gotQuery["order"])
	assert.Equal(t, []string{"1000"}, gotQuery["limit"])
	// Offset 0 is omitted; the backend default is the same.
	assert.NotContains(t, gotQuery, "offset")
}

func TestRESTStore_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "permission denied", http.StatusForbidden)
	}))
	defer srv.Close()

	store := NewRESTStore(srv.URL, "", srv.Client())
	_, err := store.Execute(context.Background(), NewQuery(TableReplies))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 403")
}

func TestRESTStore_EmptyResult(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	store := NewRESTStore(srv.URL, "", srv.Client())
	rows, err := store.Execute(context.Background(), NewQuery(TableReplies))
	assert.NoError(t, err)
	assert.Empty(t, rows)
	assert.Equal(t, int32(1), calls.Load())
}
