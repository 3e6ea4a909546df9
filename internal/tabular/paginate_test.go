package tabular

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func seedRows(n int) []Row {
	rows := make([]Row, n)
	for i := range rows {
		rows[i] = Row{"id": fmt.Sprintf("row-%04d", i), "n": float64(i)}
	}
	return rows
}

func TestFetchAll_PagesUntilShortPage(t *testing.T) {
	store := NewMemStore()
	store.Seed(TableReplies, seedRows(2500))

	rows, err := FetchAll(context.Background(), store, NewQuery(TableReplies).Order("id", false), 1000)
	assert.NoError(t, err)
	assert.Len(t, rows, 2500)
	assert.Equal(t, "row-0000", rows[0].String("id"))
	assert.Equal(t, "row-2499", rows[2499].String("id"))
}

func TestFetchAll_ExactMultipleNeedsOneExtraPage(t *testing.T) {
	store := NewMemStore()
	store.Seed(TableReplies, seedRows(2000))

	// 2000 rows at page size 1000: pages 0 and 1 come back full, page 2 is
	// empty and terminates the loop.
	rows, err := FetchAll(context.Background(), store, NewQuery(TableReplies).Order("id", false), 1000)
	assert.NoError(t, err)
	assert.Len(t, rows, 2000)
}

func TestFetchAll_Empty(t *testing.T) {
	store := NewMemStore()

	rows, err := FetchAll(context.Background(), store, NewQuery(TableReplies), 1000)
	assert.NoError(t, err)
	assert.Empty(t, rows)
}

// failAfterStore serves pages from the wrapped store until a set page index,
// then fails.
type failAfterStore struct {
	inner    Store
	failPage int
	pageSize int
}

func (f *failAfterStore) Execute(ctx context.Context, q Query) ([]Row, error) {
	if q.Offset >= f.failPage*f.pageSize {
		return nil, errors.New("store unavailable")
	}
	return f.inner.Execute(ctx, q)
}

func TestFetchAll_PageErrorDiscardsPartials(t *testing.T) {
	inner := NewMemStore()
	inner.Seed(TableReplies, seedRows(2500))
	store := &failAfterStore{inner: inner, failPage: 2, pageSize: 1000}

	rows, err := FetchAll(context.Background(), store, NewQuery(TableReplies).Order("id", false), 1000)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "page 2")
	// Partial pages are discarded, never returned alongside the error.
	assert.Nil(t, rows)
}

func TestFetchAll_DefaultsPageSize(t *testing.T) {
	store := NewMemStore()
	store.Seed(TableReplies, seedRows(10))

	rows, err := FetchAll(context.Background(), store, NewQuery(TableReplies), 0)
	assert.NoError(t, err)
	assert.Len(t, rows, 10)
}
