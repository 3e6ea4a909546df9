package tabular

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLStore_BuildSQL_Postgres(t *testing.T) {
	pg := NewPostgresStoreFromDB(nil)
	start := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.March, 8, 0, 0, 0, 0, time.UTC)

	q := NewQuery(TableReplies).
		Select("lead_id", "category").
		Eq("client", "acme").
		DateRange("date_received", start, end).
		Order("date_received", false).
		Page(1000, 1000)

	sqlText, args := pg.buildSQL(q)

	assert.Equal(t,
		"SELECT lead_id, category FROM replies"+
			" WHERE client = $1 AND date_received >= $2 AND date_received < $3"+
			" ORDER BY date_received ASC LIMIT 1000 OFFSET 1000",
		sqlText)
	assert.Equal(t, []any{"acme", start, end}, args)
}

func TestSQLStore_BuildSQL_SnowflakePlaceholders(t *testing.T) {
	sf := NewSnowflakeStoreFromDB(nil)

	sqlText, args := sf.buildSQL(NewQuery(TableCRMLeads).Eq("client", "acme").Eq("campaign_id", "X"))

	assert.Equal(t, "SELECT * FROM crm_leads WHERE client = ? AND campaign_id = ?", sqlText)
	assert.Equal(t, []any{"acme", "X"}, args)
}

func TestSQLStore_Execute(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := NewPostgresStoreFromDB(db)

	received := time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT \* FROM replies WHERE client = \$1 LIMIT 10`).
		WithArgs("acme").
		WillReturnRows(sqlmock.NewRows([]string{"lead_id", "category", "date_received"}).
			AddRow([]byte("lead-1"), "Interested", received).
			AddRow("lead-2", nil, received))

	rows, err := store.Execute(context.Background(), NewQuery(TableReplies).Eq("client", "acme").Page(0, 10))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// []byte columns normalize to string so Row accessors behave the same
	// across backends.
	assert.Equal(t, "lead-1", rows[0].String("lead_id"))
	assert.Equal(t, "Interested", rows[0].String("category"))
	assert.Equal(t, received, rows[0].Time("date_received"))
	assert.Equal(t, "", rows[1].String("category"))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStore_ExecuteQueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := NewPostgresStoreFromDB(db)
	mock.ExpectQuery("SELECT").WillReturnError(assert.AnError)

	_, err = store.Execute(context.Background(), NewQuery(TableReplies))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "query replies")
}
