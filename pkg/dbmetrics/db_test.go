package dbmetrics

import (
	"context"
	"sync"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingCollector struct {
	mu         sync.Mutex
	operations []string
	poolCalls  int
}

func (c *recordingCollector) ObserveDBQuery(service, operation string, seconds float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.operations = append(c.operations, service+":"+operation)
}

func (c *recordingCollector) SetDBPoolStats(service string, open, inUse, idle int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.poolCalls++
}

func TestDB_ObservesQueries(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	collector := &recordingCollector{}
	wrapped := Wrap(db, collector, "detailing")

	mock.ExpectExec("UPDATE bookings").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT 1").WillReturnRows(sqlmock.NewRows([]string{"v"}).AddRow(1))

	_, err = wrapped.ExecContext(context.Background(), "UPDATE bookings SET notified_at = NOW()")
	require.NoError(t, err)

	var v int
	require.NoError(t, wrapped.QueryRowContext(context.Background(), "SELECT 1").Scan(&v))

	assert.Equal(t, []string{"detailing:exec", "detailing:query_row"}, collector.operations)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDB_ReportPoolStats(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	collector := &recordingCollector{}
	wrapped := Wrap(db, collector, "detailing")
	wrapped.reportPoolStats()

	assert.Equal(t, 1, collector.poolCalls)
}
