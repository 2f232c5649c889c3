package config

import (
	"testing"

	"foodbridge-backend/internal/utils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
)

func TestDSN(t *testing.T) {
	utils.SetConfig("DB_HOST", "db.internal")
	utils.SetConfig("DB_USER", "foodbridge")
	utils.SetConfig("DB_PASSWORD", "secret")
	utils.SetConfig("DB_NAME", "foodbridge")
	utils.SetConfig("DB_PORT", "5432")

	assert.Equal(t,
		"host=db.internal user=foodbridge password=secret dbname=foodbridge port=5432 sslmode=disable TimeZone=Asia/Jakarta",
		DSN(),
	)
}

func TestOpenDB(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := OpenDB(postgres.New(postgres.Config{Conn: sqlDB}))
	require.NoError(t, err)

	mock.ExpectExec("UPDATE food_requests SET completed").
		WithArgs(true, 7).
		WillReturnResult(sqlmock.NewResult(0, 1))

	res := db.Exec("UPDATE food_requests SET completed = ? WHERE id = ?", true, 7)
	require.NoError(t, res.Error)
	assert.Equal(t, int64(1), res.RowsAffected)

	pool, err := db.DB()
	require.NoError(t, err)
	assert.Equal(t, 20, pool.Stats().MaxOpenConnections)
	assert.NoError(t, mock.ExpectationsWereMet())
}
