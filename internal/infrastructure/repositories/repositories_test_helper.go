package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createAccountTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE accounts (
		id TEXT PRIMARY KEY,
		provider_key TEXT UNIQUE NOT NULL,
		email TEXT NOT NULL,
		name TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'USER',
		balance DECIMAL(20,2) NOT NULL DEFAULT 0,
		game_profile_url TEXT,
		contact_handle TEXT,
		verified BOOLEAN NOT NULL DEFAULT FALSE,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE holdings (
		id TEXT PRIMARY KEY,
		account_id TEXT NOT NULL,
		resource TEXT NOT NULL,
		quantity INTEGER NOT NULL DEFAULT 0,
		updated_at DATETIME,
		UNIQUE (account_id, resource)
	);`)
}

func createOrderTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE orders (
		id TEXT PRIMARY KEY,
		seller_id TEXT NOT NULL,
		resource TEXT NOT NULL,
		unit_price DECIMAL(20,2) NOT NULL,
		quantity INTEGER NOT NULL,
		created_at DATETIME
	);`)
}

func createTradeTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE trades (
		id TEXT PRIMARY KEY,
		buyer_id TEXT NOT NULL,
		seller_id TEXT NOT NULL,
		resource TEXT NOT NULL,
		quantity INTEGER NOT NULL,
		unit_price DECIMAL(20,2) NOT NULL,
		total DECIMAL(20,2) NOT NULL,
		created_at DATETIME
	);`)
}

func createDepositTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE deposit_requests (
		id TEXT PRIMARY KEY,
		account_id TEXT NOT NULL,
		amount DECIMAL(20,2) NOT NULL,
		description TEXT,
		status TEXT NOT NULL DEFAULT 'PENDING',
		moderator_id TEXT,
		rejection_reason TEXT,
		resolved_at DATETIME,
		created_at DATETIME
	);`)
}

func createVerificationTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE verification_requests (
		id TEXT PRIMARY KEY,
		account_id TEXT NOT NULL,
		name TEXT NOT NULL,
		game_profile_url TEXT NOT NULL,
		contact_handle TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'PENDING',
		resubmission BOOLEAN NOT NULL DEFAULT FALSE,
		moderator_id TEXT,
		rejection_reason TEXT,
		resolved_at DATETIME,
		created_at DATETIME
	);`)
}
