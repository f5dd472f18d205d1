package handlers

import (
	"fmt"
	"testing"

	"github.com/amirkokoaa-byte/sales/internal/ledger"
	"github.com/amirkokoaa-byte/sales/internal/store"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestLedger(t *testing.T) *ledger.Ledger {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	st, err := store.NewWithDB(db)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return ledger.Open(st)
}
