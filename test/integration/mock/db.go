package mock

import (
	"fmt"
	"sync"

	"gorm.io/gorm"

	"github.com/finanzas-pareja/ledger/config"
	"github.com/finanzas-pareja/ledger/internal/infra/db"
)

var once sync.Once
var testDb *Db

// Db is a migrated in-memory ledger database shared by every scenario.
type Db struct {
	DbConn *gorm.DB
	tables []string
	models map[string]any
}

// NewDb opens the shared database once. tables lists the table names in
// the order they can be emptied without leaving dangling references.
func NewDb(tables []string, models map[string]any) *Db {
	if testDb == nil {
		once.Do(
			func() {
				testDb = open(tables, models)
			},
		)
	}

	return testDb
}

func open(tables []string, models map[string]any) *Db {
	database, err := db.Open(&config.DatabaseConfig{
		Driver: config.DriverSQLite,
		URL:    ":memory:",
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	if err := database.Migrate(); err != nil {
		panic("failed to migrate database. err: " + err.Error())
	}

	newDbMock := &Db{
		DbConn: database.DB(),
		tables: tables,
		models: models,
	}

	if err := newDbMock.checkTables(); err != nil {
		panic(err)
	}

	return newDbMock
}

// ClearDB removes every row, soft-deleted ones included.
func (d *Db) ClearDB() error {
	for _, table := range d.tables {
		model, ok := d.models[table]
		if !ok {
			return fmt.Errorf("no model registered for table %s", table)
		}

		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(model).Error
		if err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	return nil
}

func (d *Db) checkTables() error {
	for table, model := range d.models {
		if !d.DbConn.Migrator().HasTable(model) {
			return fmt.Errorf("table %s for model %T was not created", table, model)
		}
	}
	return nil
}

// GetModel returns the model registered for table.
func (d *Db) GetModel(table string) (any, bool) {
	model, ok := d.models[table]
	return model, ok
}
