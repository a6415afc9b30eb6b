// Package mock provides the in-process doubles backing the integration suite.
package mock

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbOnce sync.Once
var db *Db

// Db wraps the shared in-memory SQLite database of the integration suite.
// The models map is keyed by table name so the db assertion steps can resolve
// the table named in a feature file to its GORM model.
type Db struct {
	DbConn *gorm.DB
	models map[string]any
}

// NewDb opens the singleton test database and builds the schema for the given
// models. Later calls return the same instance.
func NewDb(models map[string]any) *Db {
	dbOnce.Do(func() {
		conn, err := openSharedSQLite()
		if err != nil {
			panic("failed to open test database: " + err.Error())
		}
		db = &Db{DbConn: conn, models: models}
		if err := db.migrate(); err != nil {
			panic("failed to migrate test database: " + err.Error())
		}
	})
	return db
}

// openSharedSQLite opens an in-memory SQLite database with a shared cache.
// The pool is capped at one connection; closing the last connection would
// discard the database mid-run.
func openSharedSQLite() (*gorm.DB, error) {
	sqlDB, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	return gorm.Open(sqlite.Dialector{Conn: sqlDB}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
}

// migrate rebuilds the schema from scratch.
func (d *Db) migrate() error {
	modelList := make([]any, 0, len(d.models))
	for _, m := range d.models {
		if err := d.DbConn.Migrator().DropTable(m); err != nil {
			return err
		}
		modelList = append(modelList, m)
	}

	if err := d.DbConn.AutoMigrate(modelList...); err != nil {
		return err
	}

	for _, m := range modelList {
		if !d.DbConn.Migrator().HasTable(m) {
			return fmt.Errorf("table for model %T was not created", m)
		}
	}
	return nil
}

// ClearDB wipes every registered table between scenarios, soft-deleted rows
// included, and resets SQLite's autoincrement counters.
func (d *Db) ClearDB() error {
	for table, m := range d.models {
		session := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped()
		if err := session.Delete(m).Error; err != nil {
			return err
		}

		err := d.DbConn.Exec("DELETE FROM sqlite_sequence WHERE name = ?", table).Error
		if err != nil && !strings.Contains(err.Error(), "no such table: sqlite_sequence") {
			return err
		}
	}
	return nil
}

// GetModel resolves a table name to its registered GORM model.
func (d *Db) GetModel(table string) (any, bool) {
	m, ok := d.models[table]
	return m, ok
}
