package mock

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/financehub/server/internal/integration/persistence/model"
)

var dbOnce sync.Once
var db *Db

// ledgerModels are every table the API persists to, in FK-safe order.
var ledgerModels = []any{
	&model.ExpenseModel{},
	&model.TagModel{},
	&model.ExpenseTagModel{},
	&model.TargetModel{},
	&model.GraphEdgeModel{},
}

type Db struct {
	DbConn *gorm.DB
}

// NewDb opens a shared in-memory SQLite database and migrates the ledger
// schema. The connection is a process-wide singleton so every scenario talks
// to the same database; call Reset between scenarios.
func NewDb() *Db {
	if db == nil {
		dbOnce.Do(func() {
			db = open()
		})
	}
	return db
}

func open() *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}

	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	if err := dbConn.AutoMigrate(ledgerModels...); err != nil {
		panic("failed to migrate database. err: " + err.Error())
	}

	newDb := &Db{DbConn: dbConn}
	if err := newDb.Reset(); err != nil {
		panic(fmt.Sprintf("failed to reset database. err: %s", err.Error()))
	}
	return newDb
}

// Reset wipes every table, including soft-deleted rows.
func (d *Db) Reset() error {
	for _, m := range ledgerModels {
		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(m).Error
		if err != nil {
			return err
		}
	}
	return nil
}
