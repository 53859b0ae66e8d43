// Package repomanager wires repository constructors for the SQLite store.
package repomanager

import (
	"github.com/dmitrijs2005/sparekeeper/internal/repositories/activity"
	"github.com/dmitrijs2005/sparekeeper/internal/repositories/categories"
	"github.com/dmitrijs2005/sparekeeper/internal/repositories/parts"
	"github.com/dmitrijs2005/sparekeeper/internal/repositories/reports"
	"github.com/dmitrijs2005/sparekeeper/internal/repositories/sessions"
	"github.com/dmitrijs2005/sparekeeper/internal/repositories/users"
	"github.com/dmitrijs2005/sparekeeper/internal/store"
	"github.com/jmoiron/sqlx"
)

type SQLiteRepositoryManager struct{}

func NewSQLiteRepositoryManager() *SQLiteRepositoryManager {
	return &SQLiteRepositoryManager{}
}

func (m *SQLiteRepositoryManager) Users(db store.DBTX) users.Repository {
	return users.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Sessions(db store.DBTX) sessions.Repository {
	return sessions.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Categories(db store.DBTX) categories.Repository {
	return categories.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Parts(db store.DBTX) parts.Repository {
	return parts.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Activity(db store.DBTX) activity.Repository {
	return activity.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Reports(db sqlx.QueryerContext) reports.Repository {
	return reports.NewSQLXRepository(db)
}
