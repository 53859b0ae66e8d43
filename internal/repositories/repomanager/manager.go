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

// RepositoryManager vends repositories bound to either the pooled handle or
// an open transaction.
type RepositoryManager interface {
	Users(db store.DBTX) users.Repository
	Sessions(db store.DBTX) sessions.Repository
	Categories(db store.DBTX) categories.Repository
	Parts(db store.DBTX) parts.Repository
	Activity(db store.DBTX) activity.Repository
	Reports(db sqlx.QueryerContext) reports.Repository
}
