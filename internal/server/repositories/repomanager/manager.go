// Package repomanager wires concrete repositories to a database handle and
// owns schema migrations.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/moodframe/moodframe/internal/dbx"
	"github.com/moodframe/moodframe/internal/server/repositories/accounts"
	"github.com/moodframe/moodframe/internal/server/repositories/tasks"
)

// RepositoryManager hands out repositories bound to the given handle, which
// may be a plain connection or an open transaction.
type RepositoryManager interface {
	Accounts(db dbx.DBTX) accounts.Repository
	Tasks(db dbx.DBTX) tasks.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}
