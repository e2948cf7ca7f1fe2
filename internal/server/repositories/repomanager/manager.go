package repomanager

import (
	"context"
	"database/sql"

	"tasksync/internal/dbx"
	"tasksync/internal/server/repositories/tasks"
	"tasksync/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to either the pooled
// connection or an open transaction, so services can run the same
// repository code inside dbx.WithTx.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Tasks(db dbx.DBTX) tasks.Repository
}
