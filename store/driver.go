package store

import (
	"context"
	"database/sql"
)

// Driver is an interface for store driver.
// It contains all methods that store database driver should implement.
type Driver interface {
	GetDB() *sql.DB
	Close() error

	IsInitialized(ctx context.Context) (bool, error)

	// Grammar catalog related methods.
	CreateGrammar(ctx context.Context, create *Grammar) (*Grammar, error)
	ListGrammars(ctx context.Context, find *FindGrammar) ([]*Grammar, error)

	// Progress ledger related methods. GetProgress returns nil when the
	// visitor has no stored ledger; UpsertProgress has create-or-replace
	// semantics over the whole document.
	GetProgress(ctx context.Context, visitorID string) (*ProgressLedger, error)
	UpsertProgress(ctx context.Context, upsert *ProgressLedger) (*ProgressLedger, error)
}
