package repositories

import "context"

// TxFn is a function that runs within a transaction
type TxFn func(ctx context.Context) error

// TransactionManager runs several repository writes as one unit.
// Repositories called with the ctx handed to fn participate in the transaction.
type TransactionManager interface {
	// ExecTx executes fn within a transaction, rolling back if fn returns an error
	ExecTx(ctx context.Context, fn TxFn) error
}
