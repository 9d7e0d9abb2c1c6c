package db

import "context"

// StubTxManager runs the given function without a real transaction.
// Tests use it so services can be exercised against stub repositories.
type StubTxManager struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

var _ TxManager = &StubTxManager{}

func (tm *StubTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if tm.RunInTxFunc != nil {
		return tm.RunInTxFunc(ctx, fn)
	}
	return fn(ctx)
}
