package mock

import (
	"context"

	"github.com/fwojciec/docinv"
)

var _ docinv.RowWriter = (*RowWriter)(nil)

// RowWriter is a mock implementation of docinv.RowWriter.
type RowWriter struct {
	WriteRowsFn func(ctx context.Context, rows []docinv.Row) error
}

func (w *RowWriter) WriteRows(ctx context.Context, rows []docinv.Row) error {
	return w.WriteRowsFn(ctx, rows)
}
