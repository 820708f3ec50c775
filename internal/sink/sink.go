// Package sink exports generated tables to their destinations.
package sink

import (
	"context"

	"staygen/internal/dataset"
)

// Sink writes one exportable table. Implementations are called once per
// table in dependency order.
type Sink interface {
	Write(ctx context.Context, t dataset.Table) error
}
