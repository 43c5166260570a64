package interfaces

import (
	"context"

	"github.com/ChumaGrandmaster/chuma-grandmaster-webapp/internal/domain/entities"
)

// INotifier delivers a human-readable notification about a new quote
// request to the site operator.
//
// Delivery is best-effort: callers invoke it off the request path,
// log the error and move on. No retry, no queue.

type INotifier interface {
	NotifyNewQuote(ctx context.Context, quote entities.QuoteRequest) error
}
