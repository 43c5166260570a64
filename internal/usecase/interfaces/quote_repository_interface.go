package interfaces

import (
	"context"
	"errors"

	"github.com/ChumaGrandmaster/chuma-grandmaster-webapp/internal/domain/entities"
)

// Storage sentinels wrapped by every repository implementation so the
// boundary can translate faults without knowing the backend.
var (
	ErrStorageRead  = errors.New("storage read failed")
	ErrStorageWrite = errors.New("storage write failed")
)

// IQuoteRepository abstracts persistence of the quote-request collection.
//
// The contract is deliberately coarse: the whole collection is read and
// rewritten on every mutation. The lifecycle use case is the only
// writer; implementations that cannot serialize writers internally must
// document the resulting last-writer-wins behavior.

type IQuoteRepository interface {
	ReadAll(ctx context.Context) ([]entities.QuoteRequest, error)
	WriteAll(ctx context.Context, quotes []entities.QuoteRequest) error
}
