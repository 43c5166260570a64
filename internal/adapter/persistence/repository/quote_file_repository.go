package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/ChumaGrandmaster/chuma-grandmaster-webapp/internal/domain/entities"
	"github.com/ChumaGrandmaster/chuma-grandmaster-webapp/internal/usecase/interfaces"
)

const defaultQuotesFile = "data/quotes.json"

// QuoteFileRepository persists the quote collection as a single JSON
// array on disk. Every mutation rewrites the whole file, so cost is
// O(n) per write. A mutex serializes access within the process, and
// writes go through a temp file renamed over the target so a crash
// mid-write cannot truncate the store.
type QuoteFileRepository struct {
	mu   sync.Mutex
	path string
}

var _ interfaces.IQuoteRepository = (*QuoteFileRepository)(nil)

// NewQuoteFileRepository stores the collection at path, falling back to
// the QUOTES_FILE env var and then to data/quotes.json.
func NewQuoteFileRepository(path string) *QuoteFileRepository {
	if path == "" {
		path = getenvDefault("QUOTES_FILE", defaultQuotesFile)
	}
	return &QuoteFileRepository{path: path}
}

func (r *QuoteFileRepository) ReadAll(_ context.Context) ([]entities.QuoteRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.readLocked()
}

func (r *QuoteFileRepository) readLocked() ([]entities.QuoteRequest, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		// A store that has never been written reads as empty.
		return []entities.QuoteRequest{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", interfaces.ErrStorageRead, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return []entities.QuoteRequest{}, nil
	}

	var quotes []entities.QuoteRequest
	if err := json.Unmarshal(data, &quotes); err != nil {
		return nil, fmt.Errorf("%w: %v", interfaces.ErrStorageRead, err)
	}
	return quotes, nil
}

func (r *QuoteFileRepository) WriteAll(_ context.Context, quotes []entities.QuoteRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if quotes == nil {
		quotes = []entities.QuoteRequest{}
	}
	data, err := json.MarshalIndent(quotes, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", interfaces.ErrStorageWrite, err)
	}

	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: %v", interfaces.ErrStorageWrite, err)
		}
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", interfaces.ErrStorageWrite, err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("%w: %v", interfaces.ErrStorageWrite, err)
	}
	return nil
}
