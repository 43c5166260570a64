package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ChumaGrandmaster/chuma-grandmaster-webapp/internal/domain/entities"
	"github.com/ChumaGrandmaster/chuma-grandmaster-webapp/internal/usecase/interfaces"
)

var (
	ErrQuoteNotFound  = errors.New("quote request not found")
	ErrInvalidQuoteID = errors.New("invalid quote id")
	ErrInvalidStatus  = errors.New("invalid status")
)

// FilterAll is the sentinel filter value meaning "no constraint".
const FilterAll = "all"

// notifyTimeout bounds the detached notification send so a hung mail
// relay cannot leak goroutines indefinitely.
const notifyTimeout = 15 * time.Second

// CreateQuoteInput is the validated, normalized submission accepted by
// Create. Field-level validation happens at the boundary; the use case
// trusts its input.
type CreateQuoteInput struct {
	Name        string
	Email       string
	Phone       string
	Company     string
	ProjectType string
	Budget      string
	Timeline    string
	Description string
}

// ListFilter carries the query parameters of the list operation.
// Empty or "all" filter values apply no constraint; provided filters
// are AND-conjuncted equality checks.
type ListFilter struct {
	Status      string
	ProjectType string
	SortBy      string
	Order       string
}

// QuoteStats aggregates the collection by status.
type QuoteStats struct {
	Total    int
	ByStatus map[entities.QuoteStatus]int
}

// IQuoteUseCase exposes the quote-request lifecycle:
// intake, triage queries, status transitions, deletion and stats.
type IQuoteUseCase interface {
	Create(ctx context.Context, in CreateQuoteInput) (entities.QuoteRequest, error)
	List(ctx context.Context, filter ListFilter) ([]entities.QuoteRequest, error)
	Get(ctx context.Context, id string) (entities.QuoteRequest, error)
	UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.QuoteRequest, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
	Stats(ctx context.Context) (QuoteStats, error)
}

type QuoteUseCase struct {
	repo     interfaces.IQuoteRepository
	notifier interfaces.INotifier
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

// NewQuoteUseCase wires the lifecycle manager. notifier may be nil when
// no mail relay is configured; creation then skips notification.
func NewQuoteUseCase(repo interfaces.IQuoteRepository, notifier interfaces.INotifier) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, notifier: notifier}
}

func (u *QuoteUseCase) Create(ctx context.Context, in CreateQuoteInput) (entities.QuoteRequest, error) {
	quotes, err := u.repo.ReadAll(ctx)
	if err != nil {
		return entities.QuoteRequest{}, err
	}

	now := time.Now().UTC()
	q := entities.QuoteRequest{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(in.Name),
		Email:       strings.TrimSpace(in.Email),
		Phone:       strings.TrimSpace(in.Phone),
		Company:     strings.TrimSpace(in.Company),
		ProjectType: in.ProjectType,
		Budget:      in.Budget,
		Timeline:    in.Timeline,
		Description: strings.TrimSpace(in.Description),
		Status:      entities.QuoteStatusNew,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := u.repo.WriteAll(ctx, append(quotes, q)); err != nil {
		return entities.QuoteRequest{}, err
	}

	u.notifyDetached(q)
	return q, nil
}

// notifyDetached fires the operator notification on its own goroutine
// with its own deadline. The result never joins the request: failures
// are logged and the notification is lost.
func (u *QuoteUseCase) notifyDetached(q entities.QuoteRequest) {
	if u.notifier == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		if err := u.notifier.NotifyNewQuote(ctx, q); err != nil {
			log.Printf("[quote][notify] delivery failed quote_id=%s err=%v", q.ID, err)
		}
	}()
}

func (u *QuoteUseCase) List(ctx context.Context, filter ListFilter) ([]entities.QuoteRequest, error) {
	quotes, err := u.repo.ReadAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]entities.QuoteRequest, 0, len(quotes))
	for _, q := range quotes {
		if !filterMatches(filter.Status, string(q.Status)) {
			continue
		}
		if !filterMatches(filter.ProjectType, q.ProjectType) {
			continue
		}
		out = append(out, q)
	}

	sortQuotes(out, filter.SortBy, filter.Order)
	return out, nil
}

func filterMatches(want, got string) bool {
	return want == "" || want == FilterAll || want == got
}

// sortQuotes orders the slice by the requested field. Comparison is
// explicit per field type: timestamps compare as instants, contact
// fields case-insensitively, enum fields byte-wise. An unknown sortBy
// keeps insertion order. Defaults: createdAt descending.
func sortQuotes(quotes []entities.QuoteRequest, sortBy, order string) {
	if sortBy == "" {
		sortBy = "createdAt"
	}
	if order == "" {
		order = "desc"
	}

	less, ok := quoteLess(sortBy)
	if !ok {
		return
	}
	sort.SliceStable(quotes, func(i, j int) bool {
		if order == "desc" {
			i, j = j, i
		}
		return less(quotes[i], quotes[j])
	})
}

func quoteLess(sortBy string) (func(a, b entities.QuoteRequest) bool, bool) {
	switch sortBy {
	case "createdAt":
		return func(a, b entities.QuoteRequest) bool { return a.CreatedAt.Before(b.CreatedAt) }, true
	case "updatedAt":
		return func(a, b entities.QuoteRequest) bool { return a.UpdatedAt.Before(b.UpdatedAt) }, true
	case "name":
		return func(a, b entities.QuoteRequest) bool {
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}, true
	case "email":
		return func(a, b entities.QuoteRequest) bool {
			return strings.ToLower(a.Email) < strings.ToLower(b.Email)
		}, true
	case "company":
		return func(a, b entities.QuoteRequest) bool {
			return strings.ToLower(a.Company) < strings.ToLower(b.Company)
		}, true
	case "projectType":
		return func(a, b entities.QuoteRequest) bool { return a.ProjectType < b.ProjectType }, true
	case "budget":
		return func(a, b entities.QuoteRequest) bool { return a.Budget < b.Budget }, true
	case "timeline":
		return func(a, b entities.QuoteRequest) bool { return a.Timeline < b.Timeline }, true
	case "status":
		return func(a, b entities.QuoteRequest) bool { return a.Status < b.Status }, true
	default:
		return nil, false
	}
}

func (u *QuoteUseCase) Get(ctx context.Context, id string) (entities.QuoteRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.QuoteRequest{}, ErrInvalidQuoteID
	}

	quotes, err := u.repo.ReadAll(ctx)
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	for _, q := range quotes {
		if q.ID == id {
			return q, nil
		}
	}
	return entities.QuoteRequest{}, ErrQuoteNotFound
}

func (u *QuoteUseCase) UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.QuoteRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.QuoteRequest{}, ErrInvalidQuoteID
	}
	if !status.Valid() {
		return entities.QuoteRequest{}, ErrInvalidStatus
	}

	quotes, err := u.repo.ReadAll(ctx)
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	for i, q := range quotes {
		if q.ID != id {
			continue
		}
		quotes[i].Status = status
		quotes[i].UpdatedAt = time.Now().UTC()
		if err := u.repo.WriteAll(ctx, quotes); err != nil {
			return entities.QuoteRequest{}, err
		}
		return quotes[i], nil
	}
	return entities.QuoteRequest{}, ErrQuoteNotFound
}

func (u *QuoteUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidQuoteID
	}

	quotes, err := u.repo.ReadAll(ctx)
	if err != nil {
		return err
	}
	for i, q := range quotes {
		if q.ID != id {
			continue
		}
		quotes = append(quotes[:i], quotes[i+1:]...)
		return u.repo.WriteAll(ctx, quotes)
	}
	return ErrQuoteNotFound
}

func (u *QuoteUseCase) DeleteAll(ctx context.Context) error {
	return u.repo.WriteAll(ctx, []entities.QuoteRequest{})
}

// Stats scans the full collection; no running counters are maintained,
// so the total always equals the sum of the per-status buckets.
func (u *QuoteUseCase) Stats(ctx context.Context) (QuoteStats, error) {
	quotes, err := u.repo.ReadAll(ctx)
	if err != nil {
		return QuoteStats{}, err
	}

	stats := QuoteStats{
		Total:    len(quotes),
		ByStatus: make(map[entities.QuoteStatus]int, len(entities.QuoteStatuses)),
	}
	for _, s := range entities.QuoteStatuses {
		stats.ByStatus[s] = 0
	}
	for _, q := range quotes {
		stats.ByStatus[q.Status]++
	}
	return stats, nil
}
