package response

import (
	"time"

	"github.com/ChumaGrandmaster/chuma-grandmaster-webapp/internal/domain/entities"
)

type QuoteResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Company     string    `json:"company,omitempty"`
	ProjectType string    `json:"projectType"`
	Budget      string    `json:"budget"`
	Timeline    string    `json:"timeline"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromQuote(q entities.QuoteRequest) QuoteResponse {
	return QuoteResponse{
		ID:          q.ID,
		Name:        q.Name,
		Email:       q.Email,
		Phone:       q.Phone,
		Company:     q.Company,
		ProjectType: q.ProjectType,
		Budget:      q.Budget,
		Timeline:    q.Timeline,
		Description: q.Description,
		Status:      string(q.Status),
		CreatedAt:   q.CreatedAt,
		UpdatedAt:   q.UpdatedAt,
	}
}

type CreateQuoteResponse struct {
	ID string `json:"id"`
}

type ListQuotesResponse struct {
	Quotes []QuoteResponse `json:"quotes"`
	Total  int             `json:"total"`
}

func FromQuotes(quotes []entities.QuoteRequest) ListQuotesResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q))
	}
	return ListQuotesResponse{Quotes: out, Total: len(out)}
}

type StatsResponse struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"byStatus"`
}

// FieldErrorResponse mirrors one validation violation on the wire.
type FieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrorResponse is the 400 body for rejected submissions.
type ValidationErrorResponse struct {
	Code    string               `json:"code"`
	Message string               `json:"message"`
	Errors  []FieldErrorResponse `json:"errors"`
}
