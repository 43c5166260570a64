package entities

import "time"

// QuoteStatus represents the triage state of a quote request in the
// admin workflow.
//
// Domain notes:
//   - There is no enforced transition graph: the admin may move a
//     request from any status to any other status.
//   - Status values are persisted as-is; the label maps below are the
//     single source for human-readable names.

type QuoteStatus string

const (
	QuoteStatusNew       QuoteStatus = "new"
	QuoteStatusReviewed  QuoteStatus = "reviewed"
	QuoteStatusContacted QuoteStatus = "contacted"
	QuoteStatusQuoted    QuoteStatus = "quoted"
	QuoteStatusAccepted  QuoteStatus = "accepted"
	QuoteStatusRejected  QuoteStatus = "rejected"
)

// QuoteStatuses lists every valid status, in workflow order.
var QuoteStatuses = []QuoteStatus{
	QuoteStatusNew,
	QuoteStatusReviewed,
	QuoteStatusContacted,
	QuoteStatusQuoted,
	QuoteStatusAccepted,
	QuoteStatusRejected,
}

func (s QuoteStatus) Valid() bool {
	for _, v := range QuoteStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Closed option sets accepted on intake. Keys are the wire values; the
// mapped strings are the display labels shared by the notification body
// and any presentation layer.
var (
	ProjectTypeLabels = map[string]string{
		"website":   "Business Website",
		"ecommerce": "E-commerce Store",
		"webapp":    "Web Application",
		"mobile":    "Mobile App",
		"other":     "Other",
	}

	BudgetLabels = map[string]string{
		"under-5k": "Under $5,000",
		"5k-10k":   "$5,000 - $10,000",
		"10k-25k":  "$10,000 - $25,000",
		"25k-50k":  "$25,000 - $50,000",
		"over-50k": "Over $50,000",
	}

	TimelineLabels = map[string]string{
		"asap":       "As soon as possible",
		"1-3-months": "1-3 months",
		"3-6-months": "3-6 months",
		"flexible":   "Flexible",
	}
)

// QuoteRequest is a single lead-capture submission from a prospective
// client, persisted by the quote repository.
type QuoteRequest struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Phone       string      `json:"phone"`
	Company     string      `json:"company,omitempty"`
	ProjectType string      `json:"projectType"`
	Budget      string      `json:"budget"`
	Timeline    string      `json:"timeline"`
	Description string      `json:"description"`
	Status      QuoteStatus `json:"status"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}
