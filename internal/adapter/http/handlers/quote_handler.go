package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/ChumaGrandmaster/chuma-grandmaster-webapp/internal/adapter/http/dto/request"
	response "github.com/ChumaGrandmaster/chuma-grandmaster-webapp/internal/adapter/http/dto/response"
	"github.com/ChumaGrandmaster/chuma-grandmaster-webapp/internal/domain/entities"
	"github.com/ChumaGrandmaster/chuma-grandmaster-webapp/internal/usecase"
	"github.com/ChumaGrandmaster/chuma-grandmaster-webapp/pkg"
)

var (
	errInvalidQuotePayload  = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid quote request payload", http.StatusBadRequest)
	errInvalidStatusPayload = pkg.NewDomainErrorSimple("INVALID_STATUS", "Invalid status payload", http.StatusBadRequest)
)

// QuoteHandler handles HTTP requests for the quote-request lifecycle:
// public intake plus the admin triage surface.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// CreateQuote godoc
// @Summary  Submit a quote request
// @Tags     quotes
// @Accept   json
// @Produce  json
// @Param    quote body request.CreateQuoteRequest true "Quote request"
// @Success  201 {object} response.CreateQuoteResponse
// @Failure  400 {object} response.ValidationErrorResponse
// @Failure  429 {object} pkg.HTTPError
// @Router   /quotes [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.CreateQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	if violations := payload.Validate(); len(violations) > 0 {
		fieldErrs := make([]response.FieldErrorResponse, 0, len(violations))
		for _, v := range violations {
			fieldErrs = append(fieldErrs, response.FieldErrorResponse{Field: v.Field, Message: v.Message})
		}
		c.JSON(http.StatusBadRequest, response.ValidationErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Submission failed validation",
			Errors:  fieldErrs,
		})
		return
	}

	quote, err := h.usecase.Create(c.Request.Context(), usecase.CreateQuoteInput{
		Name:        payload.Name,
		Email:       payload.Email,
		Phone:       payload.Phone,
		Company:     payload.Company,
		ProjectType: payload.ProjectType,
		Budget:      payload.Budget,
		Timeline:    payload.Timeline,
		Description: payload.Description,
	})
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.CreateQuoteResponse{ID: quote.ID})
}

// ListQuotes godoc
// @Summary  List quote requests with filters and sorting
// @Tags     quotes
// @Produce  json
// @Param    status query string false "Filter by status (or 'all')"
// @Param    projectType query string false "Filter by project type (or 'all')"
// @Param    sortBy query string false "Sort field" default(createdAt)
// @Param    order query string false "asc or desc" default(desc)
// @Success  200 {object} response.ListQuotesResponse
// @Failure  500 {object} pkg.HTTPError
// @Router   /quotes [get]
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	quotes, err := h.usecase.List(c.Request.Context(), usecase.ListFilter{
		Status:      c.Query("status"),
		ProjectType: c.Query("projectType"),
		SortBy:      c.Query("sortBy"),
		Order:       c.Query("order"),
	})
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

// GetQuote godoc
// @Summary  Fetch a single quote request
// @Tags     quotes
// @Produce  json
// @Param    id path string true "Quote id"
// @Success  200 {object} response.QuoteResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /quotes/{id} [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	quote, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// UpdateQuoteStatus godoc
// @Summary  Transition the status of a quote request
// @Tags     quotes
// @Accept   json
// @Produce  json
// @Param    id path string true "Quote id"
// @Param    status body request.UpdateQuoteStatusRequest true "New status"
// @Success  200 {object} response.QuoteResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Router   /quotes/{id}/status [patch]
func (h *QuoteHandler) UpdateQuoteStatus(c *gin.Context) {
	var payload request.UpdateQuoteStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStatusPayload.HTTPStatus, errInvalidStatusPayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), entities.QuoteStatus(payload.Status))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// DeleteQuote godoc
// @Summary  Delete a quote request
// @Tags     quotes
// @Produce  json
// @Param    id path string true "Quote id"
// @Success  200 {object} map[string]string
// @Failure  404 {object} pkg.HTTPError
// @Router   /quotes/{id} [delete]
func (h *QuoteHandler) DeleteQuote(c *gin.Context) {
	id := c.Param("id")
	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id})
}

// DeleteAllQuotes godoc
// @Summary  Delete every quote request
// @Tags     quotes
// @Produce  json
// @Success  200 {object} map[string]string
// @Failure  500 {object} pkg.HTTPError
// @Router   /quotes [delete]
func (h *QuoteHandler) DeleteAllQuotes(c *gin.Context) {
	if err := h.usecase.DeleteAll(c.Request.Context()); err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}

// GetStats godoc
// @Summary  Aggregate counts per status
// @Tags     stats
// @Produce  json
// @Success  200 {object} response.StatsResponse
// @Failure  500 {object} pkg.HTTPError
// @Router   /stats [get]
func (h *QuoteHandler) GetStats(c *gin.Context) {
	stats, err := h.usecase.Stats(c.Request.Context())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	byStatus := make(map[string]int, len(stats.ByStatus))
	for s, n := range stats.ByStatus {
		byStatus[string(s)] = n
	}
	c.JSON(http.StatusOK, response.StatsResponse{Total: stats.Total, ByStatus: byStatus})
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Status is not a valid value", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote request not found", http.StatusNotFound)
	default:
		// Storage faults and anything unexpected: full detail stays in
		// the log, the client gets a generic message.
		log.Printf("[quote][http] internal error: %v", err)
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
