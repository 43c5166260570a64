package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ChumaGrandmaster/chuma-grandmaster-webapp/internal/adapter/http/handlers/mocks"
	"github.com/ChumaGrandmaster/chuma-grandmaster-webapp/internal/domain/entities"
	"github.com/ChumaGrandmaster/chuma-grandmaster-webapp/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const validQuoteJSON = `{
	"name": "Jane Roe",
	"email": "jane@x.com",
	"phone": "+15551234567",
	"projectType": "website",
	"budget": "under-5k",
	"timeline": "flexible",
	"description": "Need a 5-page brochure site for my bakery"
}`

func TestQuoteHandler_CreateQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/quotes", h.CreateQuote)

		req := httptest.NewRequest(http.MethodPost, "/quotes", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("short description yields a field-level error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/quotes", h.CreateQuote)

		payload := strings.Replace(validQuoteJSON, "Need a 5-page brochure site for my bakery", "short", 1)
		req := httptest.NewRequest(http.MethodPost, "/quotes", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body struct {
			Code   string `json:"code"`
			Errors []struct {
				Field   string `json:"field"`
				Message string `json:"message"`
			} `json:"errors"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if body.Code != "VALIDATION_ERROR" || len(body.Errors) == 0 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if body.Errors[0].Field != "description" {
			t.Fatalf("expected error on description, got %q", body.Errors[0].Field)
		}
	})

	t.Run("storage failure maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/quotes", h.CreateQuote)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.QuoteRequest{}, errors.New("write failed"))

		req := httptest.NewRequest(http.MethodPost, "/quotes", bytes.NewBufferString(validQuoteJSON))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if strings.Contains(w.Body.String(), "write failed") {
			t.Fatalf("internal detail leaked: %s", w.Body.String())
		}
	})

	t.Run("success returns 201 with the generated id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/quotes", h.CreateQuote)

		uc.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(usecase.CreateQuoteInput{})).DoAndReturn(
			func(_ context.Context, in usecase.CreateQuoteInput) (entities.QuoteRequest, error) {
				if in.Name != "Jane Roe" || in.ProjectType != "website" {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.QuoteRequest{ID: "q-1", Status: entities.QuoteStatusNew}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/quotes", bytes.NewBufferString(validQuoteJSON))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "q-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestQuoteHandler_GetQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/quotes/:id", h.GetQuote)

		uc.EXPECT().Get(gomock.Any(), "missing").Return(entities.QuoteRequest{}, usecase.ErrQuoteNotFound)

		req := httptest.NewRequest(http.MethodGet, "/quotes/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/quotes/:id", h.GetQuote)

		now := time.Now().UTC()
		uc.EXPECT().Get(gomock.Any(), "q-1").Return(entities.QuoteRequest{
			ID: "q-1", Name: "Jane Roe", Status: entities.QuoteStatusNew, CreatedAt: now, UpdatedAt: now,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/quotes/q-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "new" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestQuoteHandler_ListQuotes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIQuoteUseCase(ctrl)
	h := NewQuoteHandler(uc)

	r := gin.New()
	r.GET("/quotes", h.ListQuotes)

	uc.EXPECT().List(gomock.Any(), usecase.ListFilter{
		Status: "new", ProjectType: "website", SortBy: "name", Order: "asc",
	}).Return([]entities.QuoteRequest{{ID: "q-1"}, {ID: "q-2"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/quotes?status=new&projectType=website&sortBy=name&order=asc", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Quotes []map[string]any `json:"quotes"`
		Total  int              `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if body.Total != 2 || len(body.Quotes) != 2 {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestQuoteHandler_UpdateQuoteStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("status outside the closed set", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.PATCH("/quotes/:id/status", h.UpdateQuoteStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), "q-1", entities.QuoteStatus("archived")).
			Return(entities.QuoteRequest{}, usecase.ErrInvalidStatus)

		req := httptest.NewRequest(http.MethodPatch, "/quotes/q-1/status", bytes.NewBufferString(`{"status":"archived"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "INVALID_STATUS") {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.PATCH("/quotes/:id/status", h.UpdateQuoteStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), "missing", entities.QuoteStatusReviewed).
			Return(entities.QuoteRequest{}, usecase.ErrQuoteNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/quotes/missing/status", bytes.NewBufferString(`{"status":"reviewed"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success returns the updated record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.PATCH("/quotes/:id/status", h.UpdateQuoteStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), "q-1", entities.QuoteStatusContacted).
			Return(entities.QuoteRequest{ID: "q-1", Status: entities.QuoteStatusContacted}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/quotes/q-1/status", bytes.NewBufferString(`{"status":"contacted"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"contacted"`) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestQuoteHandler_DeleteQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.DELETE("/quotes/:id", h.DeleteQuote)

		uc.EXPECT().Delete(gomock.Any(), "missing").Return(usecase.ErrQuoteNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/quotes/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.DELETE("/quotes/:id", h.DeleteQuote)

		uc.EXPECT().Delete(gomock.Any(), "q-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/quotes/q-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_GetStats(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIQuoteUseCase(ctrl)
	h := NewQuoteHandler(uc)

	r := gin.New()
	r.GET("/stats", h.GetStats)

	uc.EXPECT().Stats(gomock.Any()).Return(usecase.QuoteStats{
		Total: 3,
		ByStatus: map[entities.QuoteStatus]int{
			entities.QuoteStatusNew:      2,
			entities.QuoteStatusReviewed: 1,
		},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/stats", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Total    int            `json:"total"`
		ByStatus map[string]int `json:"byStatus"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if body.Total != 3 || body.ByStatus["new"] != 2 {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}
