package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ChumaGrandmaster/chuma-grandmaster-webapp/internal/adapter/http/handlers"
)

const (
	PathQuotes = "/quotes"
	PathStats  = "/stats"
)

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler, createLimit gin.HandlerFunc) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", createLimit, quoteHandler.CreateQuote)
		quotes.GET("", quoteHandler.ListQuotes)
		quotes.DELETE("", quoteHandler.DeleteAllQuotes)
		quotes.GET("/:id", quoteHandler.GetQuote)
		quotes.PATCH("/:id/status", quoteHandler.UpdateQuoteStatus)
		quotes.DELETE("/:id", quoteHandler.DeleteQuote)
	}

	rg.GET(PathStats, quoteHandler.GetStats)
}
