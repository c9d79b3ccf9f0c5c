package handlers

import (
	"net/http"

	request "turnover_service/internal/adapter/http/dto/request"
	response "turnover_service/internal/adapter/http/dto/response"
	"turnover_service/internal/usecase"
	"turnover_service/pkg/logger"

	"github.com/gin-gonic/gin"
)

// QuoteHandler handles HTTP requests for quotes.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
	log     logger.Logger
}

func NewQuoteHandler(uc usecase.IQuoteUseCase, log logger.Logger) *QuoteHandler {
	return &QuoteHandler{usecase: uc, log: log}
}

// CreateQuote prices and stores a quote request.
//
// @Summary  Create a quote
// @Tags     quotes
// @Accept   json
// @Produce  json
// @Success  201 {object} response.QuoteResponse
// @Router   /quotes [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	body, appErr := readObject(c)
	if appErr != nil {
		respondError(c, h.log, "[quote][handler] create", appErr)
		return
	}

	payload, err := request.ParseQuoteRequest(body)
	if err != nil {
		respondError(c, h.log, "[quote][handler] create", mapInputError(err))
		return
	}

	quote, err := h.usecase.CreateQuote(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, h.log, "[quote][handler] create", mapResourceError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromQuote(quote))
}

// GetQuote returns a stored quote.
//
// @Summary  Get a quote
// @Tags     quotes
// @Produce  json
// @Param    id path string true "Quote id"
// @Success  200 {object} response.QuoteResponse
// @Router   /quotes/{id} [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	quote, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, "[quote][handler] get", mapResourceError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// GetQuotePDF returns the quote as a printable PDF document.
//
// @Summary  Download a quote document
// @Tags     quotes
// @Produce  application/pdf
// @Param    id path string true "Quote id"
// @Router   /quotes/{id}/pdf [get]
func (h *QuoteHandler) GetQuotePDF(c *gin.Context) {
	id := c.Param("id")
	doc, err := h.usecase.RenderPDF(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, "[quote][handler] pdf", mapResourceError(err))
		return
	}

	c.Header("Content-Disposition", `inline; filename="quote-`+id+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", doc)
}
