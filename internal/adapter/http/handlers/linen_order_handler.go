package handlers

import (
	"net/http"

	request "turnover_service/internal/adapter/http/dto/request"
	response "turnover_service/internal/adapter/http/dto/response"
	"turnover_service/internal/usecase"
	"turnover_service/pkg/logger"

	"github.com/gin-gonic/gin"
)

type LinenOrderHandler struct {
	usecase usecase.ILinenOrderUseCase
	log     logger.Logger
}

func NewLinenOrderHandler(uc usecase.ILinenOrderUseCase, log logger.Logger) *LinenOrderHandler {
	return &LinenOrderHandler{usecase: uc, log: log}
}

// CreateLinenOrder stores a standalone linen pickup at the flat linen price.
//
// @Summary  Create a linen order
// @Tags     linen
// @Accept   json
// @Produce  json
// @Success  201 {object} response.LinenOrderResponse
// @Router   /linen/orders [post]
func (h *LinenOrderHandler) CreateLinenOrder(c *gin.Context) {
	body, appErr := readObject(c)
	if appErr != nil {
		respondError(c, h.log, "[linen][handler] create", appErr)
		return
	}

	payload, err := request.ParseLinenOrderRequest(body)
	if err != nil {
		respondError(c, h.log, "[linen][handler] create", mapInputError(err))
		return
	}

	order, err := h.usecase.CreateLinenOrder(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, h.log, "[linen][handler] create", mapResourceError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromLinenOrder(order))
}

// GetLinenOrder returns a stored linen order.
//
// @Summary  Get a linen order
// @Tags     linen
// @Produce  json
// @Param    id path string true "Linen order id"
// @Success  200 {object} response.LinenOrderResponse
// @Router   /linen/orders/{id} [get]
func (h *LinenOrderHandler) GetLinenOrder(c *gin.Context) {
	order, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, "[linen][handler] get", mapResourceError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromLinenOrder(order))
}
