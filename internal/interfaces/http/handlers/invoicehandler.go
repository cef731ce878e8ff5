package handlers

import (
	"github.com/gin-gonic/gin"

	"holzwerk/internal/application/notification/dto"
	"holzwerk/internal/application/notification/usecases"
	"holzwerk/internal/shared/errors"
	"holzwerk/internal/shared/logger"
	"holzwerk/internal/shared/utils"
)

// InvoiceHandler exposes the cached invoice document builder
type InvoiceHandler struct {
	buildInvoice *usecases.BuildInvoiceUseCase
	logger       logger.Interface
}

func NewInvoiceHandler(buildInvoice *usecases.BuildInvoiceUseCase, logger logger.Interface) *InvoiceHandler {
	return &InvoiceHandler{
		buildInvoice: buildInvoice,
		logger:       logger,
	}
}

// PreviewInvoice builds or serves the cached invoice document for an order
func (h *InvoiceHandler) PreviewInvoice(c *gin.Context) {
	orderNumber := c.Param("order_number")

	var req dto.InvoicePreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for invoice preview", "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body"))
		return
	}

	result, err := h.buildInvoice.Execute(c.Request.Context(), orderNumber, req.Data)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// ClearInvoiceCache evicts every generated invoice document
func (h *InvoiceHandler) ClearInvoiceCache(c *gin.Context) {
	h.buildInvoice.ClearCache()
	utils.OKResponse(c, nil, "invoice cache cleared")
}
