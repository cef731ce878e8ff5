package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"holzwerk/internal/application/notification/dto"
	"holzwerk/internal/application/notification/usecases"
	"holzwerk/internal/shared/errors"
	"holzwerk/internal/shared/logger"
	"holzwerk/internal/shared/utils"
)

// StockHandler exposes the low-stock monitor
type StockHandler struct {
	checkLowStock *usecases.CheckLowStockUseCase
	sweepLowStock *usecases.SweepLowStockUseCase
	logger        logger.Interface
}

func NewStockHandler(
	checkLowStock *usecases.CheckLowStockUseCase,
	sweepLowStock *usecases.SweepLowStockUseCase,
	logger logger.Interface,
) *StockHandler {
	return &StockHandler{
		checkLowStock: checkLowStock,
		sweepLowStock: sweepLowStock,
		logger:        logger,
	}
}

// CheckLowStock evaluates one product against its threshold
func (h *StockHandler) CheckLowStock(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("product_id"), 10, 32)
	if err != nil || productID == 0 {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid product id"))
		return
	}

	sent, err := h.checkLowStock.Execute(c.Request.Context(), uint(productID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, dto.StockCheckResponse{
		ProductID: uint(productID),
		AlertSent: sent,
	})
}

// SweepLowStock checks every active product below threshold
func (h *StockHandler) SweepLowStock(c *gin.Context) {
	result, err := h.sweepLowStock.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}
