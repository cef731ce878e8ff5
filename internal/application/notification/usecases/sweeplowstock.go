package usecases

import (
	"context"

	settingUsecases "holzwerk/internal/application/setting/usecases"
	"holzwerk/internal/application/notification/dto"
	"holzwerk/internal/domain/product"
	"holzwerk/internal/shared/logger"
)

// SweepLowStockUseCase runs the low-stock check across every active product
// currently at or below its threshold. Intended for periodic invocation;
// the per-product de-dup keeps repeated sweeps from resending alerts.
type SweepLowStockUseCase struct {
	productRepo product.Repository
	check       *CheckLowStockUseCase
	provider    *settingUsecases.SettingProvider
	logger      logger.Interface
}

// NewSweepLowStockUseCase creates a new SweepLowStockUseCase
func NewSweepLowStockUseCase(
	productRepo product.Repository,
	check *CheckLowStockUseCase,
	provider *settingUsecases.SettingProvider,
	logger logger.Interface,
) *SweepLowStockUseCase {
	return &SweepLowStockUseCase{
		productRepo: productRepo,
		check:       check,
		provider:    provider,
		logger:      logger,
	}
}

// Execute sweeps all products below threshold and reports how many alerts
// were sent. A failure on one product is logged and does not stop the sweep.
func (uc *SweepLowStockUseCase) Execute(ctx context.Context) (*dto.StockSweepResponse, error) {
	defaultThreshold := uc.provider.GetDefaultLowStockThreshold(ctx)

	products, err := uc.productRepo.ListActiveBelowThreshold(ctx, defaultThreshold)
	if err != nil {
		return nil, err
	}

	response := &dto.StockSweepResponse{Checked: len(products)}

	for _, p := range products {
		sent, err := uc.check.Execute(ctx, p.ID())
		if err != nil {
			uc.logger.Warnw("stock sweep check failed",
				"product_id", p.ID(),
				"sku", p.SKU(),
				"error", err,
			)
			continue
		}
		if sent {
			response.AlertsSent++
		}
	}

	uc.logger.Infow("stock sweep completed",
		"checked", response.Checked,
		"alerts_sent", response.AlertsSent,
	)

	return response, nil
}
