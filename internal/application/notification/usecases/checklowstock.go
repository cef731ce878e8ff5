package usecases

import (
	"context"
	"fmt"
	"time"

	settingUsecases "holzwerk/internal/application/setting/usecases"
	"holzwerk/internal/domain/notification"
	vo "holzwerk/internal/domain/notification/valueobjects"
	"holzwerk/internal/domain/product"
	"holzwerk/internal/shared/errors"
	"holzwerk/internal/shared/logger"
)

// AlertStateStore is the per-product alert state the stock monitor
// de-duplicates through. Transitions are atomic: two concurrent checks for
// the same product never both observe "not firing".
type AlertStateStore interface {
	TransitionToFiring(ctx context.Context, productID uint, quantity, threshold int, now time.Time) (isNewFiring bool, err error)
	TransitionToNormal(ctx context.Context, productID uint) (wasFiring bool, firedAt *time.Time, err error)
}

// CheckLowStockUseCase evaluates one product against its threshold and
// decides, with de-duplication, whether a low-stock alert fires. An alert
// stays open until stock recovers above the threshold; only then can a new
// breach alert again.
type CheckLowStockUseCase struct {
	productRepo product.Repository
	alertState  AlertStateStore
	dispatcher  *SendTemplateEmailUseCase
	provider    *settingUsecases.SettingProvider
	logger      logger.Interface
}

// NewCheckLowStockUseCase creates a new CheckLowStockUseCase
func NewCheckLowStockUseCase(
	productRepo product.Repository,
	alertState AlertStateStore,
	dispatcher *SendTemplateEmailUseCase,
	provider *settingUsecases.SettingProvider,
	logger logger.Interface,
) *CheckLowStockUseCase {
	return &CheckLowStockUseCase{
		productRepo: productRepo,
		alertState:  alertState,
		dispatcher:  dispatcher,
		provider:    provider,
		logger:      logger,
	}
}

// Execute checks the product and returns whether an alert was sent by this
// call. Repeated checks while an alert is open return false.
func (uc *CheckLowStockUseCase) Execute(ctx context.Context, productID uint) (bool, error) {
	p, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return false, errors.NewInternalError("failed to load product", err.Error())
	}
	if p == nil {
		return false, errors.NewNotFoundError(fmt.Sprintf("product %d not found", productID))
	}

	threshold := p.EffectiveThreshold(uc.provider.GetDefaultLowStockThreshold(ctx))

	if p.StockQuantity() > threshold {
		wasFiring, firedAt, err := uc.alertState.TransitionToNormal(ctx, productID)
		if err != nil {
			return false, errors.NewInternalError("failed to clear alert state", err.Error())
		}
		if wasFiring {
			uc.logger.Infow("stock recovered, alert cleared",
				"product_id", productID,
				"sku", p.SKU(),
				"stock_quantity", p.StockQuantity(),
				"fired_at", firedAt,
			)
		}
		return false, nil
	}

	isNewFiring, err := uc.alertState.TransitionToFiring(ctx, productID, p.StockQuantity(), threshold, time.Now().UTC())
	if err != nil {
		return false, errors.NewInternalError("failed to open alert state", err.Error())
	}
	if !isNewFiring {
		// Alert already open, suppress the duplicate.
		return false, nil
	}

	result := uc.dispatchAlert(ctx, p, threshold)
	if !result.Success {
		// Roll the state back so the next check retries instead of
		// suppressing an alert that was never delivered.
		if _, _, clearErr := uc.alertState.TransitionToNormal(ctx, productID); clearErr != nil {
			uc.logger.Errorw("failed to roll back alert state after delivery failure",
				"product_id", productID,
				"error", clearErr,
			)
		}
		uc.logger.Errorw("low stock alert delivery failed",
			"product_id", productID,
			"sku", p.SKU(),
			"error", result.Err,
		)
		return false, result.Err
	}

	return true, nil
}

func (uc *CheckLowStockUseCase) dispatchAlert(ctx context.Context, p *product.Product, threshold int) notification.DispatchResult {
	admin := uc.provider.GetGuaranteedSMTPConfig(ctx).AdminAddress

	return uc.dispatcher.Execute(ctx, notification.TriggerEvent{
		Type:      vo.TriggerTypeLowStockAlert,
		Recipient: admin,
		Payload: map[string]any{
			"product_id":     p.ID(),
			"product_name":   p.Name(),
			"sku":            p.SKU(),
			"stock_quantity": p.StockQuantity(),
			"threshold":      threshold,
		},
	})
}
