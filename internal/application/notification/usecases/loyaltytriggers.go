package usecases

import (
	"context"

	"holzwerk/internal/application/notification/dto"
	"holzwerk/internal/domain/notification"
	vo "holzwerk/internal/domain/notification/valueobjects"
	"holzwerk/internal/shared/logger"
)

// LoyaltyTriggerUseCase wraps the shared dispatch pipeline with the four
// loyalty event shapes. Each trigger differs only in its template type and
// payload; the validate/resolve/render/deliver flow is the same.
type LoyaltyTriggerUseCase struct {
	dispatcher *SendTemplateEmailUseCase
	logger     logger.Interface
}

// NewLoyaltyTriggerUseCase creates a new LoyaltyTriggerUseCase
func NewLoyaltyTriggerUseCase(dispatcher *SendTemplateEmailUseCase, logger logger.Interface) *LoyaltyTriggerUseCase {
	return &LoyaltyTriggerUseCase{
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// PointsEarned notifies a customer about newly earned points
func (uc *LoyaltyTriggerUseCase) PointsEarned(ctx context.Context, request dto.LoyaltyPointsEarnedRequest) bool {
	return uc.dispatch(ctx, vo.TriggerTypeLoyaltyPointsEarned, request.Recipient, map[string]any{
		"customer_name":  request.CustomerName,
		"points":         request.Points,
		"points_balance": request.PointsBalance,
		"order_number":   request.OrderNumber,
	})
}

// PointsRedeemed notifies a customer about redeemed points
func (uc *LoyaltyTriggerUseCase) PointsRedeemed(ctx context.Context, request dto.LoyaltyPointsRedeemedRequest) bool {
	return uc.dispatch(ctx, vo.TriggerTypeLoyaltyPointsRedeemed, request.Recipient, map[string]any{
		"customer_name":   request.CustomerName,
		"points_redeemed": request.PointsRedeemed,
		"points_balance":  request.PointsBalance,
		"discount_amount": request.DiscountAmount,
	})
}

// TierUpgrade notifies a customer about a loyalty tier upgrade
func (uc *LoyaltyTriggerUseCase) TierUpgrade(ctx context.Context, request dto.LoyaltyTierUpgradeRequest) bool {
	return uc.dispatch(ctx, vo.TriggerTypeLoyaltyTierUpgrade, request.Recipient, map[string]any{
		"customer_name":  request.CustomerName,
		"new_tier":       request.NewTier,
		"points_balance": request.PointsBalance,
	})
}

// PointsExpiring warns a customer about points about to expire
func (uc *LoyaltyTriggerUseCase) PointsExpiring(ctx context.Context, request dto.LoyaltyPointsExpiringRequest) bool {
	return uc.dispatch(ctx, vo.TriggerTypeLoyaltyPointsExpiring, request.Recipient, map[string]any{
		"customer_name":   request.CustomerName,
		"expiring_points": request.ExpiringPoints,
		"expiry_date":     request.ExpiryDate,
	})
}

func (uc *LoyaltyTriggerUseCase) dispatch(ctx context.Context, triggerType vo.TriggerType, recipient string, payload map[string]any) bool {
	result := uc.dispatcher.Execute(ctx, notification.TriggerEvent{
		Type:      triggerType,
		Recipient: recipient,
		Payload:   payload,
	})

	if !result.Success {
		uc.logger.Warnw("loyalty notification not sent",
			"trigger_type", triggerType,
			"recipient", recipient,
			"error", result.Err,
		)
	}

	return result.Success
}
