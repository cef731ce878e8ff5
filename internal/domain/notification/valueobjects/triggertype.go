package valueobjects

import "fmt"

// TriggerType identifies a business event that produces a transactional
// email. The catalog is fixed; user-defined triggers are not supported.
type TriggerType string

const (
	TriggerTypeShippingNotification  TriggerType = "shipping_notification"
	TriggerTypeLoyaltyPointsEarned   TriggerType = "loyalty_points_earned"
	TriggerTypeLoyaltyPointsRedeemed TriggerType = "loyalty_points_redeemed"
	TriggerTypeLoyaltyTierUpgrade    TriggerType = "loyalty_tier_upgrade"
	TriggerTypeLoyaltyPointsExpiring TriggerType = "loyalty_points_expiring"
	TriggerTypeLowStockAlert         TriggerType = "low_stock_alert"
)

// triggerTemplateTypes maps each trigger to the template type resolved for it.
// The mapping is 1:1 today but kept explicit so a trigger can be repointed at
// a different template type without touching dispatch logic.
var triggerTemplateTypes = map[TriggerType]string{
	TriggerTypeShippingNotification:  "shipping_notification",
	TriggerTypeLoyaltyPointsEarned:   "loyalty_points_earned",
	TriggerTypeLoyaltyPointsRedeemed: "loyalty_points_redeemed",
	TriggerTypeLoyaltyTierUpgrade:    "loyalty_tier_upgrade",
	TriggerTypeLoyaltyPointsExpiring: "loyalty_points_expiring",
	TriggerTypeLowStockAlert:         "low_stock_alert",
}

func (t TriggerType) String() string {
	return string(t)
}

func (t TriggerType) IsValid() bool {
	_, ok := triggerTemplateTypes[t]
	return ok
}

// TemplateType returns the template type string this trigger resolves to.
func (t TriggerType) TemplateType() string {
	return triggerTemplateTypes[t]
}

// IsLoyalty reports whether the trigger belongs to the loyalty program family.
func (t TriggerType) IsLoyalty() bool {
	switch t {
	case TriggerTypeLoyaltyPointsEarned,
		TriggerTypeLoyaltyPointsRedeemed,
		TriggerTypeLoyaltyTierUpgrade,
		TriggerTypeLoyaltyPointsExpiring:
		return true
	}
	return false
}

func NewTriggerType(s string) (TriggerType, error) {
	t := TriggerType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid trigger type: %s", s)
	}
	return t, nil
}

// AllTriggerTypes returns the fixed trigger catalog.
func AllTriggerTypes() []TriggerType {
	return []TriggerType{
		TriggerTypeShippingNotification,
		TriggerTypeLoyaltyPointsEarned,
		TriggerTypeLoyaltyPointsRedeemed,
		TriggerTypeLoyaltyTierUpgrade,
		TriggerTypeLoyaltyPointsExpiring,
		TriggerTypeLowStockAlert,
	}
}
