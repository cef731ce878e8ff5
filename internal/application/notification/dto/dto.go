package dto

import "time"

// SendNotificationRequest asks the dispatcher to deliver one trigger event
type SendNotificationRequest struct {
	TriggerType string         `json:"trigger_type" binding:"required"`
	Recipient   string         `json:"recipient" binding:"required,email"`
	Data        map[string]any `json:"data" binding:"required"`
	CCAdmin     bool           `json:"cc_admin"`
}

// SendNotificationResponse is the structured dispatch outcome
type SendNotificationResponse struct {
	Success   bool   `json:"success"`
	MessageID string `json:"message_id,omitempty"`
	Error     string `json:"error,omitempty"`
}

// LoyaltyPointsEarnedRequest notifies a customer about newly earned points
type LoyaltyPointsEarnedRequest struct {
	Recipient     string `json:"recipient" binding:"required,email"`
	CustomerName  string `json:"customer_name" binding:"required"`
	Points        int    `json:"points" binding:"required"`
	PointsBalance int    `json:"points_balance"`
	OrderNumber   string `json:"order_number"`
}

// LoyaltyPointsRedeemedRequest notifies a customer about redeemed points
type LoyaltyPointsRedeemedRequest struct {
	Recipient      string  `json:"recipient" binding:"required,email"`
	CustomerName   string  `json:"customer_name" binding:"required"`
	PointsRedeemed int     `json:"points_redeemed" binding:"required"`
	PointsBalance  int     `json:"points_balance"`
	DiscountAmount float64 `json:"discount_amount"`
}

// LoyaltyTierUpgradeRequest notifies a customer about a tier upgrade
type LoyaltyTierUpgradeRequest struct {
	Recipient     string `json:"recipient" binding:"required,email"`
	CustomerName  string `json:"customer_name" binding:"required"`
	NewTier       string `json:"new_tier" binding:"required"`
	PointsBalance int    `json:"points_balance"`
}

// LoyaltyPointsExpiringRequest warns a customer about points about to expire
type LoyaltyPointsExpiringRequest struct {
	Recipient      string `json:"recipient" binding:"required,email"`
	CustomerName   string `json:"customer_name" binding:"required"`
	ExpiringPoints int    `json:"expiring_points" binding:"required"`
	ExpiryDate     string `json:"expiry_date" binding:"required"`
}

// LoyaltyTriggerResponse reports whether the loyalty notification was sent
type LoyaltyTriggerResponse struct {
	Sent bool `json:"sent"`
}

// TemplateResponse is the external representation of a stored template
type TemplateResponse struct {
	Key       string    `json:"key"`
	Type      string    `json:"type"`
	Name      string    `json:"name"`
	Subject   string    `json:"subject"`
	HTMLBody  string    `json:"html_body"`
	TextBody  string    `json:"text_body"`
	Variables []string  `json:"variables"`
	Active    bool      `json:"active"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StockCheckResponse reports the outcome of a low-stock check
type StockCheckResponse struct {
	ProductID uint `json:"product_id"`
	AlertSent bool `json:"alert_sent"`
}

// StockSweepResponse reports the outcome of a full low-stock sweep
type StockSweepResponse struct {
	Checked    int `json:"checked"`
	AlertsSent int `json:"alerts_sent"`
}

// InvoicePreviewRequest carries the order data an invoice is built from
type InvoicePreviewRequest struct {
	Data map[string]any `json:"data" binding:"required"`
}

// InvoicePreviewResponse carries the generated invoice document
type InvoicePreviewResponse struct {
	OrderNumber string `json:"order_number"`
	HTML        string `json:"html"`
	Cached      bool   `json:"cached"`
}
