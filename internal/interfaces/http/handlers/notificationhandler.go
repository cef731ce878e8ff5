package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"holzwerk/internal/application/notification/dto"
	"holzwerk/internal/application/notification/usecases"
	"holzwerk/internal/domain/notification"
	vo "holzwerk/internal/domain/notification/valueobjects"
	"holzwerk/internal/shared/errors"
	"holzwerk/internal/shared/logger"
	"holzwerk/internal/shared/utils"
)

// NotificationHandler exposes the dispatch pipeline and the template surface
type NotificationHandler struct {
	dispatcher      *usecases.SendTemplateEmailUseCase
	loyaltyTriggers *usecases.LoyaltyTriggerUseCase
	getTemplate     *usecases.GetTemplateUseCase
	clearCache      *usecases.ClearTemplateCacheUseCase
	logger          logger.Interface
}

func NewNotificationHandler(
	dispatcher *usecases.SendTemplateEmailUseCase,
	loyaltyTriggers *usecases.LoyaltyTriggerUseCase,
	getTemplate *usecases.GetTemplateUseCase,
	clearCache *usecases.ClearTemplateCacheUseCase,
	logger logger.Interface,
) *NotificationHandler {
	return &NotificationHandler{
		dispatcher:      dispatcher,
		loyaltyTriggers: loyaltyTriggers,
		getTemplate:     getTemplate,
		clearCache:      clearCache,
		logger:          logger,
	}
}

// SendNotification dispatches one trigger event to its recipient
func (h *NotificationHandler) SendNotification(c *gin.Context) {
	var req dto.SendNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for send notification", "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body"))
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	triggerType, err := vo.NewTriggerType(req.TriggerType)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result := h.dispatcher.Execute(c.Request.Context(), notification.TriggerEvent{
		Type:      triggerType,
		Recipient: req.Recipient,
		Payload:   req.Data,
		CCAdmin:   req.CCAdmin,
	})

	response := dto.SendNotificationResponse{
		Success:   result.Success,
		MessageID: result.MessageID,
	}
	if result.Err != nil {
		response.Error = result.Err.Error()
	}

	if !result.Success {
		// The dispatch outcome is structured: the error kind decides the
		// status code, the body carries the full result.
		status := http.StatusBadGateway
		if appErr := errors.GetAppError(result.Err); appErr != nil {
			status = appErr.Code
		}
		c.JSON(status, response)
		return
	}

	utils.OKResponse(c, response, "notification sent")
}

// LoyaltyPointsEarned triggers a points-earned notification
func (h *NotificationHandler) LoyaltyPointsEarned(c *gin.Context) {
	var req dto.LoyaltyPointsEarnedRequest
	if !h.bindLoyaltyRequest(c, &req) {
		return
	}
	sent := h.loyaltyTriggers.PointsEarned(c.Request.Context(), req)
	utils.OKResponse(c, dto.LoyaltyTriggerResponse{Sent: sent})
}

// LoyaltyPointsRedeemed triggers a points-redeemed notification
func (h *NotificationHandler) LoyaltyPointsRedeemed(c *gin.Context) {
	var req dto.LoyaltyPointsRedeemedRequest
	if !h.bindLoyaltyRequest(c, &req) {
		return
	}
	sent := h.loyaltyTriggers.PointsRedeemed(c.Request.Context(), req)
	utils.OKResponse(c, dto.LoyaltyTriggerResponse{Sent: sent})
}

// LoyaltyTierUpgrade triggers a tier-upgrade notification
func (h *NotificationHandler) LoyaltyTierUpgrade(c *gin.Context) {
	var req dto.LoyaltyTierUpgradeRequest
	if !h.bindLoyaltyRequest(c, &req) {
		return
	}
	sent := h.loyaltyTriggers.TierUpgrade(c.Request.Context(), req)
	utils.OKResponse(c, dto.LoyaltyTriggerResponse{Sent: sent})
}

// LoyaltyPointsExpiring triggers a points-expiring warning
func (h *NotificationHandler) LoyaltyPointsExpiring(c *gin.Context) {
	var req dto.LoyaltyPointsExpiringRequest
	if !h.bindLoyaltyRequest(c, &req) {
		return
	}
	sent := h.loyaltyTriggers.PointsExpiring(c.Request.Context(), req)
	utils.OKResponse(c, dto.LoyaltyTriggerResponse{Sent: sent})
}

// GetTemplate returns one template by key or type
func (h *NotificationHandler) GetTemplate(c *gin.Context) {
	identifier := c.Param("key")
	if err := utils.ValidateKey(identifier); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	template, err := h.getTemplate.Execute(c.Request.Context(), identifier)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, template)
}

// ListTemplates returns all active templates
func (h *NotificationHandler) ListTemplates(c *gin.Context) {
	templates, err := h.getTemplate.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, templates)
}

// ClearTemplateCache evicts the template cache
func (h *NotificationHandler) ClearTemplateCache(c *gin.Context) {
	h.clearCache.Execute()
	utils.OKResponse(c, nil, "template cache cleared")
}

func (h *NotificationHandler) bindLoyaltyRequest(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		h.logger.Warnw("invalid request body for loyalty trigger", "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body"))
		return false
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return false
	}
	return true
}
