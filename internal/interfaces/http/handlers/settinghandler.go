package handlers

import (
	"github.com/gin-gonic/gin"

	"holzwerk/internal/application/setting/dto"
	"holzwerk/internal/application/setting/usecases"
	"holzwerk/internal/shared/errors"
	"holzwerk/internal/shared/logger"
	"holzwerk/internal/shared/utils"
)

// SettingHandler exposes the SMTP configuration surface
type SettingHandler struct {
	getSMTPConfig    *usecases.GetSMTPConfigUseCase
	updateSMTPConfig *usecases.UpdateSMTPConfigUseCase
	sendTestEmail    *usecases.SendTestEmailUseCase
	logger           logger.Interface
}

func NewSettingHandler(
	getSMTPConfig *usecases.GetSMTPConfigUseCase,
	updateSMTPConfig *usecases.UpdateSMTPConfigUseCase,
	sendTestEmail *usecases.SendTestEmailUseCase,
	logger logger.Interface,
) *SettingHandler {
	return &SettingHandler{
		getSMTPConfig:    getSMTPConfig,
		updateSMTPConfig: updateSMTPConfig,
		sendTestEmail:    sendTestEmail,
		logger:           logger,
	}
}

// GetSMTPConfig returns the resolved SMTP configuration with masked credentials
func (h *SettingHandler) GetSMTPConfig(c *gin.Context) {
	config := h.getSMTPConfig.Execute(c.Request.Context())
	utils.OKResponse(c, config)
}

// UpdateSMTPConfig applies partial SMTP setting overrides
func (h *SettingHandler) UpdateSMTPConfig(c *gin.Context) {
	var req dto.UpdateSMTPConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update smtp config", "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body"))
		return
	}

	if err := h.updateSMTPConfig.Execute(c.Request.Context(), req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, nil, "smtp configuration updated")
}

// SendTestEmail delivers a test message through the current configuration
func (h *SettingHandler) SendTestEmail(c *gin.Context) {
	var req dto.TestEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body"))
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.sendTestEmail.Execute(c.Request.Context(), req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, nil, "test email sent")
}
