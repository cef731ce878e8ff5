package usecases

import (
	"context"
	"fmt"

	"holzwerk/internal/application/notification/dto"
	"holzwerk/internal/domain/notification"
	"holzwerk/internal/shared/errors"
	"holzwerk/internal/shared/logger"
)

// GetTemplateUseCase resolves a template by identifier, matching the key
// first and falling back to the type.
type GetTemplateUseCase struct {
	templateRepo notification.TemplateRepository
	logger       logger.Interface
}

// NewGetTemplateUseCase creates a new GetTemplateUseCase
func NewGetTemplateUseCase(templateRepo notification.TemplateRepository, logger logger.Interface) *GetTemplateUseCase {
	return &GetTemplateUseCase{
		templateRepo: templateRepo,
		logger:       logger,
	}
}

// Execute returns the template for the given key or type
func (uc *GetTemplateUseCase) Execute(ctx context.Context, identifier string) (*dto.TemplateResponse, error) {
	tpl, err := uc.templateRepo.GetByKey(ctx, identifier)
	if err != nil {
		return nil, errors.NewInternalError("template lookup failed", err.Error())
	}
	if tpl == nil {
		tpl, err = uc.templateRepo.GetByType(ctx, identifier)
		if err != nil {
			return nil, errors.NewInternalError("template lookup failed", err.Error())
		}
	}
	if tpl == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("template %s not found", identifier))
	}

	return toTemplateResponse(tpl), nil
}

// List returns all active templates
func (uc *GetTemplateUseCase) List(ctx context.Context) ([]dto.TemplateResponse, error) {
	templates, err := uc.templateRepo.ListActive(ctx)
	if err != nil {
		return nil, errors.NewInternalError("template listing failed", err.Error())
	}

	responses := make([]dto.TemplateResponse, 0, len(templates))
	for _, tpl := range templates {
		responses = append(responses, *toTemplateResponse(tpl))
	}
	return responses, nil
}

func toTemplateResponse(tpl *notification.EmailTemplate) *dto.TemplateResponse {
	return &dto.TemplateResponse{
		Key:       tpl.Key(),
		Type:      tpl.TemplateType(),
		Name:      tpl.Name(),
		Subject:   tpl.Subject(),
		HTMLBody:  tpl.HTMLBody(),
		TextBody:  tpl.TextBody(),
		Variables: tpl.Variables(),
		Active:    tpl.Active(),
		UpdatedAt: tpl.UpdatedAt(),
	}
}
