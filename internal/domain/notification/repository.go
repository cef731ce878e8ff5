package notification

import "context"

// TemplateRepository is the persistence contract for email templates. The
// external store owns durability and schema; this core reads one record by
// key or type and lists by type. Implementations return (nil, nil) when no
// record matches.
type TemplateRepository interface {
	GetByKey(ctx context.Context, key string) (*EmailTemplate, error)
	GetByType(ctx context.Context, templateType string) (*EmailTemplate, error)
	ListByType(ctx context.Context, templateType string) ([]*EmailTemplate, error)
	ListActive(ctx context.Context) ([]*EmailTemplate, error)
	Save(ctx context.Context, template *EmailTemplate) error
}
