package notification

import (
	"fmt"
	"time"
)

// EmailTemplate is a named transactional message template. Templates are
// created and edited by the external admin panel; this core treats them as
// read-mostly and caches resolved copies until the cache is cleared.
type EmailTemplate struct {
	id           uint
	key          string
	templateType string
	name         string
	subject      string
	htmlBody     string
	textBody     string
	variables    []string
	active       bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewEmailTemplate(
	key string,
	templateType string,
	name string,
	subject string,
	htmlBody string,
	textBody string,
	variables []string,
) (*EmailTemplate, error) {
	if len(key) == 0 {
		return nil, fmt.Errorf("key is required")
	}
	if len(key) > 100 {
		return nil, fmt.Errorf("key exceeds maximum length of 100 characters")
	}
	if len(templateType) == 0 {
		return nil, fmt.Errorf("template type is required")
	}
	if len(subject) == 0 {
		return nil, fmt.Errorf("subject is required")
	}
	if len(subject) > 255 {
		return nil, fmt.Errorf("subject exceeds maximum length of 255 characters")
	}
	if htmlBody == "" && textBody == "" {
		return nil, fmt.Errorf("at least one of html body or text body is required")
	}

	if variables == nil {
		variables = []string{}
	}

	now := time.Now().UTC()
	return &EmailTemplate{
		key:          key,
		templateType: templateType,
		name:         name,
		subject:      subject,
		htmlBody:     htmlBody,
		textBody:     textBody,
		variables:    variables,
		active:       true,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructEmailTemplate rebuilds a template from the persistence layer.
func ReconstructEmailTemplate(
	id uint,
	key string,
	templateType string,
	name string,
	subject string,
	htmlBody string,
	textBody string,
	variables []string,
	active bool,
	createdAt, updatedAt time.Time,
) (*EmailTemplate, error) {
	if key == "" {
		return nil, fmt.Errorf("key is required")
	}
	if templateType == "" {
		return nil, fmt.Errorf("template type is required")
	}

	if variables == nil {
		variables = []string{}
	}

	return &EmailTemplate{
		id:           id,
		key:          key,
		templateType: templateType,
		name:         name,
		subject:      subject,
		htmlBody:     htmlBody,
		textBody:     textBody,
		variables:    variables,
		active:       active,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (t *EmailTemplate) ID() uint             { return t.id }
func (t *EmailTemplate) Key() string          { return t.key }
func (t *EmailTemplate) TemplateType() string { return t.templateType }
func (t *EmailTemplate) Name() string         { return t.name }
func (t *EmailTemplate) Subject() string      { return t.subject }
func (t *EmailTemplate) HTMLBody() string     { return t.htmlBody }
func (t *EmailTemplate) TextBody() string     { return t.textBody }
func (t *EmailTemplate) Active() bool         { return t.active }
func (t *EmailTemplate) CreatedAt() time.Time { return t.createdAt }
func (t *EmailTemplate) UpdatedAt() time.Time { return t.updatedAt }

// Variables returns the declared variable names. The list is informational;
// rendering does not enforce it.
func (t *EmailTemplate) Variables() []string {
	vars := make([]string, len(t.variables))
	copy(vars, t.variables)
	return vars
}

// SetID sets the template ID (only for persistence layer use)
func (t *EmailTemplate) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("template ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("template ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *EmailTemplate) Activate() {
	if t.active {
		return
	}
	t.active = true
	t.updatedAt = time.Now().UTC()
}

func (t *EmailTemplate) Deactivate() {
	if !t.active {
		return
	}
	t.active = false
	t.updatedAt = time.Now().UTC()
}
