package dto

// SettingSource indicates where a resolved setting value came from
type SettingSource string

const (
	SourceDatabase    SettingSource = "database"
	SourceEnvironment SettingSource = "environment"
	SourceDefault     SettingSource = "default"
)

// SettingWithSource wraps a resolved value with its origin for display
type SettingWithSource struct {
	Value  any           `json:"value"`
	Source SettingSource `json:"source"`
}

// SMTPConfigResponse represents the resolved SMTP configuration.
// The password is masked for display.
type SMTPConfigResponse struct {
	SMTPHost     string `json:"smtp_host"`
	SMTPPort     int    `json:"smtp_port"`
	SMTPSecure   bool   `json:"smtp_secure"`
	SMTPUser     string `json:"smtp_user"`
	SMTPPassword string `json:"smtp_password"`
	FromAddress  string `json:"from_address"`
	FromName     string `json:"from_name"`
	AdminAddress string `json:"admin_address"`
}

// UpdateSMTPConfigRequest represents a partial SMTP configuration update.
// Nil fields are left unchanged.
type UpdateSMTPConfigRequest struct {
	SMTPHost     *string `json:"smtp_host"`
	SMTPPort     *int    `json:"smtp_port"`
	SMTPSecure   *bool   `json:"smtp_secure"`
	SMTPUser     *string `json:"smtp_user"`
	SMTPPassword *string `json:"smtp_password"`
	FromAddress  *string `json:"from_address"`
	FromName     *string `json:"from_name"`
	AdminAddress *string `json:"admin_address"`
}

// TestEmailRequest asks for a configuration test message
type TestEmailRequest struct {
	To string `json:"to" binding:"required,email"`
}

// MaskSensitiveValue masks a sensitive value for display
func MaskSensitiveValue(value string) string {
	if value == "" {
		return ""
	}
	if len(value) <= 4 {
		return "****"
	}
	return value[:2] + "****" + value[len(value)-2:]
}
