// Package seeds installs the default template catalog on first startup.
package seeds

import (
	"context"
	"fmt"

	"holzwerk/internal/domain/notification"
	"holzwerk/internal/shared/logger"
)

type seedTemplate struct {
	key       string
	tplType   string
	name      string
	subject   string
	htmlBody  string
	textBody  string
	variables []string
}

var defaultTemplates = []seedTemplate{
	{
		key:     "shipping_notification",
		tplType: "shipping_notification",
		name:    "Versandbenachrichtigung",
		subject: "Ihre Bestellung {{order_number}} ist unterwegs",
		htmlBody: "<p>Hallo {{customer_name}},</p>" +
			"<p>Bestellung {{order_number}} ist unterwegs.</p>" +
			"<p>Sendungsverfolgung: {{tracking_number}}</p>" +
			"<p>Ihr Holzwerk Team</p>",
		textBody: "Hallo {{customer_name}}, Bestellung {{order_number}} ist unterwegs. " +
			"Sendungsverfolgung: {{tracking_number}}",
		variables: []string{"customer_name", "order_number", "tracking_number"},
	},
	{
		key:     "loyalty_points_earned",
		tplType: "loyalty_points_earned",
		name:    "Treuepunkte erhalten",
		subject: "Sie haben {{points}} Treuepunkte erhalten",
		htmlBody: "<p>Hallo {{customer_name}},</p>" +
			"<p>für Ihre Bestellung {{order_number}} haben Sie {{points}} Punkte erhalten.</p>" +
			"<p>Ihr aktueller Punktestand: {{points_balance}}</p>",
		textBody: "Hallo {{customer_name}}, für Ihre Bestellung {{order_number}} haben Sie " +
			"{{points}} Punkte erhalten. Punktestand: {{points_balance}}",
		variables: []string{"customer_name", "points", "points_balance", "order_number"},
	},
	{
		key:     "loyalty_points_redeemed",
		tplType: "loyalty_points_redeemed",
		name:    "Treuepunkte eingelöst",
		subject: "Sie haben {{points_redeemed}} Punkte eingelöst",
		htmlBody: "<p>Hallo {{customer_name}},</p>" +
			"<p>Sie haben {{points_redeemed}} Punkte im Wert von {{discount_amount}} € eingelöst.</p>" +
			"<p>Verbleibender Punktestand: {{points_balance}}</p>",
		textBody: "Hallo {{customer_name}}, Sie haben {{points_redeemed}} Punkte im Wert von " +
			"{{discount_amount}} € eingelöst. Punktestand: {{points_balance}}",
		variables: []string{"customer_name", "points_redeemed", "points_balance", "discount_amount"},
	},
	{
		key:     "loyalty_tier_upgrade",
		tplType: "loyalty_tier_upgrade",
		name:    "Treuestufe erreicht",
		subject: "Willkommen in der Stufe {{new_tier}}",
		htmlBody: "<p>Hallo {{customer_name}},</p>" +
			"<p>herzlichen Glückwunsch, Sie haben die Stufe {{new_tier}} erreicht!</p>" +
			"<p>Ihr Punktestand: {{points_balance}}</p>",
		textBody: "Hallo {{customer_name}}, herzlichen Glückwunsch, Sie haben die Stufe " +
			"{{new_tier}} erreicht! Punktestand: {{points_balance}}",
		variables: []string{"customer_name", "new_tier", "points_balance"},
	},
	{
		key:     "loyalty_points_expiring",
		tplType: "loyalty_points_expiring",
		name:    "Treuepunkte laufen ab",
		subject: "{{expiring_points}} Punkte laufen am {{expiry_date}} ab",
		htmlBody: "<p>Hallo {{customer_name}},</p>" +
			"<p>{{expiring_points}} Ihrer Treuepunkte laufen am {{expiry_date}} ab.</p>" +
			"<p>Lösen Sie sie rechtzeitig ein!</p>",
		textBody: "Hallo {{customer_name}}, {{expiring_points}} Ihrer Treuepunkte laufen am " +
			"{{expiry_date}} ab. Lösen Sie sie rechtzeitig ein!",
		variables: []string{"customer_name", "expiring_points", "expiry_date"},
	},
	{
		key:     "low_stock_alert",
		tplType: "low_stock_alert",
		name:    "Bestandswarnung",
		subject: "Niedriger Bestand: {{product_name}} ({{sku}})",
		htmlBody: "<p>Der Bestand von {{product_name}} ({{sku}}) ist auf {{stock_quantity}} gefallen.</p>" +
			"<p>Schwellwert: {{threshold}}</p>",
		textBody: "Der Bestand von {{product_name}} ({{sku}}) ist auf {{stock_quantity}} gefallen. " +
			"Schwellwert: {{threshold}}",
		variables: []string{"product_id", "product_name", "sku", "stock_quantity", "threshold"},
	},
	{
		key:     "invoice",
		tplType: "invoice",
		name:    "Rechnung",
		subject: "Rechnung zur Bestellung {{order_number}}",
		htmlBody: "<h1>Rechnung {{order_number}}</h1>" +
			"<p>{{customer_name}}<br/>{{billing_address}}</p>" +
			"<table style=\"width:100%\"><tr><th>Position</th><th>Betrag</th></tr>" +
			"<tr><td>{{items_summary}}</td><td>{{total_amount}} €</td></tr></table>" +
			"<p>Vielen Dank für Ihren Einkauf bei Holzwerk.</p>",
		textBody: "Rechnung {{order_number}} für {{customer_name}}. " +
			"Gesamtbetrag: {{total_amount}} €",
		variables: []string{"order_number", "customer_name", "billing_address", "items_summary", "total_amount"},
	},
}

// SeedDefaultTemplates inserts the default template catalog. Templates that
// already exist are left untouched so administrative edits survive restarts.
func SeedDefaultTemplates(ctx context.Context, repo notification.TemplateRepository) error {
	seeded := 0

	for _, seed := range defaultTemplates {
		existing, err := repo.GetByKey(ctx, seed.key)
		if err != nil {
			return fmt.Errorf("failed to check template %s: %w", seed.key, err)
		}
		if existing != nil {
			continue
		}

		tpl, err := notification.NewEmailTemplate(
			seed.key, seed.tplType, seed.name, seed.subject, seed.htmlBody, seed.textBody, seed.variables,
		)
		if err != nil {
			return fmt.Errorf("failed to build template %s: %w", seed.key, err)
		}

		if err := repo.Save(ctx, tpl); err != nil {
			return fmt.Errorf("failed to seed template %s: %w", seed.key, err)
		}
		seeded++
	}

	if seeded > 0 {
		logger.Info("default templates seeded", "count", seeded)
	}

	return nil
}
