package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"holzwerk/internal/application/notification/dto"
)

func newLoyaltyFixture(t *testing.T) (*LoyaltyTriggerUseCase, *fakeMailer) {
	t.Helper()
	repo := newFakeTemplateRepo()

	templates := []struct {
		key, subject, text string
	}{
		{"loyalty_points_earned", "{{points}} Punkte gutgeschrieben", "Hallo {{customer_name}}, du hast {{points}} Punkte erhalten. Kontostand: {{points_balance}}."},
		{"loyalty_points_redeemed", "Punkte eingeloest", "Hallo {{customer_name}}, {{points_redeemed}} Punkte eingeloest ({{discount_amount}} EUR Rabatt)."},
		{"loyalty_tier_upgrade", "Willkommen in {{new_tier}}", "Hallo {{customer_name}}, du bist jetzt {{new_tier}}."},
		{"loyalty_points_expiring", "Punkte verfallen bald", "Hallo {{customer_name}}, {{expiring_points}} Punkte verfallen am {{expiry_date}}."},
	}
	for _, tt := range templates {
		tpl := mustTemplate(t, tt.key, tt.key, tt.subject, "", tt.text, true)
		require.NoError(t, repo.Save(context.Background(), tpl))
	}

	mailer := &fakeMailer{}
	uc := NewLoyaltyTriggerUseCase(newDispatcher(repo, mailer), newNopLogger())
	return uc, mailer
}

func TestLoyaltyPointsEarned(t *testing.T) {
	uc, mailer := newLoyaltyFixture(t)

	sent := uc.PointsEarned(context.Background(), dto.LoyaltyPointsEarnedRequest{
		Recipient:     "max@example.com",
		CustomerName:  "Max Mustermann",
		Points:        150,
		PointsBalance: 420,
		OrderNumber:   "BK-2025-001",
	})

	assert.True(t, sent)
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "150 Punkte gutgeschrieben", mailer.sent[0].Subject)
	assert.Contains(t, mailer.sent[0].TextBody, "Kontostand: 420")
}

func TestLoyaltyPointsRedeemed(t *testing.T) {
	uc, mailer := newLoyaltyFixture(t)

	sent := uc.PointsRedeemed(context.Background(), dto.LoyaltyPointsRedeemedRequest{
		Recipient:      "max@example.com",
		CustomerName:   "Max Mustermann",
		PointsRedeemed: 200,
		PointsBalance:  220,
		DiscountAmount: 10,
	})

	assert.True(t, sent)
	require.Len(t, mailer.sent, 1)
	assert.Contains(t, mailer.sent[0].TextBody, "200 Punkte eingeloest")
	assert.Contains(t, mailer.sent[0].TextBody, "10 EUR Rabatt")
}

func TestLoyaltyTierUpgrade(t *testing.T) {
	uc, mailer := newLoyaltyFixture(t)

	sent := uc.TierUpgrade(context.Background(), dto.LoyaltyTierUpgradeRequest{
		Recipient:    "max@example.com",
		CustomerName: "Max Mustermann",
		NewTier:      "Gold",
	})

	assert.True(t, sent)
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "Willkommen in Gold", mailer.sent[0].Subject)
}

func TestLoyaltyPointsExpiring(t *testing.T) {
	uc, mailer := newLoyaltyFixture(t)

	sent := uc.PointsExpiring(context.Background(), dto.LoyaltyPointsExpiringRequest{
		Recipient:      "max@example.com",
		CustomerName:   "Max Mustermann",
		ExpiringPoints: 75,
		ExpiryDate:     "2026-09-30",
	})

	assert.True(t, sent)
	require.Len(t, mailer.sent, 1)
	assert.Contains(t, mailer.sent[0].TextBody, "75 Punkte verfallen am 2026-09-30")
}

func TestLoyaltyDispatchFailureReturnsFalse(t *testing.T) {
	uc, mailer := newLoyaltyFixture(t)
	mailer.failAll = true

	sent := uc.PointsEarned(context.Background(), dto.LoyaltyPointsEarnedRequest{
		Recipient:    "max@example.com",
		CustomerName: "Max Mustermann",
		Points:       10,
	})

	assert.False(t, sent)
	assert.Empty(t, mailer.sent)
}
