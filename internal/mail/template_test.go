package mail

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderReceiptEnglish(t *testing.T) {
	msg, err := RenderReceipt(Receipt{
		To:           "donor@example.com",
		Name:         "Alex",
		Amount:       150,
		TotalDonated: 150,
		LivesTouched: 6,
		Lang:         "en",
	}, "en")
	require.NoError(t, err)

	assert.Equal(t, "donor@example.com", msg.To)
	assert.Equal(t, "Thank you for your donation, Alex", msg.Subject)
	assert.Contains(t, msg.Text, "Hi Alex,")
	assert.Contains(t, msg.Text, "donation of $150")
	assert.Contains(t, msg.HTML, "$150")
	assert.Contains(t, msg.HTML, ">6<")
	// 150 is 12.5% into the Poseidon bracket, rounded for display
	assert.Contains(t, msg.HTML, "width:13%")
}

func TestRenderReceiptFrench(t *testing.T) {
	msg, err := RenderReceipt(Receipt{
		To:           "donor@example.com",
		Name:         "Camille",
		Amount:       40,
		TotalDonated: 40,
		LivesTouched: 1,
		Lang:         "fr",
	}, "en")
	require.NoError(t, err)

	assert.Equal(t, "Merci pour votre don, Camille", msg.Subject)
	assert.Contains(t, msg.Text, "Bonjour Camille,")
	assert.Contains(t, msg.HTML, "Total donné")
}

func TestRenderReceiptUnknownLanguageFallsBack(t *testing.T) {
	msg, err := RenderReceipt(Receipt{
		To:           "donor@example.com",
		Name:         "Kim",
		Amount:       10,
		TotalDonated: 10,
		LivesTouched: 1,
		Lang:         "de",
	}, "en")
	require.NoError(t, err)
	assert.Equal(t, "Thank you for your donation, Kim", msg.Subject)
}

func TestRenderReceiptUsesConfiguredDefaultLanguage(t *testing.T) {
	// A receipt with no language of its own renders in the configured default
	msg, err := RenderReceipt(Receipt{
		To:           "donor@example.com",
		Name:         "Camille",
		Amount:       40,
		TotalDonated: 40,
		LivesTouched: 1,
	}, "fr")
	require.NoError(t, err)
	assert.Equal(t, "Merci pour votre don, Camille", msg.Subject)
	assert.Contains(t, msg.Text, "Bonjour Camille,")

	// An unsupported default degrades to the table baseline
	msg, err = RenderReceipt(Receipt{
		To:           "donor@example.com",
		Name:         "Kim",
		Amount:       10,
		TotalDonated: 10,
		LivesTouched: 1,
	}, "xx")
	require.NoError(t, err)
	assert.Equal(t, "Thank you for your donation, Kim", msg.Subject)
}

func TestRenderReceiptTopTierShowsNoProgressBar(t *testing.T) {
	msg, err := RenderReceipt(Receipt{
		To:           "donor@example.com",
		Name:         "Jo",
		Amount:       500,
		TotalDonated: 8000,
		LivesTouched: 120,
		Lang:         "en",
	}, "en")
	require.NoError(t, err)
	assert.NotContains(t, msg.HTML, "width:100%; background:#eee")
	assert.Contains(t, msg.HTML, "Visit your dashboard")
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "150", formatAmount(150))
	assert.Equal(t, "19.99", formatAmount(19.99))
	assert.Equal(t, "0", formatAmount(0))
}

func TestRenderReceiptSignatureLineBreak(t *testing.T) {
	msg, err := RenderReceipt(Receipt{
		To:           "donor@example.com",
		Name:         "Sam",
		Amount:       5,
		TotalDonated: 5,
		LivesTouched: 1,
	}, "en")
	require.NoError(t, err)
	assert.True(t, strings.Contains(msg.HTML, "With gratitude,<br/>"))
	assert.True(t, strings.Contains(msg.Text, "With gratitude,\n"))
}
