package mail

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMIME(t *testing.T) {
	msg := &Message{
		To:      "donor@example.com",
		Subject: "Thank you for your donation, Alex",
		Text:    "Hi Alex,",
		HTML:    "<p>Hi Alex,</p>",
	}
	raw, err := buildMIME("no-reply@shieldofathena.org", msg, "abc-123")
	require.NoError(t, err)
	s := string(raw)

	assert.Contains(t, s, "From: Shield of Athena <no-reply@shieldofathena.org>\r\n")
	assert.Contains(t, s, "To: donor@example.com\r\n")
	assert.Contains(t, s, "Subject: Thank you for your donation, Alex\r\n")
	assert.Contains(t, s, "Message-ID: <abc-123@shieldofathena.org>\r\n")
	assert.Contains(t, s, "Content-Type: multipart/alternative;")
	assert.Contains(t, s, "Content-Type: text/plain; charset=utf-8")
	assert.Contains(t, s, "Content-Type: text/html; charset=utf-8")
	// Both parts and the closing boundary must be present
	assert.Equal(t, 2, strings.Count(s, "------receipt-abc-123\r\n"))
	assert.Contains(t, s, "------receipt-abc-123--\r\n")
}

func TestEncodeHeaderASCIIUntouched(t *testing.T) {
	assert.Equal(t, "Plain subject", encodeHeader("Plain subject"))
}

func TestEncodeHeaderNonASCII(t *testing.T) {
	encoded := encodeHeader("Merci pour votre générosité")
	assert.True(t, strings.HasPrefix(encoded, "=?UTF-8?Q?"))
	assert.True(t, strings.HasSuffix(encoded, "?="))
	assert.NotContains(t, encoded, " ")
}

func TestDomainOf(t *testing.T) {
	assert.Equal(t, "shieldofathena.org", domainOf("no-reply@shieldofathena.org"))
	assert.Equal(t, "localhost", domainOf("not-an-address"))
}
