package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"donation_platform/internal/mail"
)

func TestMailPreviewHandler(t *testing.T) {
	rdb := newTestRedis(t)
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/mail/preview/:id", MailPreviewHandler(rdb))

	// Store a preview the way the preview transport does
	sender := mail.NewPreviewSender(rdb, "http://localhost:3000", "en")
	result, err := sender.SendDonationReceipt(context.Background(), mail.Receipt{
		To:           "donor@example.com",
		Name:         "Alex",
		Amount:       150,
		TotalDonated: 150,
		LivesTouched: 6,
		Lang:         "en",
	})
	require.NoError(t, err)

	w := getPath(t, r, "/mail/preview/"+result.MessageID)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "Thank you for your donation, Alex")
}

func TestMailPreviewHandlerUnknownID(t *testing.T) {
	rdb := newTestRedis(t)
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/mail/preview/:id", MailPreviewHandler(rdb))

	w := getPath(t, r, "/mail/preview/no-such-id")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
