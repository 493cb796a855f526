package api

import (
	"net/http" // HTTP status codes

	"donation_platform/internal/mail" // Preview store

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
)

// MailPreviewHandler serves a stored receipt preview as HTML.
// Mounted only outside production.
func MailPreviewHandler(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id") // Preview identifier from the send response
		html, found, err := mail.LoadPreview(c.Request.Context(), rdb, id)
		if err != nil {
			// Redis failure, respond generically
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load preview"})
			return
		}
		if !found {
			// Expired or never existed
			c.JSON(http.StatusNotFound, gin.H{"error": "Preview not found"})
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html)) // Serve the rendered receipt
	}
}
