package mail

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// previewTTL is how long a rendered preview stays retrievable
const previewTTL = 24 * time.Hour

// previewKey builds the Redis key for a stored preview
func previewKey(id string) string { return "mailpreview:" + id }

// PreviewSender is the development fallback transport. Instead of handing the
// message to an SMTP host it stores the rendered HTML in Redis and returns a
// URL where it can be viewed. Must never be constructed in production; the
// server wiring enforces that.
type PreviewSender struct {
	rdb         *redis.Client
	baseURL     string // e.g. http://localhost:3000
	defaultLang string
}

// NewPreviewSender builds the preview transport on the given Redis client.
// defaultLang is used for receipts that carry no language of their own.
func NewPreviewSender(rdb *redis.Client, baseURL, defaultLang string) *PreviewSender {
	return &PreviewSender{rdb: rdb, baseURL: baseURL, defaultLang: defaultLang}
}

// SendDonationReceipt renders the receipt and stores it for preview
func (p *PreviewSender) SendDonationReceipt(ctx context.Context, r Receipt) (*Result, error) {
	msg, err := RenderReceipt(r, p.defaultLang)
	if err != nil {
		return nil, err
	}
	id := uuid.NewString()
	if err := p.rdb.Set(ctx, previewKey(id), msg.HTML, previewTTL).Err(); err != nil {
		return nil, fmt.Errorf("storing mail preview: %w", err)
	}
	previewURL := fmt.Sprintf("%s/mail/preview/%s", p.baseURL, id)
	logrus.WithFields(logrus.Fields{
		"to":          msg.To,
		"message_id":  id,
		"preview_url": previewURL,
	}).Info("Donation receipt stored for preview")
	return &Result{MessageID: id, PreviewURL: previewURL}, nil
}

// LoadPreview fetches a stored preview body; found=false when expired or unknown
func LoadPreview(ctx context.Context, rdb *redis.Client, id string) (string, bool, error) {
	html, err := rdb.Get(ctx, previewKey(id)).Result()
	if err == redis.Nil {
		return "", false, nil // Expired or never existed
	} else if err != nil {
		return "", false, err
	}
	return html, true, nil
}
