// Package mail renders and dispatches localized donation receipts.
// Dispatch is pluggable: a real SMTP transport when credentials are
// configured, or a Redis-backed preview store for development.
package mail

import "context"

// Receipt carries everything needed to render one donation receipt
type Receipt struct {
	To           string  // Recipient email address
	Name         string  // Donor display name
	Amount       float64 // This donation's amount
	TotalDonated float64 // Updated cumulative total
	LivesTouched int64   // Updated impact counter
	Lang         string  // Requested language code
}

// Result describes the outcome of a dispatched receipt
type Result struct {
	MessageID  string `json:"messageId"`            // Transport-assigned message identifier
	PreviewURL string `json:"previewUrl,omitempty"` // Set only by the preview transport
}

// Sender dispatches a rendered donation receipt.
// Implementations must not mutate the receipt.
type Sender interface {
	SendDonationReceipt(ctx context.Context, r Receipt) (*Result, error)
}
