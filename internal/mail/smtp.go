package mail

import (
	"context"
	"fmt"
	"mime/quotedprintable"
	"net/smtp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// SMTPSender delivers receipts through a configured SMTP submission host
type SMTPSender struct {
	host        string
	port        int
	user        string
	pass        string
	from        string
	defaultLang string
}

// NewSMTPSender builds a sender for the given SMTP credentials. defaultLang
// is used for receipts that carry no language of their own.
func NewSMTPSender(host string, port int, user, pass, from, defaultLang string) *SMTPSender {
	return &SMTPSender{host: host, port: port, user: user, pass: pass, from: from, defaultLang: defaultLang}
}

// SendDonationReceipt renders the receipt and submits it via SMTP.
// The context deadline is respected only up to connection setup; net/smtp
// does not support mid-session cancellation.
func (s *SMTPSender) SendDonationReceipt(ctx context.Context, r Receipt) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	msg, err := RenderReceipt(r, s.defaultLang)
	if err != nil {
		return nil, err
	}

	messageID := uuid.NewString()
	body, err := buildMIME(s.from, msg, messageID)
	if err != nil {
		return nil, err
	}

	addr := fmt.Sprintf("%s:%d", s.host, s.port)
	auth := smtp.PlainAuth("", s.user, s.pass, s.host)
	if err := smtp.SendMail(addr, auth, s.from, []string{msg.To}, body); err != nil {
		return nil, fmt.Errorf("smtp send to %s: %w", msg.To, err)
	}

	logrus.WithFields(logrus.Fields{
		"to":         msg.To,
		"message_id": messageID,
	}).Info("Donation receipt sent")
	// No preview URL for real transports
	return &Result{MessageID: messageID}, nil
}

// buildMIME assembles a multipart/alternative message with text and HTML parts
func buildMIME(from string, msg *Message, messageID string) ([]byte, error) {
	boundary := "----receipt-" + messageID
	var b strings.Builder

	b.WriteString("From: Shield of Athena <" + from + ">\r\n")
	b.WriteString("To: " + msg.To + "\r\n")
	b.WriteString("Subject: " + encodeHeader(msg.Subject) + "\r\n")
	b.WriteString("Message-ID: <" + messageID + "@" + domainOf(from) + ">\r\n")
	b.WriteString("Date: " + time.Now().Format(time.RFC1123Z) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: multipart/alternative; boundary=\"" + boundary + "\"\r\n")
	b.WriteString("\r\n")

	for _, part := range []struct {
		contentType string
		content     string
	}{
		{"text/plain; charset=utf-8", msg.Text},
		{"text/html; charset=utf-8", msg.HTML},
	} {
		b.WriteString("--" + boundary + "\r\n")
		b.WriteString("Content-Type: " + part.contentType + "\r\n")
		b.WriteString("Content-Transfer-Encoding: quoted-printable\r\n")
		b.WriteString("\r\n")
		qp := &strings.Builder{}
		w := quotedprintable.NewWriter(qp)
		if _, err := w.Write([]byte(part.content)); err != nil {
			return nil, fmt.Errorf("encoding mail body: %w", err)
		}
		if err := w.Close(); err != nil {
			return nil, fmt.Errorf("encoding mail body: %w", err)
		}
		b.WriteString(qp.String())
		b.WriteString("\r\n")
	}
	b.WriteString("--" + boundary + "--\r\n")
	return []byte(b.String()), nil
}

// encodeHeader RFC2047-encodes a header value when it is not plain ASCII
func encodeHeader(v string) string {
	for _, r := range v {
		if r > 127 {
			return fmt.Sprintf("=?UTF-8?Q?%s?=", qEncode(v))
		}
	}
	return v
}

// qEncode applies the Q encoding used inside encoded-words
func qEncode(v string) string {
	var b strings.Builder
	for _, c := range []byte(v) {
		switch {
		case c == ' ':
			b.WriteByte('_')
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			b.WriteByte(c)
		default:
			fmt.Fprintf(&b, "=%02X", c)
		}
	}
	return b.String()
}

// domainOf extracts the domain part of an address for the Message-ID
func domainOf(addr string) string {
	if i := strings.LastIndexByte(addr, '@'); i >= 0 {
		return addr[i+1:]
	}
	return "localhost"
}
