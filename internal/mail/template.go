package mail

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/osteele/liquid"

	"donation_platform/internal/i18n"
	"donation_platform/internal/tier"
)

// receiptHTML is the Liquid source for the HTML body. Translated strings are
// rendered first and injected as bindings, so the layout itself stays
// language-neutral.
const receiptHTML = `<div style="font-family: Arial, Helvetica, sans-serif; color: #2a2540;">
  <div style="max-width: 680px; margin:0 auto; border-radius:10px; overflow:hidden; background:#fff; box-shadow:0 2px 8px rgba(0,0,0,0.04);">
    <div style="background: linear-gradient(90deg,#f3e8ff,#e6d6ff); padding:20px; color:#2a2540;">
      <h1 style="margin:0;font-size:20px;color:#4b2c83;">{{ subject }}</h1>
      <div style="opacity:0.9;font-size:13px;color:#6b4fa3">{{ subtitle }}</div>
    </div>
    <div style="padding:22px; background:#fff;">
      <p style="font-size:16px; color:#2a2540;">{{ received }}</p>

      <div style="display:flex; gap:12px; margin-top:18px;">
        <div style="flex:1; padding:14px; border:1px solid #f0eaff; border-radius:8px; text-align:center; background:#fbf7ff;">
          <div style="font-size:12px; color:#6b4fa3;">{{ total_label }}</div>
          <div style="font-weight:700; font-size:20px; margin-top:8px; color:#4b2c83;">{{ total }}</div>
        </div>
        <div style="flex:1; padding:14px; border:1px solid #f0eaff; border-radius:8px; text-align:center; background:#fbf7ff;">
          <div style="font-size:12px; color:#6b4fa3;">{{ helped_label }}</div>
          <div style="font-weight:700; font-size:20px; margin-top:8px; color:#4b2c83;">{{ lives }}</div>
        </div>
      </div>

      <div style="margin-top:18px; padding:14px; background:linear-gradient(180deg, #faf5ff, #fff); border-radius:8px;">
        <p style="margin:0; color:#3b2b56;">{{ distribution }}</p>
      </div>

      <div style="margin-top:18px; color:#2a2540;">
        <p style="margin:0 0 8px 0; font-weight:700; color:#4b2c83;">{{ next_steps_title }}</p>
        <ul style="margin:0 0 0 18px; padding:0; color:#4b2c83;">
          <li>{{ dashboard_update }}: <strong>{{ total }}</strong>.</li>
          <li>{{ program_updates }}</li>
          <li>{{ receipt_available }}</li>
        </ul>
      </div>

      <div style="margin-top:16px;">
        <p style="margin:0 0 6px 0; font-weight:700; color:#4b2c83;">{{ progress_title }}</p>
        {% if at_top_tier %}
        <div style="font-size:13px; color:#6b4fa3;">{{ visit_dashboard }}</div>
        {% else %}
        <div style="width:100%; background:#eee; border-radius:8px; height:12px; overflow:hidden;">
          <div style="width:{{ progress_percent }}%; height:12px; background:linear-gradient(90deg,#d6bbff,#b695ff);"></div>
        </div>
        <div style="font-size:12px; color:#6b4fa3; margin-top:6px;">{{ progress_percent }}{{ progress_percent_label }}</div>
        {% endif %}
      </div>

      <p style="margin-top:20px; color:#2a2540;">{{ signature_html }}</p>
    </div>
  </div>
</div>
`

// Message is a fully rendered receipt ready for any transport
type Message struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

var engine = liquid.NewEngine()

// renderString runs one translated string through Liquid with the receipt
// bindings ({{ name }}, {{ amount }}).
func renderString(src string, bindings map[string]any) (string, error) {
	out, err := engine.ParseAndRenderString(src, bindings)
	if err != nil {
		return "", fmt.Errorf("rendering receipt string: %w", err)
	}
	return out, nil
}

// formatAmount renders a currency amount without trailing zeros
func formatAmount(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// RenderReceipt produces the localized subject, text, and HTML bodies for a
// receipt. defaultLang is the configured fallback when the requested language
// is missing or unsupported; an unsupported default degrades to the table
// baseline. The progress section consumes the shared tier table, so the email
// can never disagree with the API about thresholds.
func RenderReceipt(r Receipt, defaultLang string) (*Message, error) {
	lang := r.Lang
	if lang == "" || !i18n.Supported(lang) {
		lang = defaultLang
	}
	if lang == "" || !i18n.Supported(lang) {
		lang = i18n.DefaultLang
	}

	strBindings := map[string]any{
		"name":   r.Name,
		"amount": formatAmount(r.Amount),
	}

	// Render every translated string once, then hand them to the layout
	keys := map[string]string{
		"subject":                "subject",
		"subtitle":               "subtitle",
		"greeting":               "greeting",
		"received":               "received",
		"total_label":            "totalDonatedLabel",
		"helped_label":           "peopleHelpedLabel",
		"distribution":           "distribution",
		"next_steps_title":       "nextStepsTitle",
		"dashboard_update":       "dashboardUpdate",
		"program_updates":        "programUpdates",
		"receipt_available":      "receiptAvailable",
		"progress_title":         "progressTowardBadge",
		"progress_percent_label": "progressPercentLabel",
		"visit_dashboard":        "visitDashboard",
		"signature":              "signature",
	}
	bindings := map[string]any{
		"total": "$" + formatAmount(r.TotalDonated),
		"lives": strconv.FormatInt(r.LivesTouched, 10),
	}
	for name, key := range keys {
		rendered, err := renderString(i18n.T(lang, key), strBindings)
		if err != nil {
			return nil, err
		}
		bindings[name] = rendered
	}
	bindings["signature_html"] = strings.ReplaceAll(bindings["signature"].(string), "\n", "<br/>")

	// Progress toward the next badge via the shared tier ladder
	progress := tier.Classify(r.TotalDonated)
	bindings["at_top_tier"] = progress.Next == nil
	bindings["progress_percent"] = strconv.Itoa(int(math.Round(progress.PercentToNext)))

	html, err := engine.ParseAndRenderString(receiptHTML, bindings)
	if err != nil {
		return nil, fmt.Errorf("rendering receipt html: %w", err)
	}

	text := fmt.Sprintf("%s\n\n%s\n\n%s",
		bindings["greeting"], bindings["received"], bindings["signature"])

	return &Message{
		To:      r.To,
		Subject: bindings["subject"].(string),
		Text:    text,
		HTML:    html,
	}, nil
}
