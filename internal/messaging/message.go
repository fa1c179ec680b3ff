// Package messaging builds the WhatsApp texts and links sent to creators.
package messaging

import (
	"errors"
	"net/url"
	"strings"
	"unicode"

	"agency-server/internal/bonus/calculator"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var ErrInvalidPhone = errors.New("invalid phone number")

const (
	waBaseURL          = "https://wa.me/"
	indonesiaPrefix    = "62"
	minPhoneDigits     = 9
	maxPhoneDigits     = 15
	notEligibleTierMsg = "belum memenuhi syarat"
)

// Amounts and hours are written the Indonesian way: 1.234.567 and 101,5.
var printer = message.NewPrinter(language.Indonesian)

// PerformanceMessage is one creator's monthly metrics.
type PerformanceMessage struct {
	Name      string
	Period    string
	Diamonds  int64
	ValidDays int64
	LiveHours decimal.Decimal
}

// BonusMessage adds the priced bonus to a PerformanceMessage.
type BonusMessage struct {
	PerformanceMessage
	Result calculator.Result
}

// FormatIDR renders a whole rupiah amount, e.g. "Rp 2.400.000".
func FormatIDR(amount int64) string {
	return printer.Sprintf("Rp %d", amount)
}

func formatHours(h decimal.Decimal) string {
	return printer.Sprintf("%.1f", h.Round(1).InexactFloat64())
}

// BuildPerformanceMessage renders the monthly recap without bonus details.
func BuildPerformanceMessage(m PerformanceMessage) string {
	var b strings.Builder
	b.WriteString("Halo *" + m.Name + "*,\n\n")
	b.WriteString("Rekap performa periode *" + m.Period + "*:\n")
	writeMetrics(&b, m)
	b.WriteString("\nTerima kasih atas kerja kerasnya!")
	return b.String()
}

// BuildBonusMessage renders the monthly recap with the tier and estimated bonus.
func BuildBonusMessage(m BonusMessage) string {
	var b strings.Builder
	b.WriteString("Halo *" + m.Name + "*,\n\n")
	b.WriteString("Rekap bonus periode *" + m.Period + "*:\n")
	writeMetrics(&b, m.PerformanceMessage)

	if m.Result.Tier == calculator.TierNone {
		b.WriteString("• Tier: " + notEligibleTierMsg + "\n")
		b.WriteString("\nTetap semangat, kejar target di periode berikutnya!")
		return b.String()
	}

	b.WriteString("• Tier: *" + string(m.Result.Tier) + "*\n")
	b.WriteString("• Estimasi bonus: *" + FormatIDR(m.Result.Amount) + "*\n")
	b.WriteString("\nTerima kasih atas kerja kerasnya!")
	return b.String()
}

func writeMetrics(b *strings.Builder, m PerformanceMessage) {
	b.WriteString(printer.Sprintf("• Diamonds: %d\n", m.Diamonds))
	b.WriteString(printer.Sprintf("• Hari valid: %d\n", m.ValidDays))
	b.WriteString("• Jam LIVE: " + formatHours(m.LiveHours) + "\n")
}

// NormalizePhone reduces a local or international Indonesian number to digits with the 62 prefix.
// "0812-3456-7890", "+62 812 3456 7890" and "812 3456 7890" all become "6281234567890".
func NormalizePhone(raw string) (string, error) {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, raw)

	switch {
	case strings.HasPrefix(digits, "0"):
		digits = indonesiaPrefix + strings.TrimLeft(digits, "0")
	case strings.HasPrefix(digits, "8"):
		digits = indonesiaPrefix + digits
	}

	if len(digits) < minPhoneDigits || len(digits) > maxPhoneDigits {
		return "", ErrInvalidPhone
	}
	return digits, nil
}

// WaLink builds a click-to-chat link that opens WhatsApp with text prefilled.
func WaLink(phone, text string) (string, error) {
	n, err := NormalizePhone(phone)
	if err != nil {
		return "", err
	}
	link := waBaseURL + n
	if text != "" {
		link += "?text=" + strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
	}
	return link, nil
}
