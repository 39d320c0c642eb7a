package intent

import (
	"regexp"
	"strings"

	"github.com/jengabot/jenga_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

const (
	// DefaultCurrency is assumed when the message names no known currency.
	DefaultCurrency = "UGX"

	fallbackConfidence   = 0.60
	mediaCaptionDiscount = 0.95
	imageConfidence      = 0.90
)

// currencyPattern is the fixed whitelist of recognizable currency tokens.
var currencyPattern = regexp.MustCompile(`(?i)\b(UGX|USH|KSH|TZS|USD|EUR|GBP)\b`)

var bareNumberPattern = regexp.MustCompile(amountExpr)

// Parser classifies free-text WhatsApp messages into ParsedIntent values by
// running them through the rule cascade.
type Parser struct{}

// NewParser returns a ready Parser. The rule tables are package-level and
// immutable after init.
func NewParser() *Parser {
	return &Parser{}
}

// Parse runs text through the pattern families in priority order (expense,
// task, budget, query), then the bare-number fallback. When mediaURL is
// non-empty and the caption parses as an expense the expense classification
// wins over a generic image log, at a small confidence discount.
func (p *Parser) Parse(text string, mediaURL string) domain.ParsedIntent {
	parsed := p.parseText(text)

	if mediaURL == "" {
		return parsed
	}

	if parsed.Intent == domain.IntentLogExpense {
		parsed.Confidence *= mediaCaptionDiscount
		parsed.MediaURL = mediaURL
		return parsed
	}

	return domain.ParsedIntent{
		Intent:          domain.IntentLogImage,
		Confidence:      imageConfidence,
		OriginalMessage: text,
		Caption:         strings.TrimSpace(text),
		MediaURL:        mediaURL,
	}
}

func (p *Parser) parseText(text string) domain.ParsedIntent {
	trimmed := strings.TrimSpace(text)

	for _, family := range families() {
		for _, rule := range family {
			match := rule.Pattern.FindStringSubmatch(trimmed)
			if match == nil {
				continue
			}
			parsed := domain.ParsedIntent{
				Intent:          rule.Intent,
				Confidence:      rule.Confidence,
				OriginalMessage: text,
			}
			if rule.Extract != nil && !rule.Extract(match, &parsed) {
				continue
			}
			if parsed.Intent == domain.IntentLogExpense || parsed.Intent == domain.IntentSetBudget {
				parsed.CurrencyCode = extractCurrency(trimmed)
			}
			return parsed
		}
	}

	// No pattern matched; a bare number is still most likely a spend.
	if loc := bareNumberPattern.FindStringIndex(trimmed); loc != nil {
		desc := strings.TrimSpace(trimmed[:loc[0]] + " " + trimmed[loc[1]:])
		return domain.ParsedIntent{
			Intent:          domain.IntentLogExpense,
			Confidence:      fallbackConfidence,
			OriginalMessage: text,
			Amount:          parseAmount(trimmed[loc[0]:loc[1]]),
			Description:     desc,
			CurrencyCode:    extractCurrency(trimmed),
		}
	}

	return domain.ParsedIntent{
		Intent:          domain.IntentUnknown,
		Confidence:      0,
		OriginalMessage: text,
	}
}

// ParseAmount converts free-text numeric input to a decimal, stripping
// thousands separators. Negative or unparseable input yields zero. The
// onboarding budget step shares this with the pattern extractors.
func ParseAmount(raw string) decimal.Decimal {
	return parseAmount(raw)
}

// parseAmount converts a matched numeric token to a decimal, stripping
// thousands separators. Negative or unparseable input yields zero, which the
// confidence gate rejects downstream.
func parseAmount(raw string) decimal.Decimal {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	amount, err := decimal.NewFromString(cleaned)
	if err != nil || amount.IsNegative() {
		return decimal.Zero
	}
	return amount.Round(2)
}

// extractCurrency finds the first whitelisted currency token in the message,
// defaulting to UGX.
func extractCurrency(text string) string {
	if match := currencyPattern.FindString(text); match != "" {
		return strings.ToUpper(match)
	}
	return DefaultCurrency
}
