package intent

import (
	"regexp"
	"strings"

	"github.com/jengabot/jenga_backend/internal/core/domain"
)

// Rule is one (matcher, extractor, confidence) entry in the classification
// cascade. Rules are evaluated in slice order and the first rule whose
// pattern matches AND whose extractor succeeds wins; there is no scoring
// competition across families.
type Rule struct {
	Intent     domain.IntentType
	Pattern    *regexp.Regexp
	Confidence float64
	Extract    func(match []string, parsed *domain.ParsedIntent) bool
}

const amountExpr = `((?:\d{1,3}(?:,\d{3})+|\d+)(?:\.\d+)?)`

// Words that mark a message as belonging to a later family. The loose
// number-and-word expense forms must not swallow these.
var reservedWords = []string{"budget", "bbajeti", "bajeti", "task", "todo", "remind"}

func containsReserved(s string) bool {
	lower := strings.ToLower(s)
	for _, w := range reservedWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// expenseRules covers the English and Luganda spend phrasings, most explicit
// first. The bare leading/trailing number forms sit last within the family.
var expenseRules = []Rule{
	{
		// "spent 50,000 on cement" / "paid 20000 for wages" / "used 5000 on fuel"
		// The currency token may sit on either side of the amount.
		Intent:     domain.IntentLogExpense,
		Pattern:    regexp.MustCompile(`(?i)\b(?:spent|paid|used)\s+(?:[A-Za-z]{3}\s+)?` + amountExpr + `(?:\s+[A-Za-z]{3})?\s+(?:on|for)\s+(.+)`),
		Confidence: 0.95,
		Extract: func(m []string, p *domain.ParsedIntent) bool {
			p.Amount = parseAmount(m[1])
			p.Description = strings.TrimSpace(m[2])
			return true
		},
	},
	{
		// "bought bricks for 120000"
		Intent:     domain.IntentLogExpense,
		Pattern:    regexp.MustCompile(`(?i)\bbought\s+(.+?)\s+(?:for|at)\s+(?:[A-Za-z]{3}\s+)?` + amountExpr),
		Confidence: 0.90,
		Extract: func(m []string, p *domain.ParsedIntent) bool {
			p.Amount = parseAmount(m[2])
			p.Description = strings.TrimSpace(m[1])
			return true
		},
	},
	{
		// "naguze amatafaali ku 120000" (I bought bricks at ...)
		Intent:     domain.IntentLogExpense,
		Pattern:    regexp.MustCompile(`(?i)\bnaguze\s+(.+?)\s+(?:ku|nga)\s+` + amountExpr),
		Confidence: 0.85,
		Extract: func(m []string, p *domain.ParsedIntent) bool {
			p.Amount = parseAmount(m[2])
			p.Description = strings.TrimSpace(m[1])
			return true
		},
	},
	{
		// "nsasudde 30000 ku bakozi" (I paid ... to the workers)
		Intent:     domain.IntentLogExpense,
		Pattern:    regexp.MustCompile(`(?i)\b(?:nsasudde|nasasudde|nawaddeyo)\s+` + amountExpr + `\s+(?:ku|eri)\s+(.+)`),
		Confidence: 0.85,
		Extract: func(m []string, p *domain.ParsedIntent) bool {
			p.Amount = parseAmount(m[1])
			p.Description = strings.TrimSpace(m[2])
			return true
		},
	},
	{
		// "50000 cement", leading number
		Intent:     domain.IntentLogExpense,
		Pattern:    regexp.MustCompile(`^\s*` + amountExpr + `\s+(?:on\s+|for\s+)?(\D.*)$`),
		Confidence: 0.75,
		Extract: func(m []string, p *domain.ParsedIntent) bool {
			desc := strings.TrimSpace(m[2])
			if containsReserved(desc) {
				return false
			}
			p.Amount = parseAmount(m[1])
			p.Description = desc
			return true
		},
	},
	{
		// "cement 50000", leading word
		Intent:     domain.IntentLogExpense,
		Pattern:    regexp.MustCompile(`^\s*(\D.*?)\s+` + amountExpr + `\s*$`),
		Confidence: 0.72,
		Extract: func(m []string, p *domain.ParsedIntent) bool {
			desc := strings.TrimSpace(m[1])
			if containsReserved(desc) {
				return false
			}
			p.Amount = parseAmount(m[2])
			p.Description = desc
			return true
		},
	},
}

var taskRules = []Rule{
	{
		// "task: inspect foundation" / "todo - buy nails"
		Intent:     domain.IntentCreateTask,
		Pattern:    regexp.MustCompile(`(?i)^\s*(?:task|todo)\s*[:\-]\s*(.+)$`),
		Confidence: 0.90,
		Extract: func(m []string, p *domain.ParsedIntent) bool {
			p.Title, p.Priority = titleWithUrgency(m[1], domain.PriorityMedium)
			return true
		},
	},
	{
		// "urgent: call the engineer" / "asap fix the leak"
		Intent:     domain.IntentCreateTask,
		Pattern:    regexp.MustCompile(`(?i)^\s*(?:urgent|asap)\s*[:\-]?\s+(.+)$`),
		Confidence: 0.90,
		Extract: func(m []string, p *domain.ParsedIntent) bool {
			p.Title = strings.TrimSpace(m[1])
			p.Priority = domain.PriorityHigh
			return p.Title != ""
		},
	},
	{
		// "remind me to order more sand"
		Intent:     domain.IntentCreateTask,
		Pattern:    regexp.MustCompile(`(?i)\bremind me to\s+(.+)`),
		Confidence: 0.88,
		Extract: func(m []string, p *domain.ParsedIntent) bool {
			p.Title, p.Priority = titleWithUrgency(m[1], domain.PriorityMedium)
			return true
		},
	},
}

var budgetRules = []Rule{
	{
		// "set budget 5000000" / "set the budget to 5,000,000"
		Intent:     domain.IntentSetBudget,
		Pattern:    regexp.MustCompile(`(?i)\bset\s+(?:the\s+)?budget\s+(?:to\s+|at\s+)?(?:[A-Za-z]{3}\s+)?` + amountExpr),
		Confidence: 0.95,
		Extract: func(m []string, p *domain.ParsedIntent) bool {
			p.Amount = parseAmount(m[1])
			return true
		},
	},
	{
		// "my budget is 5000000" / "project budget 5000000"
		Intent:     domain.IntentSetBudget,
		Pattern:    regexp.MustCompile(`(?i)\b(?:my|project)\s+budget\s+(?:is\s+)?(?:now\s+)?(?:[A-Za-z]{3}\s+)?` + amountExpr),
		Confidence: 0.95,
		Extract: func(m []string, p *domain.ParsedIntent) bool {
			p.Amount = parseAmount(m[1])
			return true
		},
	},
	{
		// "bbajeti 5000000"
		Intent:     domain.IntentSetBudget,
		Pattern:    regexp.MustCompile(`(?i)\b(?:bbajeti|bajeti)\s+(?:ya\s+|eri\s+)?` + amountExpr),
		Confidence: 0.90,
		Extract: func(m []string, p *domain.ParsedIntent) bool {
			p.Amount = parseAmount(m[1])
			return true
		},
	},
}

// queryRules detect intent only; nothing is extracted.
var queryRules = []Rule{
	{Intent: domain.IntentQueryExpenses, Pattern: regexp.MustCompile(`(?i)\bhow much\b`), Confidence: 0.85},
	{Intent: domain.IntentQueryExpenses, Pattern: regexp.MustCompile(`(?i)\b(?:total|overall)\s+(?:spent|spend|expenses?)\b`), Confidence: 0.85},
	{Intent: domain.IntentQueryExpenses, Pattern: regexp.MustCompile(`(?i)\b(?:balance|remaining)\b`), Confidence: 0.85},
	{Intent: domain.IntentQueryExpenses, Pattern: regexp.MustCompile(`(?i)\b(?:expense\s+)?(?:report|summary)\b`), Confidence: 0.85},
	{Intent: domain.IntentQueryExpenses, Pattern: regexp.MustCompile(`(?i)\bssente\s+(?:zimeka|emeka)\b`), Confidence: 0.85},
}

// families in fixed priority order: expense, task, budget, query. The
// ordering is the documented tie-break rule and is tested in isolation.
func families() [][]Rule {
	return [][]Rule{expenseRules, taskRules, budgetRules, queryRules}
}

func titleWithUrgency(raw string, fallback domain.TaskPriority) (string, domain.TaskPriority) {
	title := strings.TrimSpace(raw)
	priority := fallback
	lower := strings.ToLower(title)
	for _, prefix := range []string{"urgent:", "urgent -", "urgent", "asap:", "asap -", "asap"} {
		if strings.HasPrefix(lower, prefix) {
			title = strings.TrimSpace(title[len(prefix):])
			priority = domain.PriorityHigh
			break
		}
	}
	return title, priority
}
