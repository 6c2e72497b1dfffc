// Package assistant routes free-text report questions to reporting
// queries. Matching is deliberately rule-based: the business users ask a
// handful of well-known questions and anything else gets a capabilities
// hint.
package assistant

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/elir12131/agroflow/internal/domain/report"
)

// IntentKind identifies what the user is asking for
type IntentKind string

const (
	IntentGreeting     IntentKind = "greeting"
	IntentThanks       IntentKind = "thanks"
	IntentTotalSales   IntentKind = "total_sales"
	IntentTopProducts  IntentKind = "top_products"
	IntentTopCustomers IntentKind = "top_customers"
	IntentUnknown      IntentKind = "unknown"
)

// Intent is a routed query with its extracted parameters
type Intent struct {
	Kind   IntentKind
	Period report.SalesPeriod
	Limit  int
}

// The first integer anywhere in the query sets the ranking size, so
// "what are the 3 top products" asks for three.
var topNPattern = regexp.MustCompile(`\d+`)

// Route classifies a message. Rules are checked in a fixed order and
// the first match wins, so "hi, total sales" is a greeting.
func Route(message string) Intent {
	text := strings.ToLower(strings.TrimSpace(message))

	switch {
	case containsAny(text, "hello", "hi", "hey"):
		return Intent{Kind: IntentGreeting}

	case containsAny(text, "thank", "thanks"):
		return Intent{Kind: IntentThanks}

	case strings.Contains(text, "total sales"):
		return Intent{Kind: IntentTotalSales, Period: extractPeriod(text)}

	case strings.Contains(text, "top") && strings.Contains(text, "product"):
		return Intent{Kind: IntentTopProducts, Limit: extractTopN(text)}

	case strings.Contains(text, "top") && strings.Contains(text, "customer"):
		return Intent{Kind: IntentTopCustomers, Limit: extractTopN(text)}
	}

	return Intent{Kind: IntentUnknown}
}

func containsAny(text string, terms ...string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}

// extractPeriod picks the reporting window. Day wins over week when a
// query mentions both.
func extractPeriod(text string) report.SalesPeriod {
	switch {
	case strings.Contains(text, "day"), strings.Contains(text, "today"):
		return report.PeriodDay
	case strings.Contains(text, "week"):
		return report.PeriodWeek
	default:
		return report.PeriodMonth
	}
}

func extractTopN(text string) int {
	match := topNPattern.FindString(text)
	if match == "" {
		return report.DefaultTopN
	}
	n, err := strconv.Atoi(match)
	if err != nil {
		return report.DefaultTopN
	}
	return report.NormalizeTopN(n)
}
