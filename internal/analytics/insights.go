package analytics

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// Severity tells the UI how to style an insight.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
)

// InsightCard is one rule-generated observation. Slice order is display
// priority.
type InsightCard struct {
	Title    string   `json:"title"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
	Topic    string   `json:"topic"`
}

const (
	TopicSpending = "spending"
	TopicSavings  = "savings"
	TopicSetup    = "setup"
)

// alertRatio is the share of income above which spending is flagged.
var alertRatio = decimal.RequireFromString("0.8")

const praiseRate = 20.0

// buildInsights evaluates the rules in display order. Exactly one fallback
// card is returned when nothing fires.
func buildInsights(cur monthTotals, rate float64, spending SpendingRate) []InsightCard {
	var cards []InsightCard

	if cur.expenses.GreaterThan(cur.income.Mul(alertRatio)) {
		msg := "You are spending money with no income recorded this month."
		if cur.income.IsPositive() {
			msg = fmt.Sprintf("Your spending is %d%% of your income.", percentOf(cur.expenses, cur.income))
		}
		cards = append(cards, InsightCard{
			Title:    "Spending Alert",
			Message:  msg,
			Severity: SeverityWarning,
			Topic:    TopicSpending,
		})
	}

	switch {
	case rate >= praiseRate:
		cards = append(cards, InsightCard{
			Title:    "Great Savings!",
			Message:  fmt.Sprintf("You're saving %s%% of your income. Keep it up!", formatRate(rate)),
			Severity: SeveritySuccess,
			Topic:    TopicSavings,
		})
	case rate > 0:
		cards = append(cards, InsightCard{
			Title:    "Savings Goal",
			Message:  fmt.Sprintf("Your savings rate is %s%%. Aim for at least 20%%.", formatRate(rate)),
			Severity: SeverityInfo,
			Topic:    TopicSavings,
		})
	}

	if spending.Direction == DirectionUp {
		cards = append(cards, InsightCard{
			Title:    "Spending Up",
			Message:  fmt.Sprintf("Monthly spending increased by %s%% vs last month.", formatRate(spending.ChangePercent)),
			Severity: SeverityWarning,
			Topic:    TopicSpending,
		})
	}

	if len(cards) == 0 {
		cards = append(cards, InsightCard{
			Title:    "Get Started",
			Message:  "Link a bank account to see personalized insights.",
			Severity: SeverityInfo,
			Topic:    TopicSetup,
		})
	}
	return cards
}

func formatRate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
