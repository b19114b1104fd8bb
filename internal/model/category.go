package model

import (
	"errors"
	"fmt"
	"strings"
)

// Category is a transaction category from a fixed, closed set.
type Category string

const (
	CategoryFoodDining     Category = "Food & Dining"
	CategoryTransportation Category = "Transportation"
	CategoryShopping       Category = "Shopping"
	CategoryHousing        Category = "Housing"
	CategoryLoan           Category = "Loan"
	CategoryInsurance      Category = "Insurance"
	CategoryUtilities      Category = "Utilities"
	CategoryEntertainment  Category = "Entertainment"
	CategoryHealthcare     Category = "Healthcare"
	CategoryInvestment     Category = "Investment"
	CategoryIncome         Category = "Income"
	CategoryTransfer       Category = "Transfer"
	CategoryOther          Category = "Other"
)

// ErrUnknownCategory is returned when a label is not part of the closed set.
var ErrUnknownCategory = errors.New("unknown category")

var allCategories = []Category{
	CategoryFoodDining,
	CategoryTransportation,
	CategoryShopping,
	CategoryHousing,
	CategoryLoan,
	CategoryInsurance,
	CategoryUtilities,
	CategoryEntertainment,
	CategoryHealthcare,
	CategoryInvestment,
	CategoryIncome,
	CategoryTransfer,
	CategoryOther,
}

// Categories returns every category in declaration order.
func Categories() []Category {
	out := make([]Category, len(allCategories))
	copy(out, allCategories)
	return out
}

// Valid reports whether c is a member of the closed set.
func (c Category) Valid() bool {
	for _, known := range allCategories {
		if c == known {
			return true
		}
	}
	return false
}

// IsBill reports whether c counts towards bill-payment consistency.
func (c Category) IsBill() bool {
	switch c {
	case CategoryUtilities, CategoryInsurance, CategoryHousing, CategoryLoan:
		return true
	}
	return false
}

// ParseCategory matches s case-insensitively against the closed set.
func ParseCategory(s string) (Category, error) {
	trimmed := strings.TrimSpace(s)
	for _, known := range allCategories {
		if strings.EqualFold(trimmed, string(known)) {
			return known, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}
