package categorize

import "github.com/cashcare-dev/cashcare/internal/model"

// DefaultRules returns the built-in keyword table in priority order.
// Food & Dining precedes Transportation so "uber eats" is not read as a ride,
// and Insurance precedes Healthcare so "health insurance" is a bill.
func DefaultRules() []Rule {
	return []Rule{
		{Category: model.CategoryFoodDining, Keywords: []string{
			"uber eats", "doordash", "swiggy", "zomato", "restaurant", "cafe", "coffee",
			"food", "pizza", "burger", "grocery", "whole foods", "trader joe", "bigbasket", "chai",
		}},
		{Category: model.CategoryTransportation, Keywords: []string{
			"uber", "lyft", "taxi", "petrol", "gas", "fuel", "parking", "toll", "transit", "metro", "bus",
		}},
		{Category: model.CategoryShopping, Keywords: []string{
			"amazon", "walmart", "target", "ebay", "flipkart", "myntra", "shop", "store", "mall", "clothing", "shoes",
		}},
		{Category: model.CategoryHousing, Keywords: []string{
			"rent", "mortgage", "hoa fee", "property tax",
		}},
		{Category: model.CategoryLoan, Keywords: []string{
			"loan", "emi payment", "installment",
		}},
		{Category: model.CategoryInsurance, Keywords: []string{
			"insurance", "premium", "policy",
		}},
		{Category: model.CategoryUtilities, Keywords: []string{
			"electric", "water", "internet", "broadband", "phone", "recharge", "utility", "jio", "airtel",
		}},
		{Category: model.CategoryEntertainment, Keywords: []string{
			"netflix", "spotify", "hotstar", "movie", "cinema", "theatre", "concert", "game", "steam", "playstation", "xbox",
		}},
		{Category: model.CategoryHealthcare, Keywords: []string{
			"pharmacy", "hospital", "doctor", "medical", "health", "dental", "vision", "gym", "clinic",
		}},
		{Category: model.CategoryInvestment, Keywords: []string{
			"sip investment", "mutual fund", "zerodha", "groww", "brokerage", "investment",
		}},
		{Category: model.CategoryIncome, Keywords: []string{
			"salary", "payroll", "deposit", "freelance", "dividend", "interest", "payment received", "transfer in", "cashback",
		}},
		{Category: model.CategoryTransfer, Keywords: []string{
			"transfer", "neft", "imps", "upi", "zelle", "venmo",
		}},
	}
}
