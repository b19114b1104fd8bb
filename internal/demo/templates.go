package demo

import "github.com/cashcare-dev/cashcare/internal/model"

type template struct {
	description string
	category    model.Category
	min, max    float64
}

var creditTemplates = []template{
	{"Salary Credit - NEFT", model.CategoryIncome, 35000, 120000},
	{"Freelance Payment - UPI", model.CategoryIncome, 5000, 50000},
	{"Dividend Credit", model.CategoryIncome, 500, 5000},
	{"Refund - Flipkart", model.CategoryShopping, 200, 3000},
	{"Interest Credit", model.CategoryIncome, 100, 2000},
	{"FD Maturity Credit", model.CategoryIncome, 10000, 100000},
	{"Cashback - PhonePe", model.CategoryIncome, 50, 500},
}

var debitTemplates = []template{
	{"Hotstar Subscription", model.CategoryEntertainment, 149, 1499},
	{"BigBasket Grocery", model.CategoryFoodDining, 500, 5000},
	{"Electricity Bill - BESCOM", model.CategoryUtilities, 800, 3000},
	{"Amazon India Purchase", model.CategoryShopping, 300, 15000},
	{"Petrol - HP", model.CategoryTransportation, 500, 3000},
	{"Swiggy Order", model.CategoryFoodDining, 200, 1500},
	{"Gym Membership - Cult", model.CategoryHealthcare, 1000, 3000},
	{"Chai Point", model.CategoryFoodDining, 50, 300},
	{"Jio Recharge", model.CategoryUtilities, 239, 999},
	{"Uber India Ride", model.CategoryTransportation, 100, 800},
	{"Spotify India", model.CategoryEntertainment, 119, 179},
	{"Rent Payment - NEFT", model.CategoryHousing, 8000, 35000},
	{"Health Insurance - HDFC", model.CategoryInsurance, 1500, 5000},
	{"Water Bill - BWSSB", model.CategoryUtilities, 200, 800},
	{"SIP Investment - Zerodha", model.CategoryInvestment, 2000, 25000},
	{"Myntra Purchase", model.CategoryShopping, 500, 5000},
}
