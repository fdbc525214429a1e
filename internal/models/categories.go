package models

// ExpenseCategory is a statutory self-employment expense category (SA103F boxes).
type ExpenseCategory string

// Expense categories. Deductible ones reduce taxable profit; the rest are
// recorded but excluded from quarterly totals.
const (
	CategoryCostOfGoods           ExpenseCategory = "COST_OF_GOODS"
	CategoryOfficeCosts           ExpenseCategory = "OFFICE_COSTS"
	CategoryTravel                ExpenseCategory = "TRAVEL"
	CategoryStaffCosts            ExpenseCategory = "STAFF_COSTS"
	CategoryPremisesCosts         ExpenseCategory = "PREMISES_COSTS"
	CategoryRepairs               ExpenseCategory = "REPAIRS"
	CategoryAdvertising           ExpenseCategory = "ADVERTISING"
	CategoryProfessionalFees      ExpenseCategory = "PROFESSIONAL_FEES"
	CategoryInterest              ExpenseCategory = "INTEREST"
	CategoryBankCharges           ExpenseCategory = "BANK_CHARGES"
	CategoryPhoneAndInternet      ExpenseCategory = "PHONE_AND_INTERNET"
	CategoryOtherAllowable        ExpenseCategory = "OTHER_ALLOWABLE"
	CategoryDepreciation          ExpenseCategory = "DEPRECIATION"
	CategoryBusinessEntertainment ExpenseCategory = "BUSINESS_ENTERTAINMENT"
)

// categoryDeductible maps every known category to its tax treatment.
var categoryDeductible = map[ExpenseCategory]bool{
	CategoryCostOfGoods:           true,
	CategoryOfficeCosts:           true,
	CategoryTravel:                true,
	CategoryStaffCosts:            true,
	CategoryPremisesCosts:         true,
	CategoryRepairs:               true,
	CategoryAdvertising:           true,
	CategoryProfessionalFees:      true,
	CategoryInterest:              true,
	CategoryBankCharges:           true,
	CategoryPhoneAndInternet:      true,
	CategoryOtherAllowable:        true,
	CategoryDepreciation:          false,
	CategoryBusinessEntertainment: false,
}

// AllCategories lists every known category in statutory order.
var AllCategories = []ExpenseCategory{
	CategoryCostOfGoods,
	CategoryOfficeCosts,
	CategoryTravel,
	CategoryStaffCosts,
	CategoryPremisesCosts,
	CategoryRepairs,
	CategoryAdvertising,
	CategoryProfessionalFees,
	CategoryInterest,
	CategoryBankCharges,
	CategoryPhoneAndInternet,
	CategoryOtherAllowable,
	CategoryDepreciation,
	CategoryBusinessEntertainment,
}

// Deductible reports whether expenses in this category reduce taxable profit.
// Unknown categories are treated as non-deductible.
func (c ExpenseCategory) Deductible() bool {
	return categoryDeductible[c]
}

// Known reports whether the category is one of the statutory categories.
func (c ExpenseCategory) Known() bool {
	_, ok := categoryDeductible[c]
	return ok
}

func (c ExpenseCategory) String() string {
	return string(c)
}
