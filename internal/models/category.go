package models

// Fixed category vocabulary, scoped by transaction type. The two lists are
// disjoint; the backend rejects anything outside them, and the client
// validates before issuing a request.
var (
	IncomeCategories  = []string{"薪資", "獎金", "投資收入", "其他收入"}
	ExpenseCategories = []string{"飲食", "交通", "購物", "娛樂", "醫療", "住宿", "其他支出"}
)

// FallbackCategory is the bucket used when a record arrives without a
// category, matching how the charts group such records.
const FallbackCategory = "其他"

// CategoriesFor returns the allowed categories for a transaction type,
// or nil for an unknown type.
func CategoriesFor(t TransactionType) []string {
	switch t {
	case Income:
		return IncomeCategories
	case Expense:
		return ExpenseCategories
	default:
		return nil
	}
}

// ValidCategory reports whether category belongs to the allowed set for the
// given transaction type.
func ValidCategory(t TransactionType, category string) bool {
	for _, c := range CategoriesFor(t) {
		if c == category {
			return true
		}
	}
	return false
}
