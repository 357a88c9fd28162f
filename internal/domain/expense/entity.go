package expense

import "time"

type Category string

const (
	CategoryOffice    Category = "office"
	CategoryTravel    Category = "travel"
	CategoryMeal      Category = "meal"
	CategoryEquipment Category = "equipment"
	CategoryWelfare   Category = "welfare"
	CategoryOther     Category = "other"
)

func Categories() []string {
	return []string{
		string(CategoryOffice), string(CategoryTravel), string(CategoryMeal),
		string(CategoryEquipment), string(CategoryWelfare), string(CategoryOther),
	}
}

type Expense struct {
	ID          string
	CompanyID   string
	UserID      string
	SpentAt     string // YYYY-MM-DD
	Category    Category
	Memo        string
	Amount      int64 // KRW
	ReceiptPath *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CategoryTotal is one row of the per-category monthly rollup.
type CategoryTotal struct {
	Category Category
	Amount   int64
}
