package models

// Review is a single customer review on a catalog item. The id is unique
// within the item's review list.
type Review struct {
	ID       int64   `json:"id"`
	UserName string  `json:"userName"`
	Rating   float64 `json:"rating"`
	Comment  string  `json:"comment"`
	Date     string  `json:"date"`
}

// Product represents a catalog item document. Rating is derived: the mean of
// all review ratings rounded to one decimal place, or 0 with no reviews.
type Product struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
	Rating      float64  `json:"rating"`
	Reviews     []Review `json:"reviews"`
}
