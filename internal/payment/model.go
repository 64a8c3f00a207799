package payment

type ProductParams struct {
	Name        string
	Description string
	Images      []string
}

// LineItem pairs a processor-side price with a quantity for one checkout
// session entry.
type LineItem struct {
	Price    string
	Quantity int64
}
