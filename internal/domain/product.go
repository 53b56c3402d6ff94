package domain

type Discount struct {
	AmountOff  float64
	PercentOff float64
}

type Product struct {
	ID          string
	SKU         string
	Name        string
	ImageURL    string
	Price       *Money
	Discount    *Discount
	Unit        string
	Description string
}

// PriceUnavailable marks products the catalog returned without a price.
func (p Product) PriceUnavailable() bool {
	return p.Price == nil
}

type SearchResult struct {
	Keyword    string
	TotalCount int
	Products   []Product
}
