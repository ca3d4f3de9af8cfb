package dto

const (
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortTitleAsc  = "title_asc"
)

// Criteria carries the optional filter and sort parameters of a catalog
// query. Empty fields are not applied as filters.
type Criteria struct {
	Category string `query:"category"`
	Q        string `query:"q"`
	MinPrice string `query:"minPrice"`
	MaxPrice string `query:"maxPrice"`
	Sort     string `query:"sort"`
}
