package domain

// Product is a clothing item from the demo catalog.
type Product struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Price           float64  `json:"price"`
	Description     string   `json:"description"`
	Category        string   `json:"category"`
	Brand           string   `json:"brand"`
	Rating          float64  `json:"rating"`
	Reviews         int      `json:"reviews"`
	InStock         bool     `json:"in_stock"`
	Images          []string `json:"images"`
	AvailableColors []string `json:"available_colors"`
	AvailableSizes  []string `json:"available_sizes"`
}

// ProductFilter narrows a catalog listing. Zero values mean "no filter";
// MinPrice/MaxPrice are pointers so a 0 bound can be expressed.
type ProductFilter struct {
	Category string
	MinPrice *float64
	MaxPrice *float64
	Search   string
}
