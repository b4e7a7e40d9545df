package catalog

// Product is a shop catalog entry.
type Product struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

var products = []Product{
	{
		Name:        "Mod",
		Price:       3.00,
		Description: "Get Fly, Larger Anti-Raid Zone, Teleport and Mod Kits",
	},
	{
		Name:        "Mod+",
		Price:       7.00,
		Description: "Get Fly, XL Anti-Raid Zone, Teleport Players and Admin Kits w/Command Access",
	},
	{
		Name:        "Hardcore VIP 1 Month",
		Price:       3.00,
		Description: "VIP Kit and Rank for 1 month",
	},
	{
		Name:        "Hardcore VIP Perma",
		Price:       30.00,
		Description: "VIP Kit and Rank with a server Tag",
	},
	{
		Name:        "Ultra Server Rank Package",
		Price:       50.00,
		Description: "Mod+ on Oxide Build-A-Base, Perma Hardcore VIP, Ultra Tag, 3 Custom Tag Roll Tokens, 2 Custom Tag Token",
	},
}

// Products returns the catalog in display order.
func Products() []Product {
	out := make([]Product, len(products))
	copy(out, products)
	return out
}

// Find returns the product with the given name.
func Find(name string) (Product, bool) {
	for _, p := range products {
		if p.Name == name {
			return p, true
		}
	}
	return Product{}, false
}
