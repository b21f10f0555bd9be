package seed

import "github.com/example/pepine/internal/services"

var seedCategories = []services.CategoryInput{
	{Value: "Aromatiques", Description: "Plantes aromatiques et condimentaires", Media: "https://images.pepine.local/categories/aromatiques.webp"},
	{Value: "Arbustes", Description: "Arbustes d'ornement et de haie", Media: "https://images.pepine.local/categories/arbustes.webp"},
	{Value: "Grimpantes", Description: "Plantes grimpantes et palissées", Media: "https://images.pepine.local/categories/grimpantes.webp"},
}

var seedUsers = []services.RegisterInput{
	{
		FirstName: "Claire",
		LastName:  "Fontaine",
		Email:     "claire@pepine.local",
		Password:  "Admin123!",
		Role:      "admin",
		Phone:     "+33600000001",
	},
	{
		FirstName: "Marc",
		LastName:  "Dubois",
		Email:     "marc@pepine.local",
		Password:  "User123!",
		Role:      "user",
		Phone:     "+33600000002",
	},
}

type seedProduct struct {
	input      services.ProductInput
	categories []string
}

var seedProducts = []seedProduct{
	{
		input: services.ProductInput{
			Name:           "Thym citron",
			ScientificName: "Thymus citriodorus",
			Family:         "Lamiacées",
			Origin:         "Méditerranée",
			Description1:   "Thym au parfum citronné, idéal en cuisine.",
			Exposure:       "Plein soleil",
			Stock:          40,
			Price:          4.5,
			VAT:            10,
			Status:         true,
			Media:          []string{"https://images.pepine.local/products/thym-citron.webp"},
		},
		categories: []string{"Aromatiques"},
	},
	{
		input: services.ProductInput{
			Name:           "Laurier-tin",
			ScientificName: "Viburnum tinus",
			Family:         "Adoxacées",
			Origin:         "Bassin méditerranéen",
			Description1:   "Arbuste persistant à floraison hivernale.",
			FlowerColor:    "Blanc rosé",
			Stock:          15,
			Price:          12.9,
			VAT:            10,
			Status:         true,
			Media:          []string{"https://images.pepine.local/products/laurier-tin.webp"},
		},
		categories: []string{"Arbustes"},
	},
	{
		input: services.ProductInput{
			Name:           "Chèvrefeuille des bois",
			ScientificName: "Lonicera periclymenum",
			Family:         "Caprifoliacées",
			Description1:   "Grimpante parfumée pour pergola ou clôture.",
			FlowerColor:    "Jaune crème",
			Stock:          22,
			Price:          9.4,
			VAT:            10,
			Status:         true,
			Media:          []string{"https://images.pepine.local/products/chevrefeuille.webp"},
		},
		categories: []string{"Grimpantes", "Arbustes"},
	},
}

var seedOrders = []services.OrderInput{
	{TotalPrice: 26.8},
	{TotalPrice: 47.2, Status: "validée"},
}
