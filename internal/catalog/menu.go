package catalog

func seedMenu() []MenuEntry {
	return []MenuEntry{
		{
			ID:          "shoyu-classic",
			Name:        "Shoyu Ramen",
			Description: "Kuah kaldu ayam bening dengan shoyu, chashu panggang, dan daun bawang.",
			Price:       45000,
			Image:       "/images/shoyu-classic.jpg",
			Category:    "Signature",
			SpiceLevels: []string{"Tidak Pedas", "Sedang", "Pedas"},
			Toppings: []Topping{
				{ID: "chashu", Name: "Extra Chashu", Price: 12000},
				{ID: "ajitama", Name: "Ajitama", Price: 8000},
				{ID: "nori", Name: "Nori", Price: 5000},
			},
		},
		{
			ID:          "tonkotsu-special",
			Name:        "Tonkotsu Ramen",
			Description: "Kuah tulang babi yang dimasak 12 jam, creamy dan gurih.",
			Price:       58000,
			Image:       "/images/tonkotsu-special.jpg",
			Category:    "Signature",
			SpiceLevels: []string{"Tidak Pedas", "Sedang"},
			Toppings: []Topping{
				{ID: "chashu", Name: "Extra Chashu", Price: 12000},
				{ID: "kikurage", Name: "Kikurage", Price: 6000},
				{ID: "extra-noodles", Name: "Extra Mie", Price: 7000},
			},
		},
		{
			ID:          "miso-butter",
			Name:        "Miso Butter Ramen",
			Description: "Miso Hokkaido dengan mentega dan jagung manis.",
			Price:       52000,
			Image:       "/images/miso-butter.jpg",
			Category:    "Signature",
			SpiceLevels: []string{"Tidak Pedas", "Sedang", "Pedas"},
			Toppings: []Topping{
				{ID: "butter-corn", Name: "Butter Corn", Price: 6000},
				{ID: "chashu", Name: "Extra Chashu", Price: 12000},
				{ID: "ajitama", Name: "Ajitama", Price: 8000},
			},
		},
		{
			ID:          "spicy-tantanmen",
			Name:        "Tantanmen",
			Description: "Kuah wijen pedas dengan daging cincang dan pakcoy.",
			Price:       55000,
			Image:       "/images/spicy-tantanmen.jpg",
			Category:    "Spicy",
			SpiceLevels: []string{"Sedang", "Pedas", "Extra Pedas"},
			Toppings: []Topping{
				{ID: "minced-pork", Name: "Extra Daging Cincang", Price: 10000},
				{ID: "pakcoy", Name: "Pakcoy", Price: 5000},
				{ID: "ajitama", Name: "Ajitama", Price: 8000},
			},
		},
		{
			ID:          "curry-ramen",
			Name:        "Curry Ramen",
			Description: "Kari Jepang kental dengan potongan kentang dan wortel.",
			Price:       50000,
			Image:       "/images/curry-ramen.jpg",
			Category:    "Spicy",
			SpiceLevels: []string{"Sedang", "Pedas"},
			Toppings: []Topping{
				{ID: "chicken-katsu", Name: "Chicken Katsu", Price: 15000},
				{ID: "cheese", Name: "Keju Mozzarella", Price: 9000},
			},
		},
		{
			ID:          "shio-yuzu",
			Name:        "Shio Yuzu Ramen",
			Description: "Kuah shio ringan dengan aroma yuzu segar.",
			Price:       48000,
			Image:       "/images/shio-yuzu.jpg",
			Category:    "Light",
			SpiceLevels: []string{"Tidak Pedas"},
			Toppings: []Topping{
				{ID: "grilled-chicken", Name: "Ayam Panggang", Price: 11000},
				{ID: "nori", Name: "Nori", Price: 5000},
			},
		},
		{
			ID:          "veggie-ramen",
			Name:        "Vegetarian Ramen",
			Description: "Kaldu jamur shiitake dengan tahu dan sayuran musim.",
			Price:       42000,
			Image:       "/images/veggie-ramen.jpg",
			Category:    "Light",
			SpiceLevels: []string{"Tidak Pedas", "Sedang"},
			Toppings: []Topping{
				{ID: "tofu", Name: "Tahu Goreng", Price: 6000},
				{ID: "corn", Name: "Jagung Manis", Price: 5000},
				{ID: "pakcoy", Name: "Pakcoy", Price: 5000},
			},
		},
	}
}
