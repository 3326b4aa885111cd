package catalog

// Sample returns the built-in demo content.
func Sample() []Section {
	return []Section{
		{
			Title: "Fruit",
			Entries: []Entry{
				{Name: "Apple", Detail: "crisp, red or green"},
				{Name: "Banana"},
				{Name: "Blood Orange", Detail: "in season July to October"},
				{Name: "Durian", Locked: true},
				{Name: "Mango"},
				{Name: "Pear"},
			},
		},
		{
			Title: "Vegetables",
			Entries: []Entry{
				{Name: "Carrot"},
				{Name: "Leek", Detail: "mild onion flavour"},
				{Name: "Pepper"},
				{Name: "Capsicum", AliasOf: "Pepper"},
				{Name: "Spinach"},
			},
		},
		{
			Title: "Grains",
			Entries: []Entry{
				{Name: "Barley"},
				{Name: "Oats", Detail: "rolled or steel cut"},
				{Name: "Rice"},
				{Name: "Rye"},
			},
		},
	}
}
