package product

// DefaultCatalog returns the built-in shop inventory.
func DefaultCatalog() []Product {
	return []Product{
		MustNew("Chicken Breast", "Meat", "Boneless chicken breast, perfect for curries.", 5.99),
		MustNew("Coconut Milk", "Canned Goods", "Rich and creamy coconut milk for cooking.", 2.49),
		MustNew("Garlic", "Produce", "Fresh garlic bulbs for seasoning.", 0.99),
		MustNew("Onion", "Produce", "Yellow onions for cooking and seasoning.", 0.79),
		MustNew("Ginger", "Produce", "Fresh ginger root for flavor.", 1.49),
		MustNew("Turmeric Powder", "Spices", "Ground turmeric for adding color and flavor.", 3.99),
		MustNew("Curry Powder", "Spices", "A blend of spices perfect for curries.", 4.49),
		MustNew("Tomatoes", "Produce", "Fresh ripe tomatoes for sauces and curries.", 2.99),
		MustNew("Basmati Rice", "Grains", "Long-grain basmati rice for serving with curry.", 4.99),
	}
}
