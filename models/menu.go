package models

type MenuItem struct {
	ID           string
	Category     string // "appetizer", "main", "tandoor", "bread", "dessert", "drink"
	Name         string
	Description  string
	Price        float64
	IsVegan      bool
	IsVegetarian bool
	IsGlutenFree bool
}

const (
	CategoryAppetizer = "appetizer"
	CategoryMain      = "main"
	CategoryTandoor   = "tandoor"
	CategoryBread     = "bread"
	CategoryDessert   = "dessert"
	CategoryDrink     = "drink"
)

// Categories in menu display order.
var Categories = []string{
	CategoryAppetizer,
	CategoryMain,
	CategoryTandoor,
	CategoryBread,
	CategoryDessert,
	CategoryDrink,
}

func ValidCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// DefaultMenu is the built-in catalog, used when MENU_SOURCE=static and as
// the seed for the menu_items migration. Order matters: the assistant's
// dietary shortlists and fuzzy matches resolve ties in catalog order.
var DefaultMenu = []MenuItem{
	{ID: "1", Category: CategoryAppetizer, Name: "Vegetable Samosa", Description: "Crisp pastry filled with spiced potatoes and peas.", Price: 7, IsVegan: true, IsVegetarian: true},
	{ID: "2", Category: CategoryAppetizer, Name: "Chicken 65", Description: "Fiery South Indian fried chicken tossed with curry leaves.", Price: 13, IsGlutenFree: true},
	{ID: "3", Category: CategoryAppetizer, Name: "Paneer Pakora", Description: "Chickpea-battered paneer fritters with mint chutney.", Price: 11, IsVegetarian: true, IsGlutenFree: true},
	{ID: "4", Category: CategoryMain, Name: "Butter Chicken Curry", Description: "Tandoori chicken simmered in a silky tomato-fenugreek sauce.", Price: 18.5, IsGlutenFree: true},
	{ID: "5", Category: CategoryMain, Name: "Chana Masala", Description: "Chickpeas braised with onion, ginger and garam masala.", Price: 14, IsVegan: true, IsVegetarian: true, IsGlutenFree: true},
	{ID: "6", Category: CategoryMain, Name: "Palak Paneer", Description: "House paneer folded into creamed spinach.", Price: 16, IsVegetarian: true, IsGlutenFree: true},
	{ID: "7", Category: CategoryMain, Name: "Lamb Rogan Josh", Description: "Slow-braised lamb in a Kashmiri chili and yogurt gravy.", Price: 21, IsGlutenFree: true},
	{ID: "8", Category: CategoryMain, Name: "Dal Makhani", Description: "Black lentils simmered overnight with butter and cream.", Price: 15, IsVegetarian: true, IsGlutenFree: true},
	{ID: "9", Category: CategoryMain, Name: "Chicken Biryani", Description: "Saffron basmati layered with spiced chicken, served with raita.", Price: 19, IsGlutenFree: true},
	{ID: "10", Category: CategoryTandoor, Name: "Tandoori Chicken", Description: "Yogurt-marinated half chicken charred in the clay oven.", Price: 20, IsGlutenFree: true},
	{ID: "11", Category: CategoryBread, Name: "Garlic Naan", Description: "Leavened bread brushed with garlic butter and cilantro.", Price: 5, IsVegetarian: true},
	{ID: "12", Category: CategoryDessert, Name: "Gulab Jamun", Description: "Warm milk dumplings soaked in cardamom-rose syrup.", Price: 8, IsVegetarian: true},
	{ID: "13", Category: CategoryDrink, Name: "Mango Lassi", Description: "Chilled yogurt smoothie with Alphonso mango.", Price: 6.5, IsVegetarian: true, IsGlutenFree: true},
	{ID: "14", Category: CategoryDrink, Name: "Masala Chai", Description: "Spiced black tea steeped with milk.", Price: 4, IsVegetarian: true, IsGlutenFree: true},
}
