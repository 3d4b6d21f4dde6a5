package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/Tiliavir/dietbook/internal/model"
)

// Per serving: name, kcal, carbohydrate g, protein g, fat g.
var defaultFoods = []struct {
	store, name                   string
	calorie, carb, protein, fat string
}{
	{"Chicken Rice Stall", "Chicken rice", "607", "75", "25", "23"},
	{"Chicken Rice Stall", "Roasted chicken rice", "550", "70", "28", "18"},
	{"Chicken Rice Stall", "Chicken soup", "120", "5", "10", "6"},
	{"Western Food", "Chicken chop", "700", "40", "45", "40"},
	{"Western Food", "Fish and chips", "800", "80", "30", "40"},
	{"Western Food", "Spaghetti bolognese", "650", "85", "25", "20"},
	{"Fruit Stall", "Apple", "52", "14", "0.3", "0.2"},
	{"Fruit Stall", "Banana", "89", "23", "1.1", "0.3"},
	{"Fruit Stall", "Watermelon", "30", "8", "0.6", "0.2"},
	{"Drinks", "Kopi", "100", "16", "2", "3"},
	{"Drinks", "Teh tarik", "140", "22", "3", "4"},
	{"Drinks", "Milo", "160", "25", "4", "5"},
}

// Default returns the built-in food database, used when no catalog file
// exists.
func Default() *Catalog {
	c := New()
	for _, d := range defaultFoods {
		food, err := model.NewFood(d.name,
			decimal.RequireFromString(d.calorie),
			decimal.RequireFromString(d.carb),
			decimal.RequireFromString(d.protein),
			decimal.RequireFromString(d.fat))
		if err != nil {
			panic("catalog: invalid default food " + d.name + ": " + err.Error())
		}
		c.Add(d.store, food)
	}
	return c
}
