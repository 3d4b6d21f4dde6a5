package model

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Tiliavir/dietbook/internal/apperror"
)

// Food is an immutable nutritional record. The macros are per portion.
type Food struct {
	name         string
	calorie      decimal.Decimal
	carbohydrate decimal.Decimal
	protein      decimal.Decimal
	fat          decimal.Decimal
}

// NewFood validates and builds a Food.
func NewFood(name string, calorie, carbohydrate, protein, fat decimal.Decimal) (Food, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Food{}, apperror.InvalidEntry("name", "food name must not be empty")
	}
	macros := []struct {
		field string
		value decimal.Decimal
	}{
		{"calorie", calorie},
		{"carbohydrate", carbohydrate},
		{"protein", protein},
		{"fat", fat},
	}
	for _, m := range macros {
		if m.value.IsNegative() {
			return Food{}, apperror.InvalidEntry(m.field, fmt.Sprintf("%s must not be negative, got %s", m.field, m.value))
		}
	}
	return Food{
		name:         name,
		calorie:      calorie,
		carbohydrate: carbohydrate,
		protein:      protein,
		fat:          fat,
	}, nil
}

func (f Food) Name() string                  { return f.name }
func (f Food) Calorie() decimal.Decimal      { return f.calorie }
func (f Food) Carbohydrate() decimal.Decimal { return f.carbohydrate }
func (f Food) Protein() decimal.Decimal      { return f.protein }
func (f Food) Fat() decimal.Decimal          { return f.fat }

// Scale returns a copy with every macro multiplied by n.
func (f Food) Scale(n int) Food {
	m := decimal.NewFromInt(int64(n))
	return Food{
		name:         f.name,
		calorie:      f.calorie.Mul(m),
		carbohydrate: f.carbohydrate.Mul(m),
		protein:      f.protein.Mul(m),
		fat:          f.fat.Mul(m),
	}
}

// Add returns the macro sums of f and g under the name of f.
func (f Food) Add(g Food) Food {
	return Food{
		name:         f.name,
		calorie:      f.calorie.Add(g.calorie),
		carbohydrate: f.carbohydrate.Add(g.carbohydrate),
		protein:      f.protein.Add(g.protein),
		fat:          f.fat.Add(g.fat),
	}
}

// Equal reports whether both foods have the same name and numerically equal macros.
func (f Food) Equal(g Food) bool {
	return f.name == g.name &&
		f.calorie.Equal(g.calorie) &&
		f.carbohydrate.Equal(g.carbohydrate) &&
		f.protein.Equal(g.protein) &&
		f.fat.Equal(g.fat)
}

func (f Food) String() string {
	return fmt.Sprintf("%s | calorie: %s kcal | carbohydrate: %s g | protein: %s g | fat: %s g",
		f.name, f.calorie, f.carbohydrate, f.protein, f.fat)
}
