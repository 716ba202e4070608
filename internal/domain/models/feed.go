package models

import "time"

// FeedInput is a raw feed ingredient tracked in inventory (milho, farelo de
// soja, núcleo...), with its current stock level and unit cost.
type FeedInput struct {
	ID            string    `bson:"_id" json:"id"`
	Name          string    `bson:"name" json:"name"`
	SupplierID    string    `bson:"supplier_id,omitempty" json:"supplier_id,omitempty"`
	StockKg       float64   `bson:"stock_kg" json:"stock_kg"`
	UnitCostPerKg float64   `bson:"unit_cost_per_kg" json:"unit_cost_per_kg"`
	MinStockKg    float64   `bson:"min_stock_kg" json:"min_stock_kg"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
}

// Validate checks input invariants.
func (f FeedInput) Validate() error {
	if f.Name == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if f.StockKg < 0 {
		return &ValidationError{Field: "stock_kg", Reason: "must not be negative"}
	}
	if f.UnitCostPerKg < 0 {
		return &ValidationError{Field: "unit_cost_per_kg", Reason: "must not be negative"}
	}
	if f.MinStockKg < 0 {
		return &ValidationError{Field: "min_stock_kg", Reason: "must not be negative"}
	}
	return nil
}

// LowStock reports whether the input fell below its reorder threshold.
func (f FeedInput) LowStock() bool {
	return f.MinStockKg > 0 && f.StockKg < f.MinStockKg
}

// FormulaIngredient is one component of a feed formula, as a percentage of
// the final mix by weight.
type FormulaIngredient struct {
	FeedInputID string  `bson:"feed_input_id" json:"feed_input_id"`
	Percent     float64 `bson:"percent" json:"percent"`
}

// FeedFormula is a named feed mix targeted at a production phase. Ingredient
// percentages must total 100.
type FeedFormula struct {
	ID          string              `bson:"_id" json:"id"`
	Name        string              `bson:"name" json:"name"`
	TargetPhase string              `bson:"target_phase" json:"target_phase"`
	Ingredients []FormulaIngredient `bson:"ingredients" json:"ingredients"`
	CreatedAt   time.Time           `bson:"created_at" json:"created_at"`
}

// Validate checks formula invariants. Percentages are compared with a small
// epsilon to tolerate fractional splits.
func (f FeedFormula) Validate() error {
	if f.Name == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if len(f.Ingredients) == 0 {
		return &ValidationError{Field: "ingredients", Reason: "at least one ingredient is required"}
	}
	total := 0.0
	for _, ing := range f.Ingredients {
		if ing.FeedInputID == "" {
			return &ValidationError{Field: "ingredients", Reason: "ingredient is missing its feed input"}
		}
		if ing.Percent <= 0 {
			return &ValidationError{Field: "ingredients", Reason: "ingredient percent must be positive"}
		}
		total += ing.Percent
	}
	if total < 99.99 || total > 100.01 {
		return &ValidationError{Field: "ingredients", Reason: "percentages must total 100"}
	}
	return nil
}
