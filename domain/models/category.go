package models

// IngredientCategory is fixed master data. Rows are seeded once at startup
// and never created or edited through the API.
type IngredientCategory struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"size:50;uniqueIndex;not null"`
	DisplayOrder int    `gorm:"not null;default:0"`

	// Relations
	Ingredients []Ingredient `gorm:"foreignKey:CategoryID"`
}

func (IngredientCategory) TableName() string {
	return "ingredient_categories"
}
