package models

type Ingredient struct {
	ID         uint   `gorm:"primaryKey;autoIncrement"`
	Name       string `gorm:"size:100;uniqueIndex;not null"`
	CategoryID uint   `gorm:"not null;index"`
	// DisplayOrder is scoped per category, assigned as max+1 on create.
	DisplayOrder int `gorm:"not null;default:0"`

	// Relations
	Category *IngredientCategory `gorm:"foreignKey:CategoryID"`
}

func (Ingredient) TableName() string {
	return "ingredients"
}
