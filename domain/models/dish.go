package models

import "time"

type Dish struct {
	ID         uint   `gorm:"primaryKey;autoIncrement"`
	Name       string `gorm:"size:100;not null"`
	Difficulty int    `gorm:"not null;default:1;check:difficulty >= 1 AND difficulty <= 5"`
	Memo       string `gorm:"size:500"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Membership sets. Unordered, no duplicate edges. The join FKs are
	// spelled out so GORM targets the explicit relation models below.
	Genres      []DishGenre  `gorm:"many2many:dish_genre_relations;joinForeignKey:DishID;joinReferences:GenreID"`
	Ingredients []Ingredient `gorm:"many2many:dish_ingredient_relations;joinForeignKey:DishID;joinReferences:IngredientID"`
}

func (Dish) TableName() string {
	return "dishes"
}

func (d *Dish) GenreIDs() []uint {
	ids := make([]uint, len(d.Genres))
	for i, g := range d.Genres {
		ids[i] = g.ID
	}
	return ids
}

func (d *Dish) IngredientIDs() []uint {
	ids := make([]uint, len(d.Ingredients))
	for i, ing := range d.Ingredients {
		ids[i] = ing.ID
	}
	return ids
}

// DishGenreRelation is the explicit join model for dish <-> genre membership.
type DishGenreRelation struct {
	DishID  uint `gorm:"primaryKey"`
	GenreID uint `gorm:"primaryKey"`
}

func (DishGenreRelation) TableName() string {
	return "dish_genre_relations"
}

// DishIngredientRelation is the explicit join model for dish <-> ingredient
// membership. Rows are removed in the same transaction that deletes either
// endpoint.
type DishIngredientRelation struct {
	DishID       uint `gorm:"primaryKey"`
	IngredientID uint `gorm:"primaryKey"`
}

func (DishIngredientRelation) TableName() string {
	return "dish_ingredient_relations"
}
