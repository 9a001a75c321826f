package models

// DishGenre is fixed master data, seeded once at startup.
type DishGenre struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:50;uniqueIndex;not null"`
}

func (DishGenre) TableName() string {
	return "dish_genres"
}
