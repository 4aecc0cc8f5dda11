package db_models

// Category groups store products.
type Category struct {
	BaseModel
	Name     string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Products []Product `gorm:"foreignKey:CategoryID" json:"-"`
}
