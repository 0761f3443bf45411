package models

import "time"

type MenuItem struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Slug        string    `json:"slug" gorm:"uniqueIndex;not null"`
	Category    string    `json:"category"`
	Price       float64   `json:"price" gorm:"not null"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	IsAvailable bool      `json:"is_available" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (MenuItem) TableName() string {
	return "menu_items"
}
