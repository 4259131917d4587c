package models

import "time"

type Category struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Name        string     `json:"name" gorm:"uniqueIndex;not null"`
	Description string     `json:"description"`
	Active      bool       `json:"active" gorm:"default:true"`
	MenuItems   []MenuItem `json:"menu_items,omitempty" gorm:"foreignKey:CategoryID"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type MenuItem struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	CategoryID  uint      `json:"category_id" gorm:"not null"`
	Category    *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description"`
	Price       float64   `json:"price" gorm:"not null"`
	Available   bool      `json:"available" gorm:"default:true"`
	Vegetarian  bool      `json:"vegetarian" gorm:"default:false"`
	SpiceLevel  int       `json:"spice_level" gorm:"default:0"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// KitchenPreparationTime holds the expected prep time for a single menu item.
// Orders fall back to DefaultKptMinutes when no record exists.
type KitchenPreparationTime struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	MenuItemID       uint      `json:"menu_item_id" gorm:"uniqueIndex;not null"`
	MenuItem         *MenuItem `json:"menu_item,omitempty" gorm:"foreignKey:MenuItemID"`
	EstimatedMinutes int       `json:"estimated_minutes" gorm:"not null;default:15"`
	MinMinutes       int       `json:"min_minutes" gorm:"not null;default:1"`
	MaxMinutes       int       `json:"max_minutes" gorm:"not null;default:30"`
	SetByID          *uint     `json:"set_by_id"`
	SetBy            *User     `json:"set_by,omitempty" gorm:"foreignKey:SetByID"`
	LastUpdated      time.Time `json:"last_updated"`
}
