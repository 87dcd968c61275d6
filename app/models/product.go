package models

import "gorm.io/gorm"

// Product is a catalogue entry.
type Product struct {
	gorm.Model
	Name        string  `gorm:"size:255;not null;index"  json:"name"`
	Description string  `gorm:"type:text"                json:"description"`
	Price       float64 `gorm:"not null;default:0"       json:"price"`
	Category    string  `gorm:"size:100;not null;index"  json:"category"`
	Stock       int     `gorm:"not null;default:0"       json:"stock"`
	Rating      float64 `gorm:"not null;default:0"       json:"rating"`
	Image       string  `gorm:"size:512"                 json:"image"`
}

// InStock reports whether the product can currently be added to a cart.
func (p Product) InStock() bool { return p.Stock > 0 }

// Category is a named product grouping shown in the catalogue filter.
type Category struct {
	gorm.Model
	Slug string `gorm:"uniqueIndex;size:100;not null" json:"slug"`
	Name string `gorm:"size:255;not null"             json:"name"`
}
