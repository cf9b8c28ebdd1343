package model

import "gorm.io/gorm"

// Beer is unique on (Name, Type).
type Beer struct {
	gorm.Model
	Name           string `gorm:"not null;uniqueIndex:idx_beer_name_type"`
	Type           string `gorm:"not null;uniqueIndex:idx_beer_name_type"`
	Brewery        string
	Description    string
	ABV            *float64
	Volume         *float64
	ExternalID     *uint64
	ExternalSource *string
}
