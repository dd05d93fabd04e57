package models

import "time"

type Doctor struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"size:100;not null" json:"name"`
	Specialty string `gorm:"size:50;not null" json:"specialty"`

	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`

	// Recurring daily offer, e.g. ["09:00-10:00", "14:00-15:00"].
	AvailableTimes []string `gorm:"serializer:json;type:text" json:"availableTimes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
