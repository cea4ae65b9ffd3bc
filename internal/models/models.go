package models

// User is keyed by email: the API never exposes a separate id, so the
// address doubles as the primary key.
type User struct {
	Email        string `gorm:"primaryKey"    json:"email"`
	Name         string `gorm:"not null"      json:"name"`
	PasswordHash string `gorm:"not null"      json:"-"`
	IsAdmin      bool   `gorm:"default:false" json:"isAdmin"`
}

type Product struct {
	ID    string  `gorm:"primaryKey" json:"id"`
	Name  string  `gorm:"not null"   json:"name"`
	Price float64 `gorm:"not null"   json:"price"`
}
