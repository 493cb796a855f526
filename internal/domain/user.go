package domain

// User Model (one row per donor profile)
type User struct {
	ID           uint    `gorm:"primaryKey" json:"id"`                   // Primary key
	Username     string  `gorm:"unique;not null" json:"username"`        // Unique username
	Email        string  `gorm:"unique;not null" json:"email"`           // Unique email
	Name         string  `json:"name"`                                   // Display name
	Password     string  `gorm:"not null" json:"-"`                      // Bcrypt hash, never serialized
	Role         string  `gorm:"default:user" json:"role"`               // Role: user or admin
	TotalDonated float64 `gorm:"not null;default:0" json:"totalDonated"` // Cumulative donated amount
	LivesTouched int64   `gorm:"not null;default:0" json:"livesTouched"` // Derived impact counter
	Goal         float64 `gorm:"not null;default:0" json:"goal"`         // Personal fundraising target
	CreatedAt    int64   `gorm:"autoCreateTime:milli" json:"createdAt"`  // Timestamp of creation in milliseconds
}
