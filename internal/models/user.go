package models

type User struct {
	BaseModel
	Name              string   `gorm:"not null" json:"name"`
	Email             string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash      string   `gorm:"not null" json:"-"`
	Role              UserRole `gorm:"type:varchar(20);not null" json:"role"`
	IsVerified        bool     `gorm:"default:false" json:"isVerified"`
	VerificationToken string   `json:"-"`

	// Student fields
	University string     `json:"university,omitempty"`
	Skills     StringList `gorm:"type:text" json:"skills,omitempty"`
	Bio        string     `json:"bio,omitempty"`

	// Business fields
	BusinessName string `json:"businessName,omitempty"`
	Industry     string `json:"industry,omitempty"`
	Website      string `json:"website,omitempty"`

	// Rating aggregate, maintained transactionally by the review repository.
	AverageRating float64 `gorm:"default:0" json:"averageRating"`
	TotalReviews  int64   `gorm:"default:0" json:"totalReviews"`
}
