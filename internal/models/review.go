package models

type Review struct {
	BaseModel
	ProjectID  string `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_project_reviewer" json:"projectId"`
	ReviewerID string `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_project_reviewer" json:"reviewerId"`
	ReceiverID string `gorm:"type:uuid;not null;index" json:"receiverId"`
	Rating     int    `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment    string `json:"comment"`

	// Relations
	Project  *Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Reviewer *User    `gorm:"foreignKey:ReviewerID" json:"reviewer,omitempty"`
	Receiver *User    `gorm:"foreignKey:ReceiverID" json:"receiver,omitempty"`
}
