package models

type Bid struct {
	BaseModel
	ProjectID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_bids_project_student" json:"projectId"`
	StudentID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_bids_project_student" json:"studentId"`
	Amount       float64   `gorm:"not null" json:"amount"`
	Timeline     string    `gorm:"not null" json:"timeline"`
	CoverMessage string    `gorm:"not null" json:"coverMessage"`
	Status       BidStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`

	// Relations
	Project *Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Student *User    `gorm:"foreignKey:StudentID" json:"student,omitempty"`
}
