package models

import "time"

type Project struct {
	BaseModel
	BusinessID        string        `gorm:"type:uuid;not null;index" json:"businessId"`
	Title             string        `gorm:"not null" json:"title"`
	Description       string        `gorm:"not null" json:"description"`
	RequiredSkills    StringList    `gorm:"type:text" json:"requiredSkills"`
	BudgetMin         float64       `gorm:"not null" json:"budgetMin"`
	BudgetMax         float64       `gorm:"not null" json:"budgetMax"`
	Deadline          time.Time     `gorm:"not null" json:"deadline"`
	Status            ProjectStatus `gorm:"type:varchar(20);default:'open';index" json:"status"`
	AssignedStudentID *string       `gorm:"type:uuid" json:"assignedStudentId"`
	AcceptedBidID     *string       `gorm:"type:uuid" json:"acceptedBidId"`

	// Relations
	Business        *User `gorm:"foreignKey:BusinessID" json:"business,omitempty"`
	AssignedStudent *User `gorm:"foreignKey:AssignedStudentID" json:"assignedStudent,omitempty"`
}
