package dto

import (
	"time"

	"skillbridge_backend/internal/models"
)

type CreateBidRequest struct {
	ProjectID    string  `json:"project" validate:"required,uuid"`
	Amount       float64 `json:"amount" validate:"required,gt=0"`
	Timeline     string  `json:"timeline" validate:"required"`
	CoverMessage string  `json:"coverMessage" validate:"required"`
}

type BidResponse struct {
	ID           string           `json:"id"`
	ProjectID    string           `json:"projectId"`
	StudentID    string           `json:"studentId"`
	Amount       float64          `json:"amount"`
	Timeline     string           `json:"timeline"`
	CoverMessage string           `json:"coverMessage"`
	Status       models.BidStatus `json:"status"`
	Student      *UserSummary     `json:"student,omitempty"`
	Project      *ProjectResponse `json:"project,omitempty"`
	CreatedAt    time.Time        `json:"createdAt"`
}

func NewBidResponse(bid *models.Bid) *BidResponse {
	resp := &BidResponse{
		ID:           bid.ID,
		ProjectID:    bid.ProjectID,
		StudentID:    bid.StudentID,
		Amount:       bid.Amount,
		Timeline:     bid.Timeline,
		CoverMessage: bid.CoverMessage,
		Status:       bid.Status,
		Student:      NewUserSummary(bid.Student),
		CreatedAt:    bid.CreatedAt,
	}
	if bid.Project != nil {
		resp.Project = NewProjectResponse(bid.Project)
	}
	return resp
}

func NewBidListResponse(bids []models.Bid) []*BidResponse {
	out := make([]*BidResponse, 0, len(bids))
	for i := range bids {
		out = append(out, NewBidResponse(&bids[i]))
	}
	return out
}
