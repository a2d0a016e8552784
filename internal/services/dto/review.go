package dto

import (
	"time"

	"skillbridge_backend/internal/models"
)

type CreateReviewRequest struct {
	ProjectID  string `json:"project" validate:"required,uuid"`
	ReceiverID string `json:"receiver" validate:"required,uuid"`
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	Comment    string `json:"comment,omitempty"`
}

type ReviewResponse struct {
	ID         string       `json:"id"`
	ProjectID  string       `json:"projectId"`
	ReviewerID string       `json:"reviewerId"`
	ReceiverID string       `json:"receiverId"`
	Rating     int          `json:"rating"`
	Comment    string       `json:"comment"`
	Reviewer   *UserSummary `json:"reviewer,omitempty"`
	Receiver   *UserSummary `json:"receiver,omitempty"`
	// ProjectTitle is populated on per-user listings so the front end can
	// label each review without a second lookup.
	ProjectTitle string    `json:"projectTitle,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

func NewReviewResponse(review *models.Review) *ReviewResponse {
	resp := &ReviewResponse{
		ID:         review.ID,
		ProjectID:  review.ProjectID,
		ReviewerID: review.ReviewerID,
		ReceiverID: review.ReceiverID,
		Rating:     review.Rating,
		Comment:    review.Comment,
		Reviewer:   NewUserSummary(review.Reviewer),
		Receiver:   NewUserSummary(review.Receiver),
		CreatedAt:  review.CreatedAt,
	}
	if review.Project != nil {
		resp.ProjectTitle = review.Project.Title
	}
	return resp
}

func NewReviewListResponse(reviews []models.Review) []*ReviewResponse {
	out := make([]*ReviewResponse, 0, len(reviews))
	for i := range reviews {
		out = append(out, NewReviewResponse(&reviews[i]))
	}
	return out
}
