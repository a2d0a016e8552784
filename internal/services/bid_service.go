package services

import (
	"skillbridge_backend/internal/models"
	"skillbridge_backend/internal/repositories"
	"skillbridge_backend/internal/services/dto"
	"skillbridge_backend/pkg/apperrors"
)

type BidService interface {
	Submit(studentID string, req *dto.CreateBidRequest) (*dto.BidResponse, error)
	Accept(bidID, requesterID string) (*dto.BidResponse, error)
	Reject(bidID, requesterID string) (*dto.BidResponse, error)
	ListByProject(projectID string) ([]*dto.BidResponse, error)
	ListMy(studentID string) ([]*dto.BidResponse, error)
}

type BidServiceImpl struct {
	bidRepo     repositories.BidRepository
	projectRepo repositories.ProjectRepository
	userRepo    repositories.UserRepository
}

func NewBidService(bidRepo repositories.BidRepository, projectRepo repositories.ProjectRepository, userRepo repositories.UserRepository) BidService {
	return &BidServiceImpl{
		bidRepo:     bidRepo,
		projectRepo: projectRepo,
		userRepo:    userRepo,
	}
}

// Submit places a bid on an open project. One bid per student per project.
func (s *BidServiceImpl) Submit(studentID string, req *dto.CreateBidRequest) (*dto.BidResponse, error) {
	project, err := s.projectRepo.FindByID(req.ProjectID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if project.Status != models.ProjectStatusOpen {
		return nil, apperrors.ErrProjectNotBiddable
	}

	bid := &models.Bid{
		ProjectID:    req.ProjectID,
		StudentID:    studentID,
		Amount:       req.Amount,
		Timeline:     req.Timeline,
		CoverMessage: req.CoverMessage,
		Status:       models.BidStatusPending,
	}
	if err := s.bidRepo.Create(bid); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicateBid) {
			return nil, apperrors.ErrDuplicateBid
		}
		return nil, apperrors.InternalError(err)
	}

	if student, err := s.userRepo.FindByID(studentID); err == nil {
		bid.Student = student
	}
	return dto.NewBidResponse(bid), nil
}

// Accept awards the project to one bid. The project becomes in-progress with
// the student assigned, every other bid is rejected, and the whole cascade
// commits or rolls back as a unit.
func (s *BidServiceImpl) Accept(bidID, requesterID string) (*dto.BidResponse, error) {
	bid, err := s.findBid(bidID)
	if err != nil {
		return nil, err
	}
	if bid.Project == nil || bid.Project.BusinessID != requesterID {
		return nil, apperrors.ErrProjectNotOwned
	}
	if bid.Status != models.BidStatusPending {
		return nil, apperrors.ErrBidNotPending
	}

	if err := s.bidRepo.AcceptCascade(bid); err != nil {
		switch {
		case apperrors.Is(err, repositories.ErrStatusConflict):
			return nil, apperrors.ErrProjectNotBiddable
		case apperrors.Is(err, repositories.ErrBidNotFound):
			return nil, apperrors.ErrBidNotFound
		default:
			return nil, apperrors.InternalError(err)
		}
	}

	bid.Status = models.BidStatusAccepted
	if bid.Project != nil {
		bid.Project.Status = models.ProjectStatusInProgress
		bid.Project.AssignedStudentID = &bid.StudentID
		bid.Project.AcceptedBidID = &bid.ID
	}
	return dto.NewBidResponse(bid), nil
}

// Reject turns down a pending bid. Allowed at any project stage so a
// business can clear out leftovers.
func (s *BidServiceImpl) Reject(bidID, requesterID string) (*dto.BidResponse, error) {
	bid, err := s.findBid(bidID)
	if err != nil {
		return nil, err
	}
	if bid.Project == nil || bid.Project.BusinessID != requesterID {
		return nil, apperrors.ErrProjectNotOwned
	}
	if bid.Status != models.BidStatusPending {
		return nil, apperrors.ErrBidNotPending
	}

	if err := s.bidRepo.UpdateStatus(bidID, models.BidStatusRejected); err != nil {
		if apperrors.Is(err, repositories.ErrBidNotFound) {
			return nil, apperrors.ErrBidNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	bid.Status = models.BidStatusRejected
	return dto.NewBidResponse(bid), nil
}

func (s *BidServiceImpl) ListByProject(projectID string) ([]*dto.BidResponse, error) {
	if _, err := s.projectRepo.FindByID(projectID); err != nil {
		if apperrors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	bids, err := s.bidRepo.ListByProject(projectID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewBidListResponse(bids), nil
}

func (s *BidServiceImpl) ListMy(studentID string) ([]*dto.BidResponse, error) {
	bids, err := s.bidRepo.ListByStudent(studentID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewBidListResponse(bids), nil
}

func (s *BidServiceImpl) findBid(bidID string) (*models.Bid, error) {
	bid, err := s.bidRepo.FindByID(bidID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrBidNotFound) {
			return nil, apperrors.ErrBidNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return bid, nil
}
