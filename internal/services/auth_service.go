package services

import (
	"crypto/rand"
	"encoding/hex"

	"skillbridge_backend/internal/auth"
	"skillbridge_backend/internal/email"
	"skillbridge_backend/internal/logger"
	"skillbridge_backend/internal/models"
	"skillbridge_backend/internal/repositories"
	"skillbridge_backend/internal/services/dto"
	"skillbridge_backend/pkg/apperrors"
)

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(req *dto.LoginRequest) (*dto.AuthResponse, error)
	VerifyEmail(token string) error
}

type AuthServiceImpl struct {
	userRepo    repositories.UserRepository
	emailSender email.Sender
}

func NewAuthService(userRepo repositories.UserRepository, emailSender email.Sender) AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		emailSender: emailSender,
	}
}

func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}
	if !req.Role.Valid() {
		return nil, apperrors.ErrInvalidUserRole
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	verificationToken, err := generateRandomToken()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:              req.Name,
		Email:             req.Email,
		PasswordHash:      hashedPassword,
		Role:              req.Role,
		IsVerified:        false,
		VerificationToken: verificationToken,
	}
	switch req.Role {
	case models.UserRoleStudent:
		user.University = req.University
		user.Skills = models.StringList(req.Skills)
	case models.UserRoleBusiness:
		user.BusinessName = req.BusinessName
		user.Industry = req.Industry
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	// Verification mail is best-effort; registration never waits on SMTP.
	go func(to, name, token string) {
		if err := s.emailSender.SendVerification(to, name, token); err != nil {
			logger.Warn("failed to send verification email", "email", to, "error", err.Error())
		}
	}(user.Email, user.Name, verificationToken)

	accessToken, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		Token:   accessToken,
		User:    dto.NewUserResponse(user),
		Message: "Registration successful. Please check your email for verification.",
	}, nil
}

func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	accessToken, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		Token: accessToken,
		User:  dto.NewUserResponse(user),
	}, nil
}

// VerifyEmail consumes a one-time verification token.
func (s *AuthServiceImpl) VerifyEmail(token string) error {
	user, err := s.userRepo.FindByVerificationToken(token)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrInvalidVerifyToken
		}
		return apperrors.InternalError(err)
	}

	if err := s.userRepo.VerifyUser(user.ID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func generateRandomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
