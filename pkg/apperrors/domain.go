package apperrors

import "net/http"

// Predeclared errors for the marketplace domain. Services return these;
// handlers pass them through unchanged.
var (
	// Auth
	ErrInvalidCredentials = New(CodeInvalidCredentials, "auth", "Invalid email or password", http.StatusUnauthorized)
	ErrUnauthorized       = New(CodeUnauthorized, "auth", "Authentication required", http.StatusUnauthorized)
	ErrInvalidToken       = New(CodeInvalidToken, "auth", "Invalid or expired token", http.StatusUnauthorized)
	ErrForbidden          = New(CodeForbidden, "auth", "Access denied", http.StatusForbidden)

	// Users
	ErrUserNotFound       = New(CodeNotFound, "user", "User not found", http.StatusNotFound)
	ErrEmailAlreadyExists = New(CodeConflict, "user", "User already exists with this email", http.StatusBadRequest)
	ErrWeakPassword       = New(CodeWeakPassword, "user", "Password must be at least 6 characters", http.StatusBadRequest)
	ErrInvalidUserRole    = New(CodeInvalidUserRole, "user", "Role must be student or business", http.StatusBadRequest)
	ErrInvalidVerifyToken = New(CodeInvalidToken, "user", "Invalid or expired verification token", http.StatusBadRequest)

	// Projects
	ErrProjectNotFound   = New(CodeNotFound, "project", "Project not found", http.StatusNotFound)
	ErrProjectNotOwned   = New(CodeForbidden, "project", "Not authorized", http.StatusForbidden)
	ErrProjectNotOpen    = New(CodeInvalidStatus, "project", "Project is not open", http.StatusBadRequest)
	ErrProjectNotStarted = New(CodeInvalidStatus, "project", "Project is not in progress", http.StatusBadRequest)
	ErrNotParticipant    = New(CodeForbidden, "project", "You are not part of this project", http.StatusForbidden)
	ErrBudgetRange       = New(CodeValidationFailed, "project", "Minimum budget cannot exceed maximum budget", http.StatusBadRequest)
	ErrDeleteNotOpen     = New(CodeConflict, "project", "Can only delete open projects", http.StatusBadRequest)

	// Bids
	ErrBidNotFound        = New(CodeNotFound, "bid", "Bid not found", http.StatusNotFound)
	ErrDuplicateBid       = New(CodeConflict, "bid", "You have already bid on this project", http.StatusBadRequest)
	ErrProjectNotBiddable = New(CodeInvalidStatus, "bid", "Project is not accepting bids", http.StatusBadRequest)
	ErrBidNotPending      = New(CodeInvalidStatus, "bid", "Bid has already been decided", http.StatusBadRequest)

	// Reviews
	ErrProjectNotCompleted = New(CodeInvalidStatus, "review", "Can only review completed projects", http.StatusBadRequest)
	ErrSelfReview          = New(CodeInvalidOperation, "review", "Cannot review yourself", http.StatusBadRequest)
	ErrDuplicateReview     = New(CodeConflict, "review", "You already reviewed this project", http.StatusBadRequest)
	ErrReceiverNotInvolved = New(CodeInvalidOperation, "review", "Receiver is not part of this project", http.StatusBadRequest)
)
