package usersrv

import (
	"context"
	"time"

	"github.com/TechnologicalJerry/job-portal-website/pkg/errx"
	"github.com/TechnologicalJerry/job-portal-website/pkg/iam/auth"
	"github.com/TechnologicalJerry/job-portal-website/pkg/kernel"
	"github.com/TechnologicalJerry/job-portal-website/portal/user"
	"github.com/google/uuid"
)

// UserService provides account and session operations
type UserService struct {
	userRepo user.Repository
	hasher   user.PasswordHasher
	tokens   auth.TokenService
}

// NewUserService creates a new instance of the user service
func NewUserService(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	tokens auth.TokenService,
) *UserService {
	return &UserService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
	}
}

// Register creates a new account
func (s *UserService) Register(ctx context.Context, req user.RegisterUserRequest) (*user.UserResponse, error) {
	if req.Password != req.PasswordConfirmation {
		return nil, user.ErrPasswordMismatch()
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, errx.Wrap(err, "failed to hash password", errx.TypeInternal)
	}

	now := time.Now()
	newUser := &user.User{
		ID:           kernel.NewUserID(uuid.NewString()),
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.Create(ctx, newUser); err != nil {
		if _, ok := err.(*errx.Error); ok {
			return nil, err
		}
		return nil, errx.Wrap(err, "failed to create user", errx.TypeInternal)
	}

	return toUserResponse(newUser), nil
}

// Login verifies credentials and issues a token pair
func (s *UserService) Login(ctx context.Context, req user.LoginRequest) (*user.SessionResponse, error) {
	account, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		// Do not reveal whether the account exists
		return nil, user.ErrInvalidCredentials()
	}

	if err := s.hasher.Compare(account.PasswordHash, req.Password); err != nil {
		return nil, user.ErrInvalidCredentials()
	}

	accessToken, err := s.tokens.GenerateAccessToken(account.ID, account.Email)
	if err != nil {
		return nil, errx.Wrap(err, "failed to issue access token", errx.TypeInternal)
	}

	refreshToken, err := s.tokens.GenerateRefreshToken(account.ID)
	if err != nil {
		return nil, errx.Wrap(err, "failed to issue refresh token", errx.TypeInternal)
	}

	return &user.SessionResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// GetUser retrieves an account by ID
func (s *UserService) GetUser(ctx context.Context, id kernel.UserID) (*user.UserResponse, error) {
	account, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toUserResponse(account), nil
}

func toUserResponse(u *user.User) *user.UserResponse {
	return &user.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: u.CreatedAt,
	}
}
