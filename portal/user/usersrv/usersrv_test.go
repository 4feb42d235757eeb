package usersrv

import (
	"context"
	"testing"

	"github.com/TechnologicalJerry/job-portal-website/pkg/errx"
	"github.com/TechnologicalJerry/job-portal-website/pkg/iam/auth"
	"github.com/TechnologicalJerry/job-portal-website/pkg/kernel"
	"github.com/TechnologicalJerry/job-portal-website/portal/user"
)

type fakeUserRepo struct {
	users map[kernel.UserID]*user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[kernel.UserID]*user.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, u *user.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return user.ErrEmailTaken()
		}
	}
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id kernel.UserID) (*user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, user.ErrUserNotFound()
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*user.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, user.ErrUserNotFound()
}

func (r *fakeUserRepo) Exists(_ context.Context, id kernel.UserID) (bool, error) {
	_, ok := r.users[id]
	return ok, nil
}

// fakeHasher marks hashes with a prefix instead of doing real key stretching.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return user.ErrInvalidCredentials()
	}
	return nil
}

type fakeTokens struct{}

func (fakeTokens) GenerateAccessToken(userID kernel.UserID, email string) (string, error) {
	return "access:" + userID.String(), nil
}

func (fakeTokens) GenerateRefreshToken(userID kernel.UserID) (string, error) {
	return "refresh:" + userID.String(), nil
}

func (fakeTokens) ValidateAccessToken(token string) (*auth.TokenClaims, error) {
	return nil, auth.ErrInvalidToken()
}

func newService() (*UserService, *fakeUserRepo) {
	repo := newFakeUserRepo()
	return NewUserService(repo, fakeHasher{}, fakeTokens{}), repo
}

func registerRequest() user.RegisterUserRequest {
	return user.RegisterUserRequest{
		Email:                "jane@acme.test",
		FirstName:            "Jane",
		LastName:             "Doe",
		Password:             "s3cret",
		PasswordConfirmation: "s3cret",
	}
}

func TestRegisterStoresHashedPassword(t *testing.T) {
	s, repo := newService()

	resp, err := s.Register(context.Background(), registerRequest())
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if resp.ID.IsEmpty() {
		t.Error("registered account should get an identifier")
	}

	stored := repo.users[resp.ID]
	if stored == nil {
		t.Fatal("account not persisted")
	}
	if stored.PasswordHash == "s3cret" {
		t.Error("password must not be stored in clear")
	}
	if stored.PasswordHash != "hashed:s3cret" {
		t.Errorf("password hash = %q", stored.PasswordHash)
	}
}

func TestRegisterPasswordMismatch(t *testing.T) {
	s, repo := newService()

	req := registerRequest()
	req.PasswordConfirmation = "other"

	_, err := s.Register(context.Background(), req)
	if !errx.IsType(err, errx.TypeValidation) {
		t.Fatalf("expected validation failure, got %v", err)
	}
	if len(repo.users) != 0 {
		t.Error("rejected registration must not persist an account")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	s, _ := newService()

	if _, err := s.Register(context.Background(), registerRequest()); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, err := s.Register(context.Background(), registerRequest())
	if !errx.IsType(err, errx.TypeConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	s, _ := newService()
	if _, err := s.Register(context.Background(), registerRequest()); err != nil {
		t.Fatalf("Register: %v", err)
	}

	session, err := s.Login(context.Background(), user.LoginRequest{
		Email:    "jane@acme.test",
		Password: "s3cret",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if session.AccessToken == "" || session.RefreshToken == "" {
		t.Errorf("session = %+v, want both tokens", session)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	s, _ := newService()
	if _, err := s.Register(context.Background(), registerRequest()); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, err := s.Login(context.Background(), user.LoginRequest{
		Email:    "jane@acme.test",
		Password: "wrong",
	})
	if !errx.IsType(err, errx.TypeAuthentication) {
		t.Fatalf("expected authentication failure, got %v", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	s, _ := newService()

	_, err := s.Login(context.Background(), user.LoginRequest{
		Email:    "nobody@acme.test",
		Password: "s3cret",
	})
	// Same failure as a wrong password, so callers cannot probe for accounts.
	if !errx.IsType(err, errx.TypeAuthentication) {
		t.Fatalf("expected authentication failure, got %v", err)
	}
}
