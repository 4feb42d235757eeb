package auth

import (
	"net/http"
	"time"

	"github.com/TechnologicalJerry/job-portal-website/pkg/errx"
	"github.com/TechnologicalJerry/job-portal-website/pkg/kernel"
	"github.com/golang-jwt/jwt/v5"
)

var ErrRegistry = errx.NewRegistry("AUTH")

var (
	CodeInvalidToken = ErrRegistry.Register("INVALID_TOKEN", errx.TypeAuthentication, http.StatusUnauthorized, "Invalid or expired token")
	CodeMissingToken = ErrRegistry.Register("MISSING_TOKEN", errx.TypeAuthentication, http.StatusUnauthorized, "Missing authorization header")
)

func ErrInvalidToken() *errx.Error { return ErrRegistry.New(CodeInvalidToken) }
func ErrMissingToken() *errx.Error { return ErrRegistry.New(CodeMissingToken) }

// TokenClaims is the validated content of an access token.
type TokenClaims struct {
	UserID    kernel.UserID
	Email     string
	ExpiresAt time.Time
}

// TokenService issues and validates bearer tokens for authenticated users.
type TokenService interface {
	GenerateAccessToken(userID kernel.UserID, email string) (string, error)
	GenerateRefreshToken(userID kernel.UserID) (string, error)
	ValidateAccessToken(token string) (*TokenClaims, error)
}

type jwtClaims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// JWTService implements TokenService using HMAC-signed JWTs.
type JWTService struct {
	secretKey       []byte
	accessTokenTTL  time.Duration
	refreshTokenTTL time.Duration
	issuer          string
}

// NewJWTService creates a JWT-backed token service.
func NewJWTService(secretKey string, accessTokenTTL, refreshTokenTTL time.Duration, issuer string) *JWTService {
	return &JWTService{
		secretKey:       []byte(secretKey),
		accessTokenTTL:  accessTokenTTL,
		refreshTokenTTL: refreshTokenTTL,
		issuer:          issuer,
	}
}

func (s *JWTService) GenerateAccessToken(userID kernel.UserID, email string) (string, error) {
	return s.sign(userID, email, s.accessTokenTTL)
}

func (s *JWTService) GenerateRefreshToken(userID kernel.UserID) (string, error) {
	return s.sign(userID, "", s.refreshTokenTTL)
}

func (s *JWTService) sign(userID kernel.UserID, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwtClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", errx.Wrap(err, "failed to sign token", errx.TypeInternal)
	}
	return signed, nil
}

func (s *JWTService) ValidateAccessToken(tokenString string) (*TokenClaims, error) {
	var claims jwtClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secretKey, nil
	}, jwt.WithIssuer(s.issuer), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken()
	}

	var expiresAt time.Time
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	return &TokenClaims{
		UserID:    kernel.UserID(claims.Subject),
		Email:     claims.Email,
		ExpiresAt: expiresAt,
	}, nil
}
