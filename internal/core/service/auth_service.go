package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/sportsmeet/sportsmeet-api/internal/core/domain"
	"github.com/sportsmeet/sportsmeet-api/internal/core/ports"
)

// AuthService implements registration, login, logout and profile updates.
type AuthService struct {
	repo      ports.AuthRepository
	revoker   ports.TokenRevoker
	recorder  ports.ActivityRecorder
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(repo ports.AuthRepository, revoker ports.TokenRevoker, recorder ports.ActivityRecorder, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		repo:      repo,
		revoker:   revoker,
		recorder:  recorder,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (string, *domain.User, error) {
	if input.Username == "" || input.Password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:      input.Username,
		Email:         input.Email,
		DisplayName:   input.DisplayName,
		FavoriteSport: input.FavoriteSport,
		PasswordHash:  string(hash),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return "", nil, err
	}

	token, err := s.generateToken(created)
	if err != nil {
		return "", nil, err
	}

	s.record(ctx, created, domain.ActivityRegister)
	return token, created, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	s.record(ctx, user, domain.ActivityLogin)
	return token, user, nil
}

// Logout invalidates the presented token for the remainder of its lifetime.
// Tokens that are already expired or unparsable have nothing to revoke, so
// they are treated as a successful no-op; logout is idempotent.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !parsed.Valid {
		return nil
	}

	jti, _ := claims["jti"].(string)
	exp, expErr := claims.GetExpirationTime()
	if jti == "" || expErr != nil || exp == nil {
		return nil
	}

	if ttl := time.Until(exp.Time); ttl > 0 {
		if err := s.revoker.Revoke(ctx, jti, ttl); err != nil {
			return err
		}
	}

	sub, _ := claims["sub"].(string)
	username, _ := claims["username"].(string)
	s.record(ctx, &domain.User{ID: sub, Username: username}, domain.ActivityLogout)
	return nil
}

func (s *AuthService) UpdateProfile(ctx context.Context, userID string, update domain.ProfileUpdate) (*domain.User, error) {
	user, err := s.repo.UpdateProfile(ctx, userID, update)
	if err != nil {
		return nil, err
	}

	s.record(ctx, user, domain.ActivityProfileUpdate)
	return user, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"jti":      uuid.NewString(),
		"iat":      now.Unix(),
		"exp":      now.Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

func (s *AuthService) record(ctx context.Context, user *domain.User, kind domain.ActivityKind) {
	if s.recorder == nil {
		return
	}
	s.recorder.Record(ctx, domain.Activity{
		UserID:   user.ID,
		Username: user.Username,
		Kind:     kind,
		At:       time.Now().UTC(),
	})
}
