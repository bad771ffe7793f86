package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/sportsmeet/sportsmeet-api/internal/core/domain"
	"github.com/sportsmeet/sportsmeet-api/internal/core/ports"
)

type stubAuthRepo struct {
	users map[string]*domain.User
}

func newStubAuthRepo() *stubAuthRepo {
	return &stubAuthRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubAuthRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUserExists
	}
	copy := cloneUser(user)
	copy.ID = user.Username // deterministic for assertions
	r.users[copy.Username] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubAuthRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubAuthRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubAuthRepo) UpdateProfile(_ context.Context, id string, update domain.ProfileUpdate) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID != id {
			continue
		}
		if update.Email != nil {
			u.Email = *update.Email
		}
		if update.DisplayName != nil {
			u.DisplayName = *update.DisplayName
		}
		if update.FavoriteSport != nil {
			u.FavoriteSport = *update.FavoriteSport
		}
		u.UpdatedAt = time.Now().UTC()
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

type stubRevoker struct {
	revoked map[string]time.Duration
}

func (s *stubRevoker) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	if s.revoked == nil {
		s.revoked = map[string]time.Duration{}
	}
	s.revoked[jti] = ttl
	return nil
}

func (s *stubRevoker) IsRevoked(_ context.Context, jti string) (bool, error) {
	_, ok := s.revoked[jti]
	return ok, nil
}

type stubRecorder struct {
	records []domain.Activity
}

func (s *stubRecorder) Record(_ context.Context, a domain.Activity) {
	s.records = append(s.records, a)
}

func newTestAuthService() (*AuthService, *stubAuthRepo, *stubRevoker, *stubRecorder) {
	repo := newStubAuthRepo()
	revoker := &stubRevoker{}
	recorder := &stubRecorder{}
	return NewAuthService(repo, revoker, recorder, "secret", time.Hour), repo, revoker, recorder
}

func parseClaims(t *testing.T, token string) jwt.MapClaims {
	t.Helper()
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	return claims
}

func TestAuthService_Register_Success(t *testing.T) {
	svc, _, _, recorder := newTestAuthService()

	token, user, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "alice", Password: "secret1", Email: "alice@example.com",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user == nil || token == "" {
		t.Fatalf("expected token and user")
	}
	if user.PasswordHash == "secret1" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret1")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}

	claims := parseClaims(t, token)
	if claims["sub"] != user.ID || claims["username"] != "alice" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if jti, _ := claims["jti"].(string); jti == "" {
		t.Fatalf("expected jti claim")
	}

	if len(recorder.records) != 1 || recorder.records[0].Kind != domain.ActivityRegister {
		t.Fatalf("expected register activity, got %+v", recorder.records)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc, _, _, _ := newTestAuthService()

	if _, _, err := svc.Register(context.Background(), ports.RegisterInput{Username: "", Password: "pass"}); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Register(context.Background(), ports.RegisterInput{Username: "bob", Password: ""}); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc, _, _, _ := newTestAuthService()

	_, _, _ = svc.Register(context.Background(), ports.RegisterInput{Username: "bob", Password: "pass123"})
	if _, _, err := svc.Register(context.Background(), ports.RegisterInput{Username: "bob", Password: "other12"}); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, _, _, recorder := newTestAuthService()

	if _, _, err := svc.Register(context.Background(), ports.RegisterInput{Username: "carol", Password: "s3cret"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" || user == nil || user.Username != "carol" {
		t.Fatalf("unexpected result: token=%q user=%+v", token, user)
	}

	claims := parseClaims(t, token)
	if claims["username"] != "carol" {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	if got := recorder.records[len(recorder.records)-1].Kind; got != domain.ActivityLogin {
		t.Fatalf("expected login activity, got %s", got)
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	svc, _, _, _ := newTestAuthService()

	_, _, _ = svc.Register(context.Background(), ports.RegisterInput{Username: "dave", Password: "goodpass"})
	if _, _, err := svc.Login(context.Background(), "dave", "badpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	svc, _, _, _ := newTestAuthService()

	if _, _, err := svc.Login(context.Background(), "ghost", "pass"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_Logout_RevokesToken(t *testing.T) {
	svc, _, revoker, _ := newTestAuthService()

	token, _, err := svc.Register(context.Background(), ports.RegisterInput{Username: "erin", Password: "pass123"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if err := svc.Logout(context.Background(), token); err != nil {
		t.Fatalf("logout failed: %v", err)
	}

	jti, _ := parseClaims(t, token)["jti"].(string)
	ttl, ok := revoker.revoked[jti]
	if !ok {
		t.Fatalf("expected jti %q revoked", jti)
	}
	if ttl <= 0 || ttl > time.Hour {
		t.Fatalf("unexpected revocation ttl: %v", ttl)
	}
}

func TestAuthService_Logout_GarbageTokenIsNoop(t *testing.T) {
	svc, _, revoker, _ := newTestAuthService()

	if err := svc.Logout(context.Background(), "not-a-token"); err != nil {
		t.Fatalf("expected idempotent logout, got %v", err)
	}
	if len(revoker.revoked) != 0 {
		t.Fatalf("expected nothing revoked")
	}
}

func TestAuthService_UpdateProfile(t *testing.T) {
	svc, _, _, recorder := newTestAuthService()

	_, user, err := svc.Register(context.Background(), ports.RegisterInput{Username: "frank", Password: "pass123"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	displayName := "Frank Q"
	updated, err := svc.UpdateProfile(context.Background(), user.ID, domain.ProfileUpdate{DisplayName: &displayName})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.DisplayName != "Frank Q" {
		t.Fatalf("unexpected profile: %+v", updated)
	}

	if got := recorder.records[len(recorder.records)-1].Kind; got != domain.ActivityProfileUpdate {
		t.Fatalf("expected profile_update activity, got %s", got)
	}
}
