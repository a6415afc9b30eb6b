package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

// fakeTokenRepo is an in-memory persistence.TokenRepository for token tests.
type fakeTokenRepo struct {
	saved       map[string]uuid.UUID
	invalidated map[string]bool
	revokedAll  []uuid.UUID
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{
		saved:       make(map[string]uuid.UUID),
		invalidated: make(map[string]bool),
	}
}

func (r *fakeTokenRepo) SaveRefreshToken(_ context.Context, token string, userID uuid.UUID, _ time.Time) error {
	r.saved[token] = userID
	return nil
}

func (r *fakeTokenRepo) IsRefreshTokenValid(_ context.Context, token string) (bool, error) {
	_, exists := r.saved[token]
	return exists && !r.invalidated[token], nil
}

func (r *fakeTokenRepo) InvalidateRefreshToken(_ context.Context, token string) error {
	r.invalidated[token] = true
	return nil
}

func (r *fakeTokenRepo) InvalidateAllUserRefreshTokens(_ context.Context, userID uuid.UUID) error {
	r.revokedAll = append(r.revokedAll, userID)
	for token, owner := range r.saved {
		if owner == userID {
			r.invalidated[token] = true
		}
	}
	return nil
}

const testSecret = "test-jwt-secret-key-for-testing-purposes"

func TestTokenService_RoundTrip(t *testing.T) {
	repo := newFakeTokenRepo()
	service := NewTokenService(testSecret, 15*time.Minute, 7*24*time.Hour, repo)
	userID := uuid.New()
	ctx := context.Background()

	pair, err := service.GenerateTokenPair(ctx, userID, false)
	if err != nil {
		t.Fatalf("GenerateTokenPair() error = %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("expected non-empty token pair")
	}
	if _, stored := repo.saved[pair.RefreshToken]; !stored {
		t.Error("refresh token was not persisted")
	}

	claims, err := service.ValidateAccessToken(ctx, pair.AccessToken)
	if err != nil {
		t.Fatalf("ValidateAccessToken() error = %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("access claims UserID = %v, want %v", claims.UserID, userID)
	}
	if claims.Remember {
		t.Error("access claims Remember = true, want false")
	}
	if !claims.ExpiresAt.After(time.Now().UTC()) {
		t.Error("access token already expired")
	}

	refreshClaims, err := service.ValidateRefreshToken(ctx, pair.RefreshToken)
	if err != nil {
		t.Fatalf("ValidateRefreshToken() error = %v", err)
	}
	if refreshClaims.UserID != userID {
		t.Errorf("refresh claims UserID = %v, want %v", refreshClaims.UserID, userID)
	}

	valid, err := service.IsRefreshTokenValid(ctx, pair.RefreshToken)
	if err != nil {
		t.Fatalf("IsRefreshTokenValid() error = %v", err)
	}
	if !valid {
		t.Error("freshly issued refresh token reported invalid")
	}
}

func TestTokenService_RememberCarriedInClaims(t *testing.T) {
	repo := newFakeTokenRepo()
	service := NewTokenService(testSecret, 15*time.Minute, 7*24*time.Hour, repo)
	ctx := context.Background()

	pair, err := service.GenerateTokenPair(ctx, uuid.New(), true)
	if err != nil {
		t.Fatalf("GenerateTokenPair() error = %v", err)
	}

	claims, err := service.ValidateRefreshToken(ctx, pair.RefreshToken)
	if err != nil {
		t.Fatalf("ValidateRefreshToken() error = %v", err)
	}
	if !claims.Remember {
		t.Error("refresh claims Remember = false, want true")
	}
	// Extended sessions outlive the configured refresh expiry.
	if claims.ExpiresAt.Before(time.Now().UTC().Add(8 * 24 * time.Hour)) {
		t.Errorf("remember-me refresh expiry %v not extended", claims.ExpiresAt)
	}
}

func TestTokenService_RejectsWrongTokenType(t *testing.T) {
	repo := newFakeTokenRepo()
	service := NewTokenService(testSecret, 15*time.Minute, 7*24*time.Hour, repo)
	ctx := context.Background()

	pair, err := service.GenerateTokenPair(ctx, uuid.New(), false)
	if err != nil {
		t.Fatalf("GenerateTokenPair() error = %v", err)
	}

	if _, err := service.ValidateAccessToken(ctx, pair.RefreshToken); err == nil {
		t.Error("expected error validating refresh token as access token")
	}
	if _, err := service.ValidateRefreshToken(ctx, pair.AccessToken); err == nil {
		t.Error("expected error validating access token as refresh token")
	}
}

func TestTokenService_RejectsForeignSignature(t *testing.T) {
	ctx := context.Background()
	issuer := NewTokenService(testSecret, 15*time.Minute, 7*24*time.Hour, newFakeTokenRepo())
	verifier := NewTokenService("a-different-secret-entirely", 15*time.Minute, 7*24*time.Hour, newFakeTokenRepo())

	pair, err := issuer.GenerateTokenPair(ctx, uuid.New(), false)
	if err != nil {
		t.Fatalf("GenerateTokenPair() error = %v", err)
	}

	if _, err := verifier.ValidateAccessToken(ctx, pair.AccessToken); err == nil {
		t.Error("expected error validating token signed with another secret")
	}
}

func TestTokenService_InvalidateAllUserTokens(t *testing.T) {
	repo := newFakeTokenRepo()
	service := NewTokenService(testSecret, 15*time.Minute, 7*24*time.Hour, repo)
	userID := uuid.New()
	ctx := context.Background()

	pair, err := service.GenerateTokenPair(ctx, userID, false)
	if err != nil {
		t.Fatalf("GenerateTokenPair() error = %v", err)
	}

	if err := service.InvalidateAllUserTokens(ctx, userID); err != nil {
		t.Fatalf("InvalidateAllUserTokens() error = %v", err)
	}

	valid, err := service.IsRefreshTokenValid(ctx, pair.RefreshToken)
	if err != nil {
		t.Fatalf("IsRefreshTokenValid() error = %v", err)
	}
	if valid {
		t.Error("refresh token still valid after revoking the account's tokens")
	}
}
