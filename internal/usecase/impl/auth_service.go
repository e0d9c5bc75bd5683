// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	deliverycontext "boutique/internal/delivery/context"
	"boutique/internal/domain/entity"
	domainerrors "boutique/internal/domain/errors"
	"boutique/internal/domain/repository"
	"boutique/internal/domain/service"
	"boutique/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	logger           *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Logger           *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// hashToken derives the storable registry key for a refresh token.
// Only this hash ever reaches the database.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}

// SignUp orchestrates the complete account registration process. New accounts
// are always customers; the admin role is only granted by the provisioning command.
func (srv *authService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Starting signup", slog.String("email", input.Email))

	// bcrypt is CPU-bound, keep it outside the transaction.
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during signup")
	}

	newUser := &entity.User{
		Email:        input.Email,
		Username:     input.Username,
		PasswordHash: hashedPassword,
		Role:         entity.RoleCustomer,
	}

	var accessToken, refreshToken string
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		// The existence check only improves the message; the unique index on
		// email is what actually resolves concurrent signups.
		if _, findErr := userRepo.FindByEmail(ctx, input.Email); findErr == nil {
			return errors.Wrap(domainerrors.ErrEmailAlreadyExists, "signup rejected")
		} else if !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to check existing email")
		}

		if createErr := userRepo.Create(ctx, newUser); createErr != nil {
			if errors.Is(createErr, repository.ErrDuplicateEmail) {
				return errors.Wrap(domainerrors.ErrEmailAlreadyExists, "signup rejected")
			}

			return errors.Wrap(createErr, "failed to create user during signup")
		}

		var tokenErr error
		accessToken, refreshToken, tokenErr = srv.tokenService.GenerateTokens(newUser)
		if tokenErr != nil {
			return errors.Wrap(tokenErr, "failed to generate tokens during signup")
		}

		return srv.storeRefreshToken(ctx, repoFactory.RefreshTokenRepo(), newUser, refreshToken)
	})
	if err != nil {
		srv.log(ctx).Warn("Signup failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Signup completed", slog.Any("userID", newUser.ID))

	return &usecase.AuthOutput{
		User:         newUser,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Login verifies credentials and opens a session. The error for an unknown
// email and a wrong password is identical so responses cannot be used to probe
// which addresses have accounts.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	// bcrypt check outside any transaction, it is CPU-bound.
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens during login")
	}

	if err := srv.storeRefreshToken(ctx, srv.refreshTokenRepo, user, refreshToken); err != nil {
		return nil, errors.Wrap(err, "failed to store refresh token during login")
	}

	srv.log(ctx).Debug("User logged in", slog.Any("userID", user.ID))

	return &usecase.AuthOutput{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Refresh redeems a refresh token for a brand new pair. Redemption consumes
// the stored hash atomically, so of any number of concurrent redemptions of
// the same token exactly one succeeds.
func (srv *authService) Refresh(ctx context.Context, input *usecase.RefreshInput) (*usecase.TokenPairOutput, error) {
	srv.log(ctx).Debug("Attempting token refresh")

	claims, err := srv.tokenService.ValidateRefreshToken(input.Token)
	if err != nil {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("refresh token rejected")
	}

	var accessToken, refreshToken string
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.RefreshTokenRepo()

		redeemed, redeemErr := refreshRepo.Redeem(ctx, hashToken(input.Token))
		if redeemErr != nil {
			if errors.Is(redeemErr, repository.ErrRefreshTokenNotFound) {
				return domainerrors.ErrInvalidToken.WrapMessage("refresh token unknown or already redeemed")
			}

			return errors.Wrap(redeemErr, "failed to redeem refresh token")
		}

		// Re-resolve the user so a deleted account cannot keep rotating tokens.
		user, findErr := repoFactory.UserRepo().FindByID(ctx, redeemed.UserID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrUserNotFound) {
				return domainerrors.ErrInvalidToken.WrapMessage("refresh token user no longer exists")
			}

			return errors.Wrap(findErr, "failed to load user during refresh")
		}

		var tokenErr error
		accessToken, refreshToken, tokenErr = srv.tokenService.GenerateTokens(user)
		if tokenErr != nil {
			return errors.Wrap(tokenErr, "failed to generate tokens during refresh")
		}

		return srv.storeRefreshToken(ctx, refreshRepo, user, refreshToken)
	})
	if err != nil {
		srv.log(ctx).Warn("Token refresh failed", slog.Any("userID", claims.UserID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Token refreshed", slog.Any("userID", claims.UserID))

	return &usecase.TokenPairOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Logout ends the session identified by the refresh token. The stored hash is
// removed regardless of whether the token still verifies, so a leaked but
// expired token can still be cleaned up.
func (srv *authService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	if _, err := srv.tokenService.ValidateRefreshToken(input.Token); err != nil {
		srv.log(ctx).Warn("Logout with invalid token", slog.Any("error", err))
	}

	if err := srv.refreshTokenRepo.DeleteByHash(ctx, hashToken(input.Token)); err != nil {
		return errors.Wrap(err, "failed to delete refresh token during logout")
	}

	srv.log(ctx).Debug("Logged out")

	return nil
}

// LogoutAll revokes every session of the user. Access tokens already issued
// keep working until they expire, but no refresh token survives.
func (srv *authService) LogoutAll(ctx context.Context, userID uuid.UUID) error {
	if err := srv.refreshTokenRepo.DeleteByUserID(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to delete refresh tokens during logout-all")
	}

	srv.log(ctx).Info("All sessions ended", slog.Any("userID", userID))

	return nil
}

// CleanupExpiredSessions removes all expired refresh tokens from the registry.
func (srv *authService) CleanupExpiredSessions(ctx context.Context) (int64, error) {
	deleted, err := srv.refreshTokenRepo.DeleteExpired(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to cleanup expired sessions", slog.Any("error", err))

		return 0, errors.Wrap(err, "failed to cleanup expired sessions")
	}

	if deleted > 0 {
		srv.log(ctx).Info("Cleaned up expired sessions", slog.Int64("deleted_count", deleted))
	}

	return deleted, nil
}

func (srv *authService) storeRefreshToken(ctx context.Context, refreshRepo repository.RefreshTokenRepository, user *entity.User, refreshToken string) error {
	newToken := &entity.RefreshToken{
		UserID:    user.ID,
		TokenHash: hashToken(refreshToken),
		ExpiresAt: time.Now().Add(srv.tokenService.RefreshTokenDuration()),
	}

	if err := refreshRepo.Create(ctx, newToken); err != nil {
		return errors.Wrap(err, "failed to store refresh token")
	}

	return nil
}
