package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	deliverycontext "vitrine/internal/delivery/context"
	"vitrine/internal/domain/entity"
	domainerrors "vitrine/internal/domain/errors"
	"vitrine/internal/domain/repository"
	"vitrine/internal/domain/service"
	"vitrine/internal/usecase"
	"vitrine/internal/util"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	minPasswordLength = 8
	decoyPassword     = "vitrine-login-decoy"
)

var inputValidator = validator.New()

// authService implements the AuthUsecase interface.
type authService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	verifier         service.IDTokenVerifier
	events           service.AuthEventBus
	clock            util.Clock
	logger           *slog.Logger

	// decoyHash is checked against on unknown emails.
	decoyHash func() (string, error)
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Verifier         service.IDTokenVerifier
	Events           service.AuthEventBus
	Clock            util.Clock
	Logger           *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		verifier:         params.Verifier,
		events:           params.Events,
		clock:            params.Clock,
		logger:           params.Logger,
		decoyHash:        sync.OnceValues(func() (string, error) {
			return params.Hasher.Hash(decoyPassword)
		}),
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates the operator and its email authentication in one transaction.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	if err := validateRegistration(input.Name, email, input.Password); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	var registered *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		authRepo := repoFactory.NewAuthRepository()
		userRepo := repoFactory.NewUserRepository()

		_, err := authRepo.FindAuthentication(ctx, entity.ProviderEmail, email)
		if err == nil {
			return errors.Wrap(domainerrors.ErrUserAlreadyExists, "email already registered")
		}
		if !errors.Is(err, repository.ErrAuthNotFound) {
			return errors.Wrap(err, "failed to find authentication")
		}

		user := &entity.User{Name: strings.TrimSpace(input.Name), Email: email}
		if err := userRepo.Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		if err := authRepo.CreateAuthentication(ctx, &entity.Authentication{
			UserID:         user.ID,
			Provider:       entity.ProviderEmail,
			ProviderUserID: email,
			PasswordHash:   passwordHash,
		}); err != nil {
			return errors.Wrap(err, "failed to create authentication during registration")
		}

		registered = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	return srv.signIn(ctx, registered)
}

func validateRegistration(name, email, password string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return domainerrors.ErrValidationFailed.WithDetails("name is required")
	case email == "":
		return domainerrors.ErrValidationFailed.WithDetails("email is required")
	case len(password) < minPasswordLength:
		return domainerrors.ErrValidationFailed.WithDetails("password must have at least 8 characters")
	}

	if err := inputValidator.Var(email, "required,email"); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("email is invalid")
	}

	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Debug("Starting login", slog.String("email", email))

	authRecord, err := srv.findAuthentication(ctx, entity.ProviderEmail, email)
	if errors.Is(err, repository.ErrAuthNotFound) {
		if hash, hashErr := srv.decoyHash(); hashErr == nil {
			srv.hasher.Check(input.Password, hash)
		}
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.String("reason", "unknown email"))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load login authentication")
	}

	if !srv.hasher.Check(input.Password, authRecord.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.String("reason", "password mismatch"))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	user, err := srv.userRepo.FindByID(ctx, authRecord.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load login user")
	}

	return srv.signIn(ctx, user)
}

func (srv *authService) findAuthentication(ctx context.Context, provider, providerUserID string) (*entity.Authentication, error) {
	var authRecord *entity.Authentication

	// Read from the primary so a fresh registration is visible right away.
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		authRecord, err = repoFactory.NewAuthRepository().FindAuthentication(ctx, provider, providerUserID)

		return err
	})

	return authRecord, err
}

// GoogleLogin signs in with a Google ID token, linking or creating the operator account.
func (srv *authService) GoogleLogin(ctx context.Context, idToken string) (*usecase.AuthOutput, error) {
	oauthUser, err := srv.verifier.VerifyIDToken(ctx, idToken)
	if err != nil {
		srv.log(ctx).Warn("Google ID token rejected", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrOAuthTokenInvalid, err.Error())
	}

	var user *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		user, err = srv.findOrCreateOAuthUser(ctx, repoFactory, oauthUser)

		return err
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute Google sign-in transaction", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute Google sign-in transaction")
	}

	return srv.signIn(ctx, user)
}

func (srv *authService) findOrCreateOAuthUser(ctx context.Context, repoFactory repository.RepositoryFactory, oauthUser *service.OAuthUser) (*entity.User, error) {
	authRepo := repoFactory.NewAuthRepository()
	userRepo := repoFactory.NewUserRepository()
	provider := srv.verifier.Provider()

	authRecord, err := authRepo.FindAuthentication(ctx, provider, oauthUser.ID)
	if err == nil {
		user, err := userRepo.FindByID(ctx, authRecord.UserID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find linked user")
		}

		return user, nil
	}
	if !errors.Is(err, repository.ErrAuthNotFound) {
		return nil, errors.Wrap(err, "failed to find authentication")
	}

	email := normalizeEmail(oauthUser.Email)
	user, err := userRepo.FindByEmail(ctx, email)
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		srv.log(ctx).Info("Creating operator from Google account", slog.String("email", email))

		user = &entity.User{Name: oauthUser.Name, Email: email}
		if err := userRepo.Create(ctx, user); err != nil {
			return nil, errors.Wrap(err, "failed to create user for Google sign-in")
		}
	case err != nil:
		return nil, errors.Wrap(err, "failed to find user by email")
	default:
		srv.log(ctx).Info("Linking Google account to existing operator", slog.Any("userID", user.ID))
	}

	if err := authRepo.CreateAuthentication(ctx, &entity.Authentication{
		UserID:         user.ID,
		Provider:       provider,
		ProviderUserID: oauthUser.ID,
	}); err != nil {
		return nil, errors.Wrap(err, "failed to create Google authentication")
	}

	return user, nil
}

// signIn issues a token pair, stores the refresh token hash and announces the session.
func (srv *authService) signIn(ctx context.Context, user *entity.User) (*usecase.AuthOutput, error) {
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	now := srv.clock.Now()
	if err := srv.refreshTokenRepo.CreateRefreshToken(ctx, &entity.RefreshToken{
		UserID:    user.ID,
		TokenHash: srv.tokenService.HashToken(refreshToken),
		ExpiresAt: now.Add(srv.tokenService.RefreshTokenDuration()),
	}); err != nil {
		return nil, errors.Wrap(err, "failed to store refresh token")
	}

	srv.events.Publish(entity.AuthEvent{Type: entity.AuthEventSignedIn, UserID: user.ID, OccurredAt: now})
	srv.log(ctx).Info("Operator signed in", slog.Any("userID", user.ID))

	return &usecase.AuthOutput{
		User: user,
		Tokens: &entity.TokenPair{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
			ExpiresAt:    now.Add(srv.tokenService.AccessTokenDuration()),
		},
	}, nil
}

// Refresh issues a new access token. The refresh token itself is not rotated.
func (srv *authService) Refresh(ctx context.Context, refreshToken string) (*entity.TokenPair, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		srv.log(ctx).Warn("Refresh token rejected", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, err.Error())
	}

	tokenHash := srv.tokenService.HashToken(refreshToken)
	stored, err := srv.refreshTokenRepo.FindRefreshTokenByHash(ctx, tokenHash)
	if errors.Is(err, repository.ErrRefreshTokenNotFound) {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token revoked")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find refresh token")
	}

	now := srv.clock.Now()
	if stored.Expired(now) {
		if err := srv.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, tokenHash); err != nil {
			srv.log(ctx).Warn("Failed to delete expired refresh token", slog.Any("error", err))
		}

		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token expired")
	}

	accessToken, _, err := srv.tokenService.GenerateTokens(claims.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	return &entity.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    now.Add(srv.tokenService.AccessTokenDuration()),
	}, nil
}

// Logout deletes the session and emits signed-out for the operator it belonged to.
func (srv *authService) Logout(ctx context.Context, refreshToken string) error {
	userID, _ := deliverycontext.GetUserID(ctx)

	claims, err := srv.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		// The stored hash is deleted regardless.
		srv.log(ctx).Warn("Logout with invalid refresh token", slog.Any("error", err))
	} else if userID == uuid.Nil {
		userID = claims.UserID
	}

	if err := srv.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, srv.tokenService.HashToken(refreshToken)); err != nil {
		srv.log(ctx).Error("Failed to delete refresh token", slog.Any("error", err))

		return errors.Wrap(err, "failed to delete refresh token")
	}

	if userID != uuid.Nil {
		srv.events.Publish(entity.AuthEvent{Type: entity.AuthEventSignedOut, UserID: userID, OccurredAt: srv.clock.Now()})
	}
	srv.log(ctx).Info("Operator signed out", slog.Any("userID", userID))

	return nil
}

func (srv *authService) CurrentUser(ctx context.Context) (*entity.User, error) {
	userID, ok := deliverycontext.GetUserID(ctx)
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(domainerrors.ErrUnauthenticated, "operator account no longer exists")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find current user")
	}

	return user, nil
}
