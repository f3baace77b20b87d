package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/2beens/traintrack/internal/telemetry/tracing"
	"github.com/2beens/traintrack/pkg"

	"github.com/go-redis/redis/v8"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultAccessTTL  = 15 * time.Minute
	DefaultRefreshTTL = 24 * 30 * time.Hour

	refreshTokenKeyPrefix = "traintrack-refresh||"
)

var ErrSessionExpired = errors.New("session expired")

type usersRepo interface {
	Get(ctx context.Context, id int) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
}

// Service issues and validates the access/refresh token pair. Refresh
// tokens are opaque random strings kept in redis with a TTL; access
// tokens are signed JWTs checked without a redis round trip.
type Service struct {
	users       usersRepo
	redisClient *redis.Client
	secret      []byte
	accessTTL   time.Duration
	refreshTTL  time.Duration

	// coalesces concurrent refresh attempts with the same token: the
	// token is rotated on refresh, so without this, the losers of the
	// race would get kicked out with a dead token
	refreshGroup singleflight.Group

	// ability to inject random string generator func for tokens (for unit and dev testing)
	RandStringFunc func(s int) (string, error)
}

type NewServiceParams struct {
	Users       usersRepo
	RedisClient *redis.Client
	TokenSecret string
	AccessTTL   time.Duration
	RefreshTTL  time.Duration
}

func NewService(params NewServiceParams) *Service {
	if params.AccessTTL == 0 {
		params.AccessTTL = DefaultAccessTTL
	}
	if params.RefreshTTL == 0 {
		params.RefreshTTL = DefaultRefreshTTL
	}
	return &Service{
		users:          params.Users,
		redisClient:    params.RedisClient,
		secret:         []byte(params.TokenSecret),
		accessTTL:      params.AccessTTL,
		refreshTTL:     params.RefreshTTL,
		RandStringFunc: pkg.GenerateRandomString,
	}
}

func (s *Service) Login(ctx context.Context, username, password string) (_ *TokenPair, _ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "auth.service.login")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("get user: %w", err)
	}

	if !pkg.CheckPasswordHash(password, user.PasswordHash) {
		return nil, nil, ErrInvalidCredentials
	}

	pair, err := s.newTokenPair(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return pair, user, nil
}

var ErrInvalidCredentials = errors.New("invalid credentials")

// Refresh rotates the refresh token and returns a fresh token pair.
// Concurrent calls with the same token are coalesced into a single
// rotation and all get the same new pair.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (_ *TokenPair, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "auth.service.refresh")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	res, err, _ := s.refreshGroup.Do(refreshToken, func() (interface{}, error) {
		return s.refresh(ctx, refreshToken)
	})
	if err != nil {
		return nil, err
	}
	return res.(*TokenPair), nil
}

func (s *Service) refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	sessionKey := refreshTokenKeyPrefix + refreshToken
	cmd := s.redisClient.Get(ctx, sessionKey)
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionExpired
		}
		return nil, fmt.Errorf("get refresh token: %w", err)
	}

	userID, err := strconv.Atoi(cmd.Val())
	if err != nil {
		return nil, fmt.Errorf("parse refresh token user id: %w", err)
	}

	user, err := s.users.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user %d: %w", userID, err)
	}

	// rotate: the old token dies with the refresh
	if err := s.redisClient.Del(ctx, sessionKey).Err(); err != nil {
		return nil, fmt.Errorf("revoke old refresh token: %w", err)
	}

	return s.newTokenPair(ctx, user)
}

func (s *Service) Logout(ctx context.Context, refreshToken string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "auth.service.logout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.redisClient.Del(ctx, refreshTokenKeyPrefix+refreshToken).Err()
}

// VerifyAccess checks the signed access token and returns the user id.
// Fails closed: any parse or validation error rejects the token.
func (s *Service) VerifyAccess(token string) (userID int, err error) {
	return parseAccessToken(s.secret, token)
}

func (s *Service) GetUser(ctx context.Context, userID int) (*User, error) {
	return s.users.Get(ctx, userID)
}

func (s *Service) newTokenPair(ctx context.Context, user *User) (*TokenPair, error) {
	accessToken, expiresAt, err := createAccessToken(s.secret, user.ID, user.Username, s.accessTTL, time.Now())
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.RandStringFunc(35)
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	cmdSet := s.redisClient.Set(
		ctx,
		refreshTokenKeyPrefix+refreshToken,
		strconv.Itoa(user.ID),
		s.refreshTTL,
	)
	if err := cmdSet.Err(); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	return &TokenPair{
		AccessToken:     accessToken,
		RefreshToken:    refreshToken,
		AccessExpiresAt: expiresAt,
	}, nil
}
