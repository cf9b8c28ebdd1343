package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/bufbuild/connect-go"
	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"

	"jordan.com/BeerStore/configs"
)

type PrincipalKey struct{}

var (
	ErrMissingToken = errors.New("authorization header not found")
	ErrInvalidToken = errors.New("invalid token")
)

type Manager struct {
	conf   *configs.Config
	logger *zap.Logger
}

func NewAuthManager(conf *configs.Config, logger *zap.Logger) *Manager {
	return &Manager{conf: conf, logger: logger}
}

func (a *Manager) Enabled() bool {
	return len(a.conf.Auth.SecretKey) > 0
}

// Principal returns the email or subject of the caller authenticated by GrpcAuthInterceptor.
func Principal(ctx context.Context) (string, bool) {
	principal, ok := ctx.Value(PrincipalKey{}).(string)

	return principal, ok
}

func (a *Manager) GrpcAuthInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			principal, err := a.authenticate(req.Header())
			if err != nil {
				return nil, connect.NewError(connect.CodeUnauthenticated, err)
			}

			ctx = context.WithValue(ctx, PrincipalKey{}, principal)

			return next(ctx, req)
		}
	}
}

func (a *Manager) authenticate(header http.Header) (string, error) {
	keyFunc := func(token *jwt.Token) (interface{}, error) {
		_, ok := token.Method.(*jwt.SigningMethodHMAC)
		if !ok {
			return nil, fmt.Errorf("%w: unexpected signing method: %v", ErrInvalidToken, token.Header["alg"])
		}

		return []byte(a.conf.Auth.SecretKey), nil
	}

	accessToken, err := a.extractTokenFromHeader(header)
	if err != nil {
		return "", err
	}

	token, err := jwt.ParseWithClaims(accessToken, jwt.MapClaims{}, keyFunc)
	if err != nil {
		a.logger.Error("error parsing token", zap.Error(err))

		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, found := token.Claims.(jwt.MapClaims)
	if !found || !token.Valid {
		a.logger.Error("invalid token", zap.Any("claims", claims))

		return "", ErrInvalidToken
	}

	if len(a.conf.Auth.Audience) > 0 && !claims.VerifyAudience(a.conf.Auth.Audience, true) {
		a.logger.Error("token audience mismatch", zap.Any("claims", claims))

		return "", fmt.Errorf("%w: audience mismatch", ErrInvalidToken)
	}

	if email, ok := claims["email"].(string); ok && len(email) > 0 {
		return email, nil
	}

	if subject, ok := claims["sub"].(string); ok && len(subject) > 0 {
		return subject, nil
	}

	a.logger.Error("unable to get principal from token", zap.Any("claims", claims))

	return "", fmt.Errorf("%w: no email or subject claim", ErrInvalidToken)
}

func (a *Manager) extractTokenFromHeader(header http.Header) (string, error) {
	authorization := header.Get("Authorization")
	if len(authorization) == 0 {
		a.logger.Error("No authorization header found")

		return "", ErrMissingToken
	}

	prefix := "Bearer "
	if !strings.HasPrefix(authorization, prefix) {
		prefix = "bearer "
	}

	token, found := strings.CutPrefix(authorization, prefix)
	if !found {
		return "", fmt.Errorf("%w: authorization format must be Bearer {token}", ErrInvalidToken)
	}

	return token, nil
}
