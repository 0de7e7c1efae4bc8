package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Animesh0711/DailyEase/pkg/logger"
)

// ContextKey тип для ключей контекста во избежание коллизий
type ContextKey string

const (
	// ContextUserIDKey ключ для хранения ID пользователя в контексте
	ContextUserIDKey ContextKey = "userID"
	// ContextIsAdminKey ключ для признака администратора в контексте
	ContextIsAdminKey ContextKey = "isAdmin"

	authHeaderPrefix = "Bearer "
)

// TokenClaims полезная нагрузка токена доступа
type TokenClaims struct {
	UserID  int64
	IsAdmin bool
}

// TokenValidator проверяет токен доступа и извлекает его полезную нагрузку
type TokenValidator interface {
	Validate(tokenString string) (*TokenClaims, error)
}

// JWTMiddleware аутентификация HTTP запросов по JWT
type JWTMiddleware struct {
	log       *logger.Logger
	validator TokenValidator
}

// NewJWTMiddleware создает новый JWT middleware
func NewJWTMiddleware(log *logger.Logger, validator TokenValidator) *JWTMiddleware {
	return &JWTMiddleware{
		log:       log,
		validator: validator,
	}
}

// RequireAuth пропускает только запросы с валидным токеном
func (m *JWTMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := m.authenticate(c)
		if !ok {
			return
		}

		c.Set(string(ContextUserIDKey), claims.UserID)
		c.Set(string(ContextIsAdminKey), claims.IsAdmin)
		c.Next()
	}
}

// RequireAdmin пропускает только запросы администраторов
func (m *JWTMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := m.authenticate(c)
		if !ok {
			return
		}

		if !claims.IsAdmin {
			m.log.Warn("Admin access denied for user %d on %s", claims.UserID, c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}

		c.Set(string(ContextUserIDKey), claims.UserID)
		c.Set(string(ContextIsAdminKey), true)
		c.Next()
	}
}

func (m *JWTMiddleware) authenticate(c *gin.Context) (*TokenClaims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		m.handleAuthError(c, "Missing authorization token")
		return nil, false
	}

	tokenString := strings.TrimPrefix(authHeader, authHeaderPrefix)
	claims, err := m.validator.Validate(tokenString)
	if err != nil {
		m.handleAuthError(c, fmt.Sprintf("Token validation failed: %v", err))
		return nil, false
	}

	return claims, true
}

func (m *JWTMiddleware) handleAuthError(c *gin.Context, message string) {
	m.log.Warnw("HTTP Authentication failed", "path", c.Request.URL.Path, "error", message)
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": message})
}

// DefaultTokenValidator реализация валидатора по умолчанию
type DefaultTokenValidator struct {
	Secret []byte
}

func (v *DefaultTokenValidator) Validate(tokenString string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.Secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenMalformed) {
			return nil, errors.New("malformed token")
		} else if errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			return nil, errors.New("invalid token signature")
		} else if errors.Is(err, jwt.ErrTokenExpired) || errors.Is(err, jwt.ErrTokenNotValidYet) {
			return nil, errors.New("token expired")
		}
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return nil, errors.New("user ID missing in token")
	}

	isAdmin, _ := claims["is_admin"].(bool)

	return &TokenClaims{
		UserID:  int64(userID),
		IsAdmin: isAdmin,
	}, nil
}
