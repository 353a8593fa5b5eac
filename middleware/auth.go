package middleware

import (
	"errors"
	"fmt"
	"log"
	"time"

	"edulearn/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// AuthCookieName is the cookie carrying the signed session token.
const AuthCookieName = "edutoken"

var (
	// ErrMissingSecret means the server has no configured signing secret.
	// This is a misconfiguration on our side, never a client error, and is
	// logged as such even though the caller only sees an auth failure.
	ErrMissingSecret = errors.New("token signing secret is not configured")

	// ErrInvalidToken covers signature, expiry and malformed-payload failures.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// TokenClaims is the decoded identity carried by a verified token.
type TokenClaims struct {
	UserID uint
	Role   string
}

// GenerateJWT signs a session token for the user, valid for 24 hours.
func GenerateJWT(userID uint, role string) (string, error) {
	if config.AppConfig == nil || config.AppConfig.JWTKey == "" {
		return "", ErrMissingSecret
	}

	claims := jwt.MapClaims{
		"id":   userID,
		"role": role,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.AppConfig.JWTKey))
}

// VerifyToken validates a signed token string against the configured secret
// and decodes the identity claim. Pure computation, no side effects.
func VerifyToken(tokenString string) (*TokenClaims, error) {
	if config.AppConfig == nil || config.AppConfig.JWTKey == "" {
		return nil, ErrMissingSecret
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTKey), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	id, ok := claims["id"].(float64) // numeric JWT claims decode as float64
	if !ok || id <= 0 {
		return nil, ErrInvalidToken
	}
	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return nil, ErrInvalidToken
	}

	return &TokenClaims{UserID: uint(id), Role: role}, nil
}

// Authenticate is the access gateway applied to every protected route. It
// extracts the token from the auth cookie, verifies it, and stores the
// identity in the request context for downstream handlers. Role checks are
// not done here; endpoints compose RequireRoles on top.
func Authenticate(c *fiber.Ctx) error {
	tokenString := c.Cookies(AuthCookieName)
	if tokenString == "" {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Not authenticated!", nil)
	}

	claims, err := VerifyToken(tokenString)
	if err != nil {
		if errors.Is(err, ErrMissingSecret) {
			log.Printf("Auth gateway: server misconfiguration: %v", err)
		}
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid or expired token!", nil)
	}

	c.Locals("userId", claims.UserID)
	c.Locals("role", claims.Role)

	return c.Next()
}

// RequireRoles returns a middleware enforcing that the authenticated role is
// one of the allowed set. Must run after Authenticate.
func RequireRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Not authenticated!", nil)
		}

		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}

		return JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
	}
}
