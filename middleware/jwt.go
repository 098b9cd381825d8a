package middleware

import (
	"fmt"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Tawan151766/solva-travel-sub001/constants"
	"github.com/Tawan151766/solva-travel-sub001/types"
)

// VerifyJWT verifies a bearer token issued by the identity service. Tokens
// are HMAC-signed with the shared JWT_SECRET; this service only verifies,
// it never issues.
func VerifyJWT(tokenString string) (jwt.MapClaims, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse JWT: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid JWT token")
	}
	return claims, nil
}

// IsAuthenticated builds a handler that requires a valid bearer token
// carrying at least one of the given permissions. The special permission
// "any" accepts every authenticated user.
func IsAuthenticated(permissions []string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := bearerToken(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
				Message: err.Error(),
				Status:  fiber.StatusUnauthorized,
			})
		}

		claims, err := VerifyJWT(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
				Message: "Invalid or expired token",
				Status:  fiber.StatusUnauthorized,
			})
		}

		userPermissions := extractUserPermissionsFromClaims(claims)
		c.Locals("user", claims)
		c.Locals("permissions", userPermissions)

		for _, permission := range permissions {
			if permission == constants.PermAny {
				return c.Next()
			}
			if userPermissions[permission] {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(types.ApiResponse{
			Message: "Insufficient permissions",
			Status:  fiber.StatusForbidden,
		})
	}
}

// OptionalAuthentication parses a bearer token when one is present but lets
// anonymous requests through. Guest-capable routes (custom tour submission,
// public tracking) use this so owners still get attributed.
func OptionalAuthentication() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := bearerToken(c)
		if err != nil {
			return c.Next()
		}

		claims, err := VerifyJWT(tokenString)
		if err != nil {
			// A bad token on an optional route is treated as anonymous,
			// not rejected.
			return c.Next()
		}

		c.Locals("user", claims)
		c.Locals("permissions", extractUserPermissionsFromClaims(claims))
		return c.Next()
	}
}

func bearerToken(c *fiber.Ctx) (string, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return "", fmt.Errorf("authorization header missing")
	}

	tokenParts := strings.Split(authHeader, " ")
	if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
		return "", fmt.Errorf("invalid authorization header format")
	}
	return tokenParts[1], nil
}
