package services

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Tawan151766/solva-travel-sub001/constants"
	"github.com/Tawan151766/solva-travel-sub001/middleware"
	"github.com/Tawan151766/solva-travel-sub001/models/user"
	"github.com/Tawan151766/solva-travel-sub001/services/policy"
	"github.com/Tawan151766/solva-travel-sub001/utils"
)

// PermissionService answers permission questions inside handlers, over the
// permission set the auth middleware stored in the request context.
type PermissionService struct{}

func NewPermissionService() *PermissionService {
	return &PermissionService{}
}

// CheckAnyPermission checks if the current user has any of the specified permissions
func (ps *PermissionService) CheckAnyPermission(c *fiber.Ctx, permissions ...string) bool {
	userPermissions := middleware.GetUserPermissions(c)

	for _, permission := range permissions {
		if userPermissions[permission] {
			return true
		}
	}
	return false
}

// IsStaffTier checks if the user has staff or admin privileges
func (ps *PermissionService) IsStaffTier(c *fiber.Ctx) bool {
	return ps.CheckAnyPermission(c, constants.StaffTierPermissions...)
}

// ActorFromContext builds the policy actor from verified JWT claims. The
// token's uuid is resolved against the local user mirror; ownership checks
// compare local ids, so the identity service's own user_id claim is never
// used. The second return is false when the request carries no usable
// identity.
func ActorFromContext(c *fiber.Ctx) (policy.Actor, bool) {
	claims, ok := c.Locals("user").(jwt.MapClaims)
	if !ok {
		return policy.Actor{}, false
	}
	return actorFromClaims(claims, utils.GetUserByUUID)
}

func actorFromClaims(claims jwt.MapClaims, lookup func(string) (*user.User, error)) (policy.Actor, bool) {
	userUUID, ok := claims["uuid"].(string)
	if !ok || userUUID == "" {
		return policy.Actor{}, false
	}

	userInfo, err := lookup(userUUID)
	if err != nil {
		return policy.Actor{}, false
	}

	return policy.Actor{UserID: userInfo.ID, Role: userInfo.Role}, true
}
