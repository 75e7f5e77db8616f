package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"kampadmin/internal/models/db_models"
	"kampadmin/internal/repositories"
	"kampadmin/pkg/utils"
)

const currentUserKey = "current_user"

// AuthMiddleware resolves the bearer token to a live user record, so
// permission checks always see current flags rather than stale claims.
type AuthMiddleware struct {
	userRepo repositories.UserRepository
}

func NewAuthMiddleware(userRepo repositories.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		userRepo: userRepo,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		user, err := m.userRepo.FindByEmail(c.Request.Context(), claims.Subject)
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, "Internal server error")
			c.Abort()
			return
		}
		if user == nil || !user.IsActive {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// RequirePermission layers a single boolean flag check on top of RequireAuth.
func (m *AuthMiddleware) RequirePermission(permission db_models.Permission) gin.HandlerFunc {

	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization required")
			c.Abort()
			return
		}

		if !user.HasPermission(permission) {
			utils.RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

func CurrentUser(c *gin.Context) *db_models.User {
	value, ok := c.Get(currentUserKey)
	if !ok {
		return nil
	}
	user, ok := value.(*db_models.User)
	if !ok {
		return nil
	}
	return user
}
