package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/course-service/internal/models"
	"github.com/SAP-F-2025/course-service/internal/services"
	"github.com/SAP-F-2025/course-service/internal/utils"
)

const (
	ctxUser     = "user"
	ctxUserID   = "user_id"
	ctxUserRole = "user_role"
)

// AuthMiddleware resolves bearer tokens to users for every protected group.
type AuthMiddleware struct {
	authService services.AuthService
	logger      utils.Logger
}

func NewAuthMiddleware(authService services.AuthService, logger utils.Logger) *AuthMiddleware {
	return &AuthMiddleware{authService: authService, logger: logger}
}

func unauthorized(c *gin.Context, message string) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: message})
}

// RequireAuth rejects requests without a valid token for a live user.
func (am *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c, "Not authenticated")
			return
		}

		scheme, token, ok := strings.Cut(authHeader, " ")
		if !ok || !strings.EqualFold(scheme, "bearer") || strings.TrimSpace(token) == "" {
			unauthorized(c, "Invalid authorization header format")
			return
		}

		user, err := am.authService.Authenticate(c.Request.Context(), strings.TrimSpace(token))
		if err != nil {
			if errors.Is(err, services.ErrUnauthorized) {
				unauthorized(c, "Could not validate credentials")
				return
			}
			utils.FromContext(c.Request.Context(), am.logger).Error("Failed to authenticate request", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Message: "Internal server error"})
			return
		}

		c.Set(ctxUser, user)
		c.Set(ctxUserID, user.ID)
		c.Set(ctxUserRole, user.Role)
		c.Next()
	}
}

// RequireRoleMiddleware passes callers holding role, and admins.
func (am *AuthMiddleware) RequireRoleMiddleware(role models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, err := GetUserRoleFromContext(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{Message: err.Error()})
			return
		}
		if !userRole.Satisfies(role) {
			c.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{
				Message: fmt.Sprintf("insufficient permissions, required role: %s", role),
			})
			return
		}
		c.Next()
	}
}

// RequireAdmin passes admins only.
func (am *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, err := GetUserRoleFromContext(c)
		if err != nil || !userRole.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{Message: "admin access required"})
			return
		}
		c.Next()
	}
}

// GetUserFromContext extracts user from Gin context
func GetUserFromContext(c *gin.Context) (*models.User, error) {
	user, exists := c.Get(ctxUser)
	if !exists {
		return nil, fmt.Errorf("user not found in context")
	}

	userModel, ok := user.(*models.User)
	if !ok {
		return nil, fmt.Errorf("invalid user type in context")
	}
	return userModel, nil
}

// GetUserRoleFromContext extracts user role from Gin context
func GetUserRoleFromContext(c *gin.Context) (models.UserRole, error) {
	userRole, exists := c.Get(ctxUserRole)
	if !exists {
		return "", fmt.Errorf("user role not found in context")
	}

	role, ok := userRole.(models.UserRole)
	if !ok {
		return "", fmt.Errorf("invalid user role type in context")
	}
	return role, nil
}
