package handlers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"OncoCare/services"
	"OncoCare/utils"
)

// UserHandler exposes the user resource keyed by path parameter. Callers act
// on their own record unless they hold the Admin role.
type UserHandler struct {
	UserService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{
		UserService: userService,
	}
}

// authorizeUserAccess validates the access token and checks that the caller
// either owns the record or is an Admin.
func authorizeUserAccess(c *gin.Context, targetID int64) (*utils.TokenClaims, bool) {
	token, err := extractAccessToken(c)
	if err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return nil, false
	}

	claims, err := utils.ValidateToken(token, "Admin", "Moderator", "Member")
	if err != nil {
		c.JSON(401, gin.H{"error": "Invalid access token"})
		return nil, false
	}

	if claims.Role != "Admin" && claims.UserID != strconv.FormatInt(targetID, 10) {
		c.JSON(403, gin.H{"error": "Access denied"})
		return nil, false
	}
	return claims, true
}

func parseUserID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid user ID"})
		return 0, false
	}
	return id, true
}

// GetUser returns one user record.
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseUserID(c)
	if !ok {
		return
	}
	if _, ok := authorizeUserAccess(c, id); !ok {
		return
	}

	ctx := c.Request.Context()
	user, err := h.UserService.GetUserByID(ctx, id)
	if err != nil || user == nil {
		c.JSON(404, gin.H{"error": "User not found"})
		return
	}
	c.JSON(200, gin.H{"user": user})
}

// UpdateUser updates a user's username and email.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := parseUserID(c)
	if !ok {
		return
	}
	if _, ok := authorizeUserAccess(c, id); !ok {
		return
	}

	var data struct {
		Username string `json:"username"`
		Email    string `json:"email"`
	}
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}

	ctx := c.Request.Context()
	if err := h.UserService.UpdateUserProfile(ctx, id, data.Username, data.Email); err != nil {
		c.JSON(500, gin.H{"error": fmt.Sprintf("Failed to update user: %v", err)})
		return
	}
	c.Status(200)
}

// DeleteUser removes a user record.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := parseUserID(c)
	if !ok {
		return
	}
	if _, ok := authorizeUserAccess(c, id); !ok {
		return
	}

	ctx := c.Request.Context()
	if err := h.UserService.DeleteUser(ctx, id); err != nil {
		c.JSON(500, gin.H{"error": fmt.Sprintf("Failed to delete user: %v", err)})
		return
	}
	c.Status(200)
}

// ListUsers returns every user. Admin only.
func (h *UserHandler) ListUsers(c *gin.Context) {
	token, err := extractAccessToken(c)
	if err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	if _, err := utils.ValidateToken(token, "Admin"); err != nil {
		c.JSON(401, gin.H{"error": "Invalid access token"})
		return
	}

	ctx := c.Request.Context()
	users, err := h.UserService.GetAllUsers(ctx)
	if err != nil {
		c.JSON(500, gin.H{"error": fmt.Sprintf("Failed to retrieve users: %v", err)})
		return
	}
	c.JSON(200, users)
}
