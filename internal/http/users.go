package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type UsersController struct {
	users UserService
}

func NewUsersController(users UserService) *UsersController {
	return &UsersController{users: users}
}

// Register creates a user and returns its public profile
// POST /api/users/register
func (uc *UsersController) Register(c *gin.Context) {
	var req userRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := uc.users.CreateUser(c.Request.Context(), req.entity(), req.Password)
	if err != nil {
		respondServiceError(c, err, "register user")
		return
	}
	respondCreated(c, user.Profile())
}

// Login verifies credentials and returns the public profile. No session is created.
// POST /api/users/login
func (uc *UsersController) Login(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := uc.users.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondServiceError(c, err, "login")
		return
	}
	c.JSON(http.StatusOK, user.Profile())
}

// CreateUser creates a user and returns the full record
// POST /api/users
func (uc *UsersController) CreateUser(c *gin.Context) {
	var req userRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := uc.users.CreateUser(c.Request.Context(), req.entity(), req.Password)
	if err != nil {
		respondServiceError(c, err, "create user")
		return
	}
	respondCreated(c, user)
}

// GET /api/users
func (uc *UsersController) GetAllUsers(c *gin.Context) {
	users, err := uc.users.GetAllUsers(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "get all users")
		return
	}
	c.JSON(http.StatusOK, users)
}

// GET /api/users/:id
func (uc *UsersController) GetUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := uc.users.GetUserByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "get user")
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetUserByUsername looks a user up by name, from the path or the query string
// GET /api/users/username?username=
// GET /api/users/username/:username
func (uc *UsersController) GetUserByUsername(c *gin.Context) {
	username := strings.TrimSpace(c.Param("username"))
	if username == "" {
		username = strings.TrimSpace(c.Query("username"))
	}
	if username == "" {
		respondBadRequest(c, "username is required")
		return
	}

	user, err := uc.users.GetUserByUsername(c.Request.Context(), username)
	if err != nil {
		respondServiceError(c, err, "get user by username")
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateUser changes email and reading progress
// PUT /api/users/:id
func (uc *UsersController) UpdateUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req userRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := uc.users.UpdateUser(c.Request.Context(), id, *req.entity())
	if err != nil {
		respondServiceError(c, err, "update user")
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateProgress records the chapter a user has reached
// PUT /api/users/:id/progress/:chapterNumber
func (uc *UsersController) UpdateProgress(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	chapterNumber, err := strconv.Atoi(c.Param("chapterNumber"))
	if err != nil {
		respondBadRequest(c, "invalid chapterNumber")
		return
	}

	user, err := uc.users.UpdateProgress(c.Request.Context(), id, chapterNumber)
	if err != nil {
		respondServiceError(c, err, "update progress")
		return
	}
	c.JSON(http.StatusOK, user)
}

// ChangeUsername renames a user; the body is the new name
// PUT /api/users/:id/username
func (uc *UsersController) ChangeUsername(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	username, ok := readText(c, "username")
	if !ok {
		return
	}

	user, err := uc.users.ChangeUsername(c.Request.Context(), id, username)
	if err != nil {
		respondServiceError(c, err, "change username")
		return
	}
	c.JSON(http.StatusOK, user)
}

// PUT /api/users/:id/password
func (uc *UsersController) ChangePassword(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req passwordRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := uc.users.ChangePassword(c.Request.Context(), id, req.CurrentPassword, req.NewPassword); err != nil {
		respondServiceError(c, err, "change password")
		return
	}
	respondSuccess(c, "password changed")
}

// DeleteUser removes a user with their comments and answers
// DELETE /api/users/:id
func (uc *UsersController) DeleteUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := uc.users.DeleteUser(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "delete user")
		return
	}
	respondSuccess(c, "user deleted")
}
