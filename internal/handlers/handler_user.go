package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/object_dto/internal/core/ports/services"
	"github.com/SscSPs/object_dto/internal/dto"
	"github.com/SscSPs/object_dto/internal/middleware"
	"github.com/SscSPs/object_dto/pkg/objectdto"
	"github.com/gin-gonic/gin"
)

// userHandler handles HTTP requests related to users.
type userHandler struct {
	userService portssvc.UserSvcFacade
	mapper      *objectdto.Mapper
}

func newUserHandler(us portssvc.UserSvcFacade, mapper *objectdto.Mapper) *userHandler {
	return &userHandler{userService: us, mapper: mapper}
}

// RegisterUserRoutes registers all user-related routes on an authenticated group.
func RegisterUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade, mapper *objectdto.Mapper) {
	h := newUserHandler(userService, mapper)

	users := rg.Group("/users")
	{
		users.GET("", h.listUsers)
		users.GET("/:id", h.getUser)       // Own only
		users.PUT("/:id", h.updateUser)    // Own only
		users.DELETE("/:id", h.deleteUser) // Own only
		users.POST("", h.createUser)
	}
}

// createUser godoc
// @Summary Create a new user
// @Description Creates a new user on behalf of the logged-in user. Every field of data is required.
// @Tags users
// @Accept  json
// @Produce  json
// @Param   user body objectdto.Payload true "User details under data: name, username, password"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse "Missing or empty fields"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 409 {object} ErrorResponse "Username taken"
// @Failure 500 {object} ErrorResponse "Failed to create user"
// @Security BearerAuth
// @Router /users [post]
func (h *userHandler) createUser(c *gin.Context) {
	creatorUserID, ok := requireUserID(c)
	if !ok {
		return
	}
	req, ok := bindPayload[dto.CreateUserRequest](c, h.mapper)
	if !ok {
		return
	}

	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to create user", slog.String("username", req.Username))

	createdUser, err := h.userService.CreateUser(c.Request.Context(), *req, creatorUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to create user")
		return
	}

	logger.Info("User created successfully", slog.String("new_user_id", createdUser.UserID))
	c.JSON(http.StatusCreated, h.mapper.Project(createdUser, dto.UserResponseShape))
}

// getUser godoc
// @Summary Get a user by ID
// @Description Retrieves details for the logged-in user
// @Tags users
// @Produce  json
// @Param   id path string true "User ID"
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden (trying to access another user's details)"
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve user"
// @Security BearerAuth
// @Router /users/{id} [get]
func (h *userHandler) getUser(c *gin.Context) {
	userID, ok := h.authorizeSelf(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve user")
		return
	}
	c.JSON(http.StatusOK, h.mapper.Project(user, dto.UserResponseShape))
}

// listUsers godoc
// @Summary List users
// @Description Retrieves a page of active users
// @Tags users
// @Produce  json
// @Param   limit query int false "Limit number of results" default(20)
// @Param   offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListUsersResponse
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list users"
// @Security BearerAuth
// @Router /users [get]
func (h *userHandler) listUsers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListUsersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListUsers", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	users, err := h.userService.ListUsers(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondServiceError(c, err, "Failed to list users")
		return
	}

	resp := dto.ListUsersResponse{Users: make([]objectdto.Record, len(users))}
	for i := range users {
		resp.Users[i] = h.mapper.Project(users[i], dto.UserResponseShape)
	}
	logger.Info("Users listed successfully", slog.Int("count", len(users)))
	c.JSON(http.StatusOK, resp)
}

// updateUser godoc
// @Summary Update a user
// @Description Updates the logged-in user's name
// @Tags users
// @Accept  json
// @Produce  json
// @Param   id path string true "User ID to update"
// @Param   user body objectdto.Payload true "User details under data: name"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse "Missing or empty fields"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 500 {object} ErrorResponse "Failed to update user"
// @Security BearerAuth
// @Router /users/{id} [put]
func (h *userHandler) updateUser(c *gin.Context) {
	userID, ok := h.authorizeSelf(c)
	if !ok {
		return
	}
	req, ok := bindPayload[dto.UpdateUserRequest](c, h.mapper)
	if !ok {
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), userID, *req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to update user")
		return
	}
	c.JSON(http.StatusOK, h.mapper.Project(user, dto.UserResponseShape))
}

// deleteUser godoc
// @Summary Delete a user
// @Description Soft deletes the logged-in user
// @Tags users
// @Param   id path string true "User ID to delete"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 500 {object} ErrorResponse "Failed to delete user"
// @Security BearerAuth
// @Router /users/{id} [delete]
func (h *userHandler) deleteUser(c *gin.Context) {
	userID, ok := h.authorizeSelf(c)
	if !ok {
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), userID, userID); err != nil {
		respondServiceError(c, err, "Failed to delete user")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("User deleted", slog.String("user_id", userID))
	c.Status(http.StatusNoContent)
}

// authorizeSelf allows a user to act only on their own record.
func (h *userHandler) authorizeSelf(c *gin.Context) (string, bool) {
	loggedInUserID, ok := requireUserID(c)
	if !ok {
		return "", false
	}
	targetID := c.Param("id")
	if loggedInUserID != targetID {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("User forbidden to access another user's details",
			slog.String("accessor_id", loggedInUserID), slog.String("target_id", targetID))
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
		return "", false
	}
	return targetID, true
}
