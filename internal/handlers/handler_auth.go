package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/object_dto/internal/core/ports/services"
	"github.com/SscSPs/object_dto/internal/dto"
	"github.com/SscSPs/object_dto/internal/middleware"
	"github.com/SscSPs/object_dto/internal/platform/config"
	"github.com/SscSPs/object_dto/internal/utils"
	"github.com/SscSPs/object_dto/pkg/objectdto"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	userService portssvc.UserSvcFacade
	mapper      *objectdto.Mapper
	jwtSecret   string
	jwtDuration time.Duration
	jwtIssuer   string
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(us portssvc.UserSvcFacade, cfg *config.Config, mapper *objectdto.Mapper) *AuthHandler {
	return &AuthHandler{
		userService: us,
		mapper:      mapper,
		jwtSecret:   cfg.JWTSecret,
		jwtDuration: cfg.JWTExpiryDuration,
		jwtIssuer:   cfg.JWTIssuer,
	}
}

// RegisterAuthRoutes sets up the public authentication routes. Login is rate
// limited per client IP using cfg.LoginRateLimit.
func RegisterAuthRoutes(r *gin.Engine, cfg *config.Config, userService portssvc.UserSvcFacade, mapper *objectdto.Mapper) error {
	h := NewAuthHandler(userService, cfg, mapper)

	ipLimiter, err := middleware.NewMemoryLimiter(cfg.LoginRateLimit)
	if err != nil {
		return err
	}

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/login", middleware.RateLimit(ipLimiter), h.Login)
		auth.POST("/register", h.Register)
	}
	return nil
}

// Login godoc
// @Summary User login
// @Description Authenticates a user and returns a JWT token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body objectdto.Payload true "Credentials under data: username, password"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	req, ok := bindPayload[dto.LoginRequest](c, h.mapper)
	if !ok {
		return
	}

	user, err := h.userService.AuthenticateUser(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondServiceError(c, err, "Failed to authenticate")
		return
	}

	token, expiresAt, err := utils.GenerateJWT(user.UserID, h.jwtSecret, h.jwtDuration, h.jwtIssuer)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to sign JWT token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Token: token, ExpiresAt: expiresAt})
}

// Register godoc
// @Summary Register new user
// @Description Creates a new user account. Every field of data is required.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body objectdto.Payload true "Registration info under data: name, username, password"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Conflict (e.g., username exists)"
// @Failure 500 {object} ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	req, ok := bindPayload[dto.CreateUserRequest](c, h.mapper)
	if !ok {
		return
	}

	newUser, err := h.userService.CreateUser(c.Request.Context(), *req, "")
	if err != nil {
		respondServiceError(c, err, "Failed to register user")
		return
	}

	c.JSON(http.StatusCreated, h.mapper.Project(newUser, dto.UserResponseShape))
}
