package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/fleet_inventory/internal/auth"
	"github.com/fleet_inventory/internal/config"
	"github.com/fleet_inventory/internal/logger"
	"github.com/fleet_inventory/internal/repositories"
	"github.com/fleet_inventory/pkg/utils"
)

// AuthHandler wraps the login/logout HTTP logic.
type AuthHandler struct {
	userRepo repositories.UserRepository
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(userRepo repositories.UserRepository) *AuthHandler {
	return &AuthHandler{userRepo: userRepo}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}

type UserInfo struct {
	Username string   `json:"username"`
	FullName string   `json:"fullName"`
	Roles    []string `json:"roles"`
}

// Login godoc
// @Summary User login
// @Description Validates credentials and returns a JWT carrying the user's resolved role set.
// @Tags auth
// @Accept  json
// @Produce  json
// @Param credentials body LoginRequest true "Login credentials"
// @Success 200 {object} utils.SuccessResponse{data=LoginResponse} "Token and user info"
// @Failure 400 {object} utils.APIErrorResponse "Invalid request parameters"
// @Failure 401 {object} utils.APIErrorResponse "Invalid username or password"
// @Failure 500 {object} utils.APIErrorResponse "Could not generate token"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	user, err := h.userRepo.GetByUsername(req.Username)
	if err != nil {
		logger.Warn("failed login attempt", zap.String("username", req.Username))
		utils.RespondUnauthorizedError(c, "Invalid username or password")
		return
	}

	if !user.Active {
		utils.RespondUnauthorizedError(c, "Account is disabled")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		logger.Warn("failed login attempt", zap.String("username", req.Username))
		utils.RespondUnauthorizedError(c, "Invalid username or password")
		return
	}

	expirationTime := time.Now().Add(time.Duration(config.AppConfig.JWTExpiryHours) * time.Hour)
	claims := &auth.Claims{
		UserID:   user.ID,
		Username: user.Username,
		Roles:    user.RoleNames(),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.Username,
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			Issuer:    "fleet_inventory",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(config.AppConfig.JWTSecret))
	if err != nil {
		utils.RespondInternalServerError(c, "Could not generate token", err.Error())
		return
	}

	logger.Info("user logged in", zap.String("username", user.Username))

	loginResp := LoginResponse{
		Token: tokenString,
		User: UserInfo{
			Username: user.Username,
			FullName: user.FullName,
			Roles:    user.RoleNames(),
		},
	}
	utils.RespondSuccess(c, http.StatusOK, loginResp, "Login successful")
}

// Logout godoc
// @Summary User logout
// @Description Invalidates the current token by denylisting its JTI.
// @Tags auth
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Success 200 {object} utils.SuccessResponse "Logged out"
// @Failure 400 {object} utils.APIErrorResponse "JTI or EXP missing from context"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	jtiVal, jtiExists := c.Get(auth.ContextJTIKey)
	expVal, expExists := c.Get(auth.ContextExpKey)

	if !jtiExists || !expExists {
		utils.RespondAPIError(c, http.StatusBadRequest, "Logout context error: JTI or EXP not found in context", nil)
		return
	}

	jti, okJTI := jtiVal.(string)
	exp, okEXP := expVal.(time.Time)

	if !okJTI || jti == "" {
		utils.RespondAPIError(c, http.StatusBadRequest, "Logout context error: invalid JTI", nil)
		return
	}
	if !okEXP {
		utils.RespondAPIError(c, http.StatusBadRequest, "Logout context error: invalid EXP", nil)
		return
	}

	auth.AddToDenylist(jti, exp)
	utils.RespondSuccess(c, http.StatusOK, nil, "Logged out")
}

// Profile godoc
// @Summary Current user profile
// @Description Returns the authenticated user's name and role set.
// @Tags auth
// @Security BearerAuth
// @Produce  json
// @Success 200 {object} utils.SuccessResponse{data=UserInfo}
// @Failure 401 {object} utils.APIErrorResponse "Not authenticated"
// @Router /auth/profile [get]
func (h *AuthHandler) Profile(c *gin.Context) {
	id, ok := actorID(c)
	if !ok {
		utils.RespondUnauthorizedError(c)
		return
	}

	user, err := h.userRepo.GetByID(id)
	if err != nil {
		utils.RespondNotFoundError(c, "User")
		return
	}

	utils.RespondSuccess(c, http.StatusOK, UserInfo{
		Username: user.Username,
		FullName: user.FullName,
		Roles:    user.RoleNames(),
	}, "")
}
