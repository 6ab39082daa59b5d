package handlers

import (
	"github.com/gin-gonic/gin"

	"medapp-server/internal/auth"
	"medapp-server/internal/middleware"
	"medapp-server/internal/store"
	"medapp-server/internal/utils"
)

// AuthHandler handles authentication-related requests.
type AuthHandler struct {
	Credentials *store.CredentialStore
	Tokens      *auth.TokenService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(credentials *store.CredentialStore, tokens *auth.TokenService) *AuthHandler {
	return &AuthHandler{Credentials: credentials, Tokens: tokens}
}

// RegisterRequest represents the request body for user registration.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,max=72"`
}

// Register handles user registration.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	user, err := h.Credentials.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, user.Sanitize())
}

// LoginRequest accepts a JSON body or the OAuth2 password form, where the
// email travels as "username".
type LoginRequest struct {
	Email    string `json:"email" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

// TokenResponse represents the response body for successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login handles user login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !utils.BindForm(c, &req) {
		return
	}

	user, err := h.Credentials.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := h.Tokens.Issue(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, TokenResponse{AccessToken: token, TokenType: "bearer"})
}

// Me returns the authenticated user.
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.Unauthorized(c, "Invalid authentication credentials")
		return
	}
	utils.Success(c, user.Sanitize())
}
