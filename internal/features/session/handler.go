package session

import (
	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/hazardwatch/internal/pkg/jwt"
	"github.com/xyz-asif/hazardwatch/internal/pkg/logger"
	"github.com/xyz-asif/hazardwatch/internal/pkg/response"
	"github.com/xyz-asif/hazardwatch/pkg/errors"
)

type Handler struct {
	gate   *Gate
	jwtCfg *jwt.Config
	log    *logger.Logger
}

func NewHandler(gate *Gate, jwtCfg *jwt.Config, log *logger.Logger) *Handler {
	return &Handler{gate: gate, jwtCfg: jwtCfg, log: log}
}

// Login godoc
// @Summary Admin login
// @Description Checks the admin credentials, starts the shared session and returns a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} response.SuccessResponse{data=LoginResponse}
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	state, sessionID, err := h.gate.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, errors.ErrInvalidCredentials) {
			response.AuthenticationError(c, "Invalid credentials")
			return
		}
		response.InternalServerError(c, "Login failed", "INTERNAL_ERROR")
		return
	}

	token, expiresAt, err := jwt.GenerateToken(state.User.Username, sessionID, h.jwtCfg)
	if err != nil {
		h.log.Error("sign admin token: %v", err)
		response.InternalServerError(c, "Failed to issue token", "TOKEN_ERROR")
		return
	}

	response.Success(c, LoginResponse{
		Session:   state,
		Token:     token,
		ExpiresAt: expiresAt,
	})
}

// Logout godoc
// @Summary Admin logout
// @Description Ends the shared session; every token issued for it stops working
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse{data=State}
// @Failure 401 {object} response.ErrorResponse
// @Router /auth/logout [post]
func (h *Handler) Logout(c *gin.Context) {
	if err := h.gate.Logout(c.Request.Context()); err != nil {
		h.log.Warn("logout: %v", err)
	}
	response.Success(c, h.gate.State())
}

// Session godoc
// @Summary Current session
// @Tags auth
// @Produce json
// @Success 200 {object} response.SuccessResponse{data=State}
// @Router /auth/session [get]
func (h *Handler) Session(c *gin.Context) {
	response.Success(c, h.gate.State())
}
