package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/account"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	ucAuth "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/auth"
)

type AuthHandler struct {
	login *ucAuth.Login
}

func NewAuthHandler(login *ucAuth.Login) *AuthHandler {
	return &AuthHandler{login: login}
}

// LoginRequest carries a username for admins and an email for doctors and
// patients.
type LoginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password" binding:"required"`
}

// Login serves POST /auth/:role/login.
func (h *AuthHandler) Login(c *gin.Context) {
	role, ok := account.ParseRole(c.Param("role"))
	if !ok {
		httperr.NotFound(c, "unknown_role", "Unknown role.")
		return
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	identifier := req.Email
	if role == account.RoleAdmin {
		identifier = req.Username
	}

	res, err := h.login.Execute(c.Request.Context(), ucAuth.LoginInput{
		Role:       role,
		Identifier: identifier,
		Password:   req.Password,
	})
	if err != nil {
		writeError(c, err, nil)
		return
	}

	httpresp.OK(c, res)
}
