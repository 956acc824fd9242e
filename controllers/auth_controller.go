package controllers

import (
	"github.com/juxt-rts-design/Restaurant-backend-sub001/pkg/resp"
	"github.com/juxt-rts-design/Restaurant-backend-sub001/services"
	"github.com/juxt-rts-design/Restaurant-backend-sub001/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthController struct {
	Svc *services.AuthService
	Log *zap.Logger
}

func NewAuthController(svc *services.AuthService, log *zap.Logger) *AuthController {
	return &AuthController{Svc: svc, Log: log}
}

type loginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/login
func (h *AuthController) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := h.Svc.Login(req.Email, req.Password)
	if err != nil {
		respondError(c, h.Log, "auth.login", err)
		return
	}
	resp.OK(c, out)
}

// GET /auth/me
func (h *AuthController) Me(c *gin.Context) {
	u, err := h.Svc.Me(utils.CurrentUserID(c))
	if err != nil {
		respondError(c, h.Log, "auth.me", err)
		return
	}
	resp.OK(c, u)
}
