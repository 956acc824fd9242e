package controllers

import (
	"time"

	"github.com/juxt-rts-design/Restaurant-backend-sub001/pkg/resp"
	"github.com/juxt-rts-design/Restaurant-backend-sub001/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SessionController struct {
	Svc *services.SessionService
	Log *zap.Logger
}

func NewSessionController(svc *services.SessionService, log *zap.Logger) *SessionController {
	return &SessionController{Svc: svc, Log: log}
}

type openSessionReq struct {
	QRCode     string `json:"qrCode" binding:"required"`
	NomComplet string `json:"nomComplet" binding:"required"`
}

// POST /sessions/open (public: QR scan + name submission)
func (h *SessionController) Open(c *gin.Context) {
	var req openSessionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := h.Svc.Open(req.QRCode, req.NomComplet)
	if err != nil {
		respondError(c, h.Log, "session.open", err)
		return
	}
	resp.Created(c, out)
}

// GET /sessions/:id
func (h *SessionController) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	s, err := h.Svc.Get(id)
	if err != nil {
		respondError(c, h.Log, "session.get", err)
		return
	}
	resp.OK(c, s)
}

// POST /caisse/sessions/:id/close
func (h *SessionController) Close(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.Close(id); err != nil {
		respondError(c, h.Log, "session.close", err)
		return
	}
	resp.OK(c, gin.H{"closed": true})
}

// GET /caisse/sessions/:id/can-close
func (h *SessionController) CanClose(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	d, err := h.Svc.CanClose(id)
	if err != nil {
		respondError(c, h.Log, "session.canClose", err)
		return
	}
	resp.OK(c, d)
}

// POST /caisse/sessions/:id/auto-close
func (h *SessionController) AutoClose(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	out, err := h.Svc.AutoClose(id)
	if err != nil {
		respondError(c, h.Log, "session.autoClose", err)
		return
	}
	resp.OK(c, out)
}

// POST /admin/sessions/sweep - manual trigger of the stale sweep
func (h *SessionController) Sweep(maxAge time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		closed, err := h.Svc.SweepStale(maxAge)
		if err != nil {
			respondError(c, h.Log, "session.sweep", err)
			return
		}
		resp.OK(c, gin.H{"closed": closed})
	}
}
