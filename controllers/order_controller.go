package controllers

import (
	"github.com/juxt-rts-design/Restaurant-backend-sub001/pkg/resp"
	"github.com/juxt-rts-design/Restaurant-backend-sub001/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type OrderController struct {
	Svc *services.OrderService
	Log *zap.Logger
}

func NewOrderController(svc *services.OrderService, log *zap.Logger) *OrderController {
	return &OrderController{Svc: svc, Log: log}
}

type createOrderReq struct {
	SessionID uint `json:"sessionId" binding:"required"`
}

// POST /commandes
func (h *OrderController) Create(c *gin.Context) {
	var req createOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	o, err := h.Svc.Create(req.SessionID)
	if err != nil {
		respondError(c, h.Log, "order.create", err)
		return
	}
	resp.Created(c, o)
}

// GET /commandes/:id
func (h *OrderController) Detail(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	d, err := h.Svc.Detail(id)
	if err != nil {
		respondError(c, h.Log, "order.detail", err)
		return
	}
	resp.OK(c, d)
}

// GET /sessions/:id/commandes
func (h *OrderController) ListForSession(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	out, err := h.Svc.ListForSession(id)
	if err != nil {
		respondError(c, h.Log, "order.listForSession", err)
		return
	}
	resp.OK(c, out)
}

// GET /kitchen/commandes — pending queue, oldest first
func (h *OrderController) ListPending(c *gin.Context) {
	out, err := h.Svc.ListPending()
	if err != nil {
		respondError(c, h.Log, "order.listPending", err)
		return
	}
	resp.OK(c, out)
}

type updateStatusReq struct {
	Statut string `json:"statut" binding:"required"`
}

// PATCH /kitchen/commandes/:id/statut
func (h *OrderController) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req updateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	o, err := h.Svc.UpdateStatus(id, req.Statut)
	if err != nil {
		respondError(c, h.Log, "order.updateStatus", err)
		return
	}
	resp.OK(c, o)
}
