package controllers

import (
	"github.com/juxt-rts-design/Restaurant-backend-sub001/pkg/resp"
	"github.com/juxt-rts-design/Restaurant-backend-sub001/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CartController struct {
	Svc *services.CartService
	Log *zap.Logger
}

func NewCartController(svc *services.CartService, log *zap.Logger) *CartController {
	return &CartController{Svc: svc, Log: log}
}

type openCartReq struct {
	SessionID      uint   `json:"sessionId" binding:"required"`
	NomUtilisateur string `json:"nomUtilisateur" binding:"required"`
}

// POST /paniers — returns the caller's active panier, creating it on
// first use
func (h *CartController) Open(c *gin.Context) {
	var req openCartReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	p, err := h.Svc.GetOrCreate(req.SessionID, req.NomUtilisateur)
	if err != nil {
		respondError(c, h.Log, "cart.open", err)
		return
	}
	resp.OK(c, p)
}

// GET /paniers/:id
func (h *CartController) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	p, total, err := h.Svc.Get(id)
	if err != nil {
		respondError(c, h.Log, "cart.get", err)
		return
	}
	resp.OK(c, gin.H{"panier": p, "total": total})
}

type addItemReq struct {
	ProduitID uint `json:"produitId" binding:"required"`
	Quantite  int  `json:"quantite" binding:"required"`
}

// POST /paniers/:id/items
func (h *CartController) AddItem(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req addItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.Add(id, req.ProduitID, req.Quantite); err != nil {
		respondError(c, h.Log, "cart.addItem", err)
		return
	}
	resp.Created(c, gin.H{"ok": true})
}

type updateQtyReq struct {
	Quantite int `json:"quantite"`
}

// PATCH /paniers/lignes/:id
func (h *CartController) UpdateQty(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req updateQtyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.UpdateQty(id, req.Quantite); err != nil {
		respondError(c, h.Log, "cart.updateQty", err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}

// DELETE /paniers/lignes/:id
func (h *CartController) RemoveItem(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.Remove(id); err != nil {
		respondError(c, h.Log, "cart.removeItem", err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}

// DELETE /paniers/:id/items
func (h *CartController) Clear(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.Clear(id); err != nil {
		respondError(c, h.Log, "cart.clear", err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}

// POST /paniers/:id/commander — converts the panier into a commande
func (h *CartController) CloseToOrder(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	o, err := h.Svc.CloseToOrder(id)
	if err != nil {
		respondError(c, h.Log, "cart.closeToOrder", err)
		return
	}
	resp.Created(c, o)
}
