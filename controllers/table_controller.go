package controllers

import (
	"strconv"

	"github.com/juxt-rts-design/Restaurant-backend-sub001/pkg/resp"
	"github.com/juxt-rts-design/Restaurant-backend-sub001/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TableController struct {
	Svc *services.TableService
	Log *zap.Logger
}

func NewTableController(svc *services.TableService, log *zap.Logger) *TableController {
	return &TableController{Svc: svc, Log: log}
}

// POST /gestion/tables
func (h *TableController) Create(c *gin.Context) {
	var req services.CreateTableIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	t, err := h.Svc.Create(&req)
	if err != nil {
		respondError(c, h.Log, "table.create", err)
		return
	}
	resp.Created(c, t)
}

// GET /gestion/tables?restaurantId=
func (h *TableController) List(c *gin.Context) {
	restID, _ := strconv.ParseUint(c.DefaultQuery("restaurantId", "1"), 10, 64)
	out, err := h.Svc.List(uint(restID))
	if err != nil {
		respondError(c, h.Log, "table.list", err)
		return
	}
	resp.OK(c, out)
}

type updateTableReq struct {
	NomTable string `json:"nomTable" binding:"required"`
	Capacite int    `json:"capacite" binding:"min=1"`
}

// PATCH /gestion/tables/:id
func (h *TableController) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req updateTableReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.Update(id, req.NomTable, req.Capacite); err != nil {
		respondError(c, h.Log, "table.update", err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}

type setActiveReq struct {
	Active *bool `json:"active" binding:"required"`
}

// PATCH /gestion/tables/:id/active
func (h *TableController) SetActive(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req setActiveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.SetActive(id, *req.Active); err != nil {
		respondError(c, h.Log, "table.setActive", err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}
