package controllers

import (
	"strconv"

	"github.com/juxt-rts-design/Restaurant-backend-sub001/pkg/resp"
	"github.com/juxt-rts-design/Restaurant-backend-sub001/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type MenuController struct {
	Svc *services.MenuService
	Log *zap.Logger
}

func NewMenuController(svc *services.MenuService, log *zap.Logger) *MenuController {
	return &MenuController{Svc: svc, Log: log}
}

// GET /menu?categorieId=
func (h *MenuController) ListProducts(c *gin.Context) {
	var catID *uint
	if v := c.Query("categorieId"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			resp.BadRequest(c, "invalid categorieId")
			return
		}
		id := uint(n)
		catID = &id
	}
	out, err := h.Svc.ListProducts(catID)
	if err != nil {
		respondError(c, h.Log, "menu.listProducts", err)
		return
	}
	resp.OK(c, out)
}

// GET /menu/categories
func (h *MenuController) ListCategories(c *gin.Context) {
	out, err := h.Svc.ListCategories()
	if err != nil {
		respondError(c, h.Log, "menu.listCategories", err)
		return
	}
	resp.OK(c, out)
}

// POST /gestion/produits
func (h *MenuController) CreateProduct(c *gin.Context) {
	var req services.CreateProductIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	p, err := h.Svc.CreateProduct(&req)
	if err != nil {
		respondError(c, h.Log, "menu.createProduct", err)
		return
	}
	resp.Created(c, p)
}

// PATCH /gestion/produits/:id
func (h *MenuController) UpdateProduct(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req services.UpdateProductIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.UpdateProduct(id, &req); err != nil {
		respondError(c, h.Log, "menu.updateProduct", err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}
