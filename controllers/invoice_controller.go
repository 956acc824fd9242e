package controllers

import (
	"fmt"
	"strconv"
	"time"

	"github.com/juxt-rts-design/Restaurant-backend-sub001/pkg/resp"
	"github.com/juxt-rts-design/Restaurant-backend-sub001/repository"
	"github.com/juxt-rts-design/Restaurant-backend-sub001/services"
	"github.com/juxt-rts-design/Restaurant-backend-sub001/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type InvoiceController struct {
	Svc *services.InvoiceService
	Log *zap.Logger
}

func NewInvoiceController(svc *services.InvoiceService, log *zap.Logger) *InvoiceController {
	return &InvoiceController{Svc: svc, Log: log}
}

type archiveReq struct {
	CommandeID    uint   `json:"commandeId" binding:"required"`
	NumeroFacture string `json:"numeroFacture"`
}

// POST /caisse/factures — snapshots a finalized order into the archive
func (h *InvoiceController) Archive(c *gin.Context) {
	var req archiveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	in, err := h.Svc.AssembleFromOrder(req.CommandeID)
	if err != nil {
		respondError(c, h.Log, "invoice.assemble", err)
		return
	}
	in.NumeroFacture = req.NumeroFacture
	if in.NumeroFacture == "" {
		in.NumeroFacture = fmt.Sprintf("FAC-%s-%s",
			time.Now().Format("20060102"), utils.NewValidationCode())
	}

	out, err := h.Svc.Archive(in)
	if err != nil {
		respondError(c, h.Log, "invoice.archive", err)
		return
	}
	resp.Created(c, out)
}

// GET /caisse/factures — combinable filters, AND semantics
func (h *InvoiceController) Search(c *gin.Context) {
	var f repository.InvoiceFilter

	if v := c.Query("dateDebut"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			resp.BadRequest(c, "invalid dateDebut")
			return
		}
		f.DateDebut = &t
	}
	if v := c.Query("dateFin"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			resp.BadRequest(c, "invalid dateFin")
			return
		}
		// inclusive end of day
		t = t.Add(24*time.Hour - time.Nanosecond)
		f.DateFin = &t
	}
	f.NomClient = c.Query("nomClient")
	f.NomTable = c.Query("nomTable")
	f.MethodePaiement = c.Query("methodePaiement")
	f.NumeroFacture = c.Query("numeroFacture")

	if v := c.Query("montantMin"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			resp.BadRequest(c, "invalid montantMin")
			return
		}
		f.MontantMin = &n
	}
	if v := c.Query("montantMax"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			resp.BadRequest(c, "invalid montantMax")
			return
		}
		f.MontantMax = &n
	}
	f.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))
	f.Offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))

	items, total, err := h.Svc.Search(f)
	if err != nil {
		respondError(c, h.Log, "invoice.search", err)
		return
	}
	resp.OK(c, gin.H{"items": items, "total": total, "limit": f.Limit, "offset": f.Offset})
}

// GET /caisse/factures/:numero
func (h *InvoiceController) GetByNumber(c *gin.Context) {
	numero := c.Param("numero")
	f, err := h.Svc.GetByNumber(numero)
	if err != nil {
		respondError(c, h.Log, "invoice.getByNumber", err)
		return
	}
	resp.OK(c, f)
}

// DELETE /admin/factures/:id — exceptional administrative operation
func (h *InvoiceController) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.Delete(id); err != nil {
		respondError(c, h.Log, "invoice.delete", err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}
