package controllers

import (
	"time"

	"github.com/juxt-rts-design/Restaurant-backend-sub001/pkg/resp"
	"github.com/juxt-rts-design/Restaurant-backend-sub001/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PaymentController struct {
	Svc        *services.PaymentService
	OrderSvc   *services.OrderService
	SessionSvc *services.SessionService
	Log        *zap.Logger
}

func NewPaymentController(
	svc *services.PaymentService,
	orderSvc *services.OrderService,
	sessionSvc *services.SessionService,
	log *zap.Logger,
) *PaymentController {
	return &PaymentController{Svc: svc, OrderSvc: orderSvc, SessionSvc: sessionSvc, Log: log}
}

type createPaymentReq struct {
	CommandeID uint   `json:"commandeId" binding:"required"`
	Methode    string `json:"methode" binding:"required"`
	Montant    int64  `json:"montant" binding:"required,min=1"`
}

// POST /paiements — the customer receives the validation code
func (h *PaymentController) Create(c *gin.Context) {
	var req createPaymentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	p, err := h.Svc.Create(req.CommandeID, req.Methode, req.Montant)
	if err != nil {
		respondError(c, h.Log, "payment.create", err)
		return
	}
	resp.Created(c, p)
}

type validateReq struct {
	Code string `json:"code" binding:"required"`
}

// POST /caisse/paiements/validation — counter staff enters the code.
// A settled payment immediately re-evaluates the session close policy.
func (h *PaymentController) ValidateByCode(c *gin.Context) {
	var req validateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	p, err := h.Svc.ValidateByCode(req.Code)
	if err != nil {
		respondError(c, h.Log, "payment.validate", err)
		return
	}

	var closeRes *services.AutoCloseRes
	if d, err := h.OrderSvc.Detail(p.CommandeID); err == nil {
		closeRes, err = h.SessionSvc.CloseAfterPayment(d.Commande.SessionID)
		if err != nil {
			h.Log.Warn("close after payment",
				zap.Uint("sessionId", d.Commande.SessionID), zap.Error(err))
		}
	}
	resp.OK(c, gin.H{"paiement": p, "session": closeRes})
}

// POST /caisse/paiements/:id/annuler
func (h *PaymentController) Cancel(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.Cancel(id); err != nil {
		respondError(c, h.Log, "payment.cancel", err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}

// POST /caisse/paiements/:id/archiver
func (h *PaymentController) Archive(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.Archive(id); err != nil {
		respondError(c, h.Log, "payment.archive", err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}

// GET /caisse/paiements/:id
func (h *PaymentController) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	p, err := h.Svc.Get(id)
	if err != nil {
		respondError(c, h.Log, "payment.get", err)
		return
	}
	resp.OK(c, p)
}

// GET /caisse/paiements/stats?debut=2026-01-01&fin=2026-01-31
func (h *PaymentController) Stats(c *gin.Context) {
	from, err := parseDate(c.Query("debut"), time.Time{})
	if err != nil {
		resp.BadRequest(c, "invalid debut")
		return
	}
	to, err := parseDate(c.Query("fin"), time.Now())
	if err != nil {
		resp.BadRequest(c, "invalid fin")
		return
	}
	// make the end date inclusive
	to = to.Add(24*time.Hour - time.Nanosecond)

	out, err := h.Svc.StatsByMethod(from, to)
	if err != nil {
		respondError(c, h.Log, "payment.stats", err)
		return
	}
	resp.OK(c, out)
}

func parseDate(s string, fallback time.Time) (time.Time, error) {
	if s == "" {
		return fallback, nil
	}
	return time.Parse("2006-01-02", s)
}
