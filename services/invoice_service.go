package services

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/juxt-rts-design/Restaurant-backend-sub001/entity"
	"github.com/juxt-rts-design/Restaurant-backend-sub001/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type InvoiceService struct {
	DB          *gorm.DB
	Repo        *repository.InvoiceRepository
	OrderRepo   *repository.OrderRepository
	PaymentRepo *repository.PaymentRepository
	SessionRepo *repository.SessionRepository
	TableRepo   *repository.TableRepository
	Log         *zap.Logger
}

func NewInvoiceService(
	db *gorm.DB,
	repo *repository.InvoiceRepository,
	orderRepo *repository.OrderRepository,
	paymentRepo *repository.PaymentRepository,
	sessionRepo *repository.SessionRepository,
	tableRepo *repository.TableRepository,
	log *zap.Logger,
) *InvoiceService {
	return &InvoiceService{
		DB: db, Repo: repo, OrderRepo: orderRepo, PaymentRepo: paymentRepo,
		SessionRepo: sessionRepo, TableRepo: tableRepo, Log: log,
	}
}

// LigneFacture is the denormalized shape of one product line inside
// the produits_json blob.
type LigneFacture struct {
	ProduitID    uint   `json:"produitId"`
	Nom          string `json:"nom"`
	Quantite     int    `json:"quantite"`
	PrixUnitaire int64  `json:"prixUnitaire"`
	Total        int64  `json:"total"`
}

type TotauxFacture struct {
	MontantTotal int64 `json:"montantTotal"`
	NbLignes     int   `json:"nbLignes"`
}

// ArchiveIn is the fully-assembled snapshot this component persists
// verbatim. The invoice number is the caller's responsibility.
type ArchiveIn struct {
	NumeroFacture   string
	CommandeID      uint
	SessionID       uint
	ClientID        uint
	NomClient       string
	NomTable        string
	DateCommande    time.Time
	MontantTotal    int64
	MethodePaiement string
	StatutPaiement  string
	CodeValidation  string
	DatePaiement    *time.Time
	Lignes          []LigneFacture
	Totaux          TotauxFacture
	Restaurant      entity.RestaurantInfo
}

type ArchiveRes struct {
	InvoiceID     uint   `json:"invoiceId"`
	NumeroFacture string `json:"numeroFacture"`
}

// Archive persists the snapshot. Records are write-once; a duplicate
// invoice number is a conflict.
func (s *InvoiceService) Archive(in *ArchiveIn) (*ArchiveRes, error) {
	if in.NumeroFacture == "" {
		return nil, ErrConflict
	}

	produits, err := json.Marshal(in.Lignes)
	if err != nil {
		return nil, err
	}
	totaux, err := json.Marshal(in.Totaux)
	if err != nil {
		return nil, err
	}
	restau, err := json.Marshal(in.Restaurant)
	if err != nil {
		return nil, err
	}

	f := entity.FactureArchivee{
		NumeroFacture:   in.NumeroFacture,
		DateFacture:     time.Now(),
		DateCommande:    in.DateCommande,
		CommandeID:      in.CommandeID,
		SessionID:       in.SessionID,
		ClientID:        in.ClientID,
		NomClient:       in.NomClient,
		NomTable:        in.NomTable,
		MontantTotal:    in.MontantTotal,
		MethodePaiement: in.MethodePaiement,
		StatutPaiement:  in.StatutPaiement,
		CodeValidation:  in.CodeValidation,
		DatePaiement:    in.DatePaiement,
		ProduitsJSON:    string(produits),
		TotauxJSON:      string(totaux),
		RestaurantInfo:  string(restau),
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.Create(tx, &f)
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrConflict
		}
		s.Log.Error("archive invoice", zap.String("numero", in.NumeroFacture), zap.Error(err))
		return nil, err
	}
	return &ArchiveRes{InvoiceID: f.ID, NumeroFacture: f.NumeroFacture}, nil
}

// AssembleFromOrder snapshots a finalized order (lines, settled
// payment, session, client, table, restaurant) into an ArchiveIn.
func (s *InvoiceService) AssembleFromOrder(commandeID uint) (*ArchiveIn, error) {
	o, err := s.OrderRepo.GetCommande(commandeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	p, err := s.PaymentRepo.GetSettledForCommande(o.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConflict // no settled payment yet
		}
		return nil, err
	}

	sess, err := s.SessionRepo.GetSessionWithRefs(o.SessionID)
	if err != nil {
		return nil, err
	}
	resto, err := s.TableRepo.GetRestaurant(sess.Table.RestaurantID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	lignes, err := s.OrderRepo.GetLignes(o.ID)
	if err != nil {
		return nil, err
	}

	var total int64
	out := make([]LigneFacture, 0, len(lignes))
	for _, l := range lignes {
		lineTotal := int64(l.Quantite) * l.PrixUnitaire
		total += lineTotal

		var nom string
		var prod entity.Produit
		if err := s.DB.First(&prod, l.ProduitID).Error; err == nil {
			nom = prod.Nom
		}
		out = append(out, LigneFacture{
			ProduitID:    l.ProduitID,
			Nom:          nom,
			Quantite:     l.Quantite,
			PrixUnitaire: l.PrixUnitaire,
			Total:        lineTotal,
		})
	}

	in := &ArchiveIn{
		CommandeID:      o.ID,
		SessionID:       sess.ID,
		ClientID:        sess.ClientID,
		NomClient:       sess.Client.NomComplet,
		NomTable:        sess.Table.NomTable,
		DateCommande:    o.DateCommande,
		MontantTotal:    total,
		MethodePaiement: p.MethodePaiement,
		StatutPaiement:  p.StatutPaiement,
		CodeValidation:  p.CodeValidation,
		DatePaiement:    p.DatePaiement,
		Lignes:          out,
		Totaux:          TotauxFacture{MontantTotal: total, NbLignes: len(out)},
	}
	if resto != nil {
		in.Restaurant = resto.Info()
	}
	return in, nil
}

func (s *InvoiceService) Search(f repository.InvoiceFilter) ([]entity.FactureArchivee, int64, error) {
	return s.Repo.Search(f)
}

func (s *InvoiceService) GetByNumber(numero string) (*entity.FactureArchivee, error) {
	f, err := s.Repo.GetByNumber(numero)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return f, err
}

// Delete is admin-only and exceptional.
func (s *InvoiceService) Delete(id uint) error {
	affected, err := s.Repo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
