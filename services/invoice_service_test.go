package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/juxt-rts-design/Restaurant-backend-sub001/entity"
	"github.com/juxt-rts-design/Restaurant-backend-sub001/repository"
)

func seedArchiveIn(numero string) *ArchiveIn {
	return &ArchiveIn{
		NumeroFacture:   numero,
		CommandeID:      1,
		SessionID:       1,
		ClientID:        1,
		NomClient:       "Alice Martin",
		NomTable:        "Table 1",
		DateCommande:    time.Now(),
		MontantTotal:    3000,
		MethodePaiement: entity.MethodeALaCaisse,
		StatutPaiement:  entity.PaiementEffectue,
		CodeValidation:  "AB12CD34",
		Lignes: []LigneFacture{
			{ProduitID: 1, Nom: "Poulet braisé", Quantite: 2, PrixUnitaire: 1500, Total: 3000},
		},
		Totaux:     TotauxFacture{MontantTotal: 3000, NbLignes: 1},
		Restaurant: entity.RestaurantInfo{Nom: "Chez Test"},
	}
}

func TestInvoiceArchiveAndGet(t *testing.T) {
	s := newTestServices(t)

	res, err := s.Invoice.Archive(seedArchiveIn("FAC-20260831-TEST0001"))
	if err != nil {
		t.Fatalf("archive: %v", err)
	}
	if res.InvoiceID == 0 {
		t.Fatal("missing invoice id")
	}

	f, err := s.Invoice.GetByNumber("FAC-20260831-TEST0001")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if f.MontantTotal != 3000 || f.NomClient != "Alice Martin" {
		t.Fatalf("bad snapshot: %+v", f)
	}

	var lignes []LigneFacture
	if err := json.Unmarshal([]byte(f.ProduitsJSON), &lignes); err != nil {
		t.Fatalf("produits_json: %v", err)
	}
	if len(lignes) != 1 || lignes[0].Total != 3000 {
		t.Fatalf("bad lignes: %+v", lignes)
	}
}

func TestInvoiceArchiveDuplicateNumber(t *testing.T) {
	s := newTestServices(t)

	if _, err := s.Invoice.Archive(seedArchiveIn("FAC-20260831-DUP00001")); err != nil {
		t.Fatalf("first archive: %v", err)
	}
	if _, err := s.Invoice.Archive(seedArchiveIn("FAC-20260831-DUP00001")); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict got %v", err)
	}
	if _, err := s.Invoice.Archive(seedArchiveIn("")); !errors.Is(err, ErrConflict) {
		t.Fatalf("empty number: expected ErrConflict got %v", err)
	}
}

func seedInvoice(t *testing.T, s *testServices, numero, client, table, methode string, montant int64) {
	t.Helper()
	in := seedArchiveIn(numero)
	in.NomClient = client
	in.NomTable = table
	in.MethodePaiement = methode
	in.MontantTotal = montant
	if _, err := s.Invoice.Archive(in); err != nil {
		t.Fatalf("seed invoice %s: %v", numero, err)
	}
}

func TestInvoiceSearchFiltersCombine(t *testing.T) {
	s := newTestServices(t)

	seedInvoice(t, s, "FAC-A", "Alice Martin", "Table 1", entity.MethodeALaCaisse, 3000)
	seedInvoice(t, s, "FAC-B", "Alice Martin", "Table 2", entity.MethodeEspeces, 800)
	seedInvoice(t, s, "FAC-C", "Bob Durand", "Table 1", entity.MethodeALaCaisse, 9000)

	min, max := int64(1000), int64(5000)
	got, total, err := s.Invoice.Search(repository.InvoiceFilter{
		MontantMin:      &min,
		MontantMax:      &max,
		MethodePaiement: entity.MethodeALaCaisse,
	})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if total != 1 || len(got) != 1 || got[0].NumeroFacture != "FAC-A" {
		t.Fatalf("expected only FAC-A, got total=%d %+v", total, got)
	}

	// partial client name matches
	got, total, err = s.Invoice.Search(repository.InvoiceFilter{NomClient: "alice"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected 2 for client alice got %d", total)
	}

	// no filter returns everything, newest first
	got, total, _ = s.Invoice.Search(repository.InvoiceFilter{})
	if total != 3 || len(got) != 3 {
		t.Fatalf("expected all 3 got total=%d len=%d", total, len(got))
	}
}

func TestInvoiceSearchDateAndPaging(t *testing.T) {
	s := newTestServices(t)

	for i := 0; i < 5; i++ {
		seedInvoice(t, s, fmt.Sprintf("FAC-P%d", i), "Alice Martin", "Table 1", entity.MethodeEspeces, 1000)
	}

	got, total, err := s.Invoice.Search(repository.InvoiceFilter{Limit: 2, Offset: 2})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if total != 5 || len(got) != 2 {
		t.Fatalf("expected total=5 page=2 got total=%d len=%d", total, len(got))
	}

	future := time.Now().Add(24 * time.Hour)
	_, total, err = s.Invoice.Search(repository.InvoiceFilter{DateDebut: &future})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if total != 0 {
		t.Fatalf("expected 0 future invoices got %d", total)
	}
}

func TestInvoiceDelete(t *testing.T) {
	s := newTestServices(t)
	seedInvoice(t, s, "FAC-DEL", "Alice Martin", "Table 1", entity.MethodeEspeces, 1000)

	f, _ := s.Invoice.GetByNumber("FAC-DEL")
	if err := s.Invoice.Delete(f.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.Invoice.GetByNumber("FAC-DEL"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound got %v", err)
	}
	if err := s.Invoice.Delete(f.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete: expected ErrNotFound got %v", err)
	}
}

func TestAssembleFromOrder(t *testing.T) {
	s := newTestServices(t)
	out := seedOpenSession(t, s, "QR123")
	prod := seedProduct(t, s.DB, "Poulet braisé", 1500, 10)
	cart := seedCart(t, s, out.Session.ID)

	if err := s.Cart.Add(cart.ID, prod.ID, 2); err != nil {
		t.Fatalf("add: %v", err)
	}
	o, err := s.Cart.CloseToOrder(cart.ID)
	if err != nil {
		t.Fatalf("closeToOrder: %v", err)
	}

	// no settled payment yet
	if _, err := s.Invoice.AssembleFromOrder(o.ID); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict got %v", err)
	}

	p, _ := s.Payment.Create(o.ID, entity.MethodeALaCaisse, 3000)
	if _, err := s.Payment.ValidateByCode(p.CodeValidation); err != nil {
		t.Fatalf("validate: %v", err)
	}

	in, err := s.Invoice.AssembleFromOrder(o.ID)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if in.MontantTotal != 3000 || in.Totaux.NbLignes != 1 {
		t.Fatalf("bad totals: %+v", in.Totaux)
	}
	if in.NomClient != "Alice Martin" || in.NomTable != "Table 1" {
		t.Fatalf("bad refs: %q %q", in.NomClient, in.NomTable)
	}
	if in.MethodePaiement != entity.MethodeALaCaisse || in.CodeValidation != p.CodeValidation {
		t.Fatalf("bad payment snapshot: %+v", in)
	}
	if in.Restaurant.Nom != "Chez Test" {
		t.Fatalf("bad restaurant info: %+v", in.Restaurant)
	}
	if len(in.Lignes) != 1 || in.Lignes[0].Nom != "Poulet braisé" || in.Lignes[0].Total != 3000 {
		t.Fatalf("bad lignes: %+v", in.Lignes)
	}
}
