package services

import (
	"errors"
	"testing"

	"github.com/juxt-rts-design/Restaurant-backend-sub001/entity"
)

func seedCart(t *testing.T, s *testServices, sessionID uint) *entity.Panier {
	t.Helper()
	p, err := s.Cart.GetOrCreate(sessionID, "Alice")
	if err != nil {
		t.Fatalf("open cart: %v", err)
	}
	return p
}

func TestCartGetOrCreateIsStable(t *testing.T) {
	s := newTestServices(t)
	out := seedOpenSession(t, s, "QR123")

	p1 := seedCart(t, s, out.Session.ID)
	p2 := seedCart(t, s, out.Session.ID)
	if p1.ID != p2.ID {
		t.Fatalf("expected the same active panier, got %d and %d", p1.ID, p2.ID)
	}

	// a different identity gets its own panier
	p3, err := s.Cart.GetOrCreate(out.Session.ID, "Bob")
	if err != nil {
		t.Fatalf("open cart: %v", err)
	}
	if p3.ID == p1.ID {
		t.Fatal("identities must not share a panier")
	}
}

func TestActiveCartInvariantBackedBySchema(t *testing.T) {
	s := newTestServices(t)
	out := seedOpenSession(t, s, "QR123")
	prod := seedProduct(t, s.DB, "Poulet braisé", 1500, 10)
	cart := seedCart(t, s, out.Session.ID)

	// a duplicate ACTIF panier for the same identity must be rejected
	// by the database even when inserted behind the service's back
	dup := entity.Panier{
		SessionID:      out.Session.ID,
		NomUtilisateur: "Alice",
		StatutPanier:   entity.PanierActif,
	}
	if err := s.DB.Create(&dup).Error; err == nil {
		t.Fatal("schema accepted a second ACTIF panier for one identity")
	}

	// the index only covers active paniers: once closed, a fresh one opens
	if err := s.Cart.Add(cart.ID, prod.ID, 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := s.Cart.CloseToOrder(cart.ID); err != nil {
		t.Fatalf("closeToOrder: %v", err)
	}
	next := seedCart(t, s, out.Session.ID)
	if next.ID == cart.ID {
		t.Fatal("expected a fresh panier after the previous one closed")
	}
}

func TestCartAddInvalidQuantity(t *testing.T) {
	s := newTestServices(t)
	out := seedOpenSession(t, s, "QR123")
	prod := seedProduct(t, s.DB, "Poulet braisé", 1500, 10)
	cart := seedCart(t, s, out.Session.ID)

	if err := s.Cart.Add(cart.ID, prod.ID, 0); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity got %v", err)
	}
	if err := s.Cart.Add(cart.ID, prod.ID, -3); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity got %v", err)
	}
}

func TestCartAddUnknownOrInactiveProduct(t *testing.T) {
	s := newTestServices(t)
	out := seedOpenSession(t, s, "QR123")
	cart := seedCart(t, s, out.Session.ID)

	if err := s.Cart.Add(cart.ID, 999, 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound got %v", err)
	}

	prod := seedProduct(t, s.DB, "Jus de bissap", 500, 10)
	s.DB.Model(&entity.Produit{}).Where("id = ?", prod.ID).Update("active", false)
	if err := s.Cart.Add(cart.ID, prod.ID, 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for inactive product got %v", err)
	}
}

func TestCartAddMergesExistingLine(t *testing.T) {
	s := newTestServices(t)
	out := seedOpenSession(t, s, "QR123")
	prod := seedProduct(t, s.DB, "Poulet braisé", 1500, 10)
	cart := seedCart(t, s, out.Session.ID)

	if err := s.Cart.Add(cart.ID, prod.ID, 2); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := s.Cart.Add(cart.ID, prod.ID, 3); err != nil {
		t.Fatalf("add again: %v", err)
	}

	p, total, err := s.Cart.Get(cart.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(p.Lignes) != 1 {
		t.Fatalf("expected merged line, got %d lines", len(p.Lignes))
	}
	if p.Lignes[0].Quantite != 5 {
		t.Fatalf("expected qty 5 got %d", p.Lignes[0].Quantite)
	}
	if total != 7500 {
		t.Fatalf("expected total 7500 got %d", total)
	}
}

func TestCartUpdateQtyCollapsesToDelete(t *testing.T) {
	s := newTestServices(t)
	out := seedOpenSession(t, s, "QR123")
	prod := seedProduct(t, s.DB, "Poulet braisé", 1500, 10)
	cart := seedCart(t, s, out.Session.ID)

	if err := s.Cart.Add(cart.ID, prod.ID, 2); err != nil {
		t.Fatalf("add: %v", err)
	}
	p, _, _ := s.Cart.Get(cart.ID)
	lineID := p.Lignes[0].ID

	if err := s.Cart.UpdateQty(lineID, 4); err != nil {
		t.Fatalf("update: %v", err)
	}
	p, _, _ = s.Cart.Get(cart.ID)
	if p.Lignes[0].Quantite != 4 {
		t.Fatalf("expected qty 4 got %d", p.Lignes[0].Quantite)
	}

	if err := s.Cart.UpdateQty(lineID, 0); err != nil {
		t.Fatalf("update to zero: %v", err)
	}
	p, _, _ = s.Cart.Get(cart.ID)
	if len(p.Lignes) != 0 {
		t.Fatalf("zero quantity must delete the line, got %d lines", len(p.Lignes))
	}

	// no zero or negative quantity line ever persists
	var cnt int64
	s.DB.Model(&entity.PanierProduit{}).Where("quantite < 1").Count(&cnt)
	if cnt != 0 {
		t.Fatalf("found %d lines with quantity < 1", cnt)
	}
}

func TestCartClear(t *testing.T) {
	s := newTestServices(t)
	out := seedOpenSession(t, s, "QR123")
	prod := seedProduct(t, s.DB, "Poulet braisé", 1500, 10)
	cart := seedCart(t, s, out.Session.ID)

	if err := s.Cart.Add(cart.ID, prod.ID, 2); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := s.Cart.Clear(cart.ID); err != nil {
		t.Fatalf("clear: %v", err)
	}
	total, err := s.Cart.Total(cart.ID)
	if err != nil {
		t.Fatalf("total: %v", err)
	}
	if total != 0 {
		t.Fatalf("expected empty cart total 0 got %d", total)
	}
}

func TestCloseToOrder(t *testing.T) {
	s := newTestServices(t)
	out := seedOpenSession(t, s, "QR123")
	prod := seedProduct(t, s.DB, "Poulet braisé", 1500, 10)
	cart := seedCart(t, s, out.Session.ID)

	if err := s.Cart.Add(cart.ID, prod.ID, 2); err != nil {
		t.Fatalf("add: %v", err)
	}
	// a later price change must not affect the captured unit price
	s.DB.Model(&entity.Produit{}).Where("id = ?", prod.ID).Update("prix", 9999)

	o, err := s.Cart.CloseToOrder(cart.ID)
	if err != nil {
		t.Fatalf("closeToOrder: %v", err)
	}
	if o.StatutCommande != entity.CommandeEnAttente {
		t.Fatalf("expected EN_ATTENTE got %s", o.StatutCommande)
	}

	d, err := s.Order.Detail(o.ID)
	if err != nil {
		t.Fatalf("detail: %v", err)
	}
	if len(d.Lignes) != 1 || d.Lignes[0].PrixUnitaire != 1500 {
		t.Fatalf("bad price snapshot: %+v", d.Lignes)
	}
	if d.Total != 3000 {
		t.Fatalf("expected total 3000 got %d", d.Total)
	}

	// panier closed and emptied
	var p entity.Panier
	s.DB.First(&p, cart.ID)
	if p.StatutPanier != entity.PanierFerme {
		t.Fatalf("panier not closed: %s", p.StatutPanier)
	}
	var lines int64
	s.DB.Model(&entity.PanierProduit{}).Where("panier_id = ?", cart.ID).Count(&lines)
	if lines != 0 {
		t.Fatalf("panier not emptied: %d lines", lines)
	}

	// stock decremented
	var got entity.Produit
	s.DB.First(&got, prod.ID)
	if got.Stock != 8 {
		t.Fatalf("expected stock 8 got %d", got.Stock)
	}
}

func TestCloseToOrderEmptyCart(t *testing.T) {
	s := newTestServices(t)
	out := seedOpenSession(t, s, "QR123")
	cart := seedCart(t, s, out.Session.ID)

	if _, err := s.Cart.CloseToOrder(cart.ID); !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart got %v", err)
	}
}

func TestCloseToOrderInsufficientStockIsAtomic(t *testing.T) {
	s := newTestServices(t)
	out := seedOpenSession(t, s, "QR123")
	plenty := seedProduct(t, s.DB, "Riz gras", 1000, 50)
	scarce := seedProduct(t, s.DB, "Langouste", 8000, 1)
	cart := seedCart(t, s, out.Session.ID)

	if err := s.Cart.Add(cart.ID, plenty.ID, 3); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := s.Cart.Add(cart.ID, scarce.ID, 2); err != nil {
		t.Fatalf("add: %v", err)
	}

	if _, err := s.Cart.CloseToOrder(cart.ID); !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock got %v", err)
	}

	// nothing of the conversion is visible
	var orders int64
	s.DB.Model(&entity.Commande{}).Count(&orders)
	if orders != 0 {
		t.Fatalf("order leaked out of rolled-back conversion: %d", orders)
	}
	var p entity.Panier
	s.DB.First(&p, cart.ID)
	if p.StatutPanier != entity.PanierActif {
		t.Fatalf("panier must stay ACTIF, got %s", p.StatutPanier)
	}
	var lines int64
	s.DB.Model(&entity.PanierProduit{}).Where("panier_id = ?", cart.ID).Count(&lines)
	if lines != 2 {
		t.Fatalf("cart lines lost: %d", lines)
	}
	var got entity.Produit
	s.DB.First(&got, plenty.ID)
	if got.Stock != 50 {
		t.Fatalf("stock decrement not rolled back: %d", got.Stock)
	}
}

func TestCloseToOrderTwiceConflicts(t *testing.T) {
	s := newTestServices(t)
	out := seedOpenSession(t, s, "QR123")
	prod := seedProduct(t, s.DB, "Poulet braisé", 1500, 10)
	cart := seedCart(t, s, out.Session.ID)

	if err := s.Cart.Add(cart.ID, prod.ID, 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := s.Cart.CloseToOrder(cart.ID); err != nil {
		t.Fatalf("closeToOrder: %v", err)
	}
	if _, err := s.Cart.CloseToOrder(cart.ID); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict got %v", err)
	}
}
