package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/juxt-rts-design/Restaurant-backend-sub001/configs"
	"github.com/juxt-rts-design/Restaurant-backend-sub001/entity"
	"github.com/juxt-rts-design/Restaurant-backend-sub001/repository"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	// shared-cache sqlite tolerates exactly one writer
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}
	if err := configs.SetupDatabase(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

type testServices struct {
	DB      *gorm.DB
	Session *SessionService
	Cart    *CartService
	Order   *OrderService
	Payment *PaymentService
	Invoice *InvoiceService
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()
	db := setupTestDB(t)
	log := zap.NewNop()

	sessionRepo := repository.NewSessionRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	productRepo := repository.NewProductRepository(db)
	tableRepo := repository.NewTableRepository(db)

	return &testServices{
		DB:      db,
		Session: NewSessionService(db, sessionRepo, orderRepo, paymentRepo, log),
		Cart:    NewCartService(db, cartRepo, productRepo, orderRepo, nil),
		Order:   NewOrderService(db, orderRepo, productRepo, sessionRepo, nil, log),
		Payment: NewPaymentService(db, paymentRepo, orderRepo, log),
		Invoice: NewInvoiceService(db, invoiceRepo, orderRepo, paymentRepo, sessionRepo, tableRepo, log),
	}
}

func seedTable(t *testing.T, db *gorm.DB, qr string) entity.Table {
	t.Helper()
	resto := entity.Restaurant{Nom: "Chez Test", Adresse: "1 rue du Port", Active: true}
	if err := db.Create(&resto).Error; err != nil {
		t.Fatalf("restaurant: %v", err)
	}
	table := entity.Table{NomTable: "Table 1", Capacite: 4, QRCode: qr, Active: true, RestaurantID: resto.ID}
	if err := db.Create(&table).Error; err != nil {
		t.Fatalf("table: %v", err)
	}
	return table
}

func seedProduct(t *testing.T, db *gorm.DB, nom string, prix int64, stock int) entity.Produit {
	t.Helper()
	p := entity.Produit{Nom: nom, Prix: prix, Stock: stock, Active: true}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("produit: %v", err)
	}
	return p
}

func seedOpenSession(t *testing.T, s *testServices, qr string) *OpenSessionRes {
	t.Helper()
	seedTable(t, s.DB, qr)
	out, err := s.Session.Open(qr, "Alice Martin")
	if err != nil {
		t.Fatalf("open session: %v", err)
	}
	return out
}

func seedSessionAt(t *testing.T, db *gorm.DB, tableID uint, openedAt time.Time) entity.Session {
	t.Helper()
	client := entity.Client{NomComplet: "Client Test"}
	if err := db.Create(&client).Error; err != nil {
		t.Fatalf("client: %v", err)
	}
	sess := entity.Session{
		TableID:       tableID,
		ClientID:      client.ID,
		StatutSession: entity.SessionOuverte,
		DateOuverture: openedAt,
	}
	if err := db.Create(&sess).Error; err != nil {
		t.Fatalf("session: %v", err)
	}
	return sess
}
