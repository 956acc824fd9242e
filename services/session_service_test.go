package services

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/juxt-rts-design/Restaurant-backend-sub001/entity"
)

func TestOpenSession(t *testing.T) {
	s := newTestServices(t)
	table := seedTable(t, s.DB, "QR123")

	out, err := s.Session.Open("QR123", "Alice")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if out.Session.StatutSession != entity.SessionOuverte {
		t.Fatalf("expected OUVERTE got %s", out.Session.StatutSession)
	}
	if out.Session.TableID != table.ID {
		t.Fatalf("wrong table: %d", out.Session.TableID)
	}
	if out.Client.NomComplet != "Alice" {
		t.Fatalf("wrong client: %q", out.Client.NomComplet)
	}
}

func TestOpenSessionUnknownQR(t *testing.T) {
	s := newTestServices(t)
	seedTable(t, s.DB, "QR123")

	if _, err := s.Session.Open("NOPE", "Alice"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound got %v", err)
	}
}

func TestOpenSessionInactiveTable(t *testing.T) {
	s := newTestServices(t)
	table := seedTable(t, s.DB, "QR123")
	if err := s.DB.Model(&entity.Table{}).Where("id = ?", table.ID).
		Update("active", false).Error; err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	if _, err := s.Session.Open("QR123", "Alice"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound got %v", err)
	}
}

func TestOpenSessionConflict(t *testing.T) {
	s := newTestServices(t)
	seedTable(t, s.DB, "QR123")

	if _, err := s.Session.Open("QR123", "Alice"); err != nil {
		t.Fatalf("first open: %v", err)
	}
	if _, err := s.Session.Open("QR123", "Bob"); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict got %v", err)
	}
}

func TestOpenSessionInvariantBackedBySchema(t *testing.T) {
	s := newTestServices(t)
	table := seedTable(t, s.DB, "QR123")

	out, err := s.Session.Open("QR123", "Alice")
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	// a second OUVERTE session for the same table must be rejected by
	// the database even when inserted behind the service's back
	client := entity.Client{NomComplet: "Bob"}
	if err := s.DB.Create(&client).Error; err != nil {
		t.Fatalf("client: %v", err)
	}
	dup := entity.Session{
		TableID:       table.ID,
		ClientID:      client.ID,
		StatutSession: entity.SessionOuverte,
		DateOuverture: time.Now(),
	}
	if err := s.DB.Create(&dup).Error; err == nil {
		t.Fatal("schema accepted a second OUVERTE session for one table")
	}

	// the index only covers open sessions: close, then reopen
	if err := s.Session.Close(out.Session.ID); err != nil {
		t.Fatalf("close: %v", err)
	}
	if _, err := s.Session.Open("QR123", "Bob"); err != nil {
		t.Fatalf("reopen after close: %v", err)
	}
}

func TestOpenSessionConcurrent(t *testing.T) {
	s := newTestServices(t)
	seedTable(t, s.DB, "QR123")

	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for _, nom := range []string{"Alice", "Bob"} {
		wg.Add(1)
		go func(nom string) {
			defer wg.Done()
			_, err := s.Session.Open("QR123", nom)
			errs <- err
		}(nom)
	}
	wg.Wait()
	close(errs)

	var opened, conflicted int
	for err := range errs {
		switch {
		case err == nil:
			opened++
		case errors.Is(err, ErrConflict):
			conflicted++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if opened != 1 || conflicted != 1 {
		t.Fatalf("expected exactly one open and one conflict, got %d/%d", opened, conflicted)
	}
}

func TestCloseSession(t *testing.T) {
	s := newTestServices(t)
	out := seedOpenSession(t, s, "QR123")

	if err := s.Session.Close(out.Session.ID); err != nil {
		t.Fatalf("close: %v", err)
	}
	got, err := s.Session.Get(out.Session.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.StatutSession != entity.SessionFermee {
		t.Fatalf("expected FERMÉE got %s", got.StatutSession)
	}
	if got.DateFermeture == nil {
		t.Fatal("missing close timestamp")
	}

	// second close signals the conflict instead of silently succeeding
	if err := s.Session.Close(out.Session.ID); !errors.Is(err, ErrAlreadyClosed) {
		t.Fatalf("expected ErrAlreadyClosed got %v", err)
	}
}

func TestCloseSessionNotFound(t *testing.T) {
	s := newTestServices(t)
	if err := s.Session.Close(9999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound got %v", err)
	}
}

func TestSweepStaleSessions(t *testing.T) {
	s := newTestServices(t)
	table := seedTable(t, s.DB, "QR123")
	table2 := seedTable(t, s.DB, "QR456")
	stale := seedSessionAt(t, s.DB, table.ID, time.Now().Add(-25*time.Hour))
	fresh := seedSessionAt(t, s.DB, table2.ID, time.Now().Add(-23*time.Hour))

	closed, err := s.Session.SweepStale(24 * time.Hour)
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if closed != 1 {
		t.Fatalf("expected 1 closed got %d", closed)
	}

	var got entity.Session
	s.DB.First(&got, stale.ID)
	if got.StatutSession != entity.SessionFermee {
		t.Fatalf("stale session not closed: %s", got.StatutSession)
	}
	got = entity.Session{}
	s.DB.First(&got, fresh.ID)
	if got.StatutSession != entity.SessionOuverte {
		t.Fatalf("fresh session touched: %s", got.StatutSession)
	}

	// re-running is a no-op
	closed, err = s.Session.SweepStale(24 * time.Hour)
	if err != nil {
		t.Fatalf("second sweep: %v", err)
	}
	if closed != 0 {
		t.Fatalf("expected 0 on idempotent re-run got %d", closed)
	}
}
