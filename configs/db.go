package configs

import (
	"fmt"

	"github.com/juxt-rts-design/Restaurant-backend-sub001/entity"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ConnectDB opens the database named by the config. sqlite is the
// development default, postgres the deployment target.
func ConnectDB(cfg *Config) (*gorm.DB, error) {
	var dial gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dial = postgres.Open(cfg.DBSource)
	case "sqlite":
		dial = sqlite.Open(cfg.DBSource)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
	return gorm.Open(dial, &gorm.Config{})
}

func SetupDatabase(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&entity.Restaurant{}, &entity.User{},
		&entity.Table{}, &entity.Client{}, &entity.Session{},
		&entity.Categorie{}, &entity.Produit{},
		&entity.Panier{}, &entity.PanierProduit{},
		&entity.Commande{}, &entity.CommandeProduit{},
		&entity.Paiement{},
		&entity.FactureArchivee{},
	); err != nil {
		return err
	}

	// Partial unique indexes put the one-open-session-per-table and
	// one-active-panier-per-identity invariants in the schema itself;
	// the application-level checks only provide the friendlier error.
	// The WHERE form is understood by both sqlite and postgres.
	for _, stmt := range []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS uniq_sessions_open_table
			ON sessions(table_id) WHERE statut_session = 'OUVERTE'`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uniq_paniers_active_identity
			ON paniers(session_id, nom_utilisateur) WHERE statut_panier = 'ACTIF'`,
	} {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
