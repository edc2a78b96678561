package store

import (
	"context"

	"github.com/MKhiriev/med-cabinet/internal/config"
	"github.com/MKhiriev/med-cabinet/internal/logger"
)

// Storages bundles all repositories behind a single constructor so the
// composition root wires the persistence layer in one call.
type Storages struct {
	UserRepository       UserRepository
	MedicationRepository MedicationRepository
}

// NewStorages connects to PostgreSQL, applies the embedded migrations, and
// constructs all repositories over the shared connection.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		log.Err(err).Msg("connection to database failed")
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		log.Err(err).Msg("database migration failed")
		return nil, err
	}

	return &Storages{
		UserRepository:       NewUserRepository(db, log),
		MedicationRepository: NewMedicationRepository(db, log),
	}, nil
}
