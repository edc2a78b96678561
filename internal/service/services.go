package service

import (
	"github.com/MKhiriev/med-cabinet/internal/config"
	"github.com/MKhiriev/med-cabinet/internal/logger"
	"github.com/MKhiriev/med-cabinet/internal/store"
	"github.com/MKhiriev/med-cabinet/internal/validators"
)

type Services struct {
	AuthService       AuthService
	MedicationService MedicationService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:       NewAuthService(storages.UserRepository, validators.NewUserValidator(), cfg.Auth, logger),
		MedicationService: NewMedicationService(storages.MedicationRepository, validators.NewMedicationValidator(), logger),
	}
}
