package service

import (
	"context"

	"github.com/MKhiriev/med-cabinet/models"
)

type AuthService interface {
	SignUp(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, email, password string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type MedicationService interface {
	Register(ctx context.Context, medication models.Medication) (models.Medication, error)
	List(ctx context.Context, filter models.MedicationFilter) ([]models.Medication, error)
	Update(ctx context.Context, medication models.Medication) (models.Medication, error)
	Delete(ctx context.Context, id, userID int64) error
}
