package users

import (
	"context"

	"github.com/borbinha27/prova-3bim/internal/server/models"
)

// Repository is the persistence contract for the user collection.
// Lookups are linear scans; the collection has no secondary indexes.
type Repository interface {
	List(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	FindByNameEmail(ctx context.Context, nome, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
	Update(ctx context.Context, user *models.User) (*models.User, error)
	Delete(ctx context.Context, id int64) (*models.User, error)
}
