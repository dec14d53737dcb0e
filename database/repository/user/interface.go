// File: database/repository/user/interface.go
package userRepo

import (
	"context"

	"afinare/database"
	"afinare/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepository persists platform accounts. The role field on the user
// document is the single source of truth for administrative access.
type UserRepository interface {
	Create(ctx context.Context, usr *models.User) (string, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	SetFCMToken(ctx context.Context, id, token string) error
	ListAdmins(ctx context.Context) ([]models.User, error)
}

type mongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo constructs a new MongoDB UserRepository.
func NewMongoUserRepo() UserRepository {
	db := database.DB()
	return &mongoUserRepo{
		coll: db.Collection("users"),
	}
}
