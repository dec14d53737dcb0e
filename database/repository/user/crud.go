// File: database/repository/user/crud.go
package userRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"afinare/models"
)

func (r *mongoUserRepo) Create(ctx context.Context, usr *models.User) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if usr.ID == "" {
		usr.ID = uuid.New().String()
	}
	if _, err := r.coll.InsertOne(ctx, usr); err != nil {
		return "", fmt.Errorf("failed to insert user: %w", err)
	}
	return usr.ID, nil
}

func (r *mongoUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var usr models.User
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&usr); err != nil {
		return nil, err
	}
	return &usr, nil
}

func (r *mongoUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var usr models.User
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&usr); err != nil {
		return nil, err
	}
	return &usr, nil
}

func (r *mongoUserRepo) SetFCMToken(ctx context.Context, id, token string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"fcmToken": token}})
	if err != nil {
		return fmt.Errorf("failed to set FCM token: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoUserRepo) ListAdmins(ctx context.Context) ([]models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"role": models.RoleAdmin})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var admins []models.User
	if err := cursor.All(ctx, &admins); err != nil {
		return nil, err
	}
	return admins, nil
}
