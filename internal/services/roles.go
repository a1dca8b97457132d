package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/doctorsportal/doctors-portal-api/internal/models"
)

// RoleService answers role questions against the users collection. It
// is constructed once at startup and injected wherever a role check is
// needed.
type RoleService struct {
	users *mongo.Collection
}

func NewRoleService(db *mongo.Database) *RoleService {
	return &RoleService{users: db.Collection("users")}
}

// IsAdmin reports whether the user stored under email has the admin
// role. A user that does not exist is simply not an admin.
func (s *RoleService) IsAdmin(ctx context.Context, email string) (bool, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return user.Role == "admin", nil
}
