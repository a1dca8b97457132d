package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Treatment documents are seeded externally; the API never writes them.
// Name doubles as the foreign key bookings reference.
type Treatment struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name  string             `bson:"name" json:"name"`
	Slots []string           `bson:"slots" json:"slots"`
}
