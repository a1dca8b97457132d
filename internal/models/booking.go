package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Booking references its treatment by name and its patient by email.
// The bookings collection carries a unique index on
// (treatment, date, patientEmail), created at startup.
type Booking struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Treatment    string             `bson:"treatment" json:"treatment"`
	Date         string             `bson:"date" json:"date"`
	Slot         string             `bson:"slot" json:"slot"`
	PatientName  string             `bson:"patientName" json:"patientName"`
	PatientEmail string             `bson:"patientEmail" json:"patientEmail"`
	PatientPhone string             `bson:"patientPhone,omitempty" json:"patientPhone,omitempty"`
}
