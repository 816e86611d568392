package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is the read-only projection used when attaching the creator of a
// package to its summary. Credentials and profile fields stay out of the
// read path.
type User struct {
    ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
    Username string             `bson:"username" json:"username"`
    Email    string             `bson:"email" json:"email"`
}
