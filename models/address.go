package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Address type values as stored by the admin address form
const (
    AddressTypeDomestic      = "domestic"
    AddressTypeInternational = "international"
)

type Address struct {
    ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
    Country       string             `bson:"country" json:"country"`
    State         string             `bson:"state" json:"state"`
    City          string             `bson:"city" json:"city"`
    Description   string             `bson:"description" json:"description"`
    Type          string             `bson:"type" json:"type"`
    StateImage    string             `bson:"stateImage,omitempty" json:"stateImage,omitempty"`
    StartingPrice float64            `bson:"startingPrice" json:"startingPrice"`
}
