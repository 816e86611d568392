package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Theme names form a closed set; the admin UI only offers these values
// and the themes collection enforces a unique index on name.
var ThemeNames = []string{
    "HONEYMOON",
    "WILDLIFE",
    "HILL STATIONS",
    "PILGRIMAGE",
    "HERITAGE",
    "BEACH",
}

type Theme struct {
    ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
    Name        string             `bson:"name" json:"name"`
    Description string             `bson:"description,omitempty" json:"description,omitempty"`
    ThemeImage  string             `bson:"themeImage,omitempty" json:"themeImage,omitempty"`
}
