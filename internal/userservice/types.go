package userservice

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bloglistapp/bloglist/internal/common"
)

const (
	AccessTokenTime time.Duration = 7 * 24 * time.Hour

	userCacheTime time.Duration = time.Minute
)

var (
	AnonymousUser = User{}
)

type UserService struct {
	m      *DBModel
	mb     common.MessageProducer
	c      *common.Cache
	secret []byte
}

type DBModel struct {
	db *mongo.Database
}

type User struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Username     string               `bson:"username" json:"username"`
	Name         string               `bson:"name,omitempty" json:"name,omitempty"`
	Password     Password             `bson:"-" json:"-"`
	PasswordHash []byte               `bson:"passwordHash" json:"-"`
	Blogs        []primitive.ObjectID `bson:"blogs" json:"blogs"`
}

type Password struct {
	Plain string `json:"-"`
	hash  []byte `json:"-"`
}

// AuthToken is the response of a successful login. The token is a signed JWT
// carrying the username and user id.
type AuthToken struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Name     string `json:"name,omitempty"`
}
