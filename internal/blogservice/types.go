package blogservice

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bloglistapp/bloglist/internal/common"
)

type Blog struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title  string             `bson:"title" json:"title"`
	Author string             `bson:"author,omitempty" json:"author,omitempty"`
	URL    string             `bson:"url" json:"url"`
	Likes  int                `bson:"likes" json:"likes"`
	UserID primitive.ObjectID `bson:"user,omitempty" json:"user_id"`

	// User is the reduced view of the owning user, populated on listings.
	User *Owner `bson:"owner,omitempty" json:"user,omitempty"`
}

// Owner is the projection of a user that listings expose: username and
// display name only, never the password hash.
type Owner struct {
	Username string `bson:"username" json:"username"`
	Name     string `bson:"name,omitempty" json:"name,omitempty"`
}

type BlogModel struct {
	db *mongo.Database
}

type BlogService struct {
	m  *BlogModel
	mb common.MessageProducer
}

type AuthorBlogs struct {
	Author string `json:"author"`
	Blogs  int    `json:"blogs"`
}

type AuthorLikes struct {
	Author string `json:"author"`
	Likes  int    `json:"likes"`
}

type BlogStats struct {
	TotalLikes   int          `json:"total_likes"`
	FavoriteBlog *Blog        `json:"favorite_blog"`
	MostBlogs    *AuthorBlogs `json:"most_blogs"`
	MostLikes    *AuthorLikes `json:"most_likes"`
}
