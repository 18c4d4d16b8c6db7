package userservice

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrDuplicateUsername = errors.New("duplicate username")
	ErrNotFound          = errors.New("user not found")
)

func newUserModel(db *mongo.Database) *DBModel {
	return &DBModel{db: db}
}

func (m *DBModel) collection() *mongo.Collection {
	return m.db.Collection("users")
}

func (m *DBModel) ensureIndexes(ctx context.Context) error {
	_, err := m.collection().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (m *DBModel) insertUser(ctx context.Context, u *User) error {
	res, err := m.collection().InsertOne(ctx, u)
	if err != nil {
		switch {
		case mongo.IsDuplicateKeyError(err):
			return ErrDuplicateUsername
		default:
			return err
		}
	}

	u.ID = res.InsertedID.(primitive.ObjectID)

	return nil
}

func (m *DBModel) getUserByUsername(ctx context.Context, username string) (*User, error) {
	var u User

	err := m.collection().FindOne(ctx, bson.M{"username": username}).Decode(&u)
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			return nil, ErrNotFound
		default:
			return nil, err
		}
	}

	return &u, nil
}

func (m *DBModel) getUserByID(ctx context.Context, id primitive.ObjectID) (*User, error) {
	var u User

	err := m.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			return nil, ErrNotFound
		default:
			return nil, err
		}
	}

	return &u, nil
}

func (m *DBModel) getUsers(ctx context.Context) ([]User, error) {
	cursor, err := m.collection().Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := []User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}

	return users, nil
}

// addBlog appends a blog id to the user's blogs list.
func (m *DBModel) addBlog(ctx context.Context, userID, blogID primitive.ObjectID) error {
	res, err := m.collection().UpdateByID(ctx, userID, bson.M{"$push": bson.M{"blogs": blogID}})
	if err != nil {
		return err
	}

	if res.MatchedCount == 0 {
		return ErrNotFound
	}

	return nil
}
