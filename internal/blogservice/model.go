package blogservice

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrNotOwner       = errors.New("not the owner of the blog")
)

func newBlogModel(db *mongo.Database) *BlogModel {
	return &BlogModel{db: db}
}

func (m *BlogModel) collection() *mongo.Collection {
	return m.db.Collection("blogs")
}

func (m *BlogModel) insert(ctx context.Context, blog *Blog) error {
	res, err := m.collection().InsertOne(ctx, blog)
	if err != nil {
		return err
	}

	blog.ID = res.InsertedID.(primitive.ObjectID)

	return nil
}

func (m *BlogModel) getBlogByID(ctx context.Context, id primitive.ObjectID) (*Blog, error) {
	var blog Blog

	err := m.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&blog)
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return &blog, nil
}

// getBlogs returns all blogs, each annotated with the reduced view of its
// owning user via a $lookup against the users collection.
func (m *BlogModel) getBlogs(ctx context.Context) ([]Blog, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "users"},
			{Key: "localField", Value: "user"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "owner"},
		}}},
		bson.D{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$owner"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
	}

	cursor, err := m.collection().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	blogs := []Blog{}
	if err := cursor.All(ctx, &blogs); err != nil {
		return nil, err
	}

	return blogs, nil
}

// updateBlog replaces title, author, url, and likes on the blog and returns
// the updated document.
func (m *BlogModel) updateBlog(ctx context.Context, id primitive.ObjectID, title, author, url string, likes int) (*Blog, error) {
	update := bson.M{"$set": bson.M{
		"title":  title,
		"author": author,
		"url":    url,
		"likes":  likes,
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var blog Blog
	err := m.collection().FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&blog)
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return &blog, nil
}

func (m *BlogModel) deleteBlog(ctx context.Context, id primitive.ObjectID) error {
	res, err := m.collection().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if res.DeletedCount == 0 {
		return ErrRecordNotFound
	}

	return nil
}
