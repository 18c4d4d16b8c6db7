package blogservice

import (
	"context"
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bloglistapp/bloglist/internal/common"
)

func NewBlogService(db *mongo.Database, mb common.MessageProducer) *BlogService {
	return &BlogService{m: newBlogModel(db), mb: mb}
}

type CreateBlogRequest struct {
	Title  string
	URL    string
	Likes  int
	Author string
	UserID primitive.ObjectID
}

type UpdateBlogRequest struct {
	Title  string
	Author string
	URL    string
	Likes  int
}

// CreateBlog persists a new blog owned by the given user and publishes a
// blog.created event. Likes defaults to zero when the payload omits it.
func (s *BlogService) CreateBlog(ctx context.Context, req *CreateBlogRequest) (*Blog, error) {
	v := common.NewValidator()
	validateTitle(v, req.Title)
	validateURL(v, req.URL)
	validateLikes(v, req.Likes)
	validateObjectID(v, req.UserID, "user")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	blog := Blog{
		Title:  req.Title,
		Author: req.Author,
		URL:    req.URL,
		Likes:  req.Likes,
		UserID: req.UserID,
	}

	err := s.m.insert(ctx, &blog)
	if err != nil {
		return nil, err
	}

	data := struct {
		Title  string
		Author string
	}{
		Title:  blog.Title,
		Author: blog.Author,
	}

	eventData, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	err = s.mb.Publish(ctx, eventData, common.BlogCreatedKey, common.EventExchange)
	if err != nil {
		return nil, err
	}

	return &blog, nil
}

// GetBlogByID returns a blog by its id without the owner annotation.
func (s *BlogService) GetBlogByID(ctx context.Context, id primitive.ObjectID) (*Blog, error) {
	return s.m.getBlogByID(ctx, id)
}

// GetBlogs returns all blogs annotated with the reduced owner view.
func (s *BlogService) GetBlogs(ctx context.Context) ([]Blog, error) {
	return s.m.getBlogs(ctx)
}

// UpdateBlog replaces title, author, url, and likes on the blog. Only the
// user who created the blog can update it.
func (s *BlogService) UpdateBlog(ctx context.Context, id primitive.ObjectID, req *UpdateBlogRequest, userID primitive.ObjectID) (*Blog, error) {
	v := common.NewValidator()
	validateTitle(v, req.Title)
	validateURL(v, req.URL)
	validateLikes(v, req.Likes)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	blog, err := s.m.getBlogByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if blog.UserID != userID {
		return nil, ErrNotOwner
	}

	return s.m.updateBlog(ctx, id, req.Title, req.Author, req.URL, req.Likes)
}

// DeleteBlog deletes a blog. Only the user who created the blog can delete it.
func (s *BlogService) DeleteBlog(ctx context.Context, id, userID primitive.ObjectID) error {
	blog, err := s.m.getBlogByID(ctx, id)
	if err != nil {
		return err
	}

	if blog.UserID != userID {
		return ErrNotOwner
	}

	return s.m.deleteBlog(ctx, id)
}

// Stats computes the aggregation helpers over the current set of blogs.
func (s *BlogService) Stats(ctx context.Context) (*BlogStats, error) {
	blogs, err := s.m.getBlogs(ctx)
	if err != nil {
		return nil, err
	}

	return &BlogStats{
		TotalLikes:   TotalLikes(blogs),
		FavoriteBlog: FavoriteBlog(blogs),
		MostBlogs:    MostBlogs(blogs),
		MostLikes:    MostLikes(blogs),
	}, nil
}
