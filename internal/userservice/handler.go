package userservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bloglistapp/bloglist/internal/common"
)

var (
	ErrAuthenticationFailure = fmt.Errorf("invalid username or password")
)

func NewUserService(db *mongo.Database, mb common.MessageProducer, c *common.Cache, secret []byte) *UserService {
	return &UserService{
		m:      newUserModel(db),
		mb:     mb,
		c:      c,
		secret: secret,
	}
}

// EnsureIndexes creates the unique username index. Must be called once at
// startup before the service accepts requests.
func (s *UserService) EnsureIndexes(ctx context.Context) error {
	return s.m.ensureIndexes(ctx)
}

// RegisterUser creates a new user account and publishes a user.registered event.
func (s *UserService) RegisterUser(ctx context.Context, username, name, password string) (*User, error) {
	v := common.NewValidator()
	validateUsername(v, username)
	validatePassword(v, password)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	u := User{
		Username: username,
		Name:     name,
		Password: Password{Plain: password},
		Blogs:    []primitive.ObjectID{},
	}

	// Set the password hash; the plaintext is never persisted.
	err := u.Password.set(u.Password.Plain)
	if err != nil {
		return nil, err
	}
	u.PasswordHash = u.Password.hash

	err = s.m.insertUser(ctx, &u)
	if err != nil {
		return nil, err
	}

	data := struct {
		Username string
	}{
		Username: u.Username,
	}

	eventData, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	err = s.mb.Publish(ctx, eventData, common.UserRegisteredKey, common.EventExchange)
	if err != nil {
		return nil, err
	}

	return &u, nil
}

// LoginUser verifies the credentials and returns a signed bearer token.
func (s *UserService) LoginUser(ctx context.Context, username, password string) (*AuthToken, error) {
	v := common.NewValidator()
	validateUsername(v, username)
	validatePassword(v, password)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	user, err := s.m.getUserByUsername(ctx, username)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return nil, ErrAuthenticationFailure
		default:
			return nil, err
		}
	}

	user.Password.hash = user.PasswordHash

	ok, err := user.Password.compare(password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrAuthenticationFailure
	}

	token, err := signToken(user, s.secret, AccessTokenTime)
	if err != nil {
		return nil, err
	}

	return &AuthToken{Token: token, Username: user.Username, Name: user.Name}, nil
}

// GetUserByToken verifies a bearer token and resolves it to a live user
// record. Resolved users are cached briefly to keep the per-request gate
// cheap; users are never deleted in this system, so positive entries cannot
// go stale in a way that matters for authorization.
func (s *UserService) GetUserByToken(ctx context.Context, token string) (*User, error) {
	if cached, ok := s.c.Get(common.CacheKeyUserByToken(token)); ok {
		return cached.(*User), nil
	}

	claims, err := parseToken(token, s.secret)
	if err != nil {
		return nil, err
	}

	id, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return nil, ErrInvalidToken
	}

	user, err := s.m.getUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.c.Set(common.CacheKeyUserByToken(token), user, userCacheTime)

	return user, nil
}

// AddBlogToUser appends a blog id to the owner's denormalized blogs list.
// This is the second write of the two-step blog creation; it is not part of
// a transaction with the blog insert.
func (s *UserService) AddBlogToUser(ctx context.Context, userID, blogID primitive.ObjectID) error {
	return s.m.addBlog(ctx, userID, blogID)
}

func (s *UserService) GetUsers(ctx context.Context) ([]User, error) {
	return s.m.getUsers(ctx)
}

func (u *User) IsAnonymous() bool {
	return u == &AnonymousUser
}
