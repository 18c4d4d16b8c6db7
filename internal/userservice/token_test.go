package userservice

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSignAndParseToken(t *testing.T) {
	secret := []byte("super-secret")
	user := User{ID: primitive.NewObjectID(), Username: "testuser"}

	token, err := signToken(&user, secret, time.Hour)
	assert.NoError(t, err)

	claims, err := parseToken(token, secret)
	assert.NoError(t, err)
	assert.Equal(t, "testuser", claims.Username)
	assert.Equal(t, user.ID.Hex(), claims.UserID)
}

func TestParseToken_Expired(t *testing.T) {
	secret := []byte("super-secret")
	user := User{ID: primitive.NewObjectID(), Username: "testuser"}

	token, err := signToken(&user, secret, -time.Second)
	assert.NoError(t, err)

	_, err = parseToken(token, secret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_WrongSecret(t *testing.T) {
	user := User{ID: primitive.NewObjectID(), Username: "testuser"}

	token, err := signToken(&user, []byte("right-secret"), time.Hour)
	assert.NoError(t, err)

	_, err = parseToken(token, []byte("wrong-secret"))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_Malformed(t *testing.T) {
	_, err := parseToken("not.a.jwt", []byte("k"))
	assert.ErrorIs(t, err, ErrInvalidToken)
}
