package blogservice

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bloglistapp/bloglist/internal/common"
)

func validateTitle(v *common.Validator, title string) {
	v.Check(title != "", "title", "title must be provided")
}

func validateURL(v *common.Validator, url string) {
	v.Check(url != "", "url", "url must be provided")
}

func validateLikes(v *common.Validator, likes int) {
	v.Check(likes >= 0, "likes", "likes must not be negative")
}

func validateObjectID(v *common.Validator, id primitive.ObjectID, name string) {
	v.Check(!id.IsZero(), name, name+" must be provided")
}
