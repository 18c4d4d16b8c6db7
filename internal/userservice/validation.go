package userservice

import (
	"github.com/bloglistapp/bloglist/internal/common"
)

func validateUsername(v *common.Validator, username string) {
	v.Check(len(username) >= 3, "username", "Username must be at least 3 characters long")
	v.Check(v.CheckStringLength(username, 3, 100), "username", "Username must be at most 100 characters long")
}

func validatePassword(v *common.Validator, password string) {
	v.Check(len(password) >= 3, "password", "Password must be at least 3 characters long")
	// bcrypt rejects inputs longer than 72 bytes
	v.Check(v.CheckStringLength(password, 3, 72), "password", "Password must be at most 72 characters long")
}
