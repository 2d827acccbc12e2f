package entity

import (
	"regexp"

	"github.com/dwikurnia/forum-api/internal/errors"
)

const usernameMaxLen = 50

var restrictedUsernameChars = regexp.MustCompile(`[^\w]`)

type RegisterUserPayload struct {
	Username any
	Password any
	Fullname any
}

// RegisterUser is a validated registration request. The password here is
// still plaintext; hashing happens in the user service.
type RegisterUser struct {
	Username string
	Password string
	Fullname string
}

func ParseRegisterUser(p RegisterUserPayload) (RegisterUser, error) {
	if p.Username == nil || p.Password == nil || p.Fullname == nil {
		return RegisterUser{}, errors.NewValidation("REGISTER_USER.NOT_CONTAIN_NEEDED_PROPERTY")
	}
	username, okUser := p.Username.(string)
	password, okPass := p.Password.(string)
	fullname, okFull := p.Fullname.(string)
	if !okUser || !okPass || !okFull {
		return RegisterUser{}, errors.NewValidation("REGISTER_USER.NOT_MEET_DATA_TYPE_SPECIFICATION")
	}
	if len(username) > usernameMaxLen {
		return RegisterUser{}, errors.NewValidation("REGISTER_USER.USERNAME_LIMIT_CHAR")
	}
	if restrictedUsernameChars.MatchString(username) {
		return RegisterUser{}, errors.NewValidation("REGISTER_USER.USERNAME_CONTAIN_RESTRICTED_CHARACTER")
	}
	return RegisterUser{Username: username, Password: password, Fullname: fullname}, nil
}

type RegisteredUserPayload struct {
	Id       any
	Username any
	Fullname any
}

type RegisteredUser struct {
	Id       string `json:"id"`
	Username string `json:"username"`
	Fullname string `json:"fullname"`
}

func ParseRegisteredUser(p RegisteredUserPayload) (RegisteredUser, error) {
	if p.Id == nil || p.Username == nil || p.Fullname == nil {
		return RegisteredUser{}, errors.NewValidation("REGISTERED_USER.NOT_CONTAIN_NEEDED_PROPERTY")
	}
	if !isString(p.Id) || !isString(p.Username) || !isString(p.Fullname) {
		return RegisteredUser{}, errors.NewValidation("REGISTERED_USER.NOT_MEET_DATA_TYPE_SPECIFICATION")
	}
	return RegisteredUser{
		Id:       p.Id.(string),
		Username: p.Username.(string),
		Fullname: p.Fullname.(string),
	}, nil
}

type UserLoginPayload struct {
	Username any
	Password any
}

type UserLogin struct {
	Username string
	Password string
}

func ParseUserLogin(p UserLoginPayload) (UserLogin, error) {
	if p.Username == nil || p.Password == nil {
		return UserLogin{}, errors.NewValidation("USER_LOGIN.NOT_CONTAIN_NEEDED_PROPERTY")
	}
	username, okUser := p.Username.(string)
	password, okPass := p.Password.(string)
	if !okUser || !okPass {
		return UserLogin{}, errors.NewValidation("USER_LOGIN.NOT_MEET_DATA_TYPE_SPECIFICATION")
	}
	return UserLogin{Username: username, Password: password}, nil
}
