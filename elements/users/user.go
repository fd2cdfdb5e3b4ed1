package users

import (
	"encoding/json"
	"fmt"
	"github.com/DAv10195/course_details_server/db"
	"github.com/DAv10195/course_details_server/util/containers"
	courseerr "github.com/DAv10195/course_details_server/util/errors"
	"github.com/DAv10195/course_details_server/util/validation"
)

// user account. The user name is the account id instructors and students are linked to
type User struct {
	db.ABucketElement
	UserName  string                `json:"user_name" validate:"required,max=64,excludes=:"`
	FirstName string                `json:"first_name" validate:"max=128"`
	LastName  string                `json:"last_name" validate:"max=128"`
	Password  string                `json:"password,omitempty" validate:"required"`
	Email     string                `json:"email" validate:"omitempty,email"`
	Roles     *containers.StringSet `json:"roles"`
}

func (u *User) Key() []byte {
	return []byte(u.UserName)
}

func (u *User) Bucket() []byte {
	return []byte(db.Users)
}

// a copy of the user without the (encrypted) password, for returning to clients
func (u *User) Public() *User {
	public := *u
	public.Password = ""
	return &public
}

// check if the default admin user is present in the DB and add it if not
func InitDefaultAdmin() error {
	exists, err := db.KeyExistsInBucket([]byte(db.Users), []byte(Admin))
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	_, err = NewUserBuilder(db.System, true).WithUserName(Admin).WithPassword(Admin).WithRoles(Admin).Build()
	return err
}

// return the user represented by the given user name if that user exists
func Get(userName string) (*User, error) {
	userBytes, err := db.GetFromBucket([]byte(db.Users), []byte(userName))
	if err != nil {
		return nil, err
	}
	user := &User{}
	if err = json.Unmarshal(userBytes, user); err != nil {
		return nil, err
	}
	return user, nil
}

// authenticate the user with the given password. Returns the authenticated user when the returned error is nil
func Authenticate(user, password string) (*User, error) {
	userStruct, err := Get(user)
	if err != nil {
		if _, ok := err.(*db.ErrKeyNotFoundInBucket); ok {
			return nil, &ErrAuthenticationFailure{user, fmt.Sprintf("user \"%s\" not found", user)}
		}
		return nil, err
	}
	userPassword, err := db.Decrypt(userStruct.Password)
	if err != nil {
		return nil, err
	}
	if password != userPassword {
		return nil, &ErrAuthenticationFailure{user, "incorrect password"}
	}
	return userStruct, nil
}

// delete the given user, along with every instructor and student record linked to it
func Delete(user *User) error {
	linkedToUser := func(_, elementBytes []byte) (bool, error) {
		var link struct {
			UserName string `json:"user_name"`
		}
		if err := json.Unmarshal(elementBytes, &link); err != nil {
			return false, err
		}
		return link.UserName == user.UserName, nil
	}
	return db.DeleteWhere(linkedToUser, [][]byte{[]byte(db.Instructors), []byte(db.Students)}, user)
}

type UserBuilder struct {
	asUser       string
	withDbUpdate bool
	UserName     string
	FirstName    string
	LastName     string
	Password     string
	Email        string
	Roles        *containers.StringSet
}

// returns a builder of users. When withDbUpdate is set, Build also stores the user in the DB as the given asUser
func NewUserBuilder(asUser string, withDbUpdate bool) *UserBuilder {
	return &UserBuilder{asUser: asUser, withDbUpdate: withDbUpdate, Roles: containers.NewStringSet()}
}

func (b *UserBuilder) WithUserName(userName string) *UserBuilder {
	b.UserName = userName
	return b
}

func (b *UserBuilder) WithFirstName(firstName string) *UserBuilder {
	b.FirstName = firstName
	return b
}

func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.Password = password
	return b
}

func (b *UserBuilder) WithLastName(lastName string) *UserBuilder {
	b.LastName = lastName
	return b
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.Email = email
	return b
}

func (b *UserBuilder) WithRoles(roles ...string) *UserBuilder {
	b.Roles.Add(roles...)
	return b
}

func (b *UserBuilder) Build() (*User, error) {
	user := &User{
		UserName:  b.UserName,
		FirstName: b.FirstName,
		LastName:  b.LastName,
		Password:  b.Password,
		Email:     b.Email,
		Roles:     b.Roles,
	}
	if err := validation.Struct(user); err != nil {
		return nil, err
	}
	if user.Roles.NumberOfElements() == 0 {
		return nil, &courseerr.ErrInsufficientData{Message: "user must have at least one role"}
	}
	for _, role := range user.Roles.Slice() {
		if role != Admin && role != Secretary && role != StandardUser {
			return nil, &courseerr.ErrInsufficientData{Message: fmt.Sprintf("unknown role \"%s\"", role)}
		}
	}
	encryptedPassword, err := db.Encrypt(b.Password)
	if err != nil {
		return nil, err
	}
	user.Password = encryptedPassword
	if b.withDbUpdate {
		if err := db.Insert(b.asUser, user); err != nil {
			return nil, err
		}
	}
	return user, nil
}
