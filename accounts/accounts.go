package accounts

import (
	"errors"
	"sync"

	"github.com/kiruthika18-a/codealpha-E-commerce-store/models"
	"github.com/kiruthika18-a/codealpha-E-commerce-store/utils"
)

var (
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Directory is the in-memory collection of registered users. Users are
// only ever appended; nothing updates or removes them.
type Directory struct {
	mu    sync.RWMutex
	users []models.User
}

func NewDirectory() *Directory {
	return &Directory{}
}

// Register creates a user unless the email is already taken. Emails are
// matched exactly, case-sensitive.
func (d *Directory) Register(email, password string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, u := range d.users {
		if u.Email == email {
			return ErrEmailExists
		}
	}

	d.users = append(d.users, models.User{
		ID:       "u" + utils.GenerateRandomString(10),
		Email:    email,
		Password: password,
	})
	return nil
}

// Authenticate returns the password-free view of the user whose email and
// password both match. Unknown email and wrong password fail identically
// so callers cannot tell which it was.
func (d *Directory) Authenticate(email, password string) (models.UserView, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, u := range d.users {
		if u.Email == email && u.Password == password {
			return models.UserView{ID: u.ID, Email: u.Email}, nil
		}
	}
	return models.UserView{}, ErrInvalidCredentials
}

// Count reports how many users are registered.
func (d *Directory) Count() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.users)
}
