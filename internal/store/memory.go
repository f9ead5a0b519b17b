package store

import (
	"sync"

	"github.com/Swetha233926/ConsoleBankingApplication/internal/models"
)

// Memory holds every registered user and the account-number counter for
// the lifetime of the process. Nothing is ever deleted and nothing is
// written anywhere else. All access runs through the mutex, making the
// counter and the user list a single serializing authority rather than
// hidden global state.
type Memory struct {
	mu       sync.Mutex
	users    []*models.User
	nextAcct int
}

// NewMemory returns an empty store whose first allocated account number
// will be accountNumberSeed.
func NewMemory(accountNumberSeed int) *Memory {
	return &Memory{nextAcct: accountNumberSeed}
}

// AddUser stores a new user and reports whether the username was free.
// Uniqueness is enforced here, at registration time, and nowhere else.
func (m *Memory) AddUser(u *models.User) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if existing.Username == u.Username {
			return false
		}
	}
	m.users = append(m.users, u)
	return true
}

// FindUser looks up a user by exact, case-sensitive username.
func (m *Memory) FindUser(username string) (*models.User, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == username {
			return u, true
		}
	}
	return nil, false
}

// Authenticate returns the user whose username and password both match
// exactly. Passwords are stored and compared in plaintext; a known
// deficiency, see DESIGN.md.
func (m *Memory) Authenticate(username, password string) (*models.User, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == username && u.Password == password {
			return u, true
		}
	}
	return nil, false
}

// NextAccountNumber allocates the next globally unique account number.
func (m *Memory) NextAccountNumber() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := m.nextAcct
	m.nextAcct++
	return n
}

// UserCount reports how many users have registered.
func (m *Memory) UserCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.users)
}
