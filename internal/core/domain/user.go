package domain

import "time"

// User is the account referenced by ads, posts and ledger entries. Points
// is the cached balance kept in step with the ledger.
type User struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	Role         Role      `json:"role"`
	Points       int       `json:"points"`
	IsBlocked    bool      `json:"-"`
	TokenVersion int       `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// FullName joins first and last name the way the payment gateway expects.
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// Actor returns the authorization descriptor for the user.
func (u *User) Actor() Actor {
	return Actor{ID: u.ID, Role: u.Role}
}
