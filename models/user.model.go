package models

import "time"

// User represents an account document in the users collection. The password
// is an opaque credential compared by exact equality; it is stored with the
// document but never serialized into a response.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	Avatar    string    `json:"avatar"`
	Wishlist  []int64   `json:"wishlist"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
}

// PublicUser is the client-facing view of an account.
type PublicUser struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Avatar   string  `json:"avatar"`
	Wishlist []int64 `json:"wishlist"`
	IsAdmin  bool    `json:"isAdmin"`
}

// Public returns the user without credential fields.
func (u User) Public() PublicUser {
	wishlist := u.Wishlist
	if wishlist == nil {
		wishlist = []int64{}
	}
	return PublicUser{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Avatar:   u.Avatar,
		Wishlist: wishlist,
		IsAdmin:  u.IsAdmin,
	}
}

// UserSummary is the admin listing view, masked down to identity fields.
type UserSummary struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// Summary returns the masked listing view of the user.
func (u User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, Email: u.Email, CreatedAt: u.CreatedAt}
}
