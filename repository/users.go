package repository

import (
	"time"

	"go-storefront/models"
	"go-storefront/store"
)

const usersCollection = "users"

// Users exposes account mutations over the users collection.
type Users struct {
	store store.Store
}

func NewUsers(s store.Store) *Users {
	return &Users{store: s}
}

// Create registers a new account. All three fields are required and the
// email must be unique across the collection.
func (r *Users) Create(name, email, password string) (models.User, error) {
	if name == "" || email == "" || password == "" {
		return models.User{}, &ValidationError{Message: "All fields required"}
	}
	var user models.User
	err := r.store.Update(usersCollection, func() error {
		var users []models.User
		if err := r.store.Load(usersCollection, &users); err != nil {
			return err
		}
		var maxID int64
		for _, u := range users {
			if u.Email == email {
				return ErrDuplicateEmail
			}
			if u.ID > maxID {
				maxID = u.ID
			}
		}
		user = models.User{
			ID:        nextID(maxID),
			Name:      name,
			Email:     email,
			Password:  password,
			Avatar:    "",
			Wishlist:  []int64{},
			IsAdmin:   false,
			CreatedAt: time.Now().UTC(),
		}
		users = append(users, user)
		return r.store.Persist(usersCollection, users)
	})
	return user, err
}

// Authenticate matches credentials by exact equality.
func (r *Users) Authenticate(email, password string) (models.User, error) {
	if email == "" || password == "" {
		return models.User{}, &ValidationError{Message: "All fields required"}
	}
	var users []models.User
	if err := r.store.Load(usersCollection, &users); err != nil {
		return models.User{}, err
	}
	for _, u := range users {
		if u.Email == email && u.Password == password {
			return u, nil
		}
	}
	return models.User{}, ErrInvalidCredentials
}

// Get returns the account with the given id.
func (r *Users) Get(id int64) (models.User, error) {
	var users []models.User
	if err := r.store.Load(usersCollection, &users); err != nil {
		return models.User{}, err
	}
	if idx := findUser(users, id); idx >= 0 {
		return users[idx], nil
	}
	return models.User{}, ErrNotFound
}

// ProfilePatch carries the optional profile fields. Name, email and password
// apply only when supplied and non-empty; a supplied empty string means "not
// supplied". Avatar applies whenever supplied, so it can be cleared.
type ProfilePatch struct {
	Name     *string
	Email    *string
	Password *string
	Avatar   *string
}

// UpdateProfile applies the patch to the account and returns the result.
func (r *Users) UpdateProfile(id int64, patch ProfilePatch) (models.User, error) {
	var user models.User
	err := r.store.Update(usersCollection, func() error {
		var users []models.User
		if err := r.store.Load(usersCollection, &users); err != nil {
			return err
		}
		idx := findUser(users, id)
		if idx < 0 {
			return ErrNotFound
		}
		u := &users[idx]
		if patch.Name != nil && *patch.Name != "" {
			u.Name = *patch.Name
		}
		if patch.Email != nil && *patch.Email != "" {
			u.Email = *patch.Email
		}
		if patch.Password != nil && *patch.Password != "" {
			u.Password = *patch.Password
		}
		if patch.Avatar != nil {
			u.Avatar = *patch.Avatar
		}
		user = *u
		return r.store.Persist(usersCollection, users)
	})
	return user, err
}

// ToggleWishlist inserts the product id into the account's wishlist if
// absent and removes it if present. Two calls with the same id restore the
// original list.
func (r *Users) ToggleWishlist(id, productID int64) ([]int64, error) {
	var wishlist []int64
	err := r.store.Update(usersCollection, func() error {
		var users []models.User
		if err := r.store.Load(usersCollection, &users); err != nil {
			return err
		}
		idx := findUser(users, id)
		if idx < 0 {
			return ErrNotFound
		}
		u := &users[idx]
		removed := false
		for i, pid := range u.Wishlist {
			if pid == productID {
				u.Wishlist = append(u.Wishlist[:i], u.Wishlist[i+1:]...)
				removed = true
				break
			}
		}
		if !removed {
			u.Wishlist = append(u.Wishlist, productID)
		}
		if u.Wishlist == nil {
			u.Wishlist = []int64{}
		}
		wishlist = u.Wishlist
		return r.store.Persist(usersCollection, users)
	})
	return wishlist, err
}

// List returns every account masked down to identity fields. Passwords never
// leave the repository through this path.
func (r *Users) List() ([]models.UserSummary, error) {
	var users []models.User
	if err := r.store.Load(usersCollection, &users); err != nil {
		return nil, err
	}
	summaries := make([]models.UserSummary, 0, len(users))
	for _, u := range users {
		summaries = append(summaries, u.Summary())
	}
	return summaries, nil
}

// Delete removes the account if present. A missing id is not an error.
func (r *Users) Delete(id int64) error {
	return r.store.Update(usersCollection, func() error {
		var users []models.User
		if err := r.store.Load(usersCollection, &users); err != nil {
			return err
		}
		kept := make([]models.User, 0, len(users))
		for _, u := range users {
			if u.ID != id {
				kept = append(kept, u)
			}
		}
		return r.store.Persist(usersCollection, kept)
	})
}

func findUser(users []models.User, id int64) int {
	for i := range users {
		if users[i].ID == id {
			return i
		}
	}
	return -1
}
