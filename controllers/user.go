package controllers

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"go-storefront/models"
	"go-storefront/repository"
	"go-storefront/utils"
)

// UserController handles account-related requests.
type UserController struct {
	Users *repository.Users
	Log   *logrus.Logger
}

// NewUserController creates a new UserController.
func NewUserController(users *repository.Users, log *logrus.Logger) *UserController {
	return &UserController{Users: users, Log: log}
}

// Signup handles account creation.
func (uc *UserController) Signup(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	utils.DecodeBody(r, &body)

	user, err := uc.Users.Create(body.Name, body.Email, body.Password)
	if err != nil {
		respondError(uc.Log, w, err, "User not found")
		return
	}
	utils.OK(w, http.StatusCreated, utils.Envelope{"message": "Account created!", "user": user.Public()})
}

// Login handles user authentication.
func (uc *UserController) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	utils.DecodeBody(r, &body)

	user, err := uc.Users.Authenticate(body.Email, body.Password)
	if err != nil {
		respondError(uc.Log, w, err, "User not found")
		return
	}
	utils.OK(w, http.StatusOK, utils.Envelope{"message": "Login successful!", "user": user.Public()})
}

// UpdateProfile applies optional profile fields to an account.
func (uc *UserController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var body struct {
		UserID   models.FlexID `json:"userId"`
		Name     *string       `json:"name"`
		Email    *string       `json:"email"`
		Password *string       `json:"password"`
		Avatar   *string       `json:"avatar"`
	}
	utils.DecodeBody(r, &body)

	user, err := uc.Users.UpdateProfile(int64(body.UserID), repository.ProfilePatch{
		Name:     body.Name,
		Email:    body.Email,
		Password: body.Password,
		Avatar:   body.Avatar,
	})
	if err != nil {
		respondError(uc.Log, w, err, "User not found")
		return
	}
	utils.OK(w, http.StatusOK, utils.Envelope{"message": "Profile updated!", "user": user.Public()})
}

// ToggleWishlist adds the product to the account's wishlist if absent, else
// removes it.
func (uc *UserController) ToggleWishlist(w http.ResponseWriter, r *http.Request) {
	var body struct {
		UserID    models.FlexID `json:"userId"`
		ProductID models.FlexID `json:"productId"`
	}
	utils.DecodeBody(r, &body)

	wishlist, err := uc.Users.ToggleWishlist(int64(body.UserID), int64(body.ProductID))
	if err != nil {
		respondError(uc.Log, w, err, "User not found")
		return
	}
	utils.OK(w, http.StatusOK, utils.Envelope{"wishlist": wishlist})
}

// List returns every account masked to identity fields (Admin).
func (uc *UserController) List(w http.ResponseWriter, r *http.Request) {
	users, err := uc.Users.List()
	if err != nil {
		respondError(uc.Log, w, err, "User not found")
		return
	}
	utils.OK(w, http.StatusOK, utils.Envelope{"users": users})
}

// Delete removes an account (Admin). Deleting an absent id succeeds.
func (uc *UserController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := uc.Users.Delete(pathID(r, "id")); err != nil {
		respondError(uc.Log, w, err, "User not found")
		return
	}
	utils.OK(w, http.StatusOK, utils.Envelope{"message": "User deleted!"})
}
