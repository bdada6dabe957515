package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"go-storefront/repository"
	"go-storefront/utils"
)

// respondError translates a repository error into the failure envelope.
// notFound is the entity-specific message used for ErrNotFound. Errors
// outside the taxonomy are store failures; those are logged before the
// generic 500 goes out so they stay visible to operators.
func respondError(log *logrus.Logger, w http.ResponseWriter, err error, notFound string) {
	var ve *repository.ValidationError
	switch {
	case errors.As(err, &ve):
		utils.Fail(w, http.StatusBadRequest, ve.Message)
	case errors.Is(err, repository.ErrDuplicateEmail):
		utils.Fail(w, http.StatusBadRequest, "Email already registered")
	case errors.Is(err, repository.ErrInvalidCredentials):
		utils.Fail(w, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, repository.ErrNotFound):
		utils.Fail(w, http.StatusNotFound, notFound)
	default:
		log.WithError(err).Error("request failed")
		utils.Fail(w, http.StatusInternalServerError, "Something went wrong")
	}
}

// pathID extracts a numeric path variable. Routes constrain these segments
// to digits, so parse failures cannot occur on matched requests.
func pathID(r *http.Request, name string) int64 {
	id, _ := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	return id
}
