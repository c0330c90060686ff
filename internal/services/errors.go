package services

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"crowdfunding-service/internal/apperrors"
)

// notFoundOr maps gorm's record-not-found onto the domain error taxonomy;
// any other storage failure is wrapped and surfaces as a server error.
func notFoundOr(err error, resource string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NotFoundf("%s not found", resource)
	}
	return errors.Wrapf(err, "fetch %s", resource)
}
