package handlers

import (
	"errors"
	"log"
	"net/http"

	"pos_api/internal/repository"
	"pos_api/internal/services"
	"pos_api/pkg/response"

	"github.com/gin-gonic/gin"
)

// respondError maps service and repository errors onto the response
// envelope. Validation failures are "fail" with a specific message;
// anything unanticipated is logged and surfaced generically.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrProductNotFound),
		errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrCustomerNotFound),
		errors.Is(err, services.ErrVoucherNotFound):
		response.Fail(c, http.StatusNotFound, err.Error())
	case errors.Is(err, repository.ErrInsufficientStock),
		errors.Is(err, repository.ErrVoucherExhausted),
		errors.Is(err, repository.ErrVoucherMinPurchase),
		errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrInvalidPaymentType),
		errors.Is(err, services.ErrVoucherInactive),
		errors.Is(err, services.ErrInvalidVoucher),
		errors.Is(err, services.ErrInvalidCategory),
		errors.Is(err, services.ErrInvalidPrice),
		errors.Is(err, services.ErrInvalidStock),
		errors.Is(err, services.ErrInvalidRole),
		errors.Is(err, services.ErrCustomerNameMissing):
		response.Fail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrProductNameTaken),
		errors.Is(err, services.ErrVoucherCodeTaken),
		errors.Is(err, services.ErrUsernameTaken),
		errors.Is(err, services.ErrCustomerPhoneTaken):
		response.Fail(c, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrUserInactive):
		response.Fail(c, http.StatusUnauthorized, err.Error())
	default:
		log.Printf("Unexpected error: %v", err)
		response.Error(c, http.StatusInternalServerError, "internal server error")
	}
}
