package transport_http

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type transferRequest struct {
	SenderAccountID    *int64           `json:"senderAccountId" validate:"required,gt=0"`
	RecipientAccountID *int64           `json:"recipientAccountId" validate:"required,gt=0"`
	Amount             *decimal.Decimal `json:"amount" validate:"required"`
}

type transactionResponse struct {
	ID                 int64           `json:"id"`
	SenderAccountID    int64           `json:"senderAccountId"`
	RecipientAccountID int64           `json:"recipientAccountId"`
	Amount             decimal.Decimal `json:"amount"`
	Timestamp          time.Time       `json:"timestamp"`
}

// newValidator reports field names by their json tag so validation errors
// line up with the wire format.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

var requiredMessages = map[string]string{
	"senderAccountId":    "Sender ID is required",
	"recipientAccountId": "Recipient ID is required",
	"amount":             "Transfer amount must be greater than zero",
}

var positiveMessages = map[string]string{
	"senderAccountId":    "Sender ID must be positive",
	"recipientAccountId": "Recipient ID must be positive",
}

// validateTransferRequest returns a field-to-message map, empty when the
// request is well formed. The amount's positivity is checked by hand:
// validator cannot compare a decimal.Decimal.
func validateTransferRequest(v *validator.Validate, req transferRequest) map[string]string {
	fields := map[string]string{}

	if err := v.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				if fe.Tag() == "gt" {
					fields[fe.Field()] = positiveMessages[fe.Field()]
					continue
				}
				fields[fe.Field()] = requiredMessages[fe.Field()]
			}
		}
	}

	if req.Amount != nil && req.Amount.Sign() <= 0 {
		fields["amount"] = requiredMessages["amount"]
	}

	return fields
}
