package dto

import (
	"github.com/google/uuid"
)

type CreatePaymentIntentRequest struct {
	SlotID      uuid.UUID `json:"slot_id" validate:"required"`
	PackageType string    `json:"package_type" validate:"required,oneof=single monthly quarterly"`
	AmountIDR   int       `json:"amount_idr" validate:"required,min=1"`
}

type PaymentIntentResponse struct {
	OrderID     string `json:"order_id"`
	SnapToken   string `json:"snap_token"`
	RedirectURL string `json:"redirect_url"`
}

type ConfirmBookingRequest struct {
	SlotID      uuid.UUID `json:"slot_id" validate:"required"`
	PackageType string    `json:"package_type" validate:"required,oneof=single monthly quarterly"`
	AmountIDR   int       `json:"amount_idr" validate:"required,min=1"`
	// Gateway order id returned by create-payment-intent and settled by
	// the hosted checkout.
	PaymentID string `json:"payment_id" validate:"required"`
	// Raw gateway callback payload, stored for reconciliation.
	GatewayPayload map[string]any `json:"gateway_payload"`
}
