package customer

import (
	"context"
	"time"
)

type Customer interface {
	Create(ctx context.Context, request CreateCustomerRequest) (CustomerDto, error)
	Get(ctx context.Context, customerId string) (CustomerDto, error)

	// Update changes only the fields that are set in request.
	Update(ctx context.Context, customerId string, request UpdateCustomerRequest) (CustomerDto, error)

	// Delete removes the customer together with all saved cards. The gateway answers without a body.
	Delete(ctx context.Context, customerId string) error

	ListCards(ctx context.Context, customerId string) (CustomerCardsDto, error)
}

type CreateCustomerRequest struct {
	ExternalId string `json:"external_id"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	FirstName  string `json:"first_name,omitempty"`
	LastName   string `json:"last_name,omitempty"`
	Language   string `json:"language,omitempty"`
}

type UpdateCustomerRequest struct {
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Language  *string `json:"language,omitempty"`
}

type CustomerDto struct {
	CustomerId *string    `json:"customer_id"`
	ExternalId *string    `json:"external_id"`
	Email      *string    `json:"email"`
	Phone      *string    `json:"phone"`
	FirstName  *string    `json:"first_name"`
	LastName   *string    `json:"last_name"`
	Language   *string    `json:"language"`
	CreatedAt  *time.Time `json:"created_at"`
}

type CustomerCardsDto struct {
	CustomerId *string `json:"customer_id"`
	Cards      []Card  `json:"cards"`
}

type Card struct {
	CardToken     *string `json:"card_token"`
	MaskedCard    *string `json:"masked_card"`
	PaymentSystem *string `json:"payment_system"`
	ExpiryMonth   *int    `json:"expiry_month"`
	ExpiryYear    *int    `json:"expiry_year"`
	IsDefault     *bool   `json:"is_default"`
}
