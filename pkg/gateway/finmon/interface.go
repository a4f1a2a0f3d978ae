package finmon

import (
	"context"
	"time"

	"github.com/eurofurence/reg-payment-gateway-client/pkg/gateway/money"
)

// FinMon submits payer data for financial monitoring before a payment is accepted.
//
// Checks may complete asynchronously. A pending result must be polled with GetCheck.
type FinMon interface {
	Check(ctx context.Context, request CheckRequest) (CheckResultDto, error)
	GetCheck(ctx context.Context, checkId string) (CheckResultDto, error)
}

const (
	DecisionApproved = "approved"
	DecisionRejected = "rejected"
	DecisionPending  = "pending"
	DecisionReview   = "manual_review"
)

type CheckRequest struct {
	OrderId   string         `json:"order_id"`
	Amount    money.Amount   `json:"amount"`
	Currency  money.Currency `json:"currency"`
	Payer     Payer          `json:"payer"`
	IpAddress string         `json:"ip_address,omitempty"`
}

type Payer struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	MiddleName     string `json:"middle_name,omitempty"`
	BirthDate      string `json:"birth_date,omitempty"`
	TaxId          string `json:"tax_id,omitempty"`
	Country        string `json:"country,omitempty"`
	Email          string `json:"email,omitempty"`
	Phone          string `json:"phone,omitempty"`
	DocumentNumber string `json:"document_number,omitempty"`
}

type CheckResultDto struct {
	CheckId   *string    `json:"check_id"`
	OrderId   *string    `json:"order_id"`
	Decision  *string    `json:"decision"`
	RiskScore *int       `json:"risk_score"`
	Reasons   []string   `json:"reasons"`
	CheckedAt *time.Time `json:"checked_at"`
}
