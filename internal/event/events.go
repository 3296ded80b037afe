package event

import "time"

type LoanApprovedEvent struct {
	LoanID       int64     `json:"loanId"`
	RequestID    int64     `json:"requestId"`
	BorrowerID   int64     `json:"borrowerId"`
	Principal    float64   `json:"principal"`
	TotalAmount  float64   `json:"totalAmount"`
	DailyPayment float64   `json:"dailyPayment"`
	StartDate    time.Time `json:"startDate"`
	DueDate      time.Time `json:"dueDate"`
	Timestamp    time.Time `json:"timestamp"`
}

type LoanStatusChangedEvent struct {
	LoanID     int64     `json:"loanId"`
	BorrowerID int64     `json:"borrowerId"`
	OldStatus  string    `json:"oldStatus"`
	NewStatus  string    `json:"newStatus"`
	Balance    float64   `json:"balance"`
	MissedDays int       `json:"missedDays"`
	Timestamp  time.Time `json:"timestamp"`
}

type BorrowerEventPayload struct {
	BorrowerID int64     `json:"borrowerId"`
	Name       string    `json:"name"`
	Address    string    `json:"address"`
	Active     bool      `json:"active"`
	CreateDate time.Time `json:"createDate"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type BorrowerCreatedEvent struct {
	Timestamp time.Time            `json:"timestamp"`
	Payload   BorrowerEventPayload `json:"payload"`
}

type BorrowerUpdatedEvent struct {
	Timestamp time.Time            `json:"timestamp"`
	Payload   BorrowerEventPayload `json:"payload"`
}
