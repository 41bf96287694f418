package auditlog

import (
	"time"
)

// Action is the kind of library event being recorded.
type Action string

const (
	ActionLoan   Action = "loan"
	ActionReturn Action = "return"
)

// Entry is one recorded loan or return.
type Entry struct {
	ID        string    `json:"id"`
	Type      Action    `json:"type"`
	BookID    string    `json:"bookId"`
	UserEmail string    `json:"userEmail"`
	Date      time.Time `json:"date"`
}

// ActionRequest is the body accepted by the loan and return endpoints.
type ActionRequest struct {
	BookID    string `json:"bookId" validate:"required,max=64"`
	UserEmail string `json:"userEmail" validate:"required,email,max=254"`
}
