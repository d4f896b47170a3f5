package models

import "time"

// SubmissionStep is the wizard state. Transitions are linear: basics to
// images to review, with single-step moves back.
type SubmissionStep string

const (
	StepBasics SubmissionStep = "basics"
	StepImages SubmissionStep = "images"
	StepReview SubmissionStep = "review"
)

// BasicsInput is the first wizard step. Price and Area arrive as strings
// straight from form fields and are validated, not pre-parsed.
type BasicsInput struct {
	Subject     string `json:"subject"`
	Location    string `json:"location"`
	Price       string `json:"price"`
	Area        string `json:"area"`
	AreaUnit    string `json:"areaUnit"`
	Description string `json:"description"`
	SaleStatus  string `json:"saleStatus"`
	Featured    bool   `json:"featured"`
}

// SellerInput is the final wizard step. Every field is optional; an empty
// name is replaced with a default at submit time.
type SellerInput struct {
	Type  string `json:"type"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// Submission is a draft listing moving through the wizard.
type Submission struct {
	ID        string         `json:"id"`
	Step      SubmissionStep `json:"step"`
	Basics    BasicsInput    `json:"basics"`
	Images    []string       `json:"images"`
	Seller    SellerInput    `json:"seller"`
	UserID    string         `json:"userId,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// FieldErrors maps form field names to validation messages.
type FieldErrors map[string]string

func (e FieldErrors) Empty() bool {
	return len(e) == 0
}
