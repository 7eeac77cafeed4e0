package expense

import "strings"

// Validation messages are stable; the form shows them verbatim and tests
// assert on them.
const (
	ErrEmployeeName  = "Employee Name is required."
	ErrFromLocation  = "Pick-up Location is required."
	ErrToLocation    = "Destination is required."
	ErrFareNegative  = "Fare amount must be a non-negative number."
	ErrNoReason      = "Select at least one primary reason."
	ErrOtherMissing  = "Please describe the 'Other' reason."
	ErrNoDescription = "Brief description of work/purpose is required."
	ErrFileTooLarge  = "Receipt file is too large (>8MB). Please upload a smaller file."
)

// Validate checks every record invariant independently and returns one
// message per violation, in form order. An empty slice means the candidate
// may become a Record.
func Validate(c Candidate) []string {
	errs := []string{}
	if strings.TrimSpace(c.EmployeeName) == "" {
		errs = append(errs, ErrEmployeeName)
	}
	if strings.TrimSpace(c.FromLocation) == "" {
		errs = append(errs, ErrFromLocation)
	}
	if strings.TrimSpace(c.ToLocation) == "" {
		errs = append(errs, ErrToLocation)
	}
	if c.FareAmount < 0 {
		errs = append(errs, ErrFareNegative)
	}
	if len(c.PrimaryReasons) == 0 {
		errs = append(errs, ErrNoReason)
	}
	if hasReason(c.PrimaryReasons, ReasonOther) && strings.TrimSpace(c.ReasonOther) == "" {
		errs = append(errs, ErrOtherMissing)
	}
	if strings.TrimSpace(c.WorkDescription) == "" {
		errs = append(errs, ErrNoDescription)
	}
	if c.ReceiptSize > MaxReceiptBytes {
		errs = append(errs, ErrFileTooLarge)
	}
	return errs
}

func hasReason(reasons []string, want string) bool {
	for _, r := range reasons {
		if r == want {
			return true
		}
	}
	return false
}
