package expense

import (
	"math"
	"strings"
	"time"
)

const (
	Company    = "Montsmed HK"
	Department = "Service Engineering"
	Position   = "Service Engineer"

	// MaxReceiptBytes is the ceiling for an uploaded receipt file.
	MaxReceiptBytes = 8 << 20
)

// ReasonOther must be accompanied by a free-text description.
const ReasonOther = "Other"

// ReasonOptions is the fixed vocabulary of taxi justifications, in form order.
var ReasonOptions = []string{
	"Equipment Transport",
	"Early Arrival Requirement",
	"Emergency Call",
	"Special Event/Meeting",
	"Time-Critical Service",
	"Weather/Safety Conditions",
	"Public Transport Unavailable",
	ReasonOther,
}

var ServiceTypes = []string{"Installation", "Maintenance", "Repair", "Follow-up", "Other"}

var ReceiptTypes = []string{
	"Original taxi receipt attached",
	"Electronic receipt attached",
	"Hand-written receipt (if machine-printed not available)",
}

// Receipt is an uploaded receipt file kept alongside its record. Data never
// leaves the process except through the raw passthrough download.
type Receipt struct {
	FileName string `json:"file_name"`
	MIME     string `json:"mime"`
	Size     int64  `json:"size"`
	Data     []byte `json:"-"`
}

// Record is one accepted taxi expense entry. Records are built through
// NewRecord after validation and are not modified afterwards.
type Record struct {
	EmployeeName    string    `json:"employee_name"`
	Department      string    `json:"department"`
	Position        string    `json:"position"`
	SubmissionDate  time.Time `json:"submission_date"`
	DateOfTravel    time.Time `json:"date_of_travel"`
	TimeOfTravel    string    `json:"time_of_travel"`
	FromLocation    string    `json:"from_location"`
	ToLocation      string    `json:"to_location"`
	FareAmount      float64   `json:"fare_amount"`
	ReceiptNumber   string    `json:"receipt_number"`
	PrimaryReasons  []string  `json:"primary_reasons"`
	ReasonOther     string    `json:"reason_other"`
	Client          string    `json:"client"`
	ServiceType     string    `json:"service_type"`
	Equipment       string    `json:"equipment"`
	WorkDescription string    `json:"work_description"`
	ReceiptType     string    `json:"receipt_type"`
	LicensePlate    string    `json:"license_plate"`
	StartTime       string    `json:"start_time"`
	EndTime         string    `json:"end_time"`
	DistanceKM      float64   `json:"distance_km"`
	Receipt         *Receipt  `json:"uploaded_receipt,omitempty"`
}

// Candidate carries the raw field values of one form submission, before
// validation. ReceiptSize is zero when no file was uploaded.
type Candidate struct {
	EmployeeName    string
	SubmissionDate  time.Time
	DateOfTravel    time.Time
	TimeOfTravel    string
	FromLocation    string
	ToLocation      string
	FareAmount      float64
	ReceiptNumber   string
	PrimaryReasons  []string
	ReasonOther     string
	Client          string
	ServiceType     string
	Equipment       string
	WorkDescription string
	ReceiptType     string
	LicensePlate    string
	StartTime       string
	EndTime         string
	DistanceKM      float64
	ReceiptName     string
	ReceiptSize     int64
}

// NewRecord builds the immutable record for a candidate that passed
// validation: strings trimmed, newlines normalized, fare rounded to cents.
func NewRecord(c Candidate) Record {
	return Record{
		EmployeeName:    strings.TrimSpace(c.EmployeeName),
		Department:      Department,
		Position:        Position,
		SubmissionDate:  c.SubmissionDate,
		DateOfTravel:    c.DateOfTravel,
		TimeOfTravel:    strings.TrimSpace(c.TimeOfTravel),
		FromLocation:    strings.TrimSpace(c.FromLocation),
		ToLocation:      strings.TrimSpace(c.ToLocation),
		FareAmount:      math.Round(c.FareAmount*100) / 100,
		ReceiptNumber:   strings.TrimSpace(c.ReceiptNumber),
		PrimaryReasons:  append([]string(nil), c.PrimaryReasons...),
		ReasonOther:     cleanText(c.ReasonOther),
		Client:          strings.TrimSpace(c.Client),
		ServiceType:     strings.TrimSpace(c.ServiceType),
		Equipment:       cleanText(c.Equipment),
		WorkDescription: cleanText(c.WorkDescription),
		ReceiptType:     strings.TrimSpace(c.ReceiptType),
		LicensePlate:    strings.TrimSpace(c.LicensePlate),
		StartTime:       strings.TrimSpace(c.StartTime),
		EndTime:         strings.TrimSpace(c.EndTime),
		DistanceKM:      c.DistanceKM,
	}
}

// FilterReasons keeps only vocabulary members, in vocabulary order.
// Duplicates and unknown values from a tampered form are dropped.
func FilterReasons(selected []string) []string {
	set := map[string]bool{}
	for _, s := range selected {
		set[s] = true
	}
	out := []string{}
	for _, opt := range ReasonOptions {
		if set[opt] {
			out = append(out, opt)
		}
	}
	return out
}

func cleanText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.TrimSpace(s)
}
