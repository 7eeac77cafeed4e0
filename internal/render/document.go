package render

import (
	"fmt"
	"strings"

	"github.com/HowardChu-bme/Taxi-Receipt/internal/expense"
)

// The placeholder keeps label/value grids aligned when an optional field
// was left empty.
const Placeholder = "N/A"

const dateLayout = "2006-01-02"

// Field is one label/value pair of a document section. Multiline fields
// may contain embedded line breaks that every output must preserve.
type Field struct {
	Label     string
	Value     string
	Multiline bool
}

// Section is a titled group of fields. Badges carries the selected reason
// tags of the justification section; it is empty elsewhere.
type Section struct {
	Title  string
	Fields []Field
	Badges []string
}

// Document is the canonical layout of one printable expense summary.
// Every render path (HTML preview, browser PDF, canvas PDF) draws from the
// same section/field sequence so the outputs stay consistent.
type Document struct {
	Title    string
	Subtitle string
	Sections []Section
}

// BuildDocument flattens a record into the fixed section layout.
func BuildDocument(r expense.Record) Document {
	distance := Placeholder
	if r.DistanceKM > 0 {
		distance = fmt.Sprintf("%.1f km", r.DistanceKM)
	}
	receiptName := Placeholder
	if r.Receipt != nil {
		receiptName = r.Receipt.FileName
	}
	return Document{
		Title:    "Taxi Expense Justification Form",
		Subtitle: expense.Company,
		Sections: []Section{
			{
				Title: "Employee information",
				Fields: []Field{
					{Label: "Employee Name", Value: orNA(r.EmployeeName)},
					{Label: "Department", Value: r.Department},
					{Label: "Position", Value: r.Position},
					{Label: "Date of Submission", Value: r.SubmissionDate.Format(dateLayout)},
				},
			},
			{
				Title: "Trip details",
				Fields: []Field{
					{Label: "Date of Travel", Value: r.DateOfTravel.Format(dateLayout)},
					{Label: "Time of Travel", Value: orNA(r.TimeOfTravel)},
					{Label: "From", Value: orNA(r.FromLocation)},
					{Label: "To", Value: orNA(r.ToLocation)},
					{Label: "Taxi Fare Amount", Value: fmt.Sprintf("HK$ %.2f", r.FareAmount)},
					{Label: "Receipt Number", Value: orNA(r.ReceiptNumber)},
				},
			},
			{
				Title:  "Justification",
				Badges: r.PrimaryReasons,
				Fields: []Field{
					{Label: "Other (details)", Value: orNA(r.ReasonOther), Multiline: true},
				},
			},
			{
				Title: "Work details",
				Fields: []Field{
					{Label: "Client/Customer", Value: orNA(r.Client)},
					{Label: "Type of Service", Value: orNA(r.ServiceType)},
					{Label: "Equipment (if any)", Value: orNA(r.Equipment), Multiline: true},
					{Label: "Brief Description", Value: orNA(r.WorkDescription), Multiline: true},
				},
			},
			{
				Title: "Receipt info",
				Fields: []Field{
					{Label: "Receipt Attached", Value: orNA(r.ReceiptType)},
					{Label: "Taxi License Plate", Value: orNA(r.LicensePlate)},
					{Label: "Start Time", Value: orNA(r.StartTime)},
					{Label: "End Time", Value: orNA(r.EndTime)},
					{Label: "Distance", Value: distance},
					{Label: "Uploaded File", Value: receiptName},
				},
			},
		},
	}
}

// PDFFileName is the download name for a record's PDF summary.
func PDFFileName(r expense.Record) string {
	return fmt.Sprintf("taxi_expense_%s.pdf", r.SubmissionDate.Format(dateLayout))
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return Placeholder
	}
	return s
}
