package render

import (
	"testing"
	"time"

	"github.com/HowardChu-bme/Taxi-Receipt/internal/expense"
)

func testRecord() expense.Record {
	return expense.NewRecord(expense.Candidate{
		EmployeeName:    "Jane Doe",
		SubmissionDate:  time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		DateOfTravel:    time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC),
		TimeOfTravel:    "09:30",
		FromLocation:    "Office",
		ToLocation:      "Client Site",
		FareAmount:      45.5,
		ReceiptNumber:   "R-1001",
		PrimaryReasons:  []string{"Emergency Call"},
		Client:          "Queen Mary Hospital",
		ServiceType:     "Repair",
		WorkDescription: "Urgent repair",
		ReceiptType:     expense.ReceiptTypes[1],
		LicensePlate:    "UV 1234",
	})
}

func TestBuildDocumentSectionOrder(t *testing.T) {
	doc := BuildDocument(testRecord())
	want := []string{
		"Employee information",
		"Trip details",
		"Justification",
		"Work details",
		"Receipt info",
	}
	if len(doc.Sections) != len(want) {
		t.Fatalf("got %d sections, want %d", len(doc.Sections), len(want))
	}
	for i, sec := range doc.Sections {
		if sec.Title != want[i] {
			t.Errorf("section %d is %q, want %q", i, sec.Title, want[i])
		}
	}
	if doc.Title != "Taxi Expense Justification Form" {
		t.Errorf("unexpected title %q", doc.Title)
	}
}

func TestBuildDocumentPlaceholders(t *testing.T) {
	doc := BuildDocument(testRecord())
	fields := map[string]string{}
	for _, sec := range doc.Sections {
		for _, f := range sec.Fields {
			fields[f.Label] = f.Value
		}
	}
	for _, label := range []string{"Equipment (if any)", "Start Time", "End Time", "Distance", "Uploaded File", "Other (details)"} {
		if fields[label] != Placeholder {
			t.Errorf("%s = %q, want %q", label, fields[label], Placeholder)
		}
	}
	if fields["Taxi Fare Amount"] != "HK$ 45.50" {
		t.Errorf("fare = %q", fields["Taxi Fare Amount"])
	}
}

func TestBuildDocumentOptionalValues(t *testing.T) {
	r := testRecord()
	r.DistanceKM = 12.3
	r.Receipt = &expense.Receipt{FileName: "receipt.png"}
	doc := BuildDocument(r)

	var distance, uploaded string
	for _, f := range doc.Sections[4].Fields {
		switch f.Label {
		case "Distance":
			distance = f.Value
		case "Uploaded File":
			uploaded = f.Value
		}
	}
	if distance != "12.3 km" {
		t.Errorf("distance = %q", distance)
	}
	if uploaded != "receipt.png" {
		t.Errorf("uploaded = %q", uploaded)
	}
}

func TestBuildDocumentBadges(t *testing.T) {
	doc := BuildDocument(testRecord())
	badges := doc.Sections[2].Badges
	if len(badges) != 1 || badges[0] != "Emergency Call" {
		t.Fatalf("badges = %v", badges)
	}
}

func TestPDFFileName(t *testing.T) {
	if got := PDFFileName(testRecord()); got != "taxi_expense_2025-03-14.pdf" {
		t.Fatalf("got %q", got)
	}
}
