package session

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/HowardChu-bme/Taxi-Receipt/internal/expense"
)

func sampleRecord(employee string, fare float64) expense.Record {
	r := expense.NewRecord(expense.Candidate{
		EmployeeName:    employee,
		SubmissionDate:  time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		DateOfTravel:    time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC),
		TimeOfTravel:    "09:30",
		FromLocation:    "Office",
		ToLocation:      "Client Site",
		FareAmount:      fare,
		PrimaryReasons:  []string{"Emergency Call"},
		ServiceType:     "Repair",
		WorkDescription: "Urgent repair",
		ReceiptType:     expense.ReceiptTypes[1],
	})
	return r
}

func TestStoreAppendOrder(t *testing.T) {
	st := NewStore()
	st.Append(sampleRecord("First", 10))
	st.Append(sampleRecord("Second", 20))
	st.Append(sampleRecord("Third", 30))

	records := st.Records()
	if len(records) != 3 || st.Len() != 3 {
		t.Fatalf("got %d records", len(records))
	}
	for i, want := range []string{"First", "Second", "Third"} {
		if records[i].EmployeeName != want {
			t.Errorf("record %d is %q, want %q", i, records[i].EmployeeName, want)
		}
	}
}

func TestStoreRecordsIsCopy(t *testing.T) {
	st := NewStore()
	st.Append(sampleRecord("Jane", 10))
	records := st.Records()
	records[0].EmployeeName = "Tampered"
	if st.Records()[0].EmployeeName != "Jane" {
		t.Fatal("store exposed its internal slice")
	}
}

func TestCSVRoundTrip(t *testing.T) {
	st := NewStore()
	rec := sampleRecord("Jane Doe", 45.5)
	rec.PrimaryReasons = []string{"Emergency Call", "Time-Critical Service"}
	rec.Receipt = &expense.Receipt{FileName: "receipt.png", MIME: "image/png", Data: []byte{1, 2, 3}}
	st.Append(rec)

	out, err := st.CSV()
	if err != nil {
		t.Fatal(err)
	}
	rows, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want header + 1", len(rows))
	}
	header, row := rows[0], rows[1]
	if len(header) != len(row) {
		t.Fatalf("header has %d columns, row has %d", len(header), len(row))
	}

	byName := map[string]string{}
	for i, h := range header {
		byName[h] = row[i]
	}
	want := map[string]string{
		"employee_name":         "Jane Doe",
		"department":            expense.Department,
		"position":              expense.Position,
		"submission_date":       "2025-03-14",
		"date_of_travel":        "2025-03-13",
		"from_location":         "Office",
		"to_location":           "Client Site",
		"fare_amount":           "45.5",
		"primary_reasons":       "Emergency Call; Time-Critical Service",
		"work_description":      "Urgent repair",
		"distance_km":           "",
		"uploaded_receipt_name": "receipt.png",
	}
	for k, v := range want {
		if byName[k] != v {
			t.Errorf("%s = %q, want %q", k, byName[k], v)
		}
	}
	if bytes.Contains(out, rec.Receipt.Data) {
		t.Error("receipt bytes leaked into the CSV")
	}
}

func TestCSVEmptySession(t *testing.T) {
	st := NewStore()
	out, err := st.CSV()
	if err != nil {
		t.Fatal(err)
	}
	rows, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected header only, got %d rows", len(rows))
	}
}
