package session

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/HowardChu-bme/Taxi-Receipt/internal/expense"
)

const dateLayout = "2006-01-02"

// csvHeader lists every scalar record field in form order. The reason tags
// are joined into one delimited column; receipt bytes are never exported.
var csvHeader = []string{
	"employee_name", "department", "position", "submission_date",
	"date_of_travel", "time_of_travel", "from_location", "to_location",
	"fare_amount", "receipt_number", "primary_reasons", "reason_other",
	"client", "service_type", "equipment", "work_description",
	"receipt_type", "license_plate", "start_time", "end_time",
	"distance_km", "uploaded_receipt_name",
}

// ReasonSeparator joins the reason tags into the single CSV column.
const ReasonSeparator = "; "

// Store holds one browser session's accepted records, in submission order.
// Records are appended and read, never updated or removed.
type Store struct {
	mu       sync.Mutex
	records  []expense.Record
	lastSeen time.Time
}

func NewStore() *Store {
	return &Store{lastSeen: time.Now()}
}

func (s *Store) Append(r expense.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, r)
}

// Records returns a copy of the session's entries in insertion order.
func (s *Store) Records() []expense.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]expense.Record(nil), s.records...)
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

func (s *Store) touch(t time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = t
}

func (s *Store) seen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// CSV serializes the session to UTF-8 CSV: header row plus one row per
// record. Numeric fields use the shortest exact representation so a
// parsed-back row reproduces them bit for bit.
func (s *Store) CSV() ([]byte, error) {
	records := s.Records()
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range records {
		if err := w.Write(csvRow(r)); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

func csvRow(r expense.Record) []string {
	distance := ""
	if r.DistanceKM > 0 {
		distance = strconv.FormatFloat(r.DistanceKM, 'f', -1, 64)
	}
	receiptName := ""
	if r.Receipt != nil {
		receiptName = r.Receipt.FileName
	}
	return []string{
		r.EmployeeName,
		r.Department,
		r.Position,
		r.SubmissionDate.Format(dateLayout),
		r.DateOfTravel.Format(dateLayout),
		r.TimeOfTravel,
		r.FromLocation,
		r.ToLocation,
		strconv.FormatFloat(r.FareAmount, 'f', -1, 64),
		r.ReceiptNumber,
		strings.Join(r.PrimaryReasons, ReasonSeparator),
		r.ReasonOther,
		r.Client,
		r.ServiceType,
		r.Equipment,
		r.WorkDescription,
		r.ReceiptType,
		r.LicensePlate,
		r.StartTime,
		r.EndTime,
		distance,
		receiptName,
	}
}
