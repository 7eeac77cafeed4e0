package render

import (
	"bytes"
	"errors"
	"testing"

	"github.com/HowardChu-bme/Taxi-Receipt/internal/expense"
)

func TestFareChart(t *testing.T) {
	r1 := testRecord()
	r2 := testRecord()
	r2.FareAmount = 120

	png, err := FareChart([]expense.Record{r1, r2})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Fatal("output is not a PNG")
	}
}

func TestFareChartEmpty(t *testing.T) {
	if _, err := FareChart(nil); !errors.Is(err, ErrNoEntries) {
		t.Fatalf("got %v, want ErrNoEntries", err)
	}
}
