package handlers

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/HowardChu-bme/Taxi-Receipt/internal/expense"
	"github.com/HowardChu-bme/Taxi-Receipt/internal/session"
)

// formValues echoes raw submitted field values back into the form so a
// rejected submission keeps what the user typed.
type formValues struct {
	EmployeeName    string
	SubmissionDate  string
	DateOfTravel    string
	TimeOfTravel    string
	FromLocation    string
	ToLocation      string
	FareAmount      string
	ReceiptNumber   string
	ReasonOther     string
	Client          string
	ServiceType     string
	Equipment       string
	WorkDescription string
	ReceiptType     string
	LicensePlate    string
	StartTime       string
	EndTime         string
	DistanceKM      string
	Reasons         map[string]bool
}

func defaultForm() formValues {
	today := time.Now().Format(dateLayout)
	return formValues{
		SubmissionDate: today,
		DateOfTravel:   today,
		ServiceType:    "Maintenance",
		ReceiptType:    expense.ReceiptTypes[1],
		Reasons:        map[string]bool{},
	}
}

type recordView struct {
	Index      int
	TravelDate string
	From       string
	To         string
	Fare       string
	Reasons    string
	HasReceipt bool
}

type pageData struct {
	Company      string
	Errors       []string
	Success      bool
	Form         formValues
	Records      []recordView
	Preview      template.HTML
	PreviewIndex int
	Reasons      []string
	ServiceTypes []string
	ReceiptTypes []string
}

func (h *Handler) page(st *session.Store, fv formValues, errs []string) pageData {
	records := st.Records()
	views := make([]recordView, len(records))
	for i, r := range records {
		views[i] = recordView{
			Index:      i,
			TravelDate: r.DateOfTravel.Format(dateLayout),
			From:       r.FromLocation,
			To:         r.ToLocation,
			Fare:       fmt.Sprintf("HK$ %.2f", r.FareAmount),
			Reasons:    strings.Join(r.PrimaryReasons, ", "),
			HasReceipt: r.Receipt != nil,
		}
	}
	return pageData{
		Company:      expense.Company,
		Errors:       errs,
		Form:         fv,
		Records:      views,
		PreviewIndex: -1,
		Reasons:      expense.ReasonOptions,
		ServiceTypes: expense.ServiceTypes,
		ReceiptTypes: expense.ReceiptTypes,
	}
}
