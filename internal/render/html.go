package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/HowardChu-bme/Taxi-Receipt/internal/expense"
	"github.com/HowardChu-bme/Taxi-Receipt/web"
)

var docTemplate = template.Must(template.New("document.html").
	Funcs(web.Funcs()).
	ParseFS(web.TemplatesFS, "templates/document.html"))

// HTML renders the printable summary card. The same markup feeds the
// on-page preview and the browser PDF path.
func HTML(r expense.Record) (string, error) {
	var buf bytes.Buffer
	if err := docTemplate.ExecuteTemplate(&buf, "document.html", BuildDocument(r)); err != nil {
		return "", fmt.Errorf("execute document template: %w", err)
	}
	return buf.String(), nil
}
