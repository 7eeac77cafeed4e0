package render

import (
	"strings"
	"testing"
)

func TestHTMLContainsSections(t *testing.T) {
	html, err := HTML(testRecord())
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"Taxi Expense Justification Form",
		"Employee information",
		"Trip details",
		"Justification",
		"Work details",
		"Receipt info",
		"Jane Doe",
		"HK$ 45.50",
		`<span class="badge">Emergency Call</span>`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestHTMLPreservesLineBreaks(t *testing.T) {
	r := testRecord()
	r.WorkDescription = "Line1\nLine2"
	html, err := HTML(r)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(html, "Line1<br>Line2") {
		t.Fatalf("line break not rendered as <br>:\n%s", html)
	}
}

func TestHTMLEscapesMarkup(t *testing.T) {
	r := testRecord()
	r.WorkDescription = "<script>alert(1)</script>"
	r.FromLocation = "A & B <Pier>"
	html, err := HTML(r)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(html, "<script>") {
		t.Fatal("script tag not escaped")
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Fatal("expected escaped script tag")
	}
	if !strings.Contains(html, "A &amp; B &lt;Pier&gt;") {
		t.Fatal("expected escaped location")
	}
}

func TestHTMLIdempotent(t *testing.T) {
	r := testRecord()
	first, err := HTML(r)
	if err != nil {
		t.Fatal(err)
	}
	second, err := HTML(r)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Fatal("two renders of the same record differ")
	}
}
