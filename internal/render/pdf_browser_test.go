package render

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

type fakeEngine struct {
	lastHTML string
	out      []byte
	err      error
}

func (f *fakeEngine) PrintHTML(_ context.Context, html string) ([]byte, error) {
	f.lastHTML = html
	return f.out, f.err
}

func TestBrowserPDF(t *testing.T) {
	eng := &fakeEngine{out: []byte("%PDF-fake")}
	res, err := BrowserPDF(context.Background(), eng, testRecord())
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(res.PDF, eng.out) {
		t.Fatal("engine output not passed through")
	}
	if !strings.Contains(eng.lastHTML, "Jane Doe") {
		t.Fatal("engine did not receive the rendered summary")
	}
}

func TestBrowserPDFPassesLineBreaks(t *testing.T) {
	r := testRecord()
	r.WorkDescription = "Line1\nLine2"
	eng := &fakeEngine{out: []byte("%PDF-fake")}
	if _, err := BrowserPDF(context.Background(), eng, r); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(eng.lastHTML, "Line1<br>Line2") {
		t.Fatal("line breaks lost before printing")
	}
}

func TestBrowserPDFEngineFailure(t *testing.T) {
	boom := errors.New("browser crashed")
	eng := &fakeEngine{err: boom}
	_, err := BrowserPDF(context.Background(), eng, testRecord())
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, boom) {
		t.Fatalf("engine error not wrapped: %v", err)
	}
}
