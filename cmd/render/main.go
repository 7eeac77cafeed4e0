package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/HowardChu-bme/Taxi-Receipt/internal/expense"
	"github.com/HowardChu-bme/Taxi-Receipt/internal/render"
	"github.com/HowardChu-bme/Taxi-Receipt/pkg/utils"
)

// Renders a single record, read from a JSON file, to PDF without the web
// UI. Useful for layout checks and batch re-renders.
func main() {
	logger := utils.Logger()
	defer logger.Sync()

	in := flag.String("in", "record.json", "Path to the record JSON file")
	out := flag.String("out", "", "Output PDF path (default taxi_expense_<date>.pdf)")
	path := flag.String("path", "canvas", "Render path: canvas|browser")
	font := flag.String("font", "", "TTF file overriding the embedded font (canvas path)")
	timeout := flag.Duration("timeout", 30*time.Second, "Browser print timeout")
	flag.Parse()

	b, err := os.ReadFile(*in)
	if err != nil {
		logger.Fatal("read record", zap.Error(err))
	}
	var rec expense.Record
	if err := json.Unmarshal(b, &rec); err != nil {
		logger.Fatal("parse record", zap.Error(err))
	}

	var res render.Result
	switch *path {
	case "browser":
		eng := &render.ChromeEngine{Timeout: *timeout}
		res, err = render.BrowserPDF(context.Background(), eng, rec)
	default:
		res, err = render.CanvasPDF(rec, render.CanvasOptions{FontPath: *font})
	}
	if err != nil {
		logger.Fatal("render failed", zap.String("path", *path), zap.Error(err))
	}
	for _, w := range res.Warnings {
		logger.Warn("render degraded", zap.String("warning", w))
	}

	dest := *out
	if dest == "" {
		dest = render.PDFFileName(rec)
	}
	if err := os.WriteFile(dest, res.PDF, 0o644); err != nil {
		logger.Fatal("write pdf", zap.Error(err))
	}
	logger.Info("pdf written", zap.String("path", dest), zap.Int("bytes", len(res.PDF)))
}
