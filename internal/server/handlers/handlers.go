package handlers

import (
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/HowardChu-bme/Taxi-Receipt/internal/config"
	"github.com/HowardChu-bme/Taxi-Receipt/internal/expense"
	"github.com/HowardChu-bme/Taxi-Receipt/internal/render"
	"github.com/HowardChu-bme/Taxi-Receipt/internal/session"
)

const (
	sessionCookie = "sid"
	dateLayout    = "2006-01-02"

	errUnsupportedType = "Receipt file type not supported (PDF/JPG/JPEG/PNG)."
	errUnreadableFile  = "Could not read the uploaded receipt file."
)

var allowedExtensions = map[string]bool{
	".pdf": true, ".jpg": true, ".jpeg": true, ".png": true,
}

// Handler serves the justification form and its exports. All state lives in
// the per-session stores; a handler instance itself is stateless.
type Handler struct {
	cfg      *config.Config
	sessions *session.Manager
	engine   render.Engine
	logger   *zap.Logger
}

func New(cfg *config.Config, sessions *session.Manager, engine render.Engine, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{cfg: cfg, sessions: sessions, engine: engine, logger: logger}
}

// store resolves the caller's session store, issuing the session cookie on
// first contact.
func (h *Handler) store(c *gin.Context) *session.Store {
	sid, err := c.Cookie(sessionCookie)
	if err != nil || sid == "" {
		sid = h.sessions.NewID()
		c.SetCookie(sessionCookie, sid, 0, "/", "", false, true)
	}
	return h.sessions.Get(sid)
}

func (h *Handler) Index(c *gin.Context) {
	st := h.store(c)
	c.HTML(http.StatusOK, "form.html", h.page(st, defaultForm(), nil))
}

// Submit validates one form submission atomically: either every invariant
// holds and the record is appended, or the form is re-shown with the full
// error list and nothing is stored.
func (h *Handler) Submit(c *gin.Context) {
	st := h.store(c)
	fv, cand, receipt, fileErrs := h.parseForm(c)

	errs := expense.Validate(cand)
	errs = append(errs, fileErrs...)
	if len(errs) > 0 {
		data := h.page(st, fv, errs)
		c.HTML(http.StatusUnprocessableEntity, "form.html", data)
		return
	}

	rec := expense.NewRecord(cand)
	rec.Receipt = receipt
	st.Append(rec)
	h.logger.Info("record accepted",
		zap.String("employee", rec.EmployeeName),
		zap.Float64("fare", rec.FareAmount),
		zap.Int("session_records", st.Len()))

	data := h.page(st, defaultForm(), nil)
	data.Success = true
	data.PreviewIndex = st.Len() - 1
	if html, err := render.HTML(rec); err != nil {
		h.logger.Warn("preview render failed", zap.Error(err))
	} else {
		data.Preview = template.HTML(html)
	}
	c.HTML(http.StatusOK, "form.html", data)
}

// RecordPDF streams one record's PDF, drawn by the requested path
// (?path=browser|canvas). A renderer failure is reported as a warning; the
// record stays in the store for a retry.
func (h *Handler) RecordPDF(c *gin.Context) {
	records := h.store(c).Records()
	idx, err := strconv.Atoi(c.Param("idx"))
	if err != nil || idx < 0 || idx >= len(records) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no such record"})
		return
	}
	rec := records[idx]

	var res render.Result
	path := c.DefaultQuery("path", "browser")
	switch path {
	case "canvas":
		res, err = render.CanvasPDF(rec, render.CanvasOptions{FontPath: h.cfg.Render.FontPath})
	case "browser":
		res, err = render.BrowserPDF(c.Request.Context(), h.engine, rec)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown render path " + path})
		return
	}
	if err != nil {
		h.logger.Warn("pdf generation failed",
			zap.String("path", path),
			zap.Int("record", idx),
			zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"warning": "PDF generation failed: " + err.Error()})
		return
	}
	for _, w := range res.Warnings {
		h.logger.Warn("pdf render degraded", zap.String("warning", w))
	}
	if len(res.Warnings) > 0 {
		c.Header("X-Render-Warning", strings.Join(res.Warnings, "; "))
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", render.PDFFileName(rec)))
	c.Data(http.StatusOK, "application/pdf", res.PDF)
}

// ReceiptFile offers the uploaded receipt back under its original name and
// declared MIME type.
func (h *Handler) ReceiptFile(c *gin.Context) {
	records := h.store(c).Records()
	idx, err := strconv.Atoi(c.Param("idx"))
	if err != nil || idx < 0 || idx >= len(records) || records[idx].Receipt == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no receipt for this record"})
		return
	}
	rc := records[idx].Receipt
	ct := rc.MIME
	if ct == "" {
		ct = "application/octet-stream"
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", rc.FileName))
	c.Data(http.StatusOK, ct, rc.Data)
}

func (h *Handler) ExportCSV(c *gin.Context) {
	b, err := h.store(c).CSV()
	if err != nil {
		h.logger.Warn("csv export failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "CSV export failed"})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="taxi_expenses.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", b)
}

func (h *Handler) FareChart(c *gin.Context) {
	png, err := render.FareChart(h.store(c).Records())
	if errors.Is(err, render.ErrNoEntries) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no entries yet"})
		return
	}
	if err != nil {
		h.logger.Warn("chart render failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"warning": "chart render failed"})
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// parseForm maps the multipart form onto a Candidate plus the raw values
// for re-display. File reading happens only after the size and type gates.
func (h *Handler) parseForm(c *gin.Context) (formValues, expense.Candidate, *expense.Receipt, []string) {
	fv := formValues{
		EmployeeName:    c.PostForm("employee_name"),
		SubmissionDate:  c.PostForm("submission_date"),
		DateOfTravel:    c.PostForm("date_of_travel"),
		TimeOfTravel:    c.PostForm("time_of_travel"),
		FromLocation:    c.PostForm("from_location"),
		ToLocation:      c.PostForm("to_location"),
		FareAmount:      c.PostForm("fare_amount"),
		ReceiptNumber:   c.PostForm("receipt_number"),
		ReasonOther:     c.PostForm("reason_other"),
		Client:          c.PostForm("client"),
		ServiceType:     c.PostForm("service_type"),
		Equipment:       c.PostForm("equipment"),
		WorkDescription: c.PostForm("work_description"),
		ReceiptType:     c.PostForm("receipt_type"),
		LicensePlate:    c.PostForm("license_plate"),
		StartTime:       c.PostForm("start_time"),
		EndTime:         c.PostForm("end_time"),
		DistanceKM:      c.PostForm("distance_km"),
		Reasons:         map[string]bool{},
	}
	reasons := expense.FilterReasons(c.PostFormArray("reasons"))
	for _, r := range reasons {
		fv.Reasons[r] = true
	}

	cand := expense.Candidate{
		EmployeeName:    fv.EmployeeName,
		SubmissionDate:  parseDate(fv.SubmissionDate),
		DateOfTravel:    parseDate(fv.DateOfTravel),
		TimeOfTravel:    fv.TimeOfTravel,
		FromLocation:    fv.FromLocation,
		ToLocation:      fv.ToLocation,
		FareAmount:      parseAmount(fv.FareAmount),
		ReceiptNumber:   fv.ReceiptNumber,
		PrimaryReasons:  reasons,
		ReasonOther:     fv.ReasonOther,
		Client:          fv.Client,
		ServiceType:     fv.ServiceType,
		Equipment:       fv.Equipment,
		WorkDescription: fv.WorkDescription,
		ReceiptType:     fv.ReceiptType,
		LicensePlate:    fv.LicensePlate,
		StartTime:       fv.StartTime,
		EndTime:         fv.EndTime,
	}
	if v := strings.TrimSpace(fv.DistanceKM); v != "" {
		if d, err := strconv.ParseFloat(v, 64); err == nil && d > 0 {
			cand.DistanceKM = d
		}
	}

	var fileErrs []string
	var receipt *expense.Receipt
	fh, err := c.FormFile("receipt")
	if err != nil || fh == nil {
		return fv, cand, nil, nil
	}
	cand.ReceiptName = fh.Filename
	cand.ReceiptSize = fh.Size
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedExtensions[ext] {
		fileErrs = append(fileErrs, errUnsupportedType)
		return fv, cand, nil, fileErrs
	}
	if fh.Size > expense.MaxReceiptBytes {
		// Validate reports the size violation; the bytes stay unread.
		return fv, cand, nil, nil
	}
	f, err := fh.Open()
	if err != nil {
		return fv, cand, nil, append(fileErrs, errUnreadableFile)
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, expense.MaxReceiptBytes))
	if err != nil {
		return fv, cand, nil, append(fileErrs, errUnreadableFile)
	}
	mt := mimetype.Detect(data)
	if !mt.Is("application/pdf") && !mt.Is("image/jpeg") && !mt.Is("image/png") {
		return fv, cand, nil, append(fileErrs, errUnsupportedType)
	}
	ct := fh.Header.Get("Content-Type")
	if ct == "" {
		ct = mt.String()
	}
	receipt = &expense.Receipt{
		FileName: fh.Filename,
		MIME:     ct,
		Size:     fh.Size,
		Data:     data,
	}
	return fv, cand, receipt, fileErrs
}

func parseDate(v string) time.Time {
	if t, err := time.Parse(dateLayout, strings.TrimSpace(v)); err == nil {
		return t
	}
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// parseAmount maps garbage input to a negative value so the fare invariant
// reports it; an empty field means zero, which is a valid fare.
func parseAmount(v string) float64 {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return -1
	}
	return f
}
