package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	canvasrenderer "github.com/xugehan/english-related-generator/renderer/canvas"
	"github.com/xugehan/english-related-generator/slips"
	"github.com/xugehan/english-related-generator/worksheet"
	"github.com/xugehan/english-related-generator/xlsx"
)

const (
	xlsxMIME          = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	warningsHeader    = "X-Generate-Warnings"
	defaultPreviewDPI = 120
)

// handleTemplate serves the example workbook download.
func (s *Server) handleTemplate(c echo.Context) error {
	buf, err := xlsx.Template()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="template.xlsx"`)
	return c.Blob(http.StatusOK, xlsxMIME, buf.Bytes())
}

// newRenderer builds a per-request renderer: an uploaded font wins
// over the configured one; both are optional and never fatal.
func (s *Server) newRenderer(c echo.Context) (*canvasrenderer.Renderer, []string) {
	r := canvasrenderer.New()
	var warnings []string

	if file, err := c.FormFile("font"); err == nil && file != nil {
		src, err := file.Open()
		if err == nil {
			data, readErr := io.ReadAll(src)
			src.Close()
			if readErr == nil {
				if w := r.LoadWideFontBytes(file.Filename, data); w != "" {
					warnings = append(warnings, w)
				}
				return r, warnings
			}
		}
		warnings = append(warnings, fmt.Sprintf("读取上传字体 %s 失败，改用服务端字体", file.Filename))
	}

	if w := r.LoadWideFont(s.cfg.WideFontPath); w != "" {
		warnings = append(warnings, w)
	}
	return r, warnings
}

// slipsOptions parses the multipart form fields into generator options.
// Absent fields stay zero and fall back to the generator defaults.
func slipsOptions(c echo.Context) (slips.Options, error) {
	opts := slips.Options{Title: c.FormValue("title")}
	opts.Landscape = c.FormValue("landscape") == "true"
	if fields := c.FormValue("fields"); fields != "" {
		for _, f := range strings.Split(fields, ",") {
			if f = strings.TrimSpace(f); f != "" {
				opts.Fields = append(opts.Fields, f)
			}
		}
	}

	ints := map[string]*int{"cols": &opts.Cols, "rows": &opts.Rows}
	for key, dst := range ints {
		if v := c.FormValue(key); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return opts, fmt.Errorf("参数 %s=%q 不是整数", key, v)
			}
			*dst = n
		}
	}
	floats := map[string]*float64{
		"cardHeight": &opts.CardHeight,
		"margin":     &opts.Margin,
		"gutter":     &opts.Gutter,
	}
	for key, dst := range floats {
		if v := c.FormValue(key); v != "" {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return opts, fmt.Errorf("参数 %s=%q 不是数字", key, v)
			}
			*dst = f
		}
	}
	return opts, nil
}

func (s *Server) generateSlips(c echo.Context, preview bool) error {
	file, err := c.FormFile("excel")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "缺少 excel 文件"})
	}
	src, err := file.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	defer src.Close()

	_, records, err := xlsx.ReadRecords(src)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	opts, err := slipsOptions(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	r, warnings := s.newRenderer(c)
	var doc *slips.Document
	if preview {
		doc, err = slips.Preview(records, r, opts)
	} else {
		doc, err = slips.Generate(records, r, opts)
	}
	if err != nil {
		if isConfigError(err) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	warnings = append(warnings, doc.Warnings...)
	setWarnings(c, warnings)

	if preview {
		data, err := r.RenderPreview(doc.Layout, previewDPI(c))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.Blob(http.StatusOK, "image/png", data)
	}

	data, err := r.Render(doc.Layout)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	s.store.LogGeneration("slips", opts, len(records), doc.Pages, c.RealIP())
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="slips.pdf"`)
	return c.Blob(http.StatusOK, "application/pdf", data)
}

func (s *Server) handleSlips(c echo.Context) error        { return s.generateSlips(c, false) }
func (s *Server) handleSlipsPreview(c echo.Context) error { return s.generateSlips(c, true) }

// worksheetRequest is the JSON body for worksheet generation.
type worksheetRequest struct {
	Date     string   `json:"date"`
	Scope    string   `json:"scope"`
	Cols     int      `json:"cols"`
	Rows     int      `json:"rows"`
	FontSize float64  `json:"fontSize"`
	Padding  float64  `json:"padding"`
	Items    []string `json:"items"`
	DPI      float64  `json:"dpi"`
}

func (s *Server) generateWorksheet(c echo.Context, preview bool) error {
	var req worksheetRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	opts := worksheet.Options{
		Date:     req.Date,
		Scope:    req.Scope,
		Cols:     req.Cols,
		Rows:     req.Rows,
		FontSize: req.FontSize,
		Padding:  req.Padding,
	}

	r, warnings := s.newRenderer(c)
	doc, err := worksheet.Generate(req.Items, r, opts)
	if err != nil {
		if isConfigError(err) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	warnings = append(warnings, doc.Warnings...)
	setWarnings(c, warnings)

	if preview {
		dpi := req.DPI
		if dpi <= 0 {
			dpi = defaultPreviewDPI
		}
		data, err := r.RenderPreview(doc.Layout, dpi)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.Blob(http.StatusOK, "image/png", data)
	}

	data, err := r.Render(doc.Layout)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	s.store.LogGeneration("worksheet", opts, len(req.Items), doc.Pages, c.RealIP())
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="worksheet.pdf"`)
	return c.Blob(http.StatusOK, "application/pdf", data)
}

func (s *Server) handleWorksheet(c echo.Context) error        { return s.generateWorksheet(c, false) }
func (s *Server) handleWorksheetPreview(c echo.Context) error { return s.generateWorksheet(c, true) }

func previewDPI(c echo.Context) float64 {
	if v := c.FormValue("dpi"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			return f
		}
	}
	return defaultPreviewDPI
}

func setWarnings(c echo.Context, warnings []string) {
	if len(warnings) > 0 {
		c.Response().Header().Set(warningsHeader, strings.Join(warnings, "; "))
	}
}

// isConfigError distinguishes caller mistakes (400) from engine
// failures (500).
func isConfigError(err error) bool {
	return errors.Is(err, slips.ErrNoRecords) ||
		errors.Is(err, slips.ErrNoFields) ||
		errors.Is(err, slips.ErrBadGrid) ||
		errors.Is(err, worksheet.ErrNoItems) ||
		errors.Is(err, worksheet.ErrBadGrid)
}
