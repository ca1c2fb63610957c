package report

import (
	"bytes"
	"driver-training-service/internal/domain"
	"driver-training-service/internal/services"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
)

// A rendered report: a suggested filename plus the PDF bytes.
type Document struct {
	Filename string
	data     []byte
}

// Bytes returns the encoded PDF.
func (d *Document) Bytes() []byte { return d.data }

// Save writes the PDF to path, or to d.Filename when path is empty.
func (d *Document) Save(path string) error {
	if path == "" {
		path = d.Filename
	}
	if err := os.WriteFile(path, d.data, 0o644); err != nil {
		return fmt.Errorf("save report %q: %w", path, err)
	}
	return nil
}

// Generator renders driver reports. Now stamps the footer and document metadata;
// Percentage selects the phase completion formula shown in training reports.
type Generator struct {
	Now        func() time.Time
	Percentage func(domain.TrainingProgress, domain.TrainingPhase) float64
}

func NewGenerator() *Generator {
	return &Generator{Now: time.Now, Percentage: services.ProgressPercentage}
}

func (g *Generator) now() time.Time {
	if g.Now == nil {
		return time.Now()
	}
	return g.Now()
}

func (g *Generator) percentage(p domain.TrainingProgress, phase domain.TrainingPhase) float64 {
	if g.Percentage == nil {
		return services.ProgressPercentage(p, phase)
	}
	return g.Percentage(p, phase)
}

type rgb struct{ r, g, b int }

var (
	primaryColor   = rgb{0, 51, 102}
	lightGray      = rgb{245, 245, 245}
	borderColor    = rgb{200, 200, 200}
	mutedTextColor = rgb{100, 100, 100}
	restTextColor  = rgb{150, 150, 150}
)

func fill(pdf *fpdf.Fpdf, c rgb)      { pdf.SetFillColor(c.r, c.g, c.b) }
func textColor(pdf *fpdf.Fpdf, c rgb) { pdf.SetTextColor(c.r, c.g, c.b) }
func drawColor(pdf *fpdf.Fpdf, c rgb) { pdf.SetDrawColor(c.r, c.g, c.b) }

func (g *Generator) newPDF(orientation, title string) *fpdf.Fpdf {
	pdf := fpdf.New(orientation, "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCreationDate(g.now())
	pdf.SetTitle(title, true)
	pdf.SetCreator("driver-training-service", true)
	pdf.AddPage()
	return pdf
}

func render(pdf *fpdf.Fpdf, filename string) (*Document, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render %q: %w", filename, err)
	}
	return &Document{Filename: filename, data: buf.Bytes()}, nil
}

// fileSafe keeps driver names usable as a filename component.
func fileSafe(name string) string {
	r := strings.NewReplacer("/", "-", "\\", "-", ":", "-")
	return r.Replace(strings.TrimSpace(name))
}

func truncate(s string, max int) string {
	if len([]rune(s)) <= max {
		return s
	}
	return string([]rune(s)[:max-3]) + "..."
}
