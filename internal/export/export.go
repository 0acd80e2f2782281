// Package export writes rendered resumes to downloadable artifacts: a PDF
// printed through headless Chrome and a Word-compatible standalone HTML file.
package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
)

// DefaultTimeout bounds a single headless-browser print.
const DefaultTimeout = 60 * time.Second

// Exporter writes artifacts into an output directory.
type Exporter struct {
	OutDir  string
	Timeout time.Duration
}

// New creates an Exporter for the given output directory.
func New(outDir string) *Exporter {
	return &Exporter{OutDir: outDir, Timeout: DefaultTimeout}
}

// PDF renders the resume with its selected template and prints it to a PDF
// file. Returns the path of the written artifact.
func (e *Exporter) PDF(ctx context.Context, data *types.ResumeData) (string, error) {
	html, err := rendering.Render(data)
	if err != nil {
		return "", err
	}

	pdf, err := printToPDF(ctx, html, e.timeout())
	if err != nil {
		return "", &ExportError{Format: "pdf", Message: "failed to print resume", Cause: err}
	}

	path := filepath.Join(e.OutDir, ArtifactName(data.PersonalInfo.FullName, "pdf"))
	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		return "", &ExportError{Format: "pdf", Message: "failed to write artifact", Cause: err}
	}
	return path, nil
}

// HTML renders the resume and writes it as a standalone HTML document that
// word processors can open.
func (e *Exporter) HTML(data *types.ResumeData) (string, error) {
	html, err := rendering.Render(data)
	if err != nil {
		return "", err
	}

	path := filepath.Join(e.OutDir, ArtifactName(data.PersonalInfo.FullName, "html"))
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return "", &ExportError{Format: "html", Message: "failed to write artifact", Cause: err}
	}
	return path, nil
}

// Both writes the PDF and HTML artifacts concurrently.
func (e *Exporter) Both(ctx context.Context, data *types.ResumeData) (pdfPath, htmlPath string, err error) {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		pdfPath, err = e.PDF(ctx, data)
		return err
	})
	g.Go(func() error {
		var err error
		htmlPath, err = e.HTML(data)
		return err
	})
	if err := g.Wait(); err != nil {
		return "", "", err
	}
	return pdfPath, htmlPath, nil
}

func (e *Exporter) timeout() time.Duration {
	if e.Timeout > 0 {
		return e.Timeout
	}
	return DefaultTimeout
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// ArtifactName builds the download filename: the full name with whitespace
// runs replaced by underscores, suffixed with "_Resume" and the extension.
func ArtifactName(fullName, ext string) string {
	name := whitespaceRe.ReplaceAllString(strings.TrimSpace(fullName), "_")
	if name == "" {
		return fmt.Sprintf("Resume.%s", ext)
	}
	return fmt.Sprintf("%s_Resume.%s", name, ext)
}
