package export

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/types"
)

func TestArtifactName(t *testing.T) {
	tests := []struct {
		name     string
		fullName string
		ext      string
		want     string
	}{
		{
			name:     "simple name",
			fullName: "Jane Doe",
			ext:      "pdf",
			want:     "Jane_Doe_Resume.pdf",
		},
		{
			name:     "multiple spaces collapse",
			fullName: "Jane   Marie  Doe",
			ext:      "html",
			want:     "Jane_Marie_Doe_Resume.html",
		},
		{
			name:     "surrounding whitespace trimmed",
			fullName: "  Jane Doe\t",
			ext:      "pdf",
			want:     "Jane_Doe_Resume.pdf",
		},
		{
			name:     "empty name falls back",
			fullName: "",
			ext:      "pdf",
			want:     "Resume.pdf",
		},
		{
			name:     "whitespace only falls back",
			fullName: "   ",
			ext:      "html",
			want:     "Resume.html",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ArtifactName(tt.fullName, tt.ext))
		})
	}
}

func TestExporter_HTML(t *testing.T) {
	dir := t.TempDir()
	e := New(dir)

	data := types.NewResumeData()
	data.PersonalInfo.FullName = "Jane Doe"
	data.PersonalInfo.Email = "jane@example.com"
	data.PersonalInfo.Summary = "Engineer with a decade of experience."

	path, err := e.HTML(data)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Jane_Doe_Resume.html"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(content), "Jane Doe"))
	assert.True(t, strings.HasPrefix(strings.TrimSpace(string(content)), "<!DOCTYPE html>"))
}

func TestExporter_HTML_RenderFailure(t *testing.T) {
	e := New(t.TempDir())

	_, err := e.HTML(nil)
	assert.Error(t, err)
}

func TestExportError_Unwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := &ExportError{Format: "pdf", Message: "failed to write artifact", Cause: cause}

	assert.Contains(t, err.Error(), "pdf")
	assert.Contains(t, err.Error(), "disk full")
	assert.True(t, errors.Is(err, cause))
}

func TestExporter_TimeoutDefault(t *testing.T) {
	e := &Exporter{OutDir: "."}
	assert.Equal(t, DefaultTimeout, e.timeout())

	e.Timeout = DefaultTimeout / 2
	assert.Equal(t, DefaultTimeout/2, e.timeout())
}
