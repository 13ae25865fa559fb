// Package ui renders command results in terminal (rich), text (plain),
// JSON and YAML formats.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/linkfix/pkg/ui/json"
	"github.com/arthur-debert/linkfix/pkg/ui/terminal"
	"github.com/arthur-debert/linkfix/pkg/ui/text"
	"github.com/arthur-debert/linkfix/pkg/ui/yaml"
)

// Renderer is the common interface for all output renderers
type Renderer interface {
	// RenderResult renders a command result (*symlinks.Result, ownership.Report, ...)
	RenderResult(result interface{}) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a renderer for format. FormatAuto inspects output
// when it is a file and falls back to plain text otherwise.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output)
		}
		return NewRenderer(FormatText, output)
	case FormatTerminal:
		return terminal.New(output)
	case FormatText:
		return text.New(output)
	case FormatJSON:
		return json.New(output)
	case FormatYAML:
		return yaml.New(output)
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}
