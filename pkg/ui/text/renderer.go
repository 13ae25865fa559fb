// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/linkfix/pkg/ownership"
	"github.com/arthur-debert/linkfix/pkg/symlinks"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderResult renders any result type as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *symlinks.Result:
		return r.renderSymlinks(v)
	case ownership.Report:
		return r.renderReport(&v)
	case *ownership.Report:
		return r.renderReport(v)
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

func (r *Renderer) renderSymlinks(res *symlinks.Result) error {
	w := &errWriter{w: r.output}

	w.printf("Directory: %s\n", res.Directory)
	if res.EmulationDir != "" && res.EmulationDir != res.Directory {
		w.printf("Emulation path: %s\n", res.EmulationDir)
	}

	if len(res.Records) == 0 {
		w.printf("No symlinks found.\n")
		return w.err
	}

	w.printf("\n")
	for _, rec := range res.Records {
		w.printf("  %-12s %s -> %s\n", res.Status(rec), rec.Symlink, rec.Target)
	}
	w.printf("\n")

	if res.DryRun {
		w.printf("%d symlink(s) would be relinked, %d already native.\n", len(res.Pending()), len(res.Skipped))
		w.printf("DRY RUN MODE - No changes were made\n")
	} else {
		w.printf("%d symlink(s) relinked, %d already native.\n", len(res.Relinked), len(res.Skipped))
	}
	return w.err
}

func (r *Renderer) renderReport(rep *ownership.Report) error {
	w := &errWriter{w: r.output}

	w.printf("Path: %s\n", rep.Path)
	if !rep.Exists {
		w.printf("Path does not exist.\n")
		return w.err
	}
	w.printf("Owner: %s\n", rep.Owner)

	for _, ace := range rep.ACEs {
		inherited := ""
		if ace.Inherited {
			inherited = " (inherited)"
		}
		w.printf("  %-5s %s: %s [%s]%s\n", ace.Type, ace.Principal, ace.Rights, ace.Inheritance, inherited)
	}
	return w.err
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "Error: %v\n", err)
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

// errWriter keeps the first write error so rendering code can stay linear
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...interface{}) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
