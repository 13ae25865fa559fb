// Package terminal provides rich terminal output with colors and tables
package terminal

import (
	"fmt"
	"io"

	"github.com/arthur-debert/linkfix/pkg/ownership"
	"github.com/arthur-debert/linkfix/pkg/symlinks"
	"github.com/arthur-debert/linkfix/pkg/ui/styles"
	"github.com/pterm/pterm"
)

// Renderer renders results as styled tables
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{output: w}, nil
}

// RenderResult renders any result type with rich terminal formatting
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

var statusStyle = map[string]string{
	symlinks.StatusRelinked:    "Success",
	symlinks.StatusNative:      "Muted",
	symlinks.StatusWouldRelink: "Warning",
	symlinks.StatusPending:     "Error",
}

func (r *Renderer) renderSymlinks(res *symlinks.Result) error {
	header := styles.Render("Header", "Symlinks under "+res.Directory)
	if _, err := fmt.Fprintln(r.output, header); err != nil {
		return err
	}

	if len(res.Records) == 0 {
		_, err := fmt.Fprintln(r.output, styles.Render("Muted", "No symlinks found."))
		return err
	}

	data := pterm.TableData{{"Status", "Symlink", "Target"}}
	for _, rec := range res.Records {
		status := res.Status(rec)
		data = append(data, []string{
			styles.Render(statusStyle[status], status),
			styles.Render("Path", rec.Symlink),
			rec.Target,
		})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(r.output, table); err != nil {
		return err
	}

	var summary string
	if res.DryRun {
		summary = styles.Render("Warning", fmt.Sprintf("DRY RUN: %d symlink(s) would be relinked, %d already native",
			len(res.Pending()), len(res.Skipped)))
	} else {
		summary = styles.Render("Success", fmt.Sprintf("%d symlink(s) relinked, %d already native",
			len(res.Relinked), len(res.Skipped)))
	}
	_, err = fmt.Fprintln(r.output, summary)
	return err
}

func (r *Renderer) renderReport(rep *ownership.Report) error {
	if _, err := fmt.Fprintln(r.output, styles.Render("Header", rep.Path)); err != nil {
		return err
	}
	if !rep.Exists {
		_, err := fmt.Fprintln(r.output, styles.Render("Warning", "Path does not exist."))
		return err
	}
	if _, err := fmt.Fprintf(r.output, "%s %s\n", styles.Render("Bold", "Owner:"), rep.Owner); err != nil {
		return err
	}
	if len(rep.ACEs) == 0 {
		return nil
	}

	data := pterm.TableData{{"Type", "Principal", "Rights", "Inheritance", "Inherited"}}
	for _, ace := range rep.ACEs {
		inherited := "no"
		if ace.Inherited {
			inherited = "yes"
		}
		data = append(data, []string{ace.Type, ace.Principal, ace.Rights, ace.Inheritance, inherited})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.output, table)
	return err
}

// RenderError renders an error in the Error style
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintln(r.output, styles.Render("Error", fmt.Sprintf("Error: %v", err)))
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, styles.Render("Info", msg))
	return err
}
