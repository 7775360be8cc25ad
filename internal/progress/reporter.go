package progress

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"

	"github.com/ziadkadry99/docview/internal/route"
)

// Reporter follows a link check across the route table.
type Reporter interface {
	// Start is called once with the number of routed documents.
	Start(documents int)
	// Checked reports the n-th document and how many problems it had.
	Checked(n int, path route.DocumentPath, problems int)
	// Finish is called once with the totals, even when the check is cancelled.
	Finish(errors, warnings int)
}

// NewReporter picks a line reporter under CI and a progress bar otherwise.
func NewReporter(w io.Writer) Reporter {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &LineReporter{out: w}
	}
	return &BarReporter{out: w}
}

// Nop discards all progress.
type Nop struct{}

func (Nop) Start(int)                            {}
func (Nop) Checked(int, route.DocumentPath, int) {}
func (Nop) Finish(int, int)                      {}

// BarReporter draws a progress bar labelled with the document being checked.
type BarReporter struct {
	out      io.Writer
	bar      *progressbar.ProgressBar
	problems int
}

func (r *BarReporter) Start(documents int) {
	r.problems = 0
	r.bar = progressbar.NewOptions(documents,
		progressbar.OptionSetWriter(r.out),
		progressbar.OptionSetDescription("Checking routes"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *BarReporter) Checked(n int, path route.DocumentPath, problems int) {
	if r.bar == nil {
		return
	}
	r.problems += problems
	desc := string(path)
	if r.problems > 0 {
		desc = fmt.Sprintf("%s (%s so far)", path, plural(r.problems, "problem"))
	}
	r.bar.Describe(desc)
	_ = r.bar.Set(n)
}

func (r *BarReporter) Finish(errors, warnings int) {
	if r.bar == nil {
		return
	}
	_ = r.bar.Finish()
	fmt.Fprintf(r.out, "Link check: %s, %s\n", plural(errors, "error"), plural(warnings, "warning"))
}

// LineReporter writes one line per document, for CI logs.
type LineReporter struct {
	out       io.Writer
	documents int
}

func (r *LineReporter) Start(documents int) {
	r.documents = documents
	fmt.Fprintf(r.out, "Checking %s in the route table\n", plural(documents, "document"))
}

func (r *LineReporter) Checked(n int, path route.DocumentPath, problems int) {
	status := "ok"
	if problems > 0 {
		status = plural(problems, "problem")
	}
	fmt.Fprintf(r.out, "[%d/%d] %s: %s\n", n, r.documents, path, status)
}

func (r *LineReporter) Finish(errors, warnings int) {
	fmt.Fprintf(r.out, "Link check finished: %s, %s\n", plural(errors, "error"), plural(warnings, "warning"))
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
