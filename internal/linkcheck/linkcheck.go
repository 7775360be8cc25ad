// Package linkcheck audits the route table: every routed document is loaded
// and rendered, and every internal link it contains is checked against the
// table and the content source.
package linkcheck

import (
	"context"
	"errors"
	"sort"

	"github.com/ziadkadry99/docview/internal/content"
	"github.com/ziadkadry99/docview/internal/progress"
	"github.com/ziadkadry99/docview/internal/render"
	"github.com/ziadkadry99/docview/internal/route"
)

// Severity grades a finding.
type Severity string

const (
	// SeverityError marks a document or link target that cannot be loaded.
	SeverityError Severity = "error"
	// SeverityWarning marks a link target that loads but is not routed, so
	// a page reload on its hash falls back to the index.
	SeverityWarning Severity = "warning"
)

// Finding is one problem found during a check.
type Finding struct {
	Severity Severity           `json:"severity" yaml:"severity"`
	Source   route.DocumentPath `json:"source" yaml:"source"`
	Href     string             `json:"href,omitempty" yaml:"href,omitempty"`
	Target   route.DocumentPath `json:"target" yaml:"target"`
	Message  string             `json:"message" yaml:"message"`
}

// Report summarises a check.
type Report struct {
	Documents int       `json:"documents" yaml:"documents"`
	Links     int       `json:"links" yaml:"links"`
	Findings  []Finding `json:"findings" yaml:"findings"`
}

// Errors returns the number of error findings.
func (r *Report) Errors() int {
	n := 0
	for _, f := range r.Findings {
		if f.Severity == SeverityError {
			n++
		}
	}
	return n
}

// Warnings returns the number of warning findings.
func (r *Report) Warnings() int {
	return len(r.Findings) - r.Errors()
}

// Checker runs route table audits.
type Checker struct {
	table    *route.Table
	loader   content.Loader
	renderer *render.Renderer
	reporter progress.Reporter
}

// New returns a Checker. A nil reporter discards progress.
func New(table *route.Table, loader content.Loader, renderer *render.Renderer, reporter progress.Reporter) *Checker {
	if reporter == nil {
		reporter = progress.Nop{}
	}
	return &Checker{table: table, loader: loader, renderer: renderer, reporter: reporter}
}

// Run checks every routed document. It returns an error only when ctx is
// cancelled; problems with the documents themselves are findings.
func (c *Checker) Run(ctx context.Context) (*Report, error) {
	entries := c.table.Entries()
	report := &Report{Documents: len(entries)}

	// Load results per target, so each unrouted target is fetched once.
	probed := make(map[route.DocumentPath]error)

	c.reporter.Start(len(entries))
	defer func() { c.reporter.Finish(report.Errors(), report.Warnings()) }()

	for i, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		before := len(report.Findings)
		if err := c.checkDocument(ctx, e.Path, report, probed); err != nil {
			return nil, err
		}
		c.reporter.Checked(i+1, e.Path, len(report.Findings)-before)
	}

	sort.SliceStable(report.Findings, func(i, j int) bool {
		return report.Findings[i].Source < report.Findings[j].Source
	})
	return report, nil
}

// checkDocument appends the findings for one routed document to report.
func (c *Checker) checkDocument(ctx context.Context, path route.DocumentPath, report *Report, probed map[route.DocumentPath]error) error {
	raw, err := c.loader.Load(ctx, path)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		report.Findings = append(report.Findings, failure(path, "", path, err))
		return nil
	}
	doc, err := c.renderer.Render(path, raw)
	if err != nil {
		report.Findings = append(report.Findings, failure(path, "", path, err))
		return nil
	}

	for _, link := range doc.Links {
		if !link.Rewritten() {
			continue
		}
		report.Links++
		if c.table.Contains(link.Target) {
			continue
		}
		loadErr, seen := probed[link.Target]
		if !seen {
			_, loadErr = c.loader.Load(ctx, link.Target)
			probed[link.Target] = loadErr
		}
		if loadErr != nil {
			report.Findings = append(report.Findings, failure(path, link.Href, link.Target, loadErr))
			continue
		}
		report.Findings = append(report.Findings, Finding{
			Severity: SeverityWarning,
			Source:   path,
			Href:     link.Href,
			Target:   link.Target,
			Message:  "target is not in the route table",
		})
	}
	return nil
}

func failure(source route.DocumentPath, href string, target route.DocumentPath, err error) Finding {
	lf := content.AsLoadFailure(target, err)
	msg := lf.Message
	if lf.Err != nil {
		msg += ": " + lf.Err.Error()
	}
	return Finding{
		Severity: SeverityError,
		Source:   source,
		Href:     href,
		Target:   target,
		Message:  msg,
	}
}
