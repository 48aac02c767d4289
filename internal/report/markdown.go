package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/nao1215/seocheck/internal/model"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing, e.g. pasting a
// link audit into an issue or a pull request.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which gives us tables, mermaid charts and GitHub alerts without
// hand-escaping the document structure.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the run report in Markdown format.
func (w *MarkdownWriter) Write(report *model.RunReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeSummary(md, report)
	w.writePlatforms(md, report)
	w.writeLinks(md, report)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the report title and run information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.RunReport) {
	md.H1("SEO Link Check Report")
	md.PlainText("")

	input := report.InputFile
	if input == "" {
		input = "-"
	}

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Input File", "`" + input + "`"},
			{"Generated", report.GeneratedAt.Format("2006-01-02 15:04:05 MST")},
			{"Platforms", strconv.Itoa(len(report.Platforms))},
			{"Success Rate", report.SuccessRate},
		},
	})
	md.PlainText("")
}

// writeSummary writes the link totals, the chart and the outcome alert.
func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, report *model.RunReport) {
	md.H2("Summary")
	md.PlainText("")

	s := report.Summary
	md.Table(markdown.TableSet{
		Header: []string{"Metric", "Count"},
		Rows: [][]string{
			{"Total Links", strconv.Itoa(s.Total)},
			{"🟢 Active Links", strconv.Itoa(s.Active)},
			{"🔴 Error Links", strconv.Itoa(s.Error)},
			{"**Success Rate**", "**" + report.SuccessRate + "**"},
		},
	})
	md.PlainText("")

	if s.Total > 0 {
		w.writePieChart(md, s)
	}

	w.writeAlert(md, s)
}

// writePieChart writes a mermaid pie chart of active versus error links.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, s model.Summary) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Link Status"),
		piechart.WithShowData(true),
	)

	if s.Active > 0 {
		chart.LabelAndIntValue("Active", uint64(s.Active))
	}
	if s.Error > 0 {
		chart.LabelAndIntValue("Error", uint64(s.Error))
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeAlert writes an alert matching the overall outcome.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, s model.Summary) {
	switch {
	case s.Total == 0:
		md.Note("No links were checked.")
	case s.Error == 0:
		md.Tip("All links are active.")
	case s.Active == 0:
		md.Cautionf("All %d link(s) failed the check.", s.Error)
	default:
		md.Warningf("%d of %d link(s) failed the check.", s.Error, s.Total)
	}
	md.PlainText("")
}

// writePlatforms writes one table row per platform.
func (w *MarkdownWriter) writePlatforms(md *markdown.Markdown, report *model.RunReport) {
	md.H2("Platforms")
	md.PlainText("")

	if len(report.Platforms) == 0 {
		md.PlainText("No platforms found.")
		md.PlainText("")
		return
	}

	rows := make([][]string, 0, len(report.Platforms))
	for _, p := range report.Platforms {
		if p == nil {
			continue
		}
		rows = append(rows, []string{
			escapeCell(p.Platform),
			strconv.Itoa(p.Total),
			strconv.Itoa(p.Active),
			strconv.Itoa(p.Error),
			healthText(p.Health()),
		})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Platform", "Total", "Active", "Error", "Status"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeLinks writes a table of links for each platform.
func (w *MarkdownWriter) writeLinks(md *markdown.Markdown, report *model.RunReport) {
	md.H2("Links")
	md.PlainText("")

	for _, p := range report.Platforms {
		if p == nil {
			continue
		}

		md.PlainTextf("### %s (%d/%d active)", p.Platform, p.Active, p.Total)
		md.PlainText("")

		if len(p.Links) == 0 {
			md.PlainText("No links listed.")
			md.PlainText("")
			continue
		}

		rows := make([][]string, len(p.Links))
		for i, link := range p.Links {
			status := "✅ Active"
			if !link.Status.IsActive() {
				status = "❌ Error"
			}
			code := "-"
			if link.StatusCode > 0 {
				code = strconv.Itoa(link.StatusCode)
			}
			rows[i] = []string{strconv.Itoa(i + 1), status, code, escapeCell(link.URL)}
		}

		md.Table(markdown.TableSet{
			Header: []string{"#", "Status", "HTTP", "URL"},
			Rows:   rows,
		})
		md.PlainText("")
	}
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [seocheck](https://github.com/nao1215/seocheck)*")
}

// healthText returns the status label for a platform.
func healthText(h model.Health) string {
	switch h {
	case model.HealthAllActive:
		return "✅ All active"
	case model.HealthPartial:
		return "⚠️ Partial"
	default:
		return "❌ All error"
	}
}

// escapeCell keeps pipe characters from breaking table rows.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
