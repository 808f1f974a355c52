package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/ukaji3/matchtemplates-go/pkg/matchtemplates"
)

// printer writes styled status lines. Colors are dropped when w is not a terminal.
type printer struct {
	w       io.Writer
	ok      lipgloss.Style
	bad     lipgloss.Style
	muted   lipgloss.Style
	regular lipgloss.Style
}

func newPrinter(w io.Writer) *printer {
	r := lipgloss.NewRenderer(w)
	return &printer{
		w:       w,
		ok:      r.NewStyle().Foreground(lipgloss.Color("2")),
		bad:     r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		muted:   r.NewStyle().Foreground(lipgloss.Color("8")),
		regular: r.NewStyle(),
	}
}

func (p *printer) line(style lipgloss.Style, msg string) {
	fmt.Fprintln(p.w, style.Render(msg))
}

func (p *printer) blank() { fmt.Fprintln(p.w) }
func (p *printer) info(msg string) { p.line(p.regular, msg) }
func (p *printer) success(msg string) { p.line(p.ok, msg) }
func (p *printer) failure(msg string) { p.line(p.bad, msg) }
func (p *printer) hint(msg string) { p.line(p.muted, msg) }

// created reports each generated file.
func (p *printer) created(results []matchtemplates.Result) {
	for _, r := range results {
		p.success(fmt.Sprintf("✅ %s created: %s", r.Description, r.Path))
	}
}
