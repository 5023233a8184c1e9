package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// RenderOptions controls terminal output.
type RenderOptions struct {
	NoColor   bool
	HideGloss bool
}

type palette struct {
	header *color.Color
	index  *color.Color
	prompt *color.Color
	gloss  *color.Color
	errc   *color.Color
}

func newPalette(noColor bool) palette {
	p := palette{
		header: color.New(color.FgCyan, color.Bold),
		index:  color.New(color.FgHiBlack),
		prompt: color.New(color.FgGreen, color.Bold),
		gloss:  color.New(color.FgYellow),
		errc:   color.New(color.FgRed, color.Bold),
	}
	if noColor {
		for _, c := range []*color.Color{p.header, p.index, p.prompt, p.gloss, p.errc} {
			c.DisableColor()
		}
	}
	return p
}

// Render writes numbered cards for res.
func Render(w io.Writer, res *Result, opts RenderOptions) {
	p := newPalette(opts.NoColor)

	p.header.Fprintf(w, "「%s」 %s (%s)\n", res.Keyword, res.Style, res.Provider)
	for i, c := range res.Cards {
		p.index.Fprintf(w, "%2d. ", i+1)
		p.prompt.Fprint(w, c.Prompt)
		fmt.Fprintln(w)
		if !opts.HideGloss && c.Gloss != "" {
			fmt.Fprint(w, "    ")
			p.gloss.Fprint(w, c.Gloss)
			fmt.Fprintln(w)
		}
	}
}

// RenderError writes the user message for err.
func RenderError(w io.Writer, err error, opts RenderOptions) {
	p := newPalette(opts.NoColor)
	p.errc.Fprintln(w, Message(err))
}
