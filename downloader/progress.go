package downloader

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/dustin/go-humanize"
	"github.com/muesli/reflow/padding"
	"github.com/muesli/reflow/truncate"
	"github.com/tubedl/tubedl/util"
)

const (
	refreshInterval = 500 * time.Millisecond
	fallbackWidth   = 80
)

// progressWriter renders "<name>   [bar] NN%" on one line, left half name, right half bar.
// Without a known size it prints a single static line instead.
type progressWriter struct {
	out     io.Writer
	name    string
	total   int64
	written int64
	bar     progress.Model
	last    time.Time
	now     func() time.Time
}

func newProgressWriter(out io.Writer, name string, total int64) *progressWriter {
	width, _, err := util.TerminalSize()
	if err != nil || width <= 0 {
		width = fallbackWidth
	}

	half := width/2 - 1
	gap := 2 + width%2

	p := &progressWriter{
		out:   out,
		name:  fitName(name, half) + strings.Repeat(" ", gap),
		total: total,
		bar:   progress.New(progress.WithDefaultGradient(), progress.WithWidth(util.Max(half, 10))),
		now:   time.Now,
	}

	if total < 0 {
		fmt.Fprintln(out, p.name+"Downloading...")
	} else {
		p.render()
	}
	return p
}

// fitName truncates with "..." or pads with spaces to exactly width cells.
func fitName(name string, width int) string {
	if width <= 3 {
		return ""
	}
	return padding.String(truncate.StringWithTail(name, uint(width), "..."), uint(width))
}

func (p *progressWriter) Write(b []byte) (int, error) {
	p.written += int64(len(b))
	if p.total >= 0 && p.now().Sub(p.last) >= refreshInterval {
		p.render()
	}
	return len(b), nil
}

func (p *progressWriter) percent() float64 {
	if p.total <= 0 {
		return 1
	}
	return util.Min(float64(p.written)/float64(p.total), 1)
}

func (p *progressWriter) render() {
	p.last = p.now()
	fmt.Fprintf(p.out, "\r%s%s", p.name, p.bar.ViewAs(p.percent()))
}

// Finish draws the final state and terminates the line.
func (p *progressWriter) Finish(ok bool) {
	switch {
	case p.total >= 0 && ok:
		p.written = p.total
		p.render()
		fmt.Fprintln(p.out)
	case p.total >= 0:
		p.render()
		fmt.Fprintln(p.out)
	case ok:
		fmt.Fprintf(p.out, "%s%s\n", p.name, humanize.Bytes(uint64(p.written)))
	}
}
