package progrock

import (
	"fmt"
	"io"
	"sync"

	"github.com/vito/progrock"
)

var _ progrock.Writer = (*StatusPrinter)(nil)

// StatusPrinter is a progrock.Writer that renders status updates as plain
// lines, for environments without an interactive display.
type StatusPrinter struct {
	mu  sync.Mutex
	out io.Writer
}

// NewStatusPrinter creates a StatusPrinter writing to out.
func NewStatusPrinter(out io.Writer) *StatusPrinter {
	return &StatusPrinter{out: out}
}

// WriteStatus renders vertex transitions and their log output.
func (p *StatusPrinter) WriteStatus(status *progrock.StatusUpdate) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, v := range status.GetVertexes() {
		switch {
		case v.Error != nil:
			_, _ = fmt.Fprintf(p.out, "=> %s error: %s\n", v.GetName(), v.GetError())
		case v.GetCached():
			_, _ = fmt.Fprintf(p.out, "=> %s (cached)\n", v.GetName())
		case v.GetCompleted() != nil:
			_, _ = fmt.Fprintf(p.out, "=> %s done\n", v.GetName())
		case v.GetStarted() != nil:
			_, _ = fmt.Fprintf(p.out, "=> %s\n", v.GetName())
		}
	}

	for _, l := range status.GetLogs() {
		_, _ = p.out.Write(l.GetData())
	}

	return nil
}

// Close implements progrock.Writer.
func (p *StatusPrinter) Close() error {
	return nil
}
