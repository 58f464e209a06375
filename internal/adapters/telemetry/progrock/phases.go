package progrock

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/vito/progrock"
	"go.trai.ch/seek/internal/ui/style"
)

// Phases is a progrock.Writer that keeps the latest status of every vertex,
// in the order they were first seen, so they can be rendered as a summary.
type Phases struct {
	mu    sync.Mutex
	order []string
	byID  map[string]*phase
}

type phase struct {
	name      string
	cached    bool
	completed bool
	err       string
	logs      strings.Builder
}

var _ progrock.Writer = (*Phases)(nil)

// NewPhases creates an empty phase summary.
func NewPhases() *Phases {
	return &Phases{byID: make(map[string]*phase)}
}

// WriteStatus merges one update into the summary.
func (p *Phases) WriteStatus(update *progrock.StatusUpdate) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, v := range update.Vertexes {
		ph := p.get(v.Id)
		ph.name = v.Name
		ph.cached = ph.cached || v.Cached
		if v.Completed != nil {
			ph.completed = true
			if v.Error != nil {
				ph.err = *v.Error
			}
		}
	}
	for _, l := range update.Logs {
		_, _ = p.get(l.Vertex).logs.Write(l.Data)
	}
	return nil
}

func (p *Phases) get(id string) *phase {
	ph, ok := p.byID[id]
	if !ok {
		ph = &phase{}
		p.byID[id] = ph
		p.order = append(p.order, id)
	}
	return ph
}

// Close is a no-op; the summary stays readable.
func (p *Phases) Close() error {
	return nil
}

// Render writes one line per phase followed by its indented log lines.
func (p *Phases) Render(w io.Writer) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, id := range p.order {
		ph := p.byID[id]
		if ph.name == "" {
			continue
		}
		line := statusIcon(ph) + " " + ph.name
		switch {
		case ph.err != "":
			line += " (failed)"
		case ph.cached:
			line += " (cached)"
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
		for _, l := range strings.Split(strings.TrimRight(ph.logs.String(), "\n"), "\n") {
			if l == "" {
				continue
			}
			if _, err := fmt.Fprintln(w, "  "+l); err != nil {
				return err
			}
		}
	}
	return nil
}

func statusIcon(ph *phase) string {
	switch {
	case ph.err != "":
		return style.Cross
	case ph.completed:
		return style.Check
	default:
		return style.Dot
	}
}

// tee fans status updates out to several writers.
type tee []progrock.Writer

func (t tee) WriteStatus(update *progrock.StatusUpdate) error {
	for _, w := range t {
		if err := w.WriteStatus(update); err != nil {
			return err
		}
	}
	return nil
}

func (t tee) Close() error {
	var first error
	for _, w := range t {
		if err := closeWriter(w); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func closeWriter(w progrock.Writer) error {
	if c, ok := w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
