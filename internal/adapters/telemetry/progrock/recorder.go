// Package progrock records discovery phases with progrock and renders a summary of them.
package progrock

import (
	"context"
	"io"
	"strconv"
	"sync"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/seek/internal/core/ports"
)

// Recorder implements ports.Telemetry on top of a progrock recorder.
type Recorder struct {
	w      progrock.Writer
	rec    *progrock.Recorder
	phases *Phases

	mu   sync.Mutex
	runs map[string]int
}

// New creates a Recorder that only keeps the phase summary.
func New() *Recorder {
	return NewRecorder(nil)
}

// NewRecorder creates a Recorder that also forwards every update to w when
// w is not nil.
func NewRecorder(w progrock.Writer) *Recorder {
	phases := NewPhases()
	var out progrock.Writer = phases
	if w != nil {
		out = tee{phases, w}
	}
	return &Recorder{
		w:      out,
		rec:    progrock.NewRecorder(out),
		phases: phases,
		runs:   make(map[string]int),
	}
}

var _ ports.Telemetry = (*Recorder)(nil)

// Render writes the summary of every recorded phase to w.
func (r *Recorder) Render(w io.Writer) error {
	return r.phases.Render(w)
}

// Record starts a vertex for one phase. Repeated phases with the same name,
// as in watch mode, get their own vertex.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	v := &Vertex{vertex: r.rec.Vertex(r.digest(name), name)}
	return ports.ContextWithVertex(ctx, v), v
}

// Runs returns how many vertices were recorded under name.
func (r *Recorder) Runs(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.runs[name]
}

func (r *Recorder) digest(name string) digest.Digest {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runs[name]++
	return digest.FromString(name + "#" + strconv.Itoa(r.runs[name]))
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	return closeWriter(r.w)
}
