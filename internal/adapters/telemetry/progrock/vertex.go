package progrock

import (
	"fmt"
	"io"

	"github.com/vito/progrock"
	"go.trai.ch/seek/internal/core/domain"
)

// Vertex is one recorded discovery phase.
type Vertex struct {
	vertex *progrock.VertexRecorder
}

// Stdout returns the phase output stream.
func (v *Vertex) Stdout() io.Writer {
	return v.vertex.Stdout()
}

// Log writes msg to the phase. Warnings and errors go to the stderr stream.
func (v *Vertex) Log(level domain.LogLevel, msg string) {
	w := v.vertex.Stdout()
	if level >= domain.LogLevelWarn {
		w = v.vertex.Stderr()
	}
	_, _ = fmt.Fprintf(w, "%s: %s\n", level, msg)
}

// Complete ends the phase. A failed phase also logs its error.
func (v *Vertex) Complete(err error) {
	if err != nil {
		v.Log(domain.LogLevelError, err.Error())
	}
	v.vertex.Done(err)
}

// Cached marks the phase as answered from the discovery cache.
func (v *Vertex) Cached() {
	v.Log(domain.LogLevelInfo, "served from cache")
	v.vertex.Cached()
}
