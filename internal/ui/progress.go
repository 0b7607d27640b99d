package ui

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"
)

// Progress counts finished render jobs and prints one line per job.
// It is safe for concurrent use.
type Progress struct {
	out       io.Writer
	total     int
	completed atomic.Int32
	failed    atomic.Int32
	mu        sync.Mutex
}

// NewProgress creates a progress tracker for n jobs.
func NewProgress(out io.Writer, total int) *Progress {
	return &Progress{out: out, total: total}
}

// Done marks one job as finished.
func (p *Progress) Done(label string) {
	n := int(p.completed.Add(1))
	p.printf("[%d/%d] %s\n", n, p.total, label)
}

// Fail marks one job as finished with an error.
func (p *Progress) Fail(label string, err error) {
	n := int(p.completed.Add(1))
	p.failed.Add(1)
	p.printf("[%d/%d] %s: FAILED (%v)\n", n, p.total, label, err)
}

// Failed returns how many jobs failed so far.
func (p *Progress) Failed() int {
	return int(p.failed.Load())
}

// Log prints an informational message within the progress context.
func (p *Progress) Log(format string, args ...any) {
	p.printf(format+"\n", args...)
}

func (p *Progress) printf(format string, args ...any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = fmt.Fprintf(p.out, format, args...)
}
