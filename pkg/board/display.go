package board

import (
	"io"

	"github.com/sgaunet/bullets"
)

// displayRenderer implements DisplayRenderer on top of the bullets library.
type displayRenderer struct {
	updatable *bullets.UpdatableLogger
}

// NewDisplay returns a renderer writing bullet lines to w.
func NewDisplay(w io.Writer) DisplayRenderer {
	return &displayRenderer{updatable: bullets.NewUpdatable(w)}
}

// Info prints a neutral line.
func (d *displayRenderer) Info(message string) {
	d.updatable.Info(message)
}

// Error prints a failure line.
func (d *displayRenderer) Error(message string) {
	d.updatable.Error(message)
}

// Success prints a confirmation line.
func (d *displayRenderer) Success(message string) {
	d.updatable.Success(message)
}

// IncreasePadding indents subsequent lines.
func (d *displayRenderer) IncreasePadding() {
	d.updatable.IncreasePadding()
}

// DecreasePadding undoes one IncreasePadding.
func (d *displayRenderer) DecreasePadding() {
	d.updatable.DecreasePadding()
}
