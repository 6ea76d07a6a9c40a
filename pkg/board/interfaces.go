package board

// DisplayRenderer is the terminal surface the board workflows write to.
// It abstracts bullets.UpdatableLogger so workflows can be tested against
// a recording mock.
type DisplayRenderer interface {
	// Info prints a neutral line.
	Info(message string)

	// Error prints a failure line.
	Error(message string)

	// Success prints a confirmation line.
	Success(message string)

	// IncreasePadding indents subsequent lines.
	IncreasePadding()

	// DecreasePadding undoes one IncreasePadding.
	DecreasePadding()
}

// Ensure displayRenderer implements DisplayRenderer interface at compile time.
var _ DisplayRenderer = (*displayRenderer)(nil)
