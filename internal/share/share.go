package share

import (
	"context"
	"fmt"
	"io"

	"github.com/atotto/clipboard"
)

// Sharer hands a finished result's summary text to something outside the
// quiz. Implementations own their own presentation.
type Sharer interface {
	Share(ctx context.Context, text string) error
}

// Clipboard copies share text to the system clipboard.
type Clipboard struct {
	write func(string) error
}

var _ Sharer = (*Clipboard)(nil)

// NewClipboard returns a Sharer backed by the system clipboard.
func NewClipboard() *Clipboard {
	return &Clipboard{write: clipboard.WriteAll}
}

// Available reports whether a clipboard utility was found on this system.
func Available() bool {
	return !clipboard.Unsupported
}

func (c *Clipboard) Share(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := c.write(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}

// Writer prints share text as a line to w.
type Writer struct {
	w io.Writer
}

var _ Sharer = (*Writer)(nil)

// NewWriter returns a Sharer that prints to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (s *Writer) Share(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(s.w, text); err != nil {
		return fmt.Errorf("write share text: %w", err)
	}
	return nil
}
