package main

import (
	"fmt"
	"io"

	"github.com/atotto/clipboard"
)

// Sink receives a derived password for display or transfer.
type Sink interface {
	Deliver(password string) error
}

// WriterSink prints the password to W.
type WriterSink struct {
	W io.Writer
}

func (s WriterSink) Deliver(password string) error {
	_, err := fmt.Fprintf(s.W, "\nGenerated Password: %s\n", password)
	return err
}

// ClipboardSink copies the password to the system clipboard.
type ClipboardSink struct{}

func (ClipboardSink) Deliver(password string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnsupported
	}
	return clipboard.WriteAll(password)
}
