package writers

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const bufSize = 1 << 20

// ErrNoFile is returned by Write when no output file is open.
var ErrNoFile = errors.New("no output file open")

// Sink receives the lines of one record at a time. Open ends whatever was
// open before; Close is a no-op when nothing is open.
type Sink interface {
	Open(name string) error
	Write(p []byte) (int, error)
	Close() error
}

// Rotator writes each record to its own file under Dir, truncating
// existing files. At most one file is open at a time.
type Rotator struct {
	Dir string

	name string
	f    *os.File
	w    *bufio.Writer
}

func NewRotator(dir string) *Rotator { return &Rotator{Dir: dir} }

// Open flushes and closes the current file, then creates Dir/name.
func (r *Rotator) Open(name string) error {
	if err := r.Close(); err != nil {
		return err
	}
	path := filepath.Join(r.Dir, name)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	r.name, r.f, r.w = name, f, bufio.NewWriterSize(f, bufSize)
	return nil
}

func (r *Rotator) Write(p []byte) (int, error) {
	if r.w == nil {
		return 0, ErrNoFile
	}
	return r.w.Write(p)
}

// Close flushes and closes the current file, if any.
func (r *Rotator) Close() error {
	if r.f == nil {
		return nil
	}
	f, w, name := r.f, r.w, r.name
	r.name, r.f, r.w = "", nil, nil
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("flush %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", name, err)
	}
	return nil
}

// Current names the open file, or "" when none is open.
func (r *Rotator) Current() string { return r.name }

// Discard is a Sink that creates nothing. Used for dry runs.
type Discard struct {
	open bool
}

func (d *Discard) Open(string) error { d.open = true; return nil }

func (d *Discard) Write(p []byte) (int, error) {
	if !d.open {
		return 0, ErrNoFile
	}
	return len(p), nil
}

func (d *Discard) Close() error { d.open = false; return nil }
