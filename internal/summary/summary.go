// Package summary inspects the per-chromosome files left by a split.
package summary

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	"github.com/fatih/color"

	"chromsplit/internal/chrom"
	"chromsplit/internal/jsonutil"
)

// Entry describes one canonical chromosome file.
type Entry struct {
	Chrom   string  `json:"chrom"`
	File    string  `json:"file"`
	Present bool    `json:"present"`
	ID      string  `json:"id,omitempty"`
	Desc    string  `json:"description,omitempty"`
	Length  int     `json:"length"`
	GC      float64 `json:"gc"` // over A/C/G/T only; N and IUPAC codes ignored
}

// Collect reads <dir>/<chrom>.fa for every canonical chromosome, in
// karyotype order. Absent files give an Entry with Present=false.
func Collect(dir string) ([]Entry, error) {
	var out []Entry
	for _, name := range chrom.Names() {
		e := Entry{Chrom: name, File: name + ".fa"}
		path := filepath.Join(dir, e.File)
		f, err := os.Open(path)
		if errors.Is(err, os.ErrNotExist) {
			out = append(out, e)
			continue
		}
		if err != nil {
			return nil, err
		}
		if fi, serr := f.Stat(); serr == nil && fi.Size() > 0 {
			err = readFirst(f, &e)
		}
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		e.Present = true
		out = append(out, e)
	}
	return out, nil
}

func readFirst(r io.Reader, e *Entry) error {
	fr := fasta.NewReader(r, linear.NewSeq("", nil, alphabet.DNA))
	s, err := fr.Read()
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return err
	}
	seq := s.(*linear.Seq)
	e.ID = seq.Name()
	e.Desc = seq.Description()
	e.Length = seq.Len()

	var gc, acgt int
	for _, l := range seq.Seq {
		switch l {
		case 'G', 'C', 'g', 'c':
			gc++
			acgt++
		case 'A', 'T', 'a', 't':
			acgt++
		}
	}
	if acgt > 0 {
		e.GC = float64(gc) / float64(acgt)
	}
	return nil
}

// Options controls rendering.
type Options struct {
	Missing bool // include absent chromosomes
	Color   bool // colour the header row
}

func visible(list []Entry, missing bool) []Entry {
	if missing {
		return list
	}
	var out []Entry
	for _, e := range list {
		if e.Present {
			out = append(out, e)
		}
	}
	return out
}

// WriteText writes a tab-separated table.
func WriteText(w io.Writer, list []Entry, o Options) error {
	hdr := color.New(color.Bold, color.FgCyan)
	miss := color.New(color.FgYellow)
	if !o.Color {
		hdr.DisableColor()
		miss.DisableColor()
	}
	if _, err := hdr.Fprintln(w, "chrom\tfile\tid\tlength\tgc"); err != nil {
		return err
	}
	for _, e := range visible(list, o.Missing) {
		var err error
		if e.Present {
			_, err = fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.4f\n", e.Chrom, e.File, e.ID, e.Length, e.GC)
		} else {
			_, err = miss.Fprintf(w, "%s\t%s\t-\tmissing\t-\n", e.Chrom, e.File)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON writes the entries as a JSON array.
func WriteJSON(w io.Writer, list []Entry, o Options) error {
	v := visible(list, o.Missing)
	if v == nil {
		v = []Entry{}
	}
	return jsonutil.EncodePretty(w, v)
}
