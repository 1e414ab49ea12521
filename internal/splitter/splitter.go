package splitter

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"chromsplit/internal/chrom"
	"chromsplit/internal/fasta"
	"chromsplit/internal/writers"
)

// PlaceholderName is the empty file created up front in legacy mode.
const PlaceholderName = "tmp"

// Options tune a run.
type Options struct {
	// LegacyPlaceholder recreates the stray empty "tmp" file older
	// pipelines expect next to the chromosome files.
	LegacyPlaceholder bool
	Logger            *log.Logger
}

// Stats summarises one run.
type Stats struct {
	Lines    int      `json:"lines"`
	Headers  int      `json:"headers"`
	Selected int      `json:"selected"`
	Skipped  int      `json:"skipped"`
	Bytes    int64    `json:"bytes"`
	Files    []string `json:"files"` // in write order; repeats on duplicates
}

type Splitter struct {
	sink writers.Sink
	opts Options
	log  *log.Logger
}

func New(sink writers.Sink, opts Options) *Splitter {
	lg := opts.Logger
	if lg == nil {
		lg = log.New(io.Discard)
	}
	return &Splitter{sink: sink, opts: opts, log: lg}
}

// SplitFile reads path whole and splits it.
func (s *Splitter) SplitFile(ctx context.Context, path string) (Stats, error) {
	lines, err := fasta.ReadLines(path)
	if err != nil {
		return Stats{}, err
	}
	s.log.Debug("input loaded", "path", path, "lines", len(lines))
	return s.Split(ctx, lines)
}

// Split runs the selection over lines. The sink is always closed before
// returning; earlier files stay on disk when an error stops the run.
func (s *Splitter) Split(ctx context.Context, lines [][]byte) (st Stats, err error) {
	defer func() {
		if cerr := s.sink.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if s.opts.LegacyPlaceholder {
		if err := s.sink.Open(PlaceholderName); err != nil {
			return st, fmt.Errorf("open %s: %w", PlaceholderName, err)
		}
	}

	selected := false
	for i, line := range lines {
		st.Lines++
		header := fasta.IsHeader(line)
		if header {
			if err := ctx.Err(); err != nil {
				return st, err
			}
			st.Headers++
			name := fasta.HeaderToken(line)
			if chrom.IsCanonical(name) {
				selected = true
				file := name + ".fa"
				if err := s.sink.Open(file); err != nil {
					return st, fmt.Errorf("open %s: %w", file, err)
				}
				st.Selected++
				st.Files = append(st.Files, file)
				s.log.Info("writing chromosome", "chrom", name, "file", file, "line", i+1)
			} else {
				selected = false
				if err := s.sink.Close(); err != nil {
					return st, err
				}
				st.Skipped++
				s.log.Debug("skipping record", "id", name, "line", i+1)
			}
		}
		if !selected {
			continue
		}

		out := line
		if header {
			out = fasta.RewriteHeader(line)
		}
		n, err := s.sink.Write(out)
		st.Bytes += int64(n)
		if err != nil {
			return st, fmt.Errorf("write line %d: %w", i+1, err)
		}
	}
	return st, nil
}
