// internal/fasta/reader.go
package fasta

import (
	"bytes"
	"io"
	"os"
)

// ReadLines loads the whole of path ("-" = stdin) and splits it into lines.
// Each line keeps its trailing '\n'; the last line may lack one.
func ReadLines(path string) ([][]byte, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, err
	}
	return SplitLines(data), nil
}

// SplitLines splits data after every '\n' without copying.
func SplitLines(data []byte) [][]byte {
	if len(data) == 0 {
		return nil
	}
	lines := bytes.SplitAfter(data, []byte{'\n'})
	if last := len(lines) - 1; len(lines[last]) == 0 {
		lines = lines[:last]
	}
	return lines
}

// IsHeader reports whether line starts a record.
func IsHeader(line []byte) bool { return len(line) > 0 && line[0] == '>' }

// HeaderToken returns the first whitespace-delimited token of a header with
// its leading '>' removed. Non-headers and bare ">" yield "".
func HeaderToken(line []byte) string {
	if !IsHeader(line) {
		return ""
	}
	f := bytes.Fields(line)
	if len(f) == 0 {
		return ""
	}
	return string(f[0][1:])
}

// RewriteHeader returns ">" followed by line[4:], i.e. ">chr7 x\n" -> ">7 x\n".
// The 4-byte cut is fixed, so ">chr10" becomes ">10".
func RewriteHeader(line []byte) []byte {
	out := make([]byte, 0, len(line))
	out = append(out, '>')
	if len(line) > 4 {
		out = append(out, line[4:]...)
	}
	return out
}

func openReader(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}
