// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// NewLogger builds the stderr logger shared by all subcommands.
// quiet wins over level and keeps only errors.
func NewLogger(dst io.Writer, level string, quiet bool) (*log.Logger, error) {
	lvl := log.InfoLevel
	if level != "" {
		l, err := log.ParseLevel(strings.ToLower(level))
		if err != nil {
			return nil, fmt.Errorf("invalid --log-level %q", level)
		}
		lvl = l
	}
	if quiet {
		lvl = log.ErrorLevel
	}
	return log.NewWithOptions(dst, log.Options{
		Prefix: "chromsplit",
		Level:  lvl,
	}), nil
}
