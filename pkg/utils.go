package pkg

import (
	"io"

	"github.com/mitchellh/colorstring"
)

func PrintTask(w io.Writer, msg string) {
	colorstring.Fprintf(w, "[blue][bold]==>[default] %s\n", msg)
}

func PrintSubtask(w io.Writer, msg string) {
	colorstring.Fprintf(w, "[green][bold]  ->[reset] %s\n", msg)
}

func PrintSkipped(w io.Writer, msg string) {
	colorstring.Fprintf(w, "[dark_gray]  -- %s (skipped)[reset]\n", msg)
}
