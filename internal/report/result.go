package report

import (
	"fmt"
	"io"
)

// WriteEstimate prints the reading time line.
func WriteEstimate(w io.Writer, minutes int) error {
	_, err := fmt.Fprintf(w, "Estimated reading time: %d minutes\n", minutes)
	return err
}

// WriteWordCount prints the total word count line.
func WriteWordCount(w io.Writer, words int) error {
	_, err := fmt.Fprintf(w, "Word Count: %d\n", words)
	return err
}

// WriteUniqueCount prints the distinct word count line.
func WriteUniqueCount(w io.Writer, unique int) error {
	_, err := fmt.Fprintf(w, "Unique Words: %d\n", unique)
	return err
}
