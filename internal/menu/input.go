package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/peterh/liner"
)

// LineReader prompts for and returns one line of input without the trailing
// newline. It returns io.EOF when input is exhausted or the user aborts.
type LineReader interface {
	Prompt(prompt string) (string, error)
}

// ScannerReader reads lines from any io.Reader, echoing prompts to out.
// It is used when stdin is not a terminal and in tests.
type ScannerReader struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewScannerReader returns a LineReader over in.
func NewScannerReader(in io.Reader, out io.Writer) *ScannerReader {
	return &ScannerReader{scanner: bufio.NewScanner(in), out: out}
}

// Prompt writes prompt and reads the next line.
func (r *ScannerReader) Prompt(prompt string) (string, error) {
	fmt.Fprint(r.out, prompt)
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return r.scanner.Text(), nil
}

// TerminalReader provides line editing and history on an interactive
// terminal.
type TerminalReader struct {
	state *liner.State
}

// NewTerminalReader takes over the terminal. The caller must Close it to
// restore the terminal mode.
func NewTerminalReader() *TerminalReader {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)
	return &TerminalReader{state: state}
}

// TerminalSupported reports whether NewTerminalReader can drive stdin.
func TerminalSupported() bool {
	return liner.TerminalSupported()
}

// Prompt reads one line. Ctrl-C and Ctrl-D both end input with io.EOF.
func (r *TerminalReader) Prompt(prompt string) (string, error) {
	line, err := r.state.Prompt(prompt)
	if errors.Is(err, liner.ErrPromptAborted) {
		return "", io.EOF
	}
	if err != nil {
		return "", err
	}
	if line != "" {
		r.state.AppendHistory(line)
	}
	return line, nil
}

// Close restores the terminal.
func (r *TerminalReader) Close() error {
	return r.state.Close()
}
