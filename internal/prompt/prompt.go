// internal/prompt/prompt.go
//
// Line-oriented terminal input for the game.
// Responsibilities:
//   - Write a prompt, flush it, block for one line, trim it.
//   - Parse the line into a typed value.
//   - Retry on malformed or rejected values until a valid one arrives.
//
// Error model:
//   - *ChannelError: the terminal itself failed (read, write, closed input).
//     Callers cannot continue and should stop the process.
//   - *ParseError: the text was not a value of the requested type.
//     Recoverable; Until reports it and asks again.

package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Prompter reads answers from in and writes prompts and messages to out.
// The first output failure is kept and reported by the next read or Flush.
type Prompter struct {
	in  *bufio.Reader
	out *bufio.Writer
	err error
}

// New wraps the given input and output streams.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: bufio.NewWriter(out)}
}

// Printf writes formatted text to the output buffer.
func (p *Prompter) Printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	if _, err := fmt.Fprintf(p.out, format, args...); err != nil {
		p.err = &ChannelError{Op: "write", Err: err}
	}
}

// Println writes its operands followed by a newline.
func (p *Prompter) Println(args ...any) {
	if p.err != nil {
		return
	}
	if _, err := fmt.Fprintln(p.out, args...); err != nil {
		p.err = &ChannelError{Op: "write", Err: err}
	}
}

// Flush pushes buffered output to the underlying writer.
func (p *Prompter) Flush() error {
	if p.err != nil {
		return p.err
	}
	if err := p.out.Flush(); err != nil {
		p.err = &ChannelError{Op: "flush", Err: err}
	}
	return p.err
}

// Line shows msg and returns the next input line without surrounding
// whitespace. A last line missing its newline is still returned; end of
// input with nothing pending is a channel failure.
func (p *Prompter) Line(msg string) (string, error) {
	p.Printf("%s", msg)
	if err := p.Flush(); err != nil {
		return "", err
	}
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return "", &ChannelError{Op: "read", Err: err}
	}
	return strings.TrimSpace(line), nil
}

// Parsed reads one line and parses it. A parse failure is returned as a
// *ParseError carrying the offending text.
func Parsed[T any](p *Prompter, msg string, parse func(string) (T, error)) (T, error) {
	var zero T
	input, err := p.Line(msg)
	if err != nil {
		return zero, err
	}
	v, err := parse(input)
	if err != nil {
		return zero, &ParseError{Input: input, Err: err}
	}
	return v, nil
}

// Until keeps asking until a value parses and valid accepts it.
// valid is responsible for telling the user why a value was rejected.
// Only channel failures end the loop early.
func Until[T any](p *Prompter, msg string, parse func(string) (T, error), valid func(T) bool) (T, error) {
	for {
		v, err := Parsed(p, msg, parse)
		var perr *ParseError
		switch {
		case errors.As(err, &perr):
			p.Printf("Couldn't parse %s, try again!\n", perr.Input)
			continue
		case err != nil:
			return v, err
		}
		if valid(v) {
			return v, nil
		}
	}
}
