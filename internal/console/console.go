package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/rocketscienceinc/tictactoe-arena/internal/apperror"
)

// maxLineLength bounds one input line, longer lines are dropped as ErrLineTooLong.
const maxLineLength = 4096

type input struct {
	line string
	err  error
}

// Console is the single output gate and line source shared by every game of a run.
//
// Output: every Print call writes one logical message under outMu, so lines of
// concurrent games never interleave inside a message.
// Input: one goroutine pumps lines from the reader into a channel. A caller that
// needs a prompt/answer exchange holds the input gate with LockInput so the
// answer is attributed to the game that asked.
type Console struct {
	out   io.Writer
	outMu sync.Mutex

	inMu  sync.Mutex
	lines chan input
	once  sync.Once
	in    io.Reader

	painter *Painter
}

func New(in io.Reader, out io.Writer, painter *Painter) *Console {
	if painter == nil {
		painter = NewPainter(false)
	}

	return &Console{
		out:     out,
		in:      in,
		lines:   make(chan input),
		painter: painter,
	}
}

// Print writes the lines as one message.
func (that *Console) Print(lines ...string) {
	that.outMu.Lock()
	defer that.outMu.Unlock()

	for _, line := range lines {
		// a failed write to the sink cannot be reported anywhere else
		_, _ = fmt.Fprintln(that.out, line)
	}
}

func (that *Console) Painter() *Painter {
	return that.painter
}

// LockInput takes the input gate and returns the release func.
func (that *Console) LockInput() func() {
	that.inMu.Lock()
	return that.inMu.Unlock
}

// ReadLine waits for the next input line, trimmed of surrounding spaces.
// A line over maxLineLength yields ErrLineTooLong and the following lines are
// still delivered.
func (that *Console) ReadLine(ctx context.Context) (string, error) {
	that.once.Do(func() {
		go that.pump()
	})

	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("read line: %w", err)
	}

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("read line: %w", ctx.Err())
	case in, ok := <-that.lines:
		if !ok {
			return "", apperror.ErrInputClosed
		}
		if in.err != nil {
			return "", in.err
		}
		return strings.TrimSpace(in.line), nil
	}
}

// Ask prints the prompt and reads the answer while holding the input gate.
func (that *Console) Ask(ctx context.Context, prompt ...string) (string, error) {
	unlock := that.LockInput()
	defer unlock()

	that.Print(prompt...)

	return that.ReadLine(ctx)
}

func (that *Console) pump() {
	defer close(that.lines)

	reader := bufio.NewReaderSize(that.in, maxLineLength)
	for {
		line, tooLong, err := readLine(reader)
		switch {
		case tooLong:
			that.lines <- input{err: apperror.ErrLineTooLong}
		case line != "":
			that.lines <- input{line: line}
		}

		if err != nil {
			if !errors.Is(err, io.EOF) {
				that.lines <- input{err: fmt.Errorf("failed to read input: %w", err)}
			}
			return
		}
	}
}

// readLine returns the next line with its newline. The rest of a line that does
// not fit the reader buffer is skipped and reported as tooLong.
func readLine(reader *bufio.Reader) (string, bool, error) {
	chunk, err := reader.ReadSlice('\n')
	if !errors.Is(err, bufio.ErrBufferFull) {
		return string(chunk), false, err
	}

	for errors.Is(err, bufio.ErrBufferFull) {
		_, err = reader.ReadSlice('\n')
	}

	return "", true, err
}
