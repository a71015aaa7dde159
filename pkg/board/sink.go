package board

import (
	"fmt"
	"io"
	"strings"
)

// Sink is a destination for board output
type Sink interface {
	// Print writes message as is
	Print(message string) error
	// Println writes message followed by a newline
	Println(message string) error
}

// Source is where the board reads user input from
type Source interface {
	// ReadLine returns the next line including its trailing newline. At the
	// end of input it returns io.EOF; a final line without a newline is
	// returned first with a nil error.
	ReadLine() (string, error)
}

// Streams groups the three streams a Board talks to
type Streams struct {
	In  Source
	Out Sink
	Err Sink
}

// NewStreams adapts plain readers and writers. A nil reader behaves as an
// empty input and a nil writer discards output.
func NewStreams(in io.Reader, out, err io.Writer) Streams {
	return Streams{
		In:  NewReaderSource(in),
		Out: NewWriterSink(out),
		Err: NewWriterSink(err),
	}
}

type writerSink struct {
	w io.Writer
}

// NewWriterSink returns a Sink writing to w
func NewWriterSink(w io.Writer) Sink {
	if w == nil {
		w = io.Discard
	}
	return &writerSink{w: w}
}

func (s *writerSink) Print(message string) error {
	_, err := fmt.Fprint(s.w, message)
	return err
}

func (s *writerSink) Println(message string) error {
	_, err := fmt.Fprintln(s.w, message)
	return err
}

type readerSource struct {
	r io.Reader
}

// NewReaderSource returns a Source reading lines from r. It reads one byte at
// a time so nothing past the returned line is consumed from r.
func NewReaderSource(r io.Reader) Source {
	if r == nil {
		r = strings.NewReader("")
	}
	return &readerSource{r: r}
}

func (s *readerSource) ReadLine() (string, error) {
	var line strings.Builder
	buf := make([]byte, 1)
	for {
		n, err := s.r.Read(buf)
		if n > 0 {
			line.WriteByte(buf[0])
			if buf[0] == '\n' {
				return line.String(), nil
			}
		}
		if err != nil {
			if err == io.EOF && line.Len() > 0 {
				return line.String(), nil
			}
			return line.String(), err
		}
	}
}
