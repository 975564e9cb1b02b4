package streamio

/* Reading Rules

type Reader interface {
    Read(p []byte) (n int, err error)
}

1. A Read() call will read up to len(p) into p, when possible.
2. After a Read() call, n may be less then len(p).
3. Upon error, a Read() call may still return n bytes in transfer buffer p.
   For instance, reading from a TCP socket that is abruptly closed.
   Depending on your own use, you may choose to keep the bytes in p or just retry.
4. When a Read() call exhausts available data, a reader may return a non-zero n and err=io.EOF.
   However, depending on implementation, a reader may choose to return a non-zero n and err=nil at the end of stream.
   In that case, any subsequent read ops must return n=0, err=io.EOF.
5. A Read() call that returns n=0 and err=nil does not mean EOF as the next call to Read() may return more data.

These rules are why ReadLine below keeps pulling chunks in a loop instead of
trusting any single Read() call: a short read is not EOF, and EOF may arrive
together with the final bytes or one call later.

*/

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"unicode/utf8"
)

// ErrInvalidUTF8 is returned by ReadLine when the drained bytes do not form
// valid UTF-8 text. Matches with errors.Is.
var ErrInvalidUTF8 = errors.New("streamio: drained bytes are not valid UTF-8")

// ReadLine drains r from its current position to end-of-stream and returns
// the contents as a freshly allocated string.
//
// Despite the name, ReadLine does not stop at a line terminator: it reads
// everything the source has left. The name records the API it was modeled
// on; line-boundary handling is out of scope.
//
// The call either succeeds with the complete, valid UTF-8 contents or fails
// with no output at all:
//   - an error from r is returned as-is and the bytes read so far are
//     discarded;
//   - if the drained bytes are not valid UTF-8, ErrInvalidUTF8 is returned
//     and the bytes are never exposed.
//
// ReadLine allocates a new buffer on every call and touches no state other
// than r's read position. It blocks until r signals EOF or an error; any
// timeout or cancellation must come from r itself.
func ReadLine(r io.Reader) (string, error) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(bufio.NewReader(r)); err != nil {
		return "", err
	}
	if !utf8.Valid(buf.Bytes()) {
		return "", ErrInvalidUTF8
	}
	return buf.String(), nil
}
