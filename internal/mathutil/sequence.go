package mathutil

import (
	"bytes"
	"io"
	"strconv"
)

// Sequence is an ordered, fixed set of integers. Its length travels with it.
type Sequence []int

// WriteTo writes each element followed by a space, then a newline.
// Implements io.WriterTo.
func (s Sequence) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	s.appendElements(&buf)
	buf.WriteByte('\n')
	return buf.WriteTo(w)
}

// String returns the elements as WriteTo renders them, without the newline.
func (s Sequence) String() string {
	var buf bytes.Buffer
	s.appendElements(&buf)
	return buf.String()
}

func (s Sequence) appendElements(buf *bytes.Buffer) {
	for _, v := range s {
		buf.WriteString(strconv.Itoa(v))
		buf.WriteByte(' ')
	}
}

// PrintSequence writes s to w: "1 2 3 " followed by a newline.
func PrintSequence(w io.Writer, s Sequence) error {
	_, err := s.WriteTo(w)
	return err
}
