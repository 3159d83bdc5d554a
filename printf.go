package buffy

import "fmt"

// AddVprintf formats with fmt.Sprintf and appends the result, returning
// the number of bytes appended. Unlike the C family this wraps, there is
// no embedded NUL and no separate size-estimation pass is needed: fmt
// already produces the exact byte count up front.
func (b *Buffer) AddVprintf(format string, args []any) (int, error) {
	s := fmt.Sprintf(format, args...)
	if err := b.Add([]byte(s)); err != nil {
		return 0, err
	}
	return len(s), nil
}

// AddPrintf is AddVprintf with its arguments given directly rather than
// as a slice.
func (b *Buffer) AddPrintf(format string, args ...any) (int, error) {
	return b.AddVprintf(format, args)
}
