package util

import (
	"context"
	"errors"
	"io"
	"unicode/utf8"
)

// TransformCopy copies src to dst, passing every rune through fn.  It
// stops early when ctx is cancelled, checking between chunks.  A rune
// split across two reads is held back until it is complete; bytes that
// are not valid UTF-8 are copied unchanged.  It returns the number of
// bytes written.
func TransformCopy(ctx context.Context, dst io.Writer, src io.Reader, fn func(rune) rune) (int64, error) {
	in := GetBuf()
	defer PutBuf(in)
	out := GetBuf()
	defer PutBuf(out)

	var written int64
	carry := 0
	for {
		if err := ctx.Err(); err != nil {
			return written, err
		}

		n, rerr := src.Read((*in)[carry:])
		n += carry
		data := (*in)[:n]

		end := n
		if rerr == nil {
			end = completePrefix(data)
		}

		o := (*out)[:0]
		for i := 0; i < end; {
			r, size := utf8.DecodeRune(data[i:end])
			if r == utf8.RuneError && size <= 1 {
				o = append(o, data[i])
				i++
				continue
			}
			o = utf8.AppendRune(o, fn(r))
			i += size
		}

		if len(o) > 0 {
			w, werr := dst.Write(o)
			written += int64(w)
			if werr != nil {
				return written, werr
			}
		}

		carry = copy(*in, data[end:n])

		if rerr != nil {
			if errors.Is(rerr, io.EOF) {
				return written, nil
			}
			return written, rerr
		}
	}
}

// completePrefix returns the length of the longest prefix of p that does
// not end in the middle of a multi-byte rune.
func completePrefix(p []byte) int {
	for i := len(p) - 1; i >= 0 && i >= len(p)-utf8.UTFMax; i-- {
		if utf8.RuneStart(p[i]) {
			if !utf8.FullRune(p[i:]) {
				return i
			}
			break
		}
	}
	return len(p)
}
