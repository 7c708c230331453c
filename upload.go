package webhdfs

import "io"

// UploadSource supplies request-body bytes on demand. Pull writes up to
// len(dst) bytes into dst and returns the number written; returning 0
// signals end of input. The execution engine calls Pull repeatedly until
// it reports zero bytes produced.
type UploadSource interface {
	Pull(dst []byte) int
}

// UploadFunc adapts a function to the UploadSource interface.
type UploadFunc func(dst []byte) int

// Pull calls f.
func (f UploadFunc) Pull(dst []byte) int { return f(dst) }

// ReaderSource adapts an io.Reader to an UploadSource. Read errors,
// including io.EOF, terminate the upload.
func ReaderSource(r io.Reader) UploadSource {
	return UploadFunc(func(dst []byte) int {
		n, err := r.Read(dst)
		if n > 0 {
			return n
		}
		if err != nil {
			return 0
		}
		return 0
	})
}

// sourceReader adapts an UploadSource to the io.Reader the HTTP transport
// consumes during phase 2.
type sourceReader struct {
	src UploadSource
}

// Read pulls the next chunk from the upload source.
func (r *sourceReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	n := r.src.Pull(p)
	if n <= 0 {
		return 0, io.EOF
	}
	if n > len(p) {
		n = len(p)
	}
	return n, nil
}
