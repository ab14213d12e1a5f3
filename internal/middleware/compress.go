package middleware

import (
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/gin-gonic/gin"
)

// minCompressLength is the smallest body, in bytes, worth compressing.
// Shorter responses pass through untouched.
const minCompressLength = 1024

// Compress applies brotli encoding to JSON and CSV responses for clients
// that advertise support via Accept-Encoding.
func Compress() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !acceptsBrotli(c.Request) {
			c.Next()
			return
		}

		c.Header("Vary", "Accept-Encoding")

		cw := &compressWriter{
			ResponseWriter: c.Writer,
			bw:             brotli.NewWriterLevel(c.Writer, brotli.DefaultCompression),
		}
		c.Writer = cw
		c.Next()
		cw.close()
	}
}

// compressWriter buffers the response until it is clear whether the body
// crosses the compression threshold, then commits to either encoded or plain
// output for the rest of the response.
type compressWriter struct {
	gin.ResponseWriter
	bw        *brotli.Writer
	buf       []byte
	encoding  bool
	committed bool
}

func (w *compressWriter) Write(p []byte) (int, error) {
	if !w.committed {
		w.buf = append(w.buf, p...)
		if len(w.buf) < minCompressLength {
			return len(p), nil
		}
		w.committed = true
		w.encoding = true
		w.Header().Set("Content-Encoding", "br")
		w.Header().Del("Content-Length")
		if _, err := w.bw.Write(w.buf); err != nil {
			return len(p), err
		}
		w.buf = nil
		return len(p), nil
	}

	if w.encoding {
		_, err := w.bw.Write(p)
		return len(p), err
	}
	return w.ResponseWriter.Write(p)
}

func (w *compressWriter) WriteString(s string) (int, error) {
	return w.Write([]byte(s))
}

// close flushes whatever the response ended up being: a short plain body
// still sitting in the buffer, or the tail of the brotli stream.
func (w *compressWriter) close() {
	if w.encoding {
		_ = w.bw.Close()
		return
	}
	if len(w.buf) > 0 {
		_, _ = w.ResponseWriter.Write(w.buf)
		w.buf = nil
	}
}

func acceptsBrotli(r *http.Request) bool {
	for _, enc := range strings.Split(r.Header.Get("Accept-Encoding"), ",") {
		if strings.TrimSpace(strings.ToLower(enc)) == "br" {
			return true
		}
	}
	return false
}
