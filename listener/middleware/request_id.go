package middleware

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"hash/fnv"
	"log/slog"
	"net/http"
	"os"
	"sync/atomic"
	"time"
)

const (
	// RequestIDHeader is the HTTP header used for request IDs.
	RequestIDHeader = "X-Request-ID"

	// maxRequestIDLength is the maximum allowed length for an externally-provided request ID.
	maxRequestIDLength = 128
)

type requestIDKeyType struct{}

//nolint:gochecknoglobals // context key
var requestIDKey = requestIDKeyType{}

// idGenerator produces 24-character hex IDs: a 4-byte hostname hash, the
// 4-byte process start time in seconds and a 4-byte counter.
type idGenerator struct {
	prefix  [8]byte
	counter atomic.Uint32
}

func newIDGenerator() *idGenerator {
	hostname, err := os.Hostname()
	if err != nil {
		slog.Warn("middleware: failed to get hostname for request IDs, using empty string", "error", err)

		hostname = ""
	}

	h := fnv.New32a()
	_, _ = h.Write([]byte(hostname))

	gen := &idGenerator{}
	binary.BigEndian.PutUint32(gen.prefix[:4], h.Sum32())
	binary.BigEndian.PutUint32(gen.prefix[4:], uint32(time.Now().Unix())) //nolint:gosec // wraps in 2106

	return gen
}

func (g *idGenerator) next() string {
	var buf [12]byte

	copy(buf[:8], g.prefix[:])
	binary.BigEndian.PutUint32(buf[8:], g.counter.Add(1))

	return hex.EncodeToString(buf[:])
}

// GetRequestID retrieves the request ID from the context.
func GetRequestID(ctx context.Context) string {
	val, ok := ctx.Value(requestIDKey).(string)
	if !ok {
		return ""
	}

	return val
}

func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}

	for i := range len(id) {
		if id[i] < 0x21 || id[i] > 0x7E {
			return false
		}
	}

	return true
}

// RequestID assigns a request ID to each request, reusing a valid incoming
// X-Request-ID header (printable ASCII without spaces, at most 128 bytes).
// The ID is stored in the request context and echoed in the response header.
func RequestID() Middleware {
	gen := newIDGenerator()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if !validRequestID(id) {
				id = gen.next()
			}

			w.Header().Set(RequestIDHeader, id)

			ctx := context.WithValue(r.Context(), requestIDKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
