package listener

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/0xalexb/keypath"
	"github.com/0xalexb/keypath/config"
)

// ErrNilDocument is returned when a lookup handler is created without a document.
var ErrNilDocument = errors.New("document must not be nil")

// LookupPrefix is the route prefix served by the lookup handler.
const LookupPrefix = "/values/"

// TypeParam is the query parameter naming the type a value must narrow to.
const TypeParam = "type"

// PathParam is the query parameter carrying the key path. When present it takes
// precedence over the path segment of the URL.
const PathParam = "path"

// LookupResponse is the body written for a successful lookup.
type LookupResponse struct {
	Path  string `json:"path"`
	Kind  string `json:"kind"`
	Value any    `json:"value"`
}

// ErrorResponse is the body written for a failed lookup.
type ErrorResponse struct {
	Path   string `json:"path"`
	Error  string `json:"error"`
	Reason string `json:"reason"`
}

type decodeFunc func(root any, path keypath.Path) (any, error)

func decodeAs[T any](root any, path keypath.Path) (any, error) {
	return keypath.Decode[T](root, path)
}

//nolint:gochecknoglobals // static lookup table of supported narrowing targets.
var decoders = map[string]decodeFunc{
	"":       decodeAs[any],
	"any":    decodeAs[any],
	"string": decodeAs[string],
	"int":    decodeAs[int64],
	"uint":   decodeAs[uint64],
	"number": decodeAs[float64],
	"bool":   decodeAs[bool],
	"object": decodeAs[map[string]any],
	"array":  decodeAs[[]any],
}

type lookupHandler struct {
	doc *config.Document
}

// NewLookupHandler returns a handler serving GET /values/{path...} over doc.
// The path is the dotted key path; an optional ?type= narrows the value to
// string, int, uint, number, bool, object or array.
//
// ServeMux cleans "." and ".." URL elements before routing, so key paths such
// as "." (two empty keys) cannot travel in the URL. GET /values?path=. carries
// any key path verbatim.
//
// Status codes follow the failure kind: 400 for an empty path or unknown type,
// 404 for a missing or null value, 422 for a type mismatch.
func NewLookupHandler(doc *config.Document) (http.Handler, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}

	mux := http.NewServeMux()
	handler := &lookupHandler{doc: doc}
	mux.Handle("GET "+LookupPrefix+"{path...}", handler)
	mux.Handle("GET "+strings.TrimSuffix(LookupPrefix, "/"), handler)

	return mux, nil
}

func (h *lookupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	raw := r.PathValue("path")
	if query.Has(PathParam) {
		raw = query.Get(PathParam)
	}

	path := keypath.Parse(raw)
	typeName := query.Get(TypeParam)

	decode, ok := decoders[typeName]
	if !ok {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Path:   raw,
			Error:  "unknown type",
			Reason: "type " + typeName + " is not supported",
		})

		return
	}

	value, err := decode(h.doc.Root(), path)
	if err != nil {
		writeDecodeError(w, raw, err)

		return
	}

	writeJSON(w, http.StatusOK, LookupResponse{
		Path:  raw,
		Kind:  keypath.KindOf(value).String(),
		Value: value,
	})
}

func writeDecodeError(w http.ResponseWriter, raw string, err error) {
	var decodeErr *keypath.DecodeError
	if !errors.As(err, &decodeErr) {
		slog.Error("unexpected lookup error", "path", raw, "error", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Path: raw, Error: err.Error(), Reason: ""})

		return
	}

	slog.Debug("lookup failed", "path", raw, "error", decodeErr.Err)

	writeJSON(w, statusFor(decodeErr.Err), ErrorResponse{
		Path:   raw,
		Error:  decodeErr.Err.Error(),
		Reason: decodeErr.Reason,
	})
}

func statusFor(kind error) int {
	switch {
	case errors.Is(kind, keypath.ErrInvalidPath):
		return http.StatusBadRequest
	case errors.Is(kind, keypath.ErrMissing), errors.Is(kind, keypath.ErrIsNil):
		return http.StatusNotFound
	case errors.Is(kind, keypath.ErrTypeMismatch):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		slog.Error("failed to write response", "status", status, "error", err)
	}
}
