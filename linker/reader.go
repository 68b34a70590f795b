package linker

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
)

// SourceReader fetches the raw bytes of a linked document.
type SourceReader interface {
	Read(ctx context.Context, src string) ([]byte, error)
}

// RequestMiddleware modifies outgoing requests, e.g. to inject auth headers.
type RequestMiddleware func(*http.Request) error

// FileReader reads linked documents from the local filesystem.
type FileReader struct{}

func (FileReader) Read(_ context.Context, src string) ([]byte, error) {
	return os.ReadFile(src)
}

// HTTPReader fetches linked documents over HTTP.
type HTTPReader struct {
	client  *http.Client
	mdwares []RequestMiddleware
}

func NewHTTPReader() *HTTPReader {
	return &HTTPReader{client: &http.Client{}}
}

// WithHTTPClient sets the underlying client to use
func (r *HTTPReader) WithHTTPClient(client *http.Client) *HTTPReader {
	r.client = client
	return r
}

// WithMiddlewares sets middlewares applied to each request before sending
func (r *HTTPReader) WithMiddlewares(mdwares ...RequestMiddleware) *HTTPReader {
	r.mdwares = mdwares
	return r
}

func (r *HTTPReader) Read(ctx context.Context, src string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return nil, err
	}

	// we could have any number of middlewares that we have to go through so
	for _, mdware := range r.mdwares {
		if err := mdware(req); err != nil {
			return nil, err
		}
	}

	// Read may be called from concurrent link resolution, so never write
	// to the reader here. A zero value reader falls back to the default client.
	client := r.client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return body, errors.New("response was not successful with status code: " + strconv.Itoa(resp.StatusCode))
	}

	return body, nil
}

// SchemeReader routes reads to a file or HTTP reader based on the source
// scheme. It is the default reader of the Linker.
type SchemeReader struct {
	File SourceReader
	HTTP SourceReader
}

func NewSchemeReader() *SchemeReader {
	return &SchemeReader{
		File: FileReader{},
		HTTP: NewHTTPReader(),
	}
}

func (r *SchemeReader) Read(ctx context.Context, src string) ([]byte, error) {
	if isRemote(src) {
		return r.HTTP.Read(ctx, src)
	}
	return r.File.Read(ctx, src)
}

func isRemote(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}
