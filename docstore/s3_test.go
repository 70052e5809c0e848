package docstore

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeS3 serves the subset of the S3 API used by S3Store with path style
// addressing.
type fakeS3 struct {
	mu      sync.Mutex
	objects map[string][]byte
	puts    int
}

func (f *fakeS3) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch r.Method {
	case http.MethodPut:
		data, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		f.objects[r.URL.Path] = data
		f.puts++
		w.Header().Set("ETag", `"fake"`)
		w.WriteHeader(http.StatusOK)
	case http.MethodHead:
		if _, ok := f.objects[r.URL.Path]; !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	case http.MethodGet:
		data, ok := f.objects[r.URL.Path]
		if !ok {
			w.Header().Set("Content-Type", "application/xml")
			w.WriteHeader(http.StatusNotFound)
			io.WriteString(w, `<?xml version="1.0" encoding="UTF-8"?><Error><Code>NoSuchKey</Code><Message>not found</Message></Error>`)
			return
		}
		w.Write(data)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func newTestS3Store(t *testing.T) (*S3Store, *fakeS3) {
	t.Helper()
	fake := &fakeS3{objects: make(map[string][]byte)}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	s, err := NewS3Store(context.Background(), S3Config{
		Bucket:    "wills",
		Prefix:    "docs",
		Region:    "us-east-1",
		Endpoint:  srv.URL,
		AccessKey: "key",
		SecretKey: "secret",
		PathStyle: true,
	})
	require.NoError(t, err)
	return s, fake
}

func TestS3Store(t *testing.T) {
	s, fake := newTestS3Store(t)
	testStore(t, s)

	// The document and the empty document, repeated uploads are skipped.
	assert.Equal(t, 2, fake.puts)
}

func TestS3StoreObjectKey(t *testing.T) {
	s, fake := newTestS3Store(t)
	ref, err := s.Upload(context.Background(), []byte("content"))
	require.NoError(t, err)

	_, ok := fake.objects["/wills/docs/"+ref.Checksum()]
	assert.True(t, ok)
}

func TestS3StoreCorrupted(t *testing.T) {
	s, fake := newTestS3Store(t)
	ref, err := s.Upload(context.Background(), []byte("original"))
	require.NoError(t, err)

	fake.objects["/wills/docs/"+ref.Checksum()] = []byte("tampered")
	_, err = s.Fetch(context.Background(), ref)
	assert.ErrorIs(t, err, ErrCorrupted)
}

func TestNewS3StoreRequiresBucket(t *testing.T) {
	_, err := NewS3Store(context.Background(), S3Config{Region: "us-east-1"})
	assert.Error(t, err)
}
