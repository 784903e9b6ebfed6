package httpx

import (
	"bytes"
	"compress/flate"
	"compress/gzip"
	"compress/zlib"
	"io"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

func compressWith(t *testing.T, data []byte, wrap func(io.Writer) io.WriteCloser) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := wrap(&buf)
	_, err := w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func gzipWriter(w io.Writer) io.WriteCloser   { return gzip.NewWriter(w) }
func brotliWriter(w io.Writer) io.WriteCloser { return brotli.NewWriter(w) }
func zlibWriter(w io.Writer) io.WriteCloser   { return zlib.NewWriter(w) }

func zstdWriter(w io.Writer) io.WriteCloser {
	zw, _ := zstd.NewWriter(w)
	return zw
}

func flateWriter(w io.Writer) io.WriteCloser {
	fw, _ := flate.NewWriter(w, flate.DefaultCompression)
	return fw
}

func responseWithEncoding(enc string) *fasthttp.Response {
	resp := &fasthttp.Response{}
	if enc != "" {
		resp.Header.Set("Content-Encoding", enc)
	}
	return resp
}

func TestDecodeChain(t *testing.T) {
	plain := []byte(`{"blocked":false,"text":"hello"}`)

	tests := []struct {
		name        string
		encoding    string
		body        []byte
		wantChanged bool
	}{
		{name: "no encoding", body: plain},
		{name: "gzip", encoding: "gzip", body: compressWith(t, plain, gzipWriter), wantChanged: true},
		{name: "brotli", encoding: "br", body: compressWith(t, plain, brotliWriter), wantChanged: true},
		{name: "zstd", encoding: "zstd", body: compressWith(t, plain, zstdWriter), wantChanged: true},
		{name: "deflate zlib", encoding: "deflate", body: compressWith(t, plain, zlibWriter), wantChanged: true},
		{name: "deflate raw", encoding: "deflate", body: compressWith(t, plain, flateWriter), wantChanged: true},
		{name: "identity", encoding: "identity, compress", body: plain},
		{name: "case and spaces", encoding: "  GZip ", body: compressWith(t, plain, gzipWriter), wantChanged: true},
		{
			name:        "chained gzip then br",
			encoding:    "gzip, br",
			body:        compressWith(t, compressWith(t, plain, gzipWriter), brotliWriter),
			wantChanged: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded, changed, err := DecodeChain(responseWithEncoding(tt.encoding), tt.body)
			require.NoError(t, err)
			assert.Equal(t, tt.wantChanged, changed)
			assert.Equal(t, plain, decoded)
		})
	}
}

func TestDecodeChain_UnknownEncoding(t *testing.T) {
	_, _, err := DecodeChain(responseWithEncoding("foo"), []byte("abc"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported content-encoding")
}

func TestDecodeChain_CorruptBody(t *testing.T) {
	_, _, err := DecodeChain(responseWithEncoding("gzip"), []byte("not gzip"))
	assert.Error(t, err)
}
