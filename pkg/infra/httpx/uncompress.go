package httpx

import (
	"bytes"
	"compress/flate"
	"compress/gzip"
	"compress/zlib"
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
	"github.com/valyala/fasthttp"
)

// DecodeChain undoes the Content-Encoding of resp on body, last encoding
// first. It reports whether anything was decoded.
func DecodeChain(resp *fasthttp.Response, body []byte) ([]byte, bool, error) {
	ce := string(resp.Header.Peek(fasthttp.HeaderContentEncoding))
	if ce == "" {
		return body, false, nil
	}
	encodings := strings.Split(ce, ",")
	changed := false
	for i := len(encodings) - 1; i >= 0; i-- {
		enc := strings.TrimSpace(strings.ToLower(encodings[i]))
		out, ok, err := decodeOne(enc, body)
		if err != nil {
			return nil, false, fmt.Errorf("%s: %w", enc, err)
		}
		if ok {
			body = out
			changed = true
		}
	}
	return body, changed, nil
}

func decodeOne(enc string, body []byte) ([]byte, bool, error) {
	switch enc {
	case "br":
		out, err := io.ReadAll(brotli.NewReader(bytes.NewReader(body)))
		return out, err == nil, err
	case "gzip":
		gr, err := gzip.NewReader(bytes.NewReader(body))
		if err != nil {
			return nil, false, err
		}
		return readAndClose(gr)
	case "zstd":
		dec, err := zstd.NewReader(bytes.NewReader(body))
		if err != nil {
			return nil, false, err
		}
		defer dec.Close()
		out, err := io.ReadAll(dec)
		return out, err == nil, err
	case "deflate":
		// zlib-wrapped per RFC 9110, raw deflate from misbehaving servers.
		if zr, err := zlib.NewReader(bytes.NewReader(body)); err == nil {
			return readAndClose(zr)
		}
		return readAndClose(flate.NewReader(bytes.NewReader(body)))
	case "compress", "identity", "":
		return body, false, nil
	default:
		return nil, false, fmt.Errorf("unsupported content-encoding: %q", enc)
	}
}

func readAndClose(rc io.ReadCloser) ([]byte, bool, error) {
	out, err := io.ReadAll(rc)
	cerr := rc.Close()
	if err != nil {
		return nil, false, err
	}
	if cerr != nil {
		return nil, false, cerr
	}
	return out, true, nil
}
