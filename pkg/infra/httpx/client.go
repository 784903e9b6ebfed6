package httpx

import "net/http"

// Client is the small slice of *http.Client the rest of the code depends on.
type Client interface {
	Do(req *http.Request) (*http.Response, error)
}
