package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"sync"
	"time"
)

// BuildRequestFunc builds the request for a given endpoint. It is called
// once per attempted endpoint and must be free of side effects. An error
// return (typically KindInvalidURI) aborts the dispatch before any
// network I/O.
type BuildRequestFunc func(endpoint url.URL) (HTTPRequest, error)

// --------------------------------------------------------------------------
// Single-Endpoint Requester
// --------------------------------------------------------------------------

// invoke performs exactly one request against one endpoint. It never
// retries - retry and failover are the dispatcher's responsibility.
func invoke[T any](c *Client, req HTTPRequest) (*Response[T], *Error) {
	start := time.Now()

	status, header, body, err := c.transport.Send(req)

	// Case transport failure -> no HTTP response was received
	if err != nil {
		observeRequest(req, status, KindTransport.String(), start)
		return nil, NewError(KindTransport, err.Error())
	}

	// Case non-success status -> try to decode the etcd error payload
	if status < 200 || status >= 300 {
		var payload APIError
		if decodeErr := json.Unmarshal(body, &payload); decodeErr == nil && payload.Message != "" {
			observeRequest(req, status, KindAPI.String(), start)
			return nil, NewAPIError(payload)
		}
		observeRequest(req, status, KindDecode.String(), start)
		return nil, NewError(KindDecode, fmt.Sprintf("status %d with undecodable error body", status))
	}

	// Case success status -> decode the payload. Some calls (e.g. member
	// deletion) answer with an empty body, which maps to the zero value.
	var data T
	if len(bytes.TrimSpace(body)) > 0 {
		if decodeErr := json.Unmarshal(body, &data); decodeErr != nil {
			observeRequest(req, status, KindDecode.String(), start)
			return nil, NewError(KindDecode, fmt.Sprintf("failed to decode response body: %v", decodeErr))
		}
	}

	observeRequest(req, status, "success", start)

	return &Response[T]{
		Data:        data,
		ClusterInfo: ParseClusterInfo(header),
	}, nil
}

// --------------------------------------------------------------------------
// Failover Dispatcher
// --------------------------------------------------------------------------

// RequestFailover tries the configured endpoints strictly in order until
// one of them answers.
//
// Only transport level failures move on to the next endpoint, since they
// indicate an unreachable member rather than an invalid operation. API and
// decode errors reflect the request/store contract and are surfaced
// immediately - retrying them against another member would not change the
// outcome and could mask a real error. If every endpoint fails on the
// transport level, the most recent failure is returned.
func RequestFailover[T any](c *Client, build BuildRequestFunc) (*Response[T], error) {
	var lastErr *Error

	for _, endpoint := range c.endpoints {
		req, err := build(endpoint)
		if err != nil {
			// Invalid request, no endpoint can serve it
			return nil, err
		}

		resp, reqErr := invoke[T](c, req)
		if reqErr == nil {
			return resp, nil
		}
		if reqErr.Kind != KindTransport {
			return nil, reqErr
		}

		Logger.Warningf("Endpoint %s unreachable, trying next: %v", endpoint.String(), reqErr.Msg)
		lastErr = reqErr
	}

	return nil, lastErr
}

// --------------------------------------------------------------------------
// Fan-Out Dispatcher
// --------------------------------------------------------------------------

// RequestFanout issues one request per configured endpoint concurrently
// and returns the results as an unordered sequence with exactly one slot
// per endpoint, delivered in completion order.
//
// The endpoint failures are independent: one member's transport error does
// not affect its siblings, it simply occupies that member's slot. The
// channel is closed once every endpoint has produced a result; it is
// buffered to the endpoint count, so a caller that stops consuming leaks
// no goroutines. Callers that need per-endpoint identity must capture it
// in the build closure or the payload itself.
func RequestFanout[T any](c *Client, build BuildRequestFunc) <-chan Result[T] {
	results := make(chan Result[T], len(c.endpoints))

	var wg sync.WaitGroup
	for _, endpoint := range c.endpoints {
		wg.Add(1)
		go func(endpoint url.URL) {
			defer wg.Done()

			req, err := build(endpoint)
			if err != nil {
				results <- Result[T]{Err: err}
				return
			}

			resp, reqErr := invoke[T](c, req)
			if reqErr != nil {
				results <- Result[T]{Err: reqErr}
				return
			}
			results <- Result[T]{Response: resp}
		}(endpoint)
	}

	// Close the channel once all endpoints have reported
	go func() {
		wg.Wait()
		close(results)
	}()

	return results
}
