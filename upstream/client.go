package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/buger/jsonparser"
	"github.com/sirupsen/logrus"

	"github.com/gqlbridge/gqlbridge/config"
	"github.com/gqlbridge/gqlbridge/headers"
	logger "github.com/gqlbridge/gqlbridge/log"
	"github.com/gqlbridge/gqlbridge/translator"
)

var log = logger.Get()

const defaultRequestTimeout = 30 * time.Second

// graphqlRequest is the wire body sent upstream.
type graphqlRequest struct {
	Query string `json:"query"`
}

// Client executes translated requests against the configured upstream.
// The configuration and the underlying http.Client are set once at
// construction and never mutated, so a single Client is safe to share
// across handlers.
type Client struct {
	conf       config.UpstreamConfig
	httpClient *http.Client
	log        *logrus.Entry
}

func NewClient(conf config.UpstreamConfig) *Client {
	timeout := defaultRequestTimeout
	if conf.RequestTimeout > 0 {
		timeout = time.Duration(conf.RequestTimeout) * time.Second
	}

	return &Client{
		conf:       conf,
		httpClient: &http.Client{Timeout: timeout},
		log:        log.WithField("prefix", "upstream"),
	}
}

// Execute runs a single request end to end: validate, format, resolve
// the endpoint, POST, interpret. Business-level failures never surface
// as errors; every outcome is captured in the envelope. A recover guard
// keeps truly unexpected faults inside the same contract.
func (c *Client) Execute(ctx context.Context, req translator.Request) (resp Response) {
	var query string
	defer func() {
		if cause := recover(); cause != nil {
			c.log.WithField("panic", cause).Error("Recovered from unexpected fault during execution")
			resp = Response{Error: fmt.Sprintf("Error: %v", cause), Query: query}
		}
	}()

	if violations := translator.Validate(req); len(violations) > 0 {
		return Response{Error: "Invalid request: " + strings.Join(violations, ", ")}
	}

	// Validation passed, so formatting cannot fail.
	query, err := translator.Format(req)
	if err != nil {
		return Response{Error: err.Error()}
	}

	endpoint, err := ResolveEndpoint(c.conf)
	if err != nil {
		return Response{Error: err.Error(), Query: query}
	}

	body, err := json.Marshal(graphqlRequest{Query: query})
	if err != nil {
		return Response{Error: "Error: " + err.Error(), Query: query}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return Response{Error: "Error: " + err.Error(), Query: query}
	}
	httpReq.Header.Set(headers.ContentType, headers.ApplicationJSON)
	httpReq.Header.Set(headers.Accept, headers.ApplicationJSON)
	if c.conf.AccessToken != "" {
		httpReq.Header.Set(headers.XShopifyAccessToken, c.conf.AccessToken)
	}

	res, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.log.WithError(err).Debug("Upstream call failed")
		return Response{Error: "Error: " + err.Error(), Query: query}
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return Response{Error: "Error: " + err.Error(), Query: query}
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return Response{
			Error: fmt.Sprintf("HTTP error: %d - %s", res.StatusCode, raw),
			Query: query,
		}
	}

	return interpret(raw, query)
}

// interpret maps a 2xx upstream body onto the envelope. A top-level
// errors field marks an application-level failure; its payload is kept
// verbatim as the error text. Otherwise the data field, when present,
// becomes the opaque success payload.
func interpret(body []byte, query string) Response {
	if !json.Valid(body) {
		return Response{Error: "Error: upstream response is not valid JSON", Query: query}
	}

	errsVal, errsType, _, err := jsonparser.Get(body, "errors")
	switch err {
	case nil:
		if errsType != jsonparser.Null {
			return Response{Error: string(errsVal), Query: query}
		}
	case jsonparser.KeyPathNotFoundError:
	default:
		return Response{Error: "Error: " + err.Error(), Query: query}
	}

	dataVal, dataType, _, err := jsonparser.Get(body, "data")
	if err != nil && err != jsonparser.KeyPathNotFoundError {
		return Response{Error: "Error: " + err.Error(), Query: query}
	}

	resp := Response{Success: true, Query: query}
	if err == nil && dataType != jsonparser.Null {
		resp.Data = json.RawMessage(append([]byte(nil), dataVal...))
	}
	return resp
}
