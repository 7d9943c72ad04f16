package upstream

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gqlbridge/gqlbridge/translator"
)

func TestExecuteBulkMixedOutcomes(t *testing.T) {
	stub := &stubUpstream{
		status: http.StatusOK,
		body:   `{"data":{"products":[]}}`,
	}
	client, _ := newTestClient(t, stub)

	requests := []translator.Request{
		{Operation: "query", Resource: "products", Fields: []string{"id"}},
		{Operation: "query", Fields: []string{"id"}}, // invalid: no resource
		{Operation: "query", Resource: "orders", Fields: []string{"id"}},
	}

	out := client.ExecuteBulk(context.Background(), requests)

	require.Len(t, out.Responses, 3)
	assert.Equal(t, 3, out.TotalProcessed)
	assert.Equal(t, 2, out.SuccessCount)
	assert.Equal(t, 1, out.FailCount)
	assert.Equal(t, out.TotalProcessed, out.SuccessCount+out.FailCount)

	for i, item := range out.Responses {
		assert.Equal(t, i, item.Index)
	}

	assert.True(t, out.Responses[0].Response.Success)
	assert.False(t, out.Responses[1].Response.Success)
	assert.Equal(t, "Invalid request: Resource cannot be empty", out.Responses[1].Response.Error)
	assert.True(t, out.Responses[2].Response.Success)

	// The invalid item never reached the network.
	assert.EqualValues(t, 2, stub.calls)
}

func TestExecuteBulkFailureDoesNotAbortBatch(t *testing.T) {
	stub := &stubUpstream{
		status: http.StatusInternalServerError,
		body:   `oops`,
	}
	client, _ := newTestClient(t, stub)

	requests := []translator.Request{
		{Operation: "query", Resource: "products", Fields: []string{"id"}},
		{Operation: "query", Resource: "orders", Fields: []string{"id"}},
	}

	out := client.ExecuteBulk(context.Background(), requests)

	assert.Equal(t, 2, out.TotalProcessed)
	assert.Equal(t, 0, out.SuccessCount)
	assert.Equal(t, 2, out.FailCount)
	assert.EqualValues(t, 2, stub.calls, "every item executes even when earlier ones fail")
}

func TestExecuteBulkEmpty(t *testing.T) {
	stub := &stubUpstream{status: http.StatusOK, body: `{"data":{}}`}
	client, _ := newTestClient(t, stub)

	out := client.ExecuteBulk(context.Background(), nil)

	assert.NotNil(t, out.Responses)
	assert.Empty(t, out.Responses)
	assert.Zero(t, out.TotalProcessed)
	assert.Zero(t, out.SuccessCount)
	assert.Zero(t, out.FailCount)
}
