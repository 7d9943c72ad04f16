package upstream

import "encoding/json"

// Response is the normalized envelope every execution produces. Query is
// set whenever formatting succeeded, even when the transport or the
// upstream later failed, so callers can inspect the text that was sent.
type Response struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
	Query   string          `json:"query,omitempty"`
}

// BulkItem tags a single response with its position in the submitted
// batch.
type BulkItem struct {
	Index    int      `json:"index"`
	Response Response `json:"response"`
}

// BulkResponse aggregates a whole batch. TotalProcessed always equals
// SuccessCount + FailCount and the length of the input.
type BulkResponse struct {
	Responses      []BulkItem `json:"responses"`
	TotalProcessed int        `json:"totalProcessed"`
	SuccessCount   int        `json:"successCount"`
	FailCount      int        `json:"failCount"`
}
