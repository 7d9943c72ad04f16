package upstream

import (
	"context"

	"github.com/gofrs/uuid"
	"github.com/sirupsen/logrus"

	"github.com/gqlbridge/gqlbridge/translator"
)

// ExecuteBulk drives Execute over the batch strictly in order: item i+1
// does not start until item i's full envelope, network round-trip
// included, is produced. Index tags therefore always match input order.
// A failed item never aborts the batch.
func (c *Client) ExecuteBulk(ctx context.Context, requests []translator.Request) BulkResponse {
	batchID := ""
	if id, err := uuid.NewV4(); err == nil {
		batchID = id.String()
	}
	batchLog := c.log.WithField("batch_id", batchID)

	out := BulkResponse{Responses: make([]BulkItem, 0, len(requests))}
	for i, req := range requests {
		resp := c.Execute(ctx, req)

		out.Responses = append(out.Responses, BulkItem{Index: i, Response: resp})
		out.TotalProcessed++
		if resp.Success {
			out.SuccessCount++
		} else {
			out.FailCount++
		}
	}

	batchLog.WithFields(logrus.Fields{
		"total":   out.TotalProcessed,
		"success": out.SuccessCount,
		"failed":  out.FailCount,
	}).Debug("Bulk execution complete")

	return out
}
