package gateway

import (
	"encoding/json"
	"net/http"

	"github.com/gqlbridge/gqlbridge/headers"
	"github.com/gqlbridge/gqlbridge/translator"
)

type apiStatusMessage struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func apiOk(msg string) apiStatusMessage {
	return apiStatusMessage{Status: "ok", Message: msg}
}

func apiError(msg string) apiStatusMessage {
	return apiStatusMessage{Status: "error", Message: msg}
}

func doJSONWrite(w http.ResponseWriter, code int, obj interface{}) {
	w.Header().Set(headers.ContentType, headers.ApplicationJSON)
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(obj); err != nil {
		mainLog.WithError(err).Error("Could not encode response")
	}
}

func (gw *Gateway) graphqlHandler(w http.ResponseWriter, r *http.Request) {
	obj, code := gw.handleGraphQLRequest(r)
	doJSONWrite(w, code, obj)
}

func (gw *Gateway) handleGraphQLRequest(r *http.Request) (interface{}, int) {
	var req translator.Request

	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(&req); err != nil {
		mainLog.WithError(err).Debug("Could not decode request body")
		return apiError("Request malformed"), http.StatusBadRequest
	}

	return gw.client.Execute(r.Context(), req), http.StatusOK
}

type bulkRequest struct {
	Requests []translator.Request `json:"requests"`
}

func (gw *Gateway) bulkHandler(w http.ResponseWriter, r *http.Request) {
	obj, code := gw.handleBulkRequest(r)
	doJSONWrite(w, code, obj)
}

func (gw *Gateway) handleBulkRequest(r *http.Request) (interface{}, int) {
	var batch bulkRequest

	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(&batch); err != nil {
		mainLog.WithError(err).Debug("Could not decode bulk request body")
		return apiError("Request malformed"), http.StatusBadRequest
	}

	if len(batch.Requests) == 0 {
		return apiError("At least one request is required"), http.StatusBadRequest
	}

	return gw.client.ExecuteBulk(r.Context(), batch.Requests), http.StatusOK
}

func (gw *Gateway) healthHandler(w http.ResponseWriter, _ *http.Request) {
	doJSONWrite(w, http.StatusOK, apiOk(""))
}
