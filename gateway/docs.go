package gateway

import "net/http"

type docsField struct {
	Type        string `json:"type"`
	Required    bool   `json:"required"`
	Description string `json:"description"`
}

type docsExample struct {
	Description string      `json:"description"`
	Request     interface{} `json:"request"`
}

type apiDocs struct {
	Description   string               `json:"description"`
	Endpoints     map[string]string    `json:"endpoints"`
	RequestFormat map[string]docsField `json:"requestFormat"`
	MutationNames map[string]string    `json:"mutationNames"`
	Notes         []string             `json:"notes"`
	Examples      []docsExample        `json:"examples"`
}

// docs is the static payload served on /api/graphql/docs. It documents
// the simplified request format, not the upstream schema; the service
// never introspects or validates against the real schema.
var docs = apiDocs{
	Description: "Translates simplified JSON operation descriptions into GraphQL requests against the configured commerce store API.",
	Endpoints: map[string]string{
		"POST /api/graphql":     "Execute a single request, returns a success/data/error/query envelope",
		"POST /api/bulk":        "Execute an ordered batch of requests sequentially, returns per-item envelopes with counts",
		"GET /api/graphql/docs": "This document",
	},
	RequestFormat: map[string]docsField{
		"operation": {
			Type:        "string",
			Required:    true,
			Description: "Either 'query' or 'mutation' (case-insensitive)",
		},
		"resource": {
			Type:        "string",
			Required:    true,
			Description: "Target collection or type, e.g. 'products' or 'orders'",
		},
		"fields": {
			Type:        "array of strings",
			Required:    true,
			Description: "Selections to return; an entry may carry a nested fragment like 'product { id, title }'",
		},
		"parameters": {
			Type:        "object",
			Required:    false,
			Description: "Query arguments such as pagination ('first', 'after'), or the 'operation' hint (create/update/delete) for mutations",
		},
		"filters": {
			Type:        "object",
			Required:    false,
			Description: "Merged into a single nested 'query' argument",
		},
		"data": {
			Type:        "object",
			Required:    false,
			Description: "Mutation input payload; required and non-empty for mutations",
		},
	},
	MutationNames: map[string]string{
		"create": "<resource>Create (default when no operation hint is set)",
		"update": "<resource>Update",
		"delete": "<resource>Delete",
		"other":  "Any other hint is used verbatim as the full mutation name",
	},
	Notes: []string{
		"List resources follow the upstream connection pattern (edges/node); request fields accordingly, e.g. 'edges { node { id } }'. The service does not enforce this.",
		"Business failures still return HTTP 200 with success=false; the generated query is included in the envelope whenever formatting succeeded.",
	},
	Examples: []docsExample{
		{
			Description: "List the first five products",
			Request: map[string]interface{}{
				"operation":  "query",
				"resource":   "products",
				"fields":     []string{"edges { node { id title } }"},
				"parameters": map[string]interface{}{"first": 5},
			},
		},
		{
			Description: "Filter products by title",
			Request: map[string]interface{}{
				"operation": "query",
				"resource":  "products",
				"fields":    []string{"edges { node { id title } }"},
				"filters":   map[string]interface{}{"title": "Test"},
			},
		},
		{
			Description: "Create a product",
			Request: map[string]interface{}{
				"operation": "mutation",
				"resource":  "product",
				"fields":    []string{"product { id title }"},
				"data":      map[string]interface{}{"title": "Test Product"},
			},
		},
		{
			Description: "Update a product",
			Request: map[string]interface{}{
				"operation":  "mutation",
				"resource":   "product",
				"fields":     []string{"product { id title }"},
				"parameters": map[string]interface{}{"operation": "update"},
				"data":       map[string]interface{}{"id": "gid://shopify/Product/1", "title": "Renamed"},
			},
		},
	},
}

func (gw *Gateway) docsHandler(w http.ResponseWriter, _ *http.Request) {
	doJSONWrite(w, http.StatusOK, docs)
}
