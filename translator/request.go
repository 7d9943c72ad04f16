package translator

import "strings"

// Operation names accepted on a Request, compared case-insensitively.
const (
	OperationQuery    = "query"
	OperationMutation = "mutation"
)

// Request is the simplified description of a data operation that callers
// submit instead of hand-written GraphQL text.
type Request struct {
	// Operation is either "query" or "mutation".
	Operation string `json:"operation"`

	// Resource is the collection or type the request targets, e.g.
	// "products" or "orders".
	Resource string `json:"resource"`

	// Fields are the selections to return. An entry may carry a nested
	// selection fragment verbatim, e.g. "product { id, title }".
	Fields []string `json:"fields"`

	// Parameters become query arguments (pagination and the like). For
	// mutations the "operation" entry selects the mutation name.
	Parameters map[string]interface{} `json:"parameters,omitempty"`

	// Filters are merged into a single nested "query" argument.
	Filters map[string]interface{} `json:"filters,omitempty"`

	// Data carries the input payload for mutations.
	Data map[string]interface{} `json:"data,omitempty"`
}

// IsMutation reports whether the request describes a mutation.
func (r Request) IsMutation() bool {
	return strings.EqualFold(strings.TrimSpace(r.Operation), OperationMutation)
}

// Validate checks a request against the rules every operation shares.
// The returned violations are ordered, one per failed rule, so callers
// can join them into a stable diagnostic message. A nil return means the
// request is well formed.
func Validate(r Request) []string {
	var violations []string

	if strings.TrimSpace(r.Resource) == "" {
		violations = append(violations, "Resource cannot be empty")
	}

	if len(r.Fields) == 0 {
		violations = append(violations, "At least one field must be specified")
	}

	op := strings.TrimSpace(r.Operation)
	if !strings.EqualFold(op, OperationQuery) && !strings.EqualFold(op, OperationMutation) {
		violations = append(violations, "Operation must be either 'query' or 'mutation'")
	}

	if strings.EqualFold(op, OperationMutation) && len(r.Data) == 0 {
		violations = append(violations, "Data is required for mutations")
	}

	return violations
}

// IsValid reports whether Validate returns no violations.
func IsValid(r Request) bool {
	return len(Validate(r)) == 0
}
