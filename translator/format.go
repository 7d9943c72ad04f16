package translator

import (
	"fmt"
	"strings"
)

// InvalidRequestError is returned by Format when the request fails
// validation. It carries every violation so callers surface the full
// diagnostic in one message.
type InvalidRequestError struct {
	Violations []string
}

func (e *InvalidRequestError) Error() string {
	return "Invalid request: " + strings.Join(e.Violations, ", ")
}

// Format renders a request into GraphQL text. The request is validated
// first, even when the caller already did, so generated text can never
// come from a malformed request.
func Format(r Request) (string, error) {
	if violations := Validate(r); len(violations) > 0 {
		return "", &InvalidRequestError{Violations: violations}
	}

	var b strings.Builder
	if r.IsMutation() {
		b.WriteString("mutation {\n")
		writeMutation(&b, r)
	} else {
		b.WriteString("query {\n")
		writeQuery(&b, r)
	}
	b.WriteString("}\n")

	return b.String(), nil
}

func writeQuery(b *strings.Builder, r Request) {
	b.WriteString("  ")
	b.WriteString(r.Resource)

	args := make([]string, 0, len(r.Parameters)+1)
	for _, p := range pairsOf(r.Parameters) {
		args = append(args, p.Key+": "+p.Value.String())
	}
	// Filters collapse into a single nested "query" argument, always
	// after the explicit parameters.
	if len(r.Filters) > 0 {
		args = append(args, "query: "+ValueOf(r.Filters).String())
	}
	if len(args) > 0 {
		b.WriteString("(")
		b.WriteString(strings.Join(args, ", "))
		b.WriteString(")")
	}

	writeFields(b, r.Fields)
}

func writeMutation(b *strings.Builder, r Request) {
	b.WriteString("  ")
	b.WriteString(MutationName(r))
	b.WriteString("(input: ")
	b.WriteString(ValueOf(r.Data).String())
	b.WriteString(")")

	writeFields(b, r.Fields)
}

func writeFields(b *strings.Builder, fields []string) {
	b.WriteString(" {\n")
	for _, f := range fields {
		b.WriteString("    ")
		b.WriteString(f)
		b.WriteString("\n")
	}
	b.WriteString("  }\n")
}

// MutationName derives the upstream mutation name from the request. The
// "operation" parameter selects between the conventional
// create/update/delete names; any other value is taken verbatim as the
// full mutation name. Absent a hint, create is assumed.
func MutationName(r Request) string {
	hint := ""
	if v, ok := r.Parameters["operation"]; ok {
		hint = strings.ToLower(strings.TrimSpace(fmt.Sprintf("%v", v)))
	}

	switch hint {
	case "", "create":
		return r.Resource + "Create"
	case "update":
		return r.Resource + "Update"
	case "delete":
		return r.Resource + "Delete"
	default:
		return hint
	}
}
