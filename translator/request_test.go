package translator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validQuery() Request {
	return Request{
		Operation: "query",
		Resource:  "products",
		Fields:    []string{"id", "title"},
	}
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name       string
		request    Request
		violations []string
	}{
		{
			name:       "valid query",
			request:    validQuery(),
			violations: nil,
		},
		{
			name: "valid mutation",
			request: Request{
				Operation: "mutation",
				Resource:  "product",
				Fields:    []string{"product { id }"},
				Data:      map[string]interface{}{"title": "Test Product"},
			},
			violations: nil,
		},
		{
			name: "empty resource",
			request: Request{
				Operation: "query",
				Fields:    []string{"id"},
			},
			violations: []string{"Resource cannot be empty"},
		},
		{
			name: "whitespace resource",
			request: Request{
				Operation: "query",
				Resource:  "   ",
				Fields:    []string{"id"},
			},
			violations: []string{"Resource cannot be empty"},
		},
		{
			name: "no fields",
			request: Request{
				Operation: "query",
				Resource:  "products",
			},
			violations: []string{"At least one field must be specified"},
		},
		{
			name: "bad operation",
			request: Request{
				Operation: "subscription",
				Resource:  "products",
				Fields:    []string{"id"},
			},
			violations: []string{"Operation must be either 'query' or 'mutation'"},
		},
		{
			name: "operation is case-insensitive",
			request: Request{
				Operation: "QUERY",
				Resource:  "products",
				Fields:    []string{"id"},
			},
			violations: nil,
		},
		{
			name: "mutation without data",
			request: Request{
				Operation: "Mutation",
				Resource:  "product",
				Fields:    []string{"product { id }"},
			},
			violations: []string{"Data is required for mutations"},
		},
		{
			name: "mutation with empty data",
			request: Request{
				Operation: "mutation",
				Resource:  "product",
				Fields:    []string{"product { id }"},
				Data:      map[string]interface{}{},
			},
			violations: []string{"Data is required for mutations"},
		},
		{
			name:    "everything wrong at once",
			request: Request{Operation: "delete"},
			violations: []string{
				"Resource cannot be empty",
				"At least one field must be specified",
				"Operation must be either 'query' or 'mutation'",
			},
		},
		{
			name: "empty mutation accumulates in check order",
			request: Request{
				Operation: "mutation",
			},
			violations: []string{
				"Resource cannot be empty",
				"At least one field must be specified",
				"Data is required for mutations",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.violations, Validate(tc.request))
			assert.Equal(t, len(tc.violations) == 0, IsValid(tc.request))
		})
	}
}

func TestRequestIsMutation(t *testing.T) {
	assert.False(t, validQuery().IsMutation())
	assert.True(t, Request{Operation: "MUTATION"}.IsMutation())
	assert.True(t, Request{Operation: " mutation "}.IsMutation())
	assert.False(t, Request{Operation: "mutate"}.IsMutation())
}
