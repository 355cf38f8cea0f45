// SPDX-License-Identifier: MIT
//
// File: validate.go
// Role: Field rules and cross-reference checks over a Document.

package graphfile

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks doc and reports every problem found, not just the first.
// The returned error matches ErrInvalidDocument, ErrDuplicateVertex and
// ErrUnknownVertex through errors.Is, as applicable.
func Validate(doc *Document) error {
	if doc == nil {
		return fmt.Errorf("%w: nil document", ErrInvalidDocument)
	}

	var result *multierror.Error
	if err := validate.Struct(doc); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
		}
		for _, fe := range verrs {
			result = multierror.Append(result, fmt.Errorf("%w: %s", ErrInvalidDocument, formatFieldError(fe)))
		}
	}

	declared := make(map[string]struct{}, len(doc.Vertices))
	for i, v := range doc.Vertices {
		if v.Name == "" {
			continue
		}
		if _, dup := declared[v.Name]; dup {
			result = multierror.Append(result, fmt.Errorf("%w: vertex[%d] %q", ErrDuplicateVertex, i, v.Name))
			continue
		}
		declared[v.Name] = struct{}{}
	}

	for i, e := range doc.Edges {
		for _, end := range []string{e.From, e.To} {
			if end == "" {
				continue
			}
			if _, ok := declared[end]; !ok {
				result = multierror.Append(result, fmt.Errorf("%w: edge[%d] endpoint %q", ErrUnknownVertex, i, end))
			}
		}
		if e.Weight != nil && math.IsInf(*e.Weight, 0) {
			result = multierror.Append(result, fmt.Errorf("%w: edge[%d] weight must be finite", ErrInvalidDocument, i))
		}
	}

	return result.ErrorOrNil()
}

func formatFieldError(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Document.")

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "gte":
		return fmt.Sprintf("%s must be ≥ %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %q", field, fe.Tag())
	}
}
