// Package pagerange parses page selections such as "1-3, 5, 7-9".
package pagerange

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dtroode/pdfgenie-client/internal/model"
)

const field = "page range"

// MaxPages caps the number of pages one expression may select.
const MaxPages = 10000

// Parse expands a comma separated list of pages and inclusive ranges into
// 1-based page numbers in input order. Duplicates are kept.
func Parse(expr string) ([]int, error) {
	if strings.TrimSpace(expr) == "" {
		return nil, model.NewValidationError(field, "expression is empty")
	}

	var pages []int
	for _, token := range strings.Split(expr, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			return nil, model.NewValidationError(field, "empty entry")
		}

		start, end, isRange := strings.Cut(token, "-")
		if !isRange {
			n, err := page(token)
			if err != nil {
				return nil, err
			}
			if len(pages)+1 > MaxPages {
				return nil, tooMany()
			}
			pages = append(pages, n)
			continue
		}

		from, err := page(start)
		if err != nil {
			return nil, err
		}
		to, err := page(end)
		if err != nil {
			return nil, err
		}
		if to < from {
			return nil, model.NewValidationError(field, fmt.Sprintf("range %q ends before it starts", token))
		}
		if to-from+1 > MaxPages-len(pages) {
			return nil, tooMany()
		}
		for n := from; n <= to; n++ {
			pages = append(pages, n)
		}
	}

	return pages, nil
}

func tooMany() error {
	return model.NewValidationError(field, fmt.Sprintf("selects more than %d pages", MaxPages))
}

func page(s string) (int, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, model.NewValidationError(field, fmt.Sprintf("%q is not a page number", s))
	}
	if n < 1 {
		return 0, model.NewValidationError(field, fmt.Sprintf("page %d is out of range", n))
	}
	return n, nil
}
