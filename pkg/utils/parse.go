package utils

import (
	"strconv"
	"strings"
)

// ParseIDList parses a comma-separated id list from the client. Non-numeric
// and negative tokens are silently dropped, not rejected. The count caps on
// well-formed lists are enforced separately by the dish validator.
func ParseIDList(value string) []uint {
	if value == "" {
		return nil
	}

	var ids []uint
	for _, token := range strings.Split(value, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		n, err := strconv.ParseUint(token, 10, 32)
		if err != nil {
			continue
		}
		ids = append(ids, uint(n))
	}
	return ids
}

// ClampPage normalizes pagination input: page < 1 becomes 1 and a
// non-positive perPage falls back to defaultPerPage. A page beyond the last
// one simply yields an empty page downstream.
func ClampPage(page, perPage, defaultPerPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	return page, perPage
}
