package params

import (
	"net/url"
	"strings"
)

// Process splits a request path into its segments and extracts the id
// path parameter, if any. The path is trimmed of surrounding slashes
// and split on "/". Id detection scans for the literal "id"
// placeholder convention; resource handlers additionally re-derive the
// id positionally from the segment list, and callers may rely on
// either mechanism.
func Process(path string, query url.Values) ([]string, string, url.Values) {
	segments := Split(path)

	idParam := ""
	for _, segment := range segments {
		if segment == "id" {
			idParam = segment
			break
		}
	}

	return segments, idParam, query
}

// Split trims leading and trailing slashes and splits the remainder
// on "/". An empty or root path yields a single empty segment, the
// same shape the dispatch tables expect for "no resource".
func Split(path string) []string {
	return strings.Split(strings.Trim(path, "/"), "/")
}
