// Package cursor encodes pagination tokens. A token is the URL-safe
// Base64 encoding of the last document id of a page; it is opaque to
// clients and only emitted when a page came back full.
package cursor

import "encoding/base64"

// Encode wraps a document id into an opaque page token.
func Encode(docID string) string {
	return base64.URLEncoding.EncodeToString([]byte(docID))
}

// Decode unwraps a page token back into a document id. Tokens that are
// not valid Base64 return an error.
func Decode(token string) (string, error) {
	raw, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
