package resp

import (
	"mime"
	"strings"
)

const (
	htmlContentType    = "text/html; charset=utf-8"
	textContentType    = "text/plain; charset=utf-8"
	jsonContentType    = "application/json; charset=UTF-8"
	defaultContentType = "application/octet-stream"
)

// ContentType resolves a type token into a full Content-Type header value.
//
// Tokens already containing a "/" pass through verbatim. Any other token is
// treated as a file extension, with or without its leading dot, and resolved
// against the platform MIME table. Unknown tokens resolve to
// "application/octet-stream".
func ContentType(token string) string {
	if strings.Contains(token, "/") {
		return token
	}

	ext := token
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	if ct := mime.TypeByExtension(ext); ct != "" {
		return ct
	}

	return defaultContentType
}
