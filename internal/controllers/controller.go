// Package controllers implements the resource handlers. Each
// controller owns one collection and dispatches requests through an
// ordered routing table of (method, path shape) rules, the shape
// matcher comparing fixed segments first and wildcards last.
package controllers

import (
	"encoding/json"
	"io"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"ma3_reports/internal/docstore"
	"ma3_reports/internal/params"
	"ma3_reports/internal/respond"
)

// wildcard marks the id position in a path shape.
const wildcard = ":id"

// request carries everything an operation needs: the id derived
// positionally from the matched shape, the id the convention scanner
// found (kept for callers that rely on it), the decoded body and the
// query parameters.
type request struct {
	id      string
	idParam string
	body    map[string]any
	query   url.Values
}

type operation func(c *gin.Context, req request)

type rule struct {
	method string
	shape  []string
	op     operation
}

// dispatch routes one request through a table. A path that matches no
// shape yields 404; a matched path with no matching method yields 405.
func dispatch(c *gin.Context, rules []rule) {
	segments, idParam, query := params.Process(c.Request.URL.Path, c.Request.URL.Query())

	req := request{
		idParam: idParam,
		body:    decodeBody(c),
		query:   query,
	}

	pathMatched := false
	for _, r := range rules {
		id, ok := matchShape(r.shape, segments)
		if !ok {
			continue
		}
		pathMatched = true
		if r.method != c.Request.Method {
			continue
		}
		req.id = id
		r.op(c, req)
		return
	}

	if pathMatched {
		respond.Write(c, 405)
		return
	}
	respond.Write(c, 404)
}

// matchShape compares a shape against path segments and returns the
// wildcard value when the shape carries one. Wildcards only match
// non-empty segments.
func matchShape(shape, segments []string) (string, bool) {
	if len(shape) != len(segments) {
		return "", false
	}
	id := ""
	for i, want := range shape {
		if want == wildcard {
			if segments[i] == "" {
				return "", false
			}
			id = segments[i]
			continue
		}
		if want != segments[i] {
			return "", false
		}
	}
	return id, true
}

// decodeBody reads the request body as a JSON object. An absent,
// empty or unparseable body is treated as an empty object, never as
// an error.
func decodeBody(c *gin.Context) map[string]any {
	body := map[string]any{}
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil || len(raw) == 0 {
		return body
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return map[string]any{}
	}
	return body
}

// findByIDField resolves an item path id through the redundant "id"
// field, a query filter rather than a direct key lookup. Zero matches
// respond 404; more than one is an integrity fault (ids are supposed
// to be unique) and responds 500. The response has already been
// written whenever ok is false.
func findByIDField(c *gin.Context, col docstore.Collection, id string) (docstore.Doc, bool) {
	if id == "" {
		respond.Write(c, 404)
		return docstore.Doc{}, false
	}
	docs, err := col.Find(c.Request.Context(), docstore.Query{}.Where("id", id))
	if err != nil {
		logrus.WithError(err).Error("document lookup failed")
		respond.Write(c, 500)
		return docstore.Doc{}, false
	}
	if len(docs) == 0 {
		logrus.WithField("id", id).Warn("document not found")
		respond.Write(c, 404)
		return docstore.Doc{}, false
	}
	if len(docs) > 1 {
		logrus.WithField("id", id).Error("multiple documents share one id")
		respond.Write(c, 500)
		return docstore.Doc{}, false
	}
	return docs[0], true
}

// docData unwraps found documents for list responses.
func docData(docs []docstore.Doc) []map[string]any {
	out := make([]map[string]any, 0, len(docs))
	for _, doc := range docs {
		out = append(out, doc.Data)
	}
	return out
}
