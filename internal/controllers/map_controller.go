package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"ma3_reports/internal/docstore"
	"ma3_reports/internal/models"
	"ma3_reports/internal/respond"
	"ma3_reports/internal/validate"
)

// MapController serves the "maps" collection.
type MapController struct {
	col   docstore.Collection
	rules []rule
}

func NewMapController(store docstore.Store) *MapController {
	mc := &MapController{col: store.Collection("maps")}
	mc.rules = []rule{
		{"GET", []string{"maps"}, mc.list},
		{"DELETE", []string{"maps"}, mc.bulkDelete},
		{"POST", []string{"maps"}, mc.create},
		{"GET", []string{"maps", wildcard}, mc.get},
		{"PATCH", []string{"maps", wildcard}, mc.update},
		{"DELETE", []string{"maps", wildcard}, mc.delete},
	}
	return mc
}

func (mc *MapController) Handle(c *gin.Context) {
	dispatch(c, mc.rules)
}

// GET /maps
func (mc *MapController) list(c *gin.Context, req request) {
	// no list filters for maps
	if len(req.query) > 0 {
		logrus.WithField("query", req.query.Encode()).Warn("unsupported map list filter")
		respond.Write(c, 400)
		return
	}
	docs, err := mc.col.Find(c.Request.Context(), docstore.Query{})
	if err != nil {
		logrus.WithError(err).Error("listing maps failed")
		respond.Write(c, 500)
		return
	}
	respond.Write(c, 200, gin.H{"maps": docData(docs)})
}

// DELETE /maps
func (mc *MapController) bulkDelete(c *gin.Context, req request) {
	if len(req.query) > 0 {
		logrus.WithField("query", req.query.Encode()).Warn("unsupported map delete filter")
		respond.Write(c, 400)
		return
	}
	ids, err := mc.col.DeleteMatching(c.Request.Context(), docstore.Query{})
	if err != nil {
		logrus.WithError(err).Error("bulk deleting maps failed")
		respond.Write(c, 500)
		return
	}
	respond.Write(c, 200, gin.H{
		"deletedMapCount": len(ids),
		"deletedMapIds":   ids,
	})
}

// POST /maps
func (mc *MapController) create(c *gin.Context, req request) {
	url, ok := validate.NonEmptyString(req.body["url"])
	if !ok {
		logrus.Warn("missing or invalid 'url' in request body")
		respond.Write(c, 400)
		return
	}

	id := mc.col.NewID()
	m := models.Map{ID: id, URL: url}
	if err := mc.col.Set(c.Request.Context(), id, m.Doc()); err != nil {
		logrus.WithError(err).Error("creating map failed")
		respond.Write(c, 500)
		return
	}
	respond.Write(c, 201)
}

// GET /maps/{id}
func (mc *MapController) get(c *gin.Context, req request) {
	doc, ok := findByIDField(c, mc.col, req.id)
	if !ok {
		return
	}
	respond.Write(c, 200, gin.H{"map": doc.Data})
}

// PATCH /maps/{id}
func (mc *MapController) update(c *gin.Context, req request) {
	fields := map[string]any{}
	if v, present := req.body["url"]; present {
		url, ok := validate.NonEmptyString(v)
		if !ok {
			logrus.Warn("invalid 'url' in request body")
			respond.Write(c, 400)
			return
		}
		fields["url"] = url
	}

	doc, ok := findByIDField(c, mc.col, req.id)
	if !ok {
		return
	}
	if len(fields) > 0 {
		if err := mc.col.Update(c.Request.Context(), doc.ID, fields); err != nil {
			logrus.WithError(err).Error("updating map failed")
			respond.Write(c, 500)
			return
		}
	}
	respond.Write(c, 200)
}

// DELETE /maps/{id}
func (mc *MapController) delete(c *gin.Context, req request) {
	doc, ok := findByIDField(c, mc.col, req.id)
	if !ok {
		return
	}
	if err := mc.col.Delete(c.Request.Context(), doc.ID); err != nil {
		logrus.WithError(err).Error("deleting map failed")
		respond.Write(c, 500)
		return
	}
	respond.Write(c, 200)
}
