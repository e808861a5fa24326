package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"ma3_reports/internal/docstore"
	"ma3_reports/internal/models"
	"ma3_reports/internal/respond"
	"ma3_reports/internal/validate"
)

// RouteController serves the "routes" collection.
type RouteController struct {
	col   docstore.Collection
	rules []rule
}

func NewRouteController(store docstore.Store) *RouteController {
	rc := &RouteController{col: store.Collection("routes")}
	rc.rules = []rule{
		{"GET", []string{"routes"}, rc.list},
		{"DELETE", []string{"routes"}, rc.bulkDelete},
		{"POST", []string{"routes"}, rc.create},
		{"GET", []string{"routes", wildcard}, rc.get},
		{"PATCH", []string{"routes", wildcard}, rc.update},
		{"DELETE", []string{"routes", wildcard}, rc.delete},
	}
	return rc
}

func (rc *RouteController) Handle(c *gin.Context) {
	dispatch(c, rc.rules)
}

// GET /routes
func (rc *RouteController) list(c *gin.Context, req request) {
	if len(req.query) > 0 {
		logrus.WithField("query", req.query.Encode()).Warn("unsupported route list filter")
		respond.Write(c, 400)
		return
	}
	docs, err := rc.col.Find(c.Request.Context(), docstore.Query{})
	if err != nil {
		logrus.WithError(err).Error("listing routes failed")
		respond.Write(c, 500)
		return
	}
	respond.Write(c, 200, gin.H{"routes": docData(docs)})
}

// DELETE /routes
func (rc *RouteController) bulkDelete(c *gin.Context, req request) {
	if len(req.query) > 0 {
		logrus.WithField("query", req.query.Encode()).Warn("unsupported route delete filter")
		respond.Write(c, 400)
		return
	}
	ids, err := rc.col.DeleteMatching(c.Request.Context(), docstore.Query{})
	if err != nil {
		logrus.WithError(err).Error("bulk deleting routes failed")
		respond.Write(c, 500)
		return
	}
	respond.Write(c, 200, gin.H{
		"deletedRouteCount": len(ids),
		"deletedRouteIds":   ids,
	})
}

// POST /routes
func (rc *RouteController) create(c *gin.Context, req request) {
	name, ok := validate.Name(req.body["name"])
	if !ok {
		logrus.Warn("missing or invalid 'name' in request body")
		respond.Write(c, 400)
		return
	}
	stops, ok := validStops(req.body["stops"])
	if !ok {
		logrus.Warn("missing or invalid 'stops' in request body")
		respond.Write(c, 400)
		return
	}
	// active must be strictly boolean
	active, ok := req.body["active"].(bool)
	if !ok {
		logrus.Warn("missing or invalid 'active' in request body")
		respond.Write(c, 400)
		return
	}

	route := models.Route{
		ID:        rc.col.NewID(),
		Name:      name,
		Stops:     stops,
		Active:    active,
		CreatedBy: models.CreatedByPlaceholder,
	}
	if err := rc.col.Set(c.Request.Context(), route.ID, route.Doc()); err != nil {
		logrus.WithError(err).Error("creating route failed")
		respond.Write(c, 500)
		return
	}
	respond.Write(c, 201)
}

// GET /routes/{id}
func (rc *RouteController) get(c *gin.Context, req request) {
	doc, ok := findByIDField(c, rc.col, req.id)
	if !ok {
		return
	}
	respond.Write(c, 200, gin.H{"route": doc.Data})
}

// PATCH /routes/{id}
func (rc *RouteController) update(c *gin.Context, req request) {
	fields := map[string]any{}
	if v, present := req.body["name"]; present {
		name, ok := validate.Name(v)
		if !ok {
			logrus.Warn("invalid 'name' in request body")
			respond.Write(c, 400)
			return
		}
		fields["name"] = name
	}
	if v, present := req.body["stops"]; present {
		stops, ok := validStops(v)
		if !ok {
			logrus.Warn("invalid 'stops' in request body")
			respond.Write(c, 400)
			return
		}
		normalized := make([]any, len(stops))
		for i, s := range stops {
			normalized[i] = s
		}
		fields["stops"] = normalized
	}
	if v, present := req.body["active"]; present {
		active, ok := v.(bool)
		if !ok {
			logrus.Warn("invalid 'active' in request body")
			respond.Write(c, 400)
			return
		}
		fields["active"] = active
	}

	doc, ok := findByIDField(c, rc.col, req.id)
	if !ok {
		return
	}
	if len(fields) > 0 {
		if err := rc.col.Update(c.Request.Context(), doc.ID, fields); err != nil {
			logrus.WithError(err).Error("updating route failed")
			respond.Write(c, 500)
			return
		}
	}
	respond.Write(c, 200)
}

// DELETE /routes/{id}
func (rc *RouteController) delete(c *gin.Context, req request) {
	doc, ok := findByIDField(c, rc.col, req.id)
	if !ok {
		return
	}
	if err := rc.col.Delete(c.Request.Context(), doc.ID); err != nil {
		logrus.WithError(err).Error("deleting route failed")
		respond.Write(c, 500)
		return
	}
	respond.Write(c, 200)
}

// validStops checks that the value is a non-empty list of valid stop
// names and returns them normalized.
func validStops(v any) ([]string, bool) {
	raw, ok := v.([]any)
	if !ok || len(raw) == 0 {
		return nil, false
	}
	stops := make([]string, 0, len(raw))
	for _, entry := range raw {
		stop, ok := validate.Name(entry)
		if !ok {
			return nil, false
		}
		stops = append(stops, stop)
	}
	return stops, true
}
