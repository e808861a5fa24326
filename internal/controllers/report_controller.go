package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"ma3_reports/internal/docstore"
	"ma3_reports/internal/models"
	"ma3_reports/internal/respond"
	"ma3_reports/internal/validate"
)

// ReportController serves the "reports" collection.
type ReportController struct {
	col   docstore.Collection
	rules []rule
}

func NewReportController(store docstore.Store) *ReportController {
	rc := &ReportController{col: store.Collection("reports")}
	rc.rules = []rule{
		{"GET", []string{"reports"}, rc.list},
		{"DELETE", []string{"reports"}, rc.bulkDelete},
		{"POST", []string{"reports"}, rc.create},
		{"GET", []string{"reports", wildcard}, rc.get},
		{"PATCH", []string{"reports", wildcard}, rc.update},
		{"DELETE", []string{"reports", wildcard}, rc.delete},
	}
	return rc
}

func (rc *ReportController) Handle(c *gin.Context) {
	dispatch(c, rc.rules)
}

// GET /reports
func (rc *ReportController) list(c *gin.Context, req request) {
	if len(req.query) > 0 {
		logrus.WithField("query", req.query.Encode()).Warn("unsupported report list filter")
		respond.Write(c, 400)
		return
	}
	docs, err := rc.col.Find(c.Request.Context(), docstore.Query{})
	if err != nil {
		logrus.WithError(err).Error("listing reports failed")
		respond.Write(c, 500)
		return
	}
	respond.Write(c, 200, gin.H{"reports": docData(docs)})
}

// DELETE /reports
func (rc *ReportController) bulkDelete(c *gin.Context, req request) {
	if len(req.query) > 0 {
		logrus.WithField("query", req.query.Encode()).Warn("unsupported report delete filter")
		respond.Write(c, 400)
		return
	}
	ids, err := rc.col.DeleteMatching(c.Request.Context(), docstore.Query{})
	if err != nil {
		logrus.WithError(err).Error("bulk deleting reports failed")
		respond.Write(c, 500)
		return
	}
	respond.Write(c, 200, gin.H{
		"deletedReportCount": len(ids),
		"deletedReportIds":   ids,
	})
}

// POST /reports
func (rc *ReportController) create(c *gin.Context, req request) {
	// type is matched exactly against the fixed set, no normalization
	reportType, ok := validate.ReportType(req.body["type"])
	if !ok {
		logrus.Warn("missing or invalid 'type' in request body")
		respond.Write(c, 400)
		return
	}
	route, ok := validate.Name(req.body["route"])
	if !ok {
		logrus.Warn("missing or invalid 'route' in request body")
		respond.Write(c, 400)
		return
	}
	timestamp, ok := validate.NonEmptyString(req.body["timestamp"])
	if !ok {
		logrus.Warn("missing or invalid 'timestamp' in request body")
		respond.Write(c, 400)
		return
	}

	report := models.Report{
		Type:      reportType,
		Route:     route,
		Timestamp: timestamp,
		CreatedBy: models.CreatedByPlaceholder,
	}
	if v, present := req.body["stop"]; present {
		stop, ok := validate.Name(v)
		if !ok {
			logrus.Warn("invalid 'stop' in request body")
			respond.Write(c, 400)
			return
		}
		report.Stop = stop
	}

	report.ID = rc.col.NewID()
	if err := rc.col.Set(c.Request.Context(), report.ID, report.Doc()); err != nil {
		logrus.WithError(err).Error("creating report failed")
		respond.Write(c, 500)
		return
	}
	respond.Write(c, 201)
}

// GET /reports/{id}
func (rc *ReportController) get(c *gin.Context, req request) {
	doc, ok := findByIDField(c, rc.col, req.id)
	if !ok {
		return
	}
	respond.Write(c, 200, gin.H{"report": doc.Data})
}

// PATCH /reports/{id}
func (rc *ReportController) update(c *gin.Context, req request) {
	fields := map[string]any{}
	if v, present := req.body["type"]; present {
		reportType, ok := validate.ReportType(v)
		if !ok {
			logrus.Warn("invalid 'type' in request body")
			respond.Write(c, 400)
			return
		}
		fields["type"] = reportType
	}
	if v, present := req.body["route"]; present {
		route, ok := validate.Name(v)
		if !ok {
			logrus.Warn("invalid 'route' in request body")
			respond.Write(c, 400)
			return
		}
		fields["route"] = route
	}
	if v, present := req.body["stop"]; present {
		stop, ok := validate.Name(v)
		if !ok {
			logrus.Warn("invalid 'stop' in request body")
			respond.Write(c, 400)
			return
		}
		fields["stop"] = stop
	}
	if v, present := req.body["timestamp"]; present {
		timestamp, ok := validate.NonEmptyString(v)
		if !ok {
			logrus.Warn("invalid 'timestamp' in request body")
			respond.Write(c, 400)
			return
		}
		fields["timestamp"] = timestamp
	}

	doc, ok := findByIDField(c, rc.col, req.id)
	if !ok {
		return
	}
	if len(fields) > 0 {
		if err := rc.col.Update(c.Request.Context(), doc.ID, fields); err != nil {
			logrus.WithError(err).Error("updating report failed")
			respond.Write(c, 500)
			return
		}
	}
	respond.Write(c, 200)
}

// DELETE /reports/{id}
func (rc *ReportController) delete(c *gin.Context, req request) {
	doc, ok := findByIDField(c, rc.col, req.id)
	if !ok {
		return
	}
	if err := rc.col.Delete(c.Request.Context(), doc.ID); err != nil {
		logrus.WithError(err).Error("deleting report failed")
		respond.Write(c, 500)
		return
	}
	respond.Write(c, 200)
}
