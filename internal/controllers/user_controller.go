package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"ma3_reports/internal/credentials"
	"ma3_reports/internal/cursor"
	"ma3_reports/internal/docstore"
	"ma3_reports/internal/models"
	"ma3_reports/internal/respond"
	"ma3_reports/internal/validate"
)

// UserController serves the "users" collection, including
// registration, login and the password-change endpoint. It is the only
// controller whose list and bulk delete accept filters.
type UserController struct {
	col   docstore.Collection
	rules []rule
}

func NewUserController(store docstore.Store) *UserController {
	uc := &UserController{col: store.Collection("users")}
	uc.rules = []rule{
		{"GET", []string{"users"}, uc.list},
		{"DELETE", []string{"users"}, uc.bulkDelete},
		{"POST", []string{"users"}, uc.register},
		{"POST", []string{"users", "register"}, uc.register},
		{"POST", []string{"users", "login"}, uc.login},
		{"PATCH", []string{"users", wildcard, "password"}, uc.changePassword},
		{"GET", []string{"users", wildcard}, uc.get},
		{"PATCH", []string{"users", wildcard}, uc.update},
		{"DELETE", []string{"users", wildcard}, uc.delete},
	}
	return uc
}

func (uc *UserController) Handle(c *gin.Context) {
	dispatch(c, uc.rules)
}

// GET /users?type=&limit=&start_after=
func (uc *UserController) list(c *gin.Context, req request) {
	q := docstore.Query{}
	limit := 0

	for key := range req.query {
		switch key {
		case "type", "limit", "start_after":
		default:
			logrus.WithField("param", key).Warn("unsupported user list filter")
			respond.Write(c, 400)
			return
		}
	}

	if raw := req.query.Get("type"); req.query.Has("type") {
		userType, ok := validate.UserType(raw)
		if !ok {
			logrus.WithField("type", raw).Warn("invalid user type filter")
			respond.Write(c, 400)
			return
		}
		q = q.Where("type", userType)
	}
	if raw := req.query.Get("limit"); req.query.Has("limit") {
		n, ok := validate.Limit(raw)
		if !ok {
			logrus.WithField("limit", raw).Warn("invalid limit parameter")
			respond.Write(c, 400)
			return
		}
		limit = n
		q = q.Limit(n)
	}
	if token := req.query.Get("start_after"); req.query.Has("start_after") {
		id, err := cursor.Decode(token)
		if err != nil {
			logrus.WithError(err).Error("invalid start_after token")
			respond.Write(c, 500)
			return
		}
		// the cursor must point at a document that still exists
		if _, err := uc.col.Get(c.Request.Context(), id); err != nil {
			logrus.WithError(err).Error("start_after document lookup failed")
			respond.Write(c, 500)
			return
		}
		q = q.StartAfter(id)
	}

	docs, err := uc.col.Find(c.Request.Context(), q)
	if err != nil {
		logrus.WithError(err).Error("listing users failed")
		respond.Write(c, 500)
		return
	}

	// a token is only emitted when the page came back full
	nextPageToken := ""
	if limit > 0 && len(docs) == limit {
		nextPageToken = cursor.Encode(docs[len(docs)-1].ID)
	}

	respond.Write(c, 200, gin.H{
		"users":         docData(docs),
		"nextPageToken": nextPageToken,
	})
}

// DELETE /users?type=
func (uc *UserController) bulkDelete(c *gin.Context, req request) {
	q := docstore.Query{}

	for key := range req.query {
		if key != "type" {
			logrus.WithField("param", key).Warn("unsupported user delete filter")
			respond.Write(c, 400)
			return
		}
	}
	if raw := req.query.Get("type"); req.query.Has("type") {
		userType, ok := validate.UserType(raw)
		if !ok {
			logrus.WithField("type", raw).Warn("invalid user type filter")
			respond.Write(c, 400)
			return
		}
		q = q.Where("type", userType)
	}

	ids, err := uc.col.DeleteMatching(c.Request.Context(), q)
	if err != nil {
		logrus.WithError(err).Error("bulk deleting users failed")
		respond.Write(c, 500)
		return
	}
	respond.Write(c, 200, gin.H{
		"deletedUserCount": len(ids),
		"deletedUserIds":   ids,
	})
}

// POST /users, POST /users/register
func (uc *UserController) register(c *gin.Context, req request) {
	email, ok := validate.Email(req.body["email"])
	if !ok {
		logrus.Warn("missing or invalid 'email' in request body")
		respond.Write(c, 400)
		return
	}
	password, ok := validate.Password(req.body["password"])
	if !ok {
		logrus.Warn("missing or invalid 'password' in request body")
		respond.Write(c, 400)
		return
	}
	userType, ok := validate.UserType(req.body["type"])
	if !ok {
		logrus.Warn("missing or invalid 'type' in request body")
		respond.Write(c, 400)
		return
	}

	// check-then-insert; a concurrent registration race can slip
	// through, which the store tolerates
	existing, err := uc.col.Find(c.Request.Context(), docstore.Query{}.Where("email", email).Limit(1))
	if err != nil {
		logrus.WithError(err).Error("email uniqueness check failed")
		respond.Write(c, 500)
		return
	}
	if len(existing) > 0 {
		logrus.WithField("email", email).Warn("email already registered")
		respond.Write(c, 409)
		return
	}

	hash, err := credentials.Hash(password)
	if err != nil {
		logrus.WithError(err).Error("hashing password failed")
		respond.Write(c, 500)
		return
	}

	user := models.User{
		ID:       uc.col.NewID(),
		Email:    email,
		Password: hash,
		Type:     userType,
	}
	if err := uc.col.Set(c.Request.Context(), user.ID, user.Doc()); err != nil {
		logrus.WithError(err).Error("creating user failed")
		respond.Write(c, 500)
		return
	}
	respond.Write(c, 201)
}

// POST /users/login. Unknown email responds 404 and a wrong password
// 401; no token or session is issued.
func (uc *UserController) login(c *gin.Context, req request) {
	email, ok := validate.Email(req.body["email"])
	if !ok {
		logrus.Warn("missing or invalid 'email' in request body")
		respond.Write(c, 400)
		return
	}
	password, ok := validate.Password(req.body["password"])
	if !ok {
		logrus.Warn("missing or invalid 'password' in request body")
		respond.Write(c, 400)
		return
	}

	docs, err := uc.col.Find(c.Request.Context(), docstore.Query{}.Where("email", email).Limit(1))
	if err != nil {
		logrus.WithError(err).Error("user lookup failed")
		respond.Write(c, 500)
		return
	}
	if len(docs) == 0 {
		logrus.WithField("email", email).Warn("unknown email")
		respond.Write(c, 404)
		return
	}

	hash, _ := docs[0].Data["password"].(string)
	if !credentials.Verify(password, hash) {
		logrus.WithField("email", email).Warn("incorrect password")
		respond.Write(c, 401)
		return
	}
	respond.Write(c, 200)
}

// GET /users/{id}
func (uc *UserController) get(c *gin.Context, req request) {
	doc, ok := findByIDField(c, uc.col, req.id)
	if !ok {
		return
	}
	respond.Write(c, 200, gin.H{"user": doc.Data})
}

// PATCH /users/{id}. The password is never updatable here, only
// through the password endpoint. Type is applied only when the key is
// actually present.
func (uc *UserController) update(c *gin.Context, req request) {
	if _, present := req.body["password"]; present {
		logrus.Warn("password cannot be updated through this endpoint")
		respond.Write(c, 400)
		return
	}

	fields := map[string]any{}
	if v, present := req.body["email"]; present {
		email, ok := validate.Email(v)
		if !ok {
			logrus.Warn("invalid 'email' in request body")
			respond.Write(c, 400)
			return
		}
		fields["email"] = email
	}
	if v, present := req.body["type"]; present {
		userType, ok := validate.UserType(v)
		if !ok {
			logrus.Warn("invalid 'type' in request body")
			respond.Write(c, 400)
			return
		}
		fields["type"] = userType
	}

	doc, ok := findByIDField(c, uc.col, req.id)
	if !ok {
		return
	}
	if len(fields) > 0 {
		if err := uc.col.Update(c.Request.Context(), doc.ID, fields); err != nil {
			logrus.WithError(err).Error("updating user failed")
			respond.Write(c, 500)
			return
		}
	}
	respond.Write(c, 200)
}

// DELETE /users/{id}
func (uc *UserController) delete(c *gin.Context, req request) {
	doc, ok := findByIDField(c, uc.col, req.id)
	if !ok {
		return
	}
	if err := uc.col.Delete(c.Request.Context(), doc.ID); err != nil {
		logrus.WithError(err).Error("deleting user failed")
		respond.Write(c, 500)
		return
	}
	respond.Write(c, 200)
}

// PATCH /users/{id}/password
func (uc *UserController) changePassword(c *gin.Context, req request) {
	prev, ok := validate.Password(req.body["prevPassword"])
	if !ok {
		logrus.Warn("missing or invalid 'prevPassword' in request body")
		respond.Write(c, 400)
		return
	}
	next, ok := validate.Password(req.body["newPassword"])
	if !ok {
		logrus.Warn("missing or invalid 'newPassword' in request body")
		respond.Write(c, 400)
		return
	}
	if prev == next {
		logrus.Warn("new password must differ from the previous one")
		respond.Write(c, 400)
		return
	}

	doc, ok := findByIDField(c, uc.col, req.id)
	if !ok {
		return
	}

	hash, _ := doc.Data["password"].(string)
	if !credentials.Verify(prev, hash) {
		logrus.WithField("id", req.id).Warn("previous password does not match")
		respond.Write(c, 401)
		return
	}

	newHash, err := credentials.Hash(next)
	if err != nil {
		logrus.WithError(err).Error("hashing password failed")
		respond.Write(c, 500)
		return
	}
	if err := uc.col.Update(c.Request.Context(), doc.ID, map[string]any{"password": newHash}); err != nil {
		logrus.WithError(err).Error("updating password failed")
		respond.Write(c, 500)
		return
	}
	respond.Write(c, 200)
}
