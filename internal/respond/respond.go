package respond

import (
	"encoding/json"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// STATUS maps the status codes this API uses to their reason phrases.
var STATUS = map[int]string{
	200: "OK",
	201: "Created",
	400: "Bad Request",
	401: "Unauthorized",
	404: "Not Found",
	405: "Method Not Allowed",
	409: "Conflict",
	500: "Internal Server Error",
}

type envelope struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// fallback is the pre-rendered body used when the envelope itself
// cannot be marshaled. Building responses must never fail upward.
var fallback = []byte(`{"message":"Internal Server Error","data":""}`)

// Write renders the uniform {message, data} envelope with the given
// status code. Data defaults to an empty string when omitted. Unknown
// status codes keep their numeric value but render "Unknown status".
func Write(c *gin.Context, status int, data ...any) {
	message, ok := STATUS[status]
	if !ok {
		message = "Unknown status"
	}

	var payload any = ""
	if len(data) > 0 && data[0] != nil {
		payload = data[0]
	}

	body, err := json.Marshal(envelope{Message: message, Data: payload})
	if err != nil {
		logrus.WithError(err).Error("respond: could not marshal response envelope")
		c.Data(500, "application/json", fallback)
		return
	}

	if status > 201 {
		logrus.WithFields(logrus.Fields{
			"status": status,
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		}).Warnf("request failed: %s", message)
	}

	c.Data(status, "application/json", body)
}
