package render

import (
	"encoding/json"
	"errors"
	"net/http"

	"anchor/core"

	"github.com/sirupsen/logrus"
	"github.com/twitchtv/twirp"
)

type H map[string]interface{}

// JSON render with json
func JSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.Errorln("render json:", err)
	}
}

// Error write error. Domain error codes ride the body; twirp errors map onto
// their http status.
func Error(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := -1

	var terr twirp.Error
	if errors.As(err, &terr) {
		status = twirp.ServerHTTPStatusFromErrorCode(terr.Code())
	}

	var ecode core.ErrorCode
	if errors.As(err, &ecode) {
		status = http.StatusBadRequest
		code = int(ecode)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(H{"code": code, "msg": err.Error()}); err != nil {
		logrus.Errorln("render error:", err)
	}
}

// BadRequest bad request error
func BadRequest(w http.ResponseWriter, err error) {
	Error(w, twirp.InvalidArgumentError("request", err.Error()))
}

// NotFoundRequest not found request error
func NotFoundRequest(w http.ResponseWriter, err error) {
	Error(w, twirp.NotFoundError(err.Error()))
}
