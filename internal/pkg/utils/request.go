package utils

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/goccy/go-json"
)

func ParseIntParam(param string) (int, error) {
	if param == "" {
		return 0, errors.New("parameter is missing from url path")
	}
	return strconv.Atoi(param)
}

func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return errors.New("request body is empty")
	}
	return json.NewDecoder(r.Body).Decode(dst)
}
