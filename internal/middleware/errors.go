package middleware

import "errors"

var errNoToken = errors.New("no access token provided")
