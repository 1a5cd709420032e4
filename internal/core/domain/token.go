package domain

import "errors"

var ErrInvalidToken = errors.New("invalid token")
var ErrTokenExpired = errors.New("token expired")
