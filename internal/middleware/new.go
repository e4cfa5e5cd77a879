// Package middleware holds the Gin middlewares shared by the HTTP
// surface: request IDs for log correlation and webhook rate limiting.
package middleware

import (
	"alice-ticktick/pkg/log"
)

type Middleware struct {
	l log.Logger
}

func New(l log.Logger) Middleware {
	return Middleware{l: l}
}
