package controllers

import (
	"net/http"

	"github.com/rabobank/bindingsview/conf"
	"github.com/rabobank/bindingsview/util"
)

func DebugMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		util.DumpRequest(r)
		next.ServeHTTP(w, r)
	})
}

func AddHeadersMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Version", conf.VERSION)
		next.ServeHTTP(w, r)
	})
}
