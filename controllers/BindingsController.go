package controllers

import (
	"net/http"

	"github.com/rabobank/bindingsview/model"
	"github.com/rabobank/bindingsview/util"
)

// BindingsJSON returns all three sources as {env, file, k8s}. Redacted by
// default, raw when the caller passes reveal=1 (an escape hatch for trusted
// debugging, not a default).
func BindingsJSON(w http.ResponseWriter, r *http.Request) {
	g := collect()
	doc := model.BindingsDocument{Env: g.Env, File: g.File, K8s: g.K8s}

	if r.URL.Query().Get("reveal") != "1" {
		doc.Env = redactBindings(doc.Env)
		doc.File = redactBindings(doc.File)
		doc.K8s = redactDirectoryBindings(doc.K8s)
	}

	w.Header().Set("Content-Type", "application/json")
	util.WriteHttpResponse(w, http.StatusOK, doc)
}

// Health is a plain liveness probe, no dependency checks.
func Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
