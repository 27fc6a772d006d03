package controllers

import (
	_ "embed"
	"html/template"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/rabobank/bindingsview/conf"
	"github.com/rabobank/bindingsview/model"
	"github.com/rabobank/bindingsview/redact"
	"github.com/rabobank/bindingsview/sources"
)

//go:embed templates/index.html
var indexHTML string

var indexTemplate = template.Must(template.New("index").Parse(indexHTML))

type pageData struct {
	Version       string
	Meta          model.AppMetadata
	VcapEnv       []model.JSON
	VcapFile      []model.JSON
	K8s           []model.DirectoryBinding
	VcapEnvError  string
	VcapFileError string
}

// gathered is one from-scratch read of all sources, shared by the page and
// the JSON endpoint. Nothing is cached between requests.
type gathered struct {
	Meta      model.AppMetadata
	Env       []model.JSON
	File      []model.JSON
	K8s       []model.DirectoryBinding
	EnvError  string
	FileError string
}

func collect() gathered {
	cfg := conf.Sources
	envRaw := cfg.ServicesFromEnv()
	fileRaw := cfg.ServicesFromFile()
	return gathered{
		Meta:      cfg.AppMeta(),
		Env:       sources.BindingsFromServices(envRaw),
		File:      sources.BindingsFromServices(fileRaw),
		K8s:       cfg.DirectoryBindings(),
		EnvError:  model.ErrorText(envRaw),
		FileError: model.ErrorText(fileRaw),
	}
}

// redactBindings copies the records with their credentials masked, error
// marker rows pass through untouched.
func redactBindings(records []model.JSON) []model.JSON {
	out := make([]model.JSON, 0, len(records))
	for _, record := range records {
		clone := model.JSON{}
		for k, v := range record {
			clone[k] = v
		}
		if creds, isMap := record["credentials"].(model.JSON); isMap {
			clone["credentials"] = redact.Mapping(creds)
		}
		out = append(out, clone)
	}
	return out
}

func redactDirectoryBindings(records []model.DirectoryBinding) []model.DirectoryBinding {
	out := make([]model.DirectoryBinding, 0, len(records))
	for _, record := range records {
		record.Data = redact.Mapping(record.Data)
		out = append(out, record)
	}
	return out
}

// withoutMarkers drops error marker rows, the page shows those as a notice
// separate from the binding tables.
func withoutMarkers(records []model.JSON) []model.JSON {
	out := make([]model.JSON, 0, len(records))
	for _, record := range records {
		if !model.IsError(record) {
			out = append(out, record)
		}
	}
	return out
}

// Index renders the diagnostic page, always redacted.
func Index(w http.ResponseWriter, r *http.Request) {
	g := collect()
	data := pageData{
		Version:       conf.VERSION,
		Meta:          g.Meta,
		VcapEnv:       withoutMarkers(redactBindings(g.Env)),
		VcapFile:      withoutMarkers(redactBindings(g.File)),
		K8s:           redactDirectoryBindings(g.K8s),
		VcapEnvError:  g.EnvError,
		VcapFileError: g.FileError,
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, data); err != nil {
		log.WithFields(log.Fields{"err": err}).Error("failed to render index page")
	}
}
