package util

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/rabobank/bindingsview/conf"
)

func WriteHttpResponse(w http.ResponseWriter, code int, object interface{}) {
	data, err := json.Marshal(object)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = fmt.Fprint(w, err.Error())
		return
	}

	w.WriteHeader(code)
	_, _ = w.Write(data)
	log.Debugf("response: code:%d, body: %s", code, string(data))
}

func DumpRequest(r *http.Request) {
	if conf.Debug {
		log.Debugf("dumping %s request for URL: %s", r.Method, r.URL)
		for name, values := range r.Header {
			if name == "Authorization" {
				log.Debugf(" %s: %s", name, "<redacted>")
			} else {
				for _, value := range values {
					log.Debugf(" %s: %s", name, value)
				}
			}
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Debugf("error reading body: %v", err)
			return
		}
		if len(body) > 0 {
			log.Debugf("request body: %s", string(body))
		}
		// restore the io.ReadCloser to its original state
		r.Body = io.NopCloser(bytes.NewBuffer(body))
	}
}
