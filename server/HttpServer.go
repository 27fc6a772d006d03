package server

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/rabobank/bindingsview/conf"
	"github.com/rabobank/bindingsview/controllers"
)

func StartServer() {
	router := mux.NewRouter()

	router.Use(controllers.DebugMiddleware)
	router.Use(controllers.AddHeadersMiddleware)
	router.HandleFunc("/", controllers.Index).Methods(http.MethodGet)
	router.HandleFunc("/health", controllers.Health).Methods(http.MethodGet)
	router.HandleFunc("/bindings.json", controllers.BindingsJSON).Methods(http.MethodGet)

	log.Infof("server started, listening on port %d...", conf.ListenPort)
	err := http.ListenAndServe(fmt.Sprintf(":%d", conf.ListenPort), router)
	if err != nil {
		log.Errorf("failed to start http server on port %d, err: %s", conf.ListenPort, err)
		os.Exit(8)
	}
}
