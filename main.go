package main

import (
	log "github.com/sirupsen/logrus"

	"github.com/rabobank/bindingsview/conf"
	"github.com/rabobank/bindingsview/server"
)

func main() {
	log.WithFields(log.Fields{"version": conf.VERSION, "commit": conf.COMMIT}).Info("bindingsview starting")

	conf.EnvironmentComplete()

	server.StartServer()
}
