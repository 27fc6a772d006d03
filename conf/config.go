package conf

import (
	"os"
	"strconv"
	"strings"

	"github.com/cloudfoundry-community/go-cfenv"
	log "github.com/sirupsen/logrus"

	"github.com/rabobank/bindingsview/sources"
)

// VERSION and COMMIT are set through ldflags at build time.
var (
	VERSION = "dev"
	COMMIT  = "dev"
)

var (
	debugStr      = os.Getenv("DEBUG")
	Debug         = false
	ListenPortStr = os.Getenv("PORT")
	ListenPort    int

	// Sources is the reader configuration used by the controllers, tests swap it for a fake.
	Sources = sources.DefaultConfig()
)

// EnvironmentComplete - Check the environment, set defaults and exit if the configuration is unusable.
func EnvironmentComplete() {
	if strings.EqualFold(debugStr, "true") {
		Debug = true
		log.SetLevel(log.DebugLevel)
	}

	envComplete := true
	if ListenPortStr == "" {
		ListenPort = 8080
	} else {
		var err error
		ListenPort, err = strconv.Atoi(ListenPortStr)
		if err != nil {
			log.WithFields(log.Fields{"PORT": ListenPortStr, "err": err}).Error("failed reading envvar PORT")
			envComplete = false
		}
	}

	if app, err := cfenv.Current(); err != nil {
		log.Info("not running in a CF environment")
	} else {
		log.WithFields(log.Fields{"app": app.Name, "index": app.Index, "api": app.CFAPI}).Info("running on CF")
	}

	if !envComplete {
		log.Error("one or more required environment variables missing or invalid, aborting...")
		os.Exit(8)
	}
}
