package cli

import (
	"os"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/gqlbridge/gqlbridge/config"
	"github.com/gqlbridge/gqlbridge/gateway"
	logger "github.com/gqlbridge/gqlbridge/log"
)

const appName = "gqlbridge"

var log = logger.Get()

var confPaths = []string{
	"gqlbridge.conf",
	"/etc/gqlbridge/gqlbridge.conf",
}

var (
	app = kingpin.New(appName, "Bridge simplified JSON operation descriptions to an upstream commerce GraphQL API.")

	conf  = app.Flag("conf", "Path to the configuration file.").Short('c').String()
	port  = app.Flag("port", "Override the listen port.").Short('p').Int()
	debug = app.Flag("debug", "Enable debug logging.").Bool()
)

// Main parses flags, loads configuration and runs the gateway until it
// terminates.
func Main(version string) {
	app.Version(version)
	app.HelpFlag.Short('h')
	kingpin.MustParse(app.Parse(os.Args[1:]))

	paths := confPaths
	if *conf != "" {
		paths = []string{*conf}
	}

	var cfg config.Config
	if err := config.Load(paths, &cfg); err != nil {
		log.WithError(err).Fatal("Could not load configuration")
	}

	if *port != 0 {
		cfg.ListenPort = *port
	}
	if *debug {
		cfg.LogLevel = "debug"
	}

	applyLogConfig(cfg)

	gw := gateway.New(cfg)
	if err := gw.Start(); err != nil {
		log.WithError(err).Fatal("Gateway terminated")
	}
}

func applyLogConfig(cfg config.Config) {
	if lvl, err := logger.ParseLevel(cfg.LogLevel); err == nil {
		log.Level = lvl
	}
	log.Formatter = logger.NewFormatter(cfg.LogFormat)
}
