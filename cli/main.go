package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"text/tabwriter"

	"github.com/geobridge/geobridge"
	"github.com/geobridge/geobridge/core"
	"github.com/geobridge/geobridge/core/config"
	"github.com/geobridge/geobridge/core/engagement"
	"github.com/geobridge/geobridge/core/events"
	"github.com/geobridge/geobridge/core/places"
	"github.com/geobridge/geobridge/core/store"
	"github.com/geobridge/geobridge/pkg/logging"
)

func main() {
	// Default logger until the config file is loaded.
	logging.InitLogger("info", "console", nil)

	if len(os.Args) < 2 {
		logging.GetLogger().Error("expected 'run' or 'attributes' subcommands")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "run":
		runCmd := flag.NewFlagSet("run", flag.ExitOnError)
		configFile := runCmd.String("config", "geobridge.yaml", "Path to the harness config file.")
		logLevel := runCmd.String("log-level", "", "Log level (debug, info, warn, error); overrides the config file.")
		logFormat := runCmd.String("log-format", "", "Log format (console, json); overrides the config file.")
		if err := runCmd.Parse(os.Args[2:]); err != nil {
			logging.GetLogger().Error("Failed to parse run flags", "error", err)
			os.Exit(1)
		}
		run(*configFile, *logLevel, *logFormat)

	case "attributes":
		attrCmd := flag.NewFlagSet("attributes", flag.ExitOnError)
		configFile := attrCmd.String("config", "geobridge.yaml", "Path to the harness config file.")
		namedUser := attrCmd.String("named-user", "", "Engagement named-user id to overlay.")
		channel := attrCmd.String("channel", "", "Engagement channel id to overlay.")
		logLevel := attrCmd.String("log-level", "", "Log level (debug, info, warn, error); overrides the config file.")
		logFormat := attrCmd.String("log-format", "", "Log format (console, json); overrides the config file.")
		if err := attrCmd.Parse(os.Args[2:]); err != nil {
			logging.GetLogger().Error("Failed to parse attributes flags", "error", err)
			os.Exit(1)
		}
		runAttributes(*configFile, *namedUser, *channel, *logLevel, *logFormat)

	default:
		logging.GetLogger().Error("expected 'run' or 'attributes' subcommands", "command", os.Args[1])
		os.Exit(1)
	}
}

// resolveLogSettings merges the log configuration: flags override the
// config file, and anything left unset falls back to the defaults.
func resolveLogSettings(cfg *config.FileConfig, flagLevel, flagFormat string) (string, string) {
	level := flagLevel
	if level == "" {
		level = cfg.Log.Level
	}
	if level == "" {
		level = "info"
	}

	format := flagFormat
	if format == "" {
		format = cfg.Log.Format
	}
	if format == "" {
		format = "console"
	}
	return level, format
}

func configureLogging(cfg *config.FileConfig, flagLevel, flagFormat string) {
	level, format := resolveLogSettings(cfg, flagLevel, flagFormat)
	logging.InitLogger(level, format, nil)
}

// grantedRequester is the harness permission capability; there is no OS
// prompt on a dev box, so the permission is always granted.
type grantedRequester struct{}

func (grantedRequester) Granted() bool                         { return true }
func (grantedRequester) Request(context.Context) (bool, error) { return true, nil }

// printListener logs every boundary event the adapter dispatches.
type printListener struct {
	logger logging.Logger
}

func (p *printListener) OnRegionEntered(event events.BoundaryEvent, visit places.Visit) {
	p.logger.Info("region entered", "region_id", event.RegionID, "place", visit.Place.Name)
}

func (p *printListener) OnRegionExited(event events.BoundaryEvent, visit places.Visit) {
	p.logger.Info("region exited", "region_id", event.RegionID, "place", visit.Place.Name)
}

func buildAdapter(cfg *config.FileConfig, eng *engagement.Memory, logger logging.Logger) (*core.Adapter, error) {
	var script *places.Script
	if cfg.VisitScript != "" {
		var err error
		script, err = places.LoadScript(cfg.VisitScript)
		if err != nil {
			return nil, err
		}
	}

	var st store.Store
	switch cfg.Store.Backend {
	case "", "memory":
		st = store.NewMemory()
	case "file":
		st = store.NewFile(cfg.Store.Path)
	case "redis":
		var err error
		st, err = store.NewRedis(context.Background(), cfg.Store.RedisAddr)
		if err != nil {
			return nil, err
		}
	}

	return core.NewAdapter(geobridge.Options{
		Places:          places.NewReplaySDK(script, logger),
		Engagement:      eng,
		Requester:       grantedRequester{},
		Store:           st,
		Logger:          logger,
		EventsPerSecond: cfg.Events.PerSecond,
		EventBurst:      cfg.Events.Burst,
	})
}

func run(configFile, logLevel, logFormat string) {
	cfg, err := config.LoadFileConfig(configFile)
	if err != nil {
		logging.GetLogger().Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	configureLogging(cfg, logLevel, logFormat)
	logger := logging.GetLogger()

	if cfg.APIKey == "" {
		logger.Error("Config must set api_key")
		os.Exit(1)
	}

	eng := engagement.NewReadyMemory()
	adapter, err := buildAdapter(cfg, eng, logger)
	if err != nil {
		logger.Error("Failed to build adapter", "error", err)
		os.Exit(1)
	}
	defer adapter.Close()

	adapter.AddListener(&printListener{logger: logger})

	if !adapter.Start(context.Background(), cfg.APIKey) {
		logger.Error("Adapter failed to start")
		os.Exit(1)
	}
	logger.Info("Adapter started. Press Ctrl+C to exit.")

	// Wait for a shutdown signal.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	logger.Info("Received shutdown signal, stopping adapter...")
	adapter.Stop(context.Background())
	logger.Info("Adapter stopped.", "events_forwarded", len(eng.Events()))
}

func runAttributes(configFile, namedUser, channel, logLevel, logFormat string) {
	cfg, err := config.LoadFileConfig(configFile)
	if err != nil {
		logging.GetLogger().Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	configureLogging(cfg, logLevel, logFormat)
	logger := logging.GetLogger()

	if cfg.APIKey == "" {
		logger.Error("Config must set api_key")
		os.Exit(1)
	}

	eng := engagement.NewReadyMemory()
	eng.SetNamedUserID(namedUser)
	eng.SetChannelID(channel)

	adapter, err := buildAdapter(cfg, eng, logger)
	if err != nil {
		logger.Error("Failed to build adapter", "error", err)
		os.Exit(1)
	}
	defer adapter.Close()

	if !adapter.Start(context.Background(), cfg.APIKey) {
		logger.Error("Adapter failed to start")
		os.Exit(1)
	}
	defer adapter.Stop(context.Background())

	if err := adapter.UpdateDeviceAttributes(context.Background()); err != nil {
		logger.Error("Failed to update device attributes", "error", err)
		os.Exit(1)
	}

	attrs := eng.DeviceAttributes()
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ATTRIBUTE\tVALUE")
	for _, k := range keys {
		fmt.Fprintf(w, "%s\t%s\n", k, attrs[k])
	}
	_ = w.Flush()
}
