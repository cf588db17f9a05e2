package cmd

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/avasquez/ppmon/internal/adapters/csvlog"
	routerosadapter "github.com/avasquez/ppmon/internal/adapters/routeros"
	tomlstate "github.com/avasquez/ppmon/internal/adapters/state/toml"
	"github.com/avasquez/ppmon/internal/application"
	"github.com/avasquez/ppmon/internal/config"
	"github.com/avasquez/ppmon/internal/logging"
	"github.com/avasquez/ppmon/internal/ports"
)

type app struct {
	service *application.MonitorService
	cfg     config.Config
}

func wireApp() (*app, error) {
	cfg, err := config.Load(viper.New())
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	logging.Init(logging.ParseLevel(cfg.LogLevel))

	router := routerosadapter.NewClient(cfg.RouterAddress, cfg.RouterUsername, cfg.RouterPassword, cfg.DialTimeout)

	sink, err := csvlog.NewLog(cfg.LogFile)
	if err != nil {
		return nil, fmt.Errorf("wire disconnection log: %w", err)
	}

	recent, err := tomlstate.NewStore(cfg.StateFile)
	if err != nil {
		return nil, fmt.Errorf("wire recent-disconnection store: %w", err)
	}

	return &app{
		service: application.NewMonitorService(router, router, sink, recent, ports.SystemClock{}),
		cfg:     cfg,
	}, nil
}
