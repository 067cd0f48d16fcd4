package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"paddock/internal/api"
	"paddock/internal/config"
	"paddock/internal/eventbus"
	"paddock/internal/logo"
	"paddock/internal/roster"
	"paddock/internal/ui"
)

func main() {
	// Parse command line arguments
	var apiURL, configPath string
	flag.StringVar(&apiURL, "api", "", "Base URL of the teams API (overrides config)")
	flag.StringVar(&configPath, "config", "", "Path to config file (default $XDG_CONFIG_HOME/paddock/config.toml)")
	flag.Parse()

	// Set up logging
	logFile, err := os.OpenFile("paddock.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigLoadedEvent); ok {
			log.Printf("Config loaded: api %s, locale %s", event.BaseURL, event.Locale)
		}
	})
	bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigSavedEvent); ok {
			log.Printf("Config saved to %s", event.Path)
		}
	})

	if configPath == "" {
		configPath = config.DefaultPath()
	}
	configSvc := config.NewConfigServiceAt(configPath, bus)
	cfg := loadOrCreateConfig(configSvc)
	if apiURL != "" {
		cfg.API.BaseURL = apiURL
	}

	// Initialize services
	client := api.NewClient(api.Config{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.RequestTimeout(),
	})
	rosterSvc := roster.NewService(client, bus)
	_ = logo.NewLoader(ctx, bus, client) // Loader subscribes to logo requests automatically
	log.Printf("Using API at %s", client.BaseURL())

	bus.Subscribe(eventbus.EventRequestFailed, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.RequestFailedEvent); ok {
			log.Printf("Request %s failed (request id %s): %v", event.Op, event.RequestID, event.Err)
		}
	})
	bus.Subscribe(eventbus.EventLogoFailed, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.LogoFailedEvent); ok {
			log.Printf("Logo %s failed: %v", event.URL, event.Err)
		}
	})

	// Create event channel for UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	bus.Subscribe(eventbus.EventLogoLoaded, func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	})

	uiModel := ui.NewModel(ctx, bus, cfg, rosterSvc)
	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithContext(ctx))
	uiModel.SetProgram(p)

	// Start forwarding events to UI in background
	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	// Run the UI
	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")

	cancel()
}

// loadOrCreateConfig loads the config file, writing the defaults first
// when there is none
func loadOrCreateConfig(configSvc config.ConfigService) *config.Config {
	path := configSvc.Path()

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		log.Printf("Creating new config at %s", path)
		if err := configSvc.Save(config.DefaultConfig()); err != nil {
			log.Printf("Failed to save config: %v", err)
		}
	}

	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Failed to load config, using defaults: %v", err)
		return config.DefaultConfig()
	}
	return cfg
}
