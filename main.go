package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	app "github.com/rocketscienceinc/squid-bingo/internal"
	"github.com/rocketscienceinc/squid-bingo/internal/config"
)

const usage = `usage: squid-bingo [command] [args]

commands:
  solve [file-id]        solve a bingo file from the bingo dir (default)
  generate [file-id...]  write random bingo files into the bingo dir
  serve                  start the HTTP API`

// main - is the entry point of the application. It initializes the configuration, logger, and runs the command.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	conf := initConfig()
	logger := initLogger(conf)

	command, args := "solve", os.Args[1:]
	if len(args) > 0 {
		command, args = args[0], args[1:]
	}

	var err error

	switch command {
	case "solve":
		var fileID string
		if len(args) > 0 {
			fileID = args[0]
		}
		err = app.RunApp(logger, conf, fileID, os.Stdout)
	case "generate":
		err = app.RunGenerator(logger, conf, args)
	case "serve":
		err = app.RunServer(logger, conf)
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	if err != nil {
		logger.Error("command failed", "command", command, "error", err)
		os.Exit(1)
	}
}

// initialize config.
func initConfig() *config.Config {
	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	return config.MustLoad(filepath.Join(baseDir, "./config.yml"))
}

// initialize logger.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	// stdout carries the report
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
