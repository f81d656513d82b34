// Command uci runs chesscore as a UCI engine over stdin/stdout.
package main

import (
	"flag"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/tinbergen/chesscore/config"
	"github.com/tinbergen/chesscore/polyglot"
	"github.com/tinbergen/chesscore/uci"
)

func main() {
	configPath := flag.String("config", "", "path to a chesscore.toml config file")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("uci: failed to build logger: %v", err)
	}
	defer logger.Sync()

	cfg := config.Default()
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
		if err != nil {
			logger.Fatal("failed to load config", zap.Error(err))
		}
	}

	var book *polyglot.Book
	if cfg.Book.Enabled && cfg.Book.Path != "" {
		book, err = polyglot.Load(cfg.Book.Path)
		if err != nil {
			logger.Warn("failed to load opening book, continuing without it",
				zap.String("path", cfg.Book.Path), zap.Error(err))
			book = nil
		}
	}

	engine := uci.New(cfg, book, logger)
	engine.Run(os.Stdin, os.Stdout)
}
