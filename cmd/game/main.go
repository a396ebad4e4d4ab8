package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/tomz197/pixellove/internal/config"
	"github.com/tomz197/pixellove/internal/loop/client"
	loopconfig "github.com/tomz197/pixellove/internal/loop/config"
	"github.com/tomz197/pixellove/internal/loop/server"
	"github.com/tomz197/pixellove/internal/music"
	"github.com/tomz197/pixellove/internal/store"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to the game, so logs only go to a file.
	logger := log.New(io.Discard)
	if path := config.GetEnv("PIXELLOVE_LOG", ""); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logger = log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Prefix:          "pixellove",
			Level:           log.DebugLevel,
		})
	}

	cfg := loopconfig.Default()
	if path := config.GetEnv("PIXELLOVE_CONFIG", ""); path != "" {
		loaded, err := loopconfig.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	st, err := store.Open(logger)
	if err != nil {
		logger.Warn("Customization will not be saved", "err", err)
	}

	var out music.Output
	if config.GetEnvInt("PIXELLOVE_AUDIO", 1) != 0 {
		out, err = music.OpenSpeaker()
		if err != nil {
			logger.Warn("Audio disabled", "err", err)
		}
	}

	seed := int64(config.GetEnvInt("PIXELLOVE_SEED", 0))
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	gameServer := server.NewServer(logger)
	player := music.NewPlayer(out)
	defer player.Stop()

	reader := bufio.NewReader(os.Stdin)
	c := client.NewClient(gameServer, reader, os.Stdout, client.ClientOptions{
		Username: config.GetEnv("USER", "player"),
		Config:   &cfg,
		Store:    st,
		Music:    player,
		Logger:   logger,
		Rand:     rand.New(rand.NewSource(seed)),
	})
	if err := c.Run(ctx); err != nil {
		_ = term.Restore(fd, oldState)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("Game finished", "stats", gameServer.Snapshot())
}
