package main

import (
	_ "embed"
	"html/template"
	"net"
	"net/http"
	"os"

	"github.com/charmbracelet/log"

	"github.com/tomz197/pixellove/internal/config"
	loopconfig "github.com/tomz197/pixellove/internal/loop/config"
)

const (
	defaultHost = "0.0.0.0"
	defaultPort = "8080"
)

//go:embed index.html
var htmlPage string

var page = template.Must(template.New("index").Parse(htmlPage))

type pageData struct {
	SSHHost string
	SSHPort string
	Player  string
	Sender  string
	Target  int
	Seconds int
}

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "web"})
	if err := config.LoadDotEnv(".env"); err != nil {
		logger.Fatal("Failed to load environment", "err", err)
	}

	host := config.GetEnv("WEB_HOST", defaultHost)
	port := config.GetEnv("WEB_PORT", defaultPort)

	cfg := loopconfig.Default()
	if path := config.GetEnv("PIXELLOVE_CONFIG", ""); path != "" {
		loaded, err := loopconfig.Load(path)
		if err != nil {
			logger.Fatal("Failed to load game config", "err", err)
		}
		cfg = loaded
	}

	data := pageData{
		SSHHost: config.GetEnv("SSH_DISPLAY_HOST", "your-server.com"),
		SSHPort: config.GetEnv("SSH_DISPLAY_PORT", "2222"),
		Player:  cfg.Player.Name,
		Sender:  cfg.Sender.Name,
		Target:  cfg.Gameplay.TargetScore,
		Seconds: cfg.Gameplay.TimeLimit,
	}

	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := page.Execute(w, data); err != nil {
			logger.Error("Failed to render page", "err", err)
		}
	})

	addr := net.JoinHostPort(host, port)
	logger.Info("Starting web server", "addr", "http://"+addr)
	if err := http.ListenAndServe(addr, nil); err != nil {
		logger.Fatal("Server error", "err", err)
	}
}
