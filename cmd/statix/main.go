package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/fatih/color"
	"github.com/statix-web/statix"
	"github.com/statix-web/statix/config"
	"github.com/statix-web/statix/http/status"
)

// fileConfig is the TOML shape of an optional config file. Every field is
// optional; unset fields fall back to flags and then to defaults.
type fileConfig struct {
	Host           string `toml:"host"`
	Port           int    `toml:"port"`
	Root           string `toml:"root"`
	Index          string `toml:"index"`
	ReadBufferSize int    `toml:"read_buffer_size"`
	ReadTimeout    string `toml:"read_timeout"`
	WriteTimeout   string `toml:"write_timeout"`
}

func main() {
	host := flag.String("host", "0.0.0.0", "Host to bind to")
	port := flag.Int("port", 8080, "Port to serve on")
	dir := flag.String("dir", "", "Directory to serve (defaults to ./www)")
	configPath := flag.String("config", "", "Path to a TOML config file")
	quiet := flag.Bool("quiet", false, "Suppress the per-request access log")
	flag.Parse()

	cfg := &config.Config{}
	addr := fmt.Sprintf("%s:%d", *host, *port)

	if *configPath != "" {
		fc, err := loadFile(*configPath)
		if err != nil {
			log.Fatalf("statix: config: %v", err)
		}

		cfg.FS.Root = fc.Root
		cfg.FS.IndexFile = fc.Index
		cfg.NET.ReadBufferSize = fc.ReadBufferSize
		cfg.NET.ReadTimeout = parseDuration(fc.ReadTimeout)
		cfg.NET.WriteTimeout = parseDuration(fc.WriteTimeout)

		if fc.Host != "" || fc.Port != 0 {
			h, p := fc.Host, fc.Port
			if h == "" {
				h = *host
			}
			if p == 0 {
				p = *port
			}
			addr = fmt.Sprintf("%s:%d", h, p)
		}
	}

	// flags override the file
	if *dir != "" {
		cfg.FS.Root = *dir
	}

	app := statix.New(addr).Tune(cfg)
	if *quiet {
		app.AccessLog(nil)
	}

	app.NotifyOnStart(func() {
		color.New(color.FgCyan, color.Bold).Printf("statix")
		fmt.Printf(" serving %s at ", cfg.FS.Root)
		color.New(color.FgGreen).Printf("http://%s\n", addr)
	})

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
		<-sigCh

		if err := app.GracefulShutdown(); err != nil {
			log.Printf("statix: shutdown: %v", err)
		}
	}()

	if err := app.Serve(); err != nil && !errors.Is(err, status.ErrShutdown) {
		log.Fatalf("statix: %v", err)
	}
}

func loadFile(path string) (fc fileConfig, err error) {
	_, err = toml.DecodeFile(path, &fc)
	return fc, err
}

func parseDuration(raw string) time.Duration {
	if raw == "" {
		return 0
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("statix: config: bad duration %q: %v", raw, err)
	}

	return d
}
