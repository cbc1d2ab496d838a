package main

import (
	"context"
	"flag"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"

	"github.com/5aradise/loadprobe/httptools"
	"github.com/5aradise/loadprobe/signal"
	"github.com/5aradise/loadprobe/site"
)

var port = flag.Int("port", 9000, "server port")

const confResponseDelaySec = "CONF_RESPONSE_DELAY_SEC"
const confHealthFailure = "CONF_HEALTH_FAILURE"

func main() {
	flag.Parse()

	opts := site.Options{
		HealthFailure: os.Getenv(confHealthFailure) == "true",
	}
	if delaySec, err := strconv.Atoi(os.Getenv(confResponseDelaySec)); err == nil && delaySec > 0 && delaySec < 300 {
		opts.ResponseDelay = time.Duration(delaySec) * time.Second
	}

	catalog := site.DemoCatalog()
	server := httptools.CreateServer(*port, site.NewHandler(catalog, opts))

	go server.Start()
	log.Info("fake site is listening", "addr", server.Addr(), "tags", len(catalog.Tags), "authors", len(catalog.Authors), "delay", opts.ResponseDelay)
	signal.WaitForTerminationSignal()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("shutdown", "err", err)
	}
	log.Info("fake site stopped")
}
