package httptools

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
)

type Server struct {
	httpServer *http.Server
}

func CreateServer(port int, handler http.Handler) Server {
	return Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

func (s Server) Addr() string {
	return s.httpServer.Addr
}

// Start serves until Shutdown is called. Any other failure is fatal.
func (s Server) Start() {
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("cannot start http server", "addr", s.httpServer.Addr, "err", err)
	}
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
