package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophfiles/internal/client/client"
	"github.com/dmitrijs2005/gophfiles/internal/client/config"
	"github.com/dmitrijs2005/gophfiles/internal/client/notify"
	"github.com/dmitrijs2005/gophfiles/internal/client/repositories"
	"github.com/dmitrijs2005/gophfiles/internal/client/repositories/session"
	"github.com/dmitrijs2005/gophfiles/internal/client/services"
	"github.com/dmitrijs2005/gophfiles/internal/filex"
	"github.com/dmitrijs2005/gophfiles/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	authService services.AuthService
	fileService services.FileService
	db          *sql.DB
	reader      *bufio.Reader
	out         io.Writer
	pingTimeout time.Duration

	mu   sync.Mutex
	mode Mode
}

func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	if _, err := filex.EnsureParentDir(c.SessionDB); err != nil {
		return nil, err
	}
	db, err := repositories.InitDatabase(ctx, c.SessionDB)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	apiClient := client.NewHTTPClient(c.APIURL,
		client.WithTimeout(c.RequestTimeout),
		client.WithLogger(logger),
	)
	sink := notify.NewTerminal(os.Stdout)

	as := services.NewAuthService(apiClient, session.NewSQLiteRepository(db), sink, logger)
	fs := services.NewFileService(apiClient, as.Current,
		services.WithSink(sink),
		services.WithLogger(logger),
		services.WithBlockingRefresh(c.BlockingRefresh),
	)

	return &App{
		config:      c,
		logger:      logger,
		authService: as,
		fileService: fs,
		db:          db,
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
		pingTimeout: 3 * time.Second,
	}, nil
}

// Run starts the connectivity watcher and the REPL. It returns when the user
// exits or stdin is closed, after background refreshes have finished.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	printlnFn("Welcome to gophfiles (type 'help' for commands)")
	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(a.reader))

	a.fileService.Wait()
	return a.db.Close()
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.authService.Current(ctx).Present()
}

func (a *App) Mode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		printlnFn(fmt.Sprintf("Switched to %s mode", mode))
	}
}

// getStatus renders the prompt decoration, e.g. "(ann online)".
func (a *App) getStatus() string {
	s := ""
	if u, ok := a.authService.User(context.Background()); ok && u.Username != "" {
		s = u.Username + " "
	}
	if m := a.Mode(); m != "" {
		s += string(m)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// StartOnlineStatusWatcher pings the server every interval until ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	a.checkOnline(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) checkOnline(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, a.pingTimeout)
	err := a.authService.Ping(ctx)
	cancel()

	if err != nil {
		a.logger.Debug(ctx, "ping failed", "error", err)
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}
