package web

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudflare/tableflip"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/oarkflow/browser"

	"github.com/oarkflow/listingfilter/internal/entities"
	"github.com/oarkflow/listingfilter/internal/http/middlewares"
	"github.com/oarkflow/listingfilter/internal/interfaces"
	"github.com/oarkflow/listingfilter/internal/routes"
	"github.com/oarkflow/listingfilter/internal/utils"
	"github.com/oarkflow/listingfilter/internal/views"
)

// NewApp wires the listing server for the given workspace.
func NewApp(env string, workspace interfaces.FS) *fiber.App {
	extension := entities.Config.GetString("app.view_extension", ".html")
	appName := entities.Config.GetString("app.name")

	engine := html.NewFileSystem(http.FS(views.FS), extension)
	engine.Reload(entities.Config.GetBool("app.debug"))
	app := fiber.New(fiber.Config{
		Immutable:             true,
		AppName:               appName,
		Views:                 engine,
		DisableStartupMessage: env == "test",
		ErrorHandler:          errorHandler,
	})
	setupGlobalMiddleware(app, env)
	routes.Web(app, workspace)
	routes.Api(app)
	return app
}

func setupGlobalMiddleware(app *fiber.App, env string) {
	app.Use(recover.New())
	app.Use(cors.New())
	if env != "test" {
		app.Use(logger.New(logger.Config{Output: entities.Logger}))
		app.Use(limiter.New(limiter.Config{
			Max:        entities.Config.GetInt("app.request_limit", 100),
			Expiration: 5 * time.Minute,
		}))
	}
	app.Use(middlewares.SecureHeaders(env == "production"))
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}
	if code >= fiber.StatusInternalServerError {
		entities.Logger.Error().Err(err).Str("path", c.Path()).Msg("request failed")
	}
	return c.Status(code).SendString(err.Error())
}

// Serve listens on host with zero-downtime restarts on SIGHUP.
func Serve(app *fiber.App, env, host string) error {
	upg, err := tableflip.New(tableflip.Options{})
	if err != nil {
		return fmt.Errorf("initialize tableflip: %w", err)
	}
	defer upg.Stop()

	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(hup)
	defer signal.Stop(stop)

	go func() {
		for {
			select {
			case <-hup:
				entities.Logger.Info().Msg("received SIGHUP, performing upgrade")
				if err := upg.Upgrade(); err != nil {
					entities.Logger.Error().Err(err).Msg("upgrade failed")
				}
			case <-stop:
				upg.Stop()
				return
			case <-upg.Exit():
				return
			}
		}
	}()

	ln, err := upg.Fds.Listen("tcp", host)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", host, err)
	}
	defer ln.Close()

	entities.Logger.Info().Str("host", host).Str("env", env).Msg("server is starting")
	go func() {
		if err := app.Listener(ln); err != nil {
			entities.Logger.Error().Err(err).Msg("serve failed")
		}
	}()
	if err := upg.Ready(); err != nil {
		return fmt.Errorf("signal readiness: %w", err)
	}
	if entities.Config.GetBool("app.open_browser") && !utils.IsSudo() {
		_ = browser.OpenURL(browserURL(host))
	}

	<-upg.Exit()
	entities.Logger.Info().Msg("exiting")
	return app.Shutdown()
}

// browserURL turns a listen address into one a browser can open; wildcard
// hosts are reached through localhost.
func browserURL(host string) string {
	h, port, err := net.SplitHostPort(host)
	if err != nil {
		return "http://" + host
	}
	switch h {
	case "", "0.0.0.0", "::":
		h = "localhost"
	}
	return "http://" + net.JoinHostPort(h, port)
}
