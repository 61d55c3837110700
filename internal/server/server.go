package server

import (
	"fmt"
	"net"
	"time"

	"github.com/Rana718/mockseed/internal/images"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/spf13/afero"
)

// Server exposes the downloaded product images the same way the marketplace
// backend does, so generated cover_url values can be checked in a browser.
type Server struct {
	app  *fiber.App
	dir  string
	port int
}

func New(fs afero.Fs, dir string, port int) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		AppName:               "mockseed",
	})

	s := &Server{app: app, dir: dir, port: port}

	app.Get("/health", s.handleHealth)
	app.Use(images.URLPrefix, filesystem.New(filesystem.Config{
		Root: afero.NewHttpFs(fs).Dir(dir),
	}))

	return s
}

func (s *Server) App() *fiber.App { return s.app }

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"dir":    s.dir,
	})
}

// Start listens on the configured port, or the next free one after it.
// It returns the URL the images are reachable under.
func (s *Server) Start(started func(url string)) error {
	port := FindAvailablePort(s.port)
	if port != s.port {
		fmt.Printf("Port %d is in use, using port %d instead\n", s.port, port)
		s.port = port
	}

	if started != nil {
		started(fmt.Sprintf("http://localhost:%d%s", s.port, images.URLPrefix))
	}
	return s.app.Listen(fmt.Sprintf(":%d", s.port))
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// FindAvailablePort finds an available port starting from startPort
func FindAvailablePort(startPort int) int {
	for port := startPort; port < startPort+100; port++ {
		if isPortAvailable(port) {
			return port
		}
	}
	return startPort
}

func isPortAvailable(port int) bool {
	ln, err := net.Listen("tcp4", fmt.Sprintf(":%d", port))
	if err != nil {
		return false
	}
	ln.Close()

	time.Sleep(10 * time.Millisecond)

	conn, err := net.DialTimeout("tcp4", fmt.Sprintf("127.0.0.1:%d", port), 100*time.Millisecond)
	if err == nil {
		conn.Close()
		return false
	}
	return true
}
