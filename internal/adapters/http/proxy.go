package http

import (
	"fmt"
	"net"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/melih/lighthouse-desktop/internal/core/domain"
	"github.com/melih/lighthouse-desktop/internal/core/ports"
	"github.com/melih/lighthouse-desktop/internal/logger"
)

// ProxyHandler manages reverse proxying for subdomains.
type ProxyHandler struct {
	service    ports.ContainerService
	baseDomain string
}

// NewProxyHandler creates a proxy serving <container>.<domain>.
func NewProxyHandler(service ports.ContainerService, baseDomain string) *ProxyHandler {
	return &ProxyHandler{service: service, baseDomain: baseDomain}
}

// ProxyRequest intercepts requests to subdomains (e.g., web.localhost)
// and routes them to the first published port of the running container
// with that name. Every other request is passed on.
func (h *ProxyHandler) ProxyRequest(c *fiber.Ctx) error {
	host := c.Hostname()
	if hostOnly, _, err := net.SplitHostPort(host); err == nil {
		host = hostOnly
	}
	subdomain, ok := strings.CutSuffix(host, "."+h.baseDomain)
	if !ok || subdomain == "" || subdomain == "www" || strings.Contains(subdomain, ".") {
		return c.Next()
	}

	containers, err := h.service.ListContainers(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to list containers")
	}

	var port uint16
	for _, container := range containers {
		if container.HasName(subdomain) && container.Running() {
			port = firstPublicPort(container)
			break
		}
	}
	if port == 0 {
		return c.Status(fiber.StatusNotFound).SendString(fmt.Sprintf("App '%s' not found, not running or not published", subdomain))
	}

	remote := &url.URL{Scheme: "http", Host: fmt.Sprintf("127.0.0.1:%d", port)}
	proxy := httputil.NewSingleHostReverseProxy(remote)

	// Rewrite the Host header so the app sees the address it listens on.
	originalDirector := proxy.Director
	proxy.Director = func(req *http.Request) {
		originalDirector(req)
		req.Host = remote.Host
	}
	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		logger.Get().Warnf("proxy to %s for %s: %v", remote.Host, subdomain, err)
		w.WriteHeader(http.StatusBadGateway)
		_, _ = fmt.Fprintf(w, "Proxy Info: target=%s error=%v", remote.Host, err)
	}

	return adaptor.HTTPHandler(proxy)(c)
}

func firstPublicPort(c domain.Container) uint16 {
	for _, p := range c.Ports {
		if p.PublicPort != 0 && p.Type == "tcp" {
			return p.PublicPort
		}
	}
	return 0
}
