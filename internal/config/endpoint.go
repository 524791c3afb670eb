package config

import (
	"fmt"
	"net/url"
	"strings"
)

// LocalOrigin is where a locally started prediction server listens.
const LocalOrigin = "http://127.0.0.1:5000"

// ResolveBaseURL maps the configured address to the backend origin.
// Empty, file:// and loopback addresses always target LocalOrigin;
// anything else is reduced to scheme://host[:port].
func ResolveBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return LocalOrigin, nil
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid base url %q: %w", raw, err)
	}
	if u.Scheme == "file" {
		return LocalOrigin, nil
	}

	switch u.Hostname() {
	case "localhost", "127.0.0.1":
		return LocalOrigin, nil
	case "":
		return "", fmt.Errorf("invalid base url %q: missing host", raw)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("invalid base url %q: unsupported scheme %q", raw, u.Scheme)
	}

	return u.Scheme + "://" + u.Host, nil
}
