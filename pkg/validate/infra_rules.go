package validate

import (
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// FileExists validates that a string property names an existing file on the
// local filesystem. An empty path and a missing path are distinct failures
// with distinct suggestions.
func FileExists[T any](p Property[T, string]) Rule[T] {
	return RuleFunc[T](func(instance T, section string) *Error {
		path := p.Get(instance)
		if strings.TrimSpace(path) == "" {
			return &Error{
				Key:         p.Key(section),
				Message:     "file path is not specified",
				Suggestions: []string{fmt.Sprintf("set %s to the path of an existing file", p.Key(section))},
			}
		}
		if _, err := os.Stat(path); err != nil {
			return &Error{
				Key:          p.Key(section),
				Message:      "file does not exist",
				CurrentValue: path,
				Suggestions:  []string{"create the file or correct the path"},
			}
		}
		return nil
	})
}

// DirExists validates that a string property names an existing directory.
// A path that exists but is not a directory also fails.
func DirExists[T any](p Property[T, string]) Rule[T] {
	return RuleFunc[T](func(instance T, section string) *Error {
		path := p.Get(instance)
		if strings.TrimSpace(path) == "" {
			return &Error{
				Key:         p.Key(section),
				Message:     "directory path is not specified",
				Suggestions: []string{fmt.Sprintf("set %s to the path of an existing directory", p.Key(section))},
			}
		}
		info, err := os.Stat(path)
		if err != nil || !info.IsDir() {
			return &Error{
				Key:          p.Key(section),
				Message:      "directory does not exist",
				CurrentValue: path,
				Suggestions:  []string{"create the directory or correct the path"},
			}
		}
		return nil
	})
}

// PortAvailable validates that an integer property is a valid TCP port and
// that the port can currently be bound on the loopback interface. The probe
// binds a transient listener and releases it immediately, so the check is
// best-effort: another process can take the port between this check and the
// server's own bind (TOCTOU).
func PortAvailable[T any](p Property[T, int]) Rule[T] {
	return RuleFunc[T](func(instance T, section string) *Error {
		port := p.Get(instance)
		if port < 1 || port > 65535 {
			return &Error{
				Key:          p.Key(section),
				Message:      "must be between 1 and 65535",
				CurrentValue: port,
				Suggestions:  []string{"use a valid TCP port number"},
			}
		}
		listener, err := net.Listen("tcp", net.JoinHostPort("127.0.0.1", strconv.Itoa(port)))
		if err != nil {
			return &Error{
				Key:          p.Key(section),
				Message:      fmt.Sprintf("port %d is already in use", port),
				CurrentValue: port,
				Suggestions:  []string{"stop the process holding the port or configure a different one"},
			}
		}
		_ = listener.Close()
		return nil
	})
}

// URLReachable validates that a string property is an absolute URL and that
// the endpoint answers an HTTP GET within the given timeout. The HTTP client
// is scoped to the single Validate call; transport and timeout errors are
// converted to a validation error here rather than propagated.
func URLReachable[T any](p Property[T, string], timeout time.Duration) Rule[T] {
	return RuleFunc[T](func(instance T, section string) *Error {
		raw := strings.TrimSpace(p.Get(instance))
		key := p.Key(section)
		if raw == "" {
			return &Error{
				Key:         key,
				Message:     "URL is not specified",
				Suggestions: []string{fmt.Sprintf("set %s to the endpoint URL", key)},
			}
		}
		u, err := url.Parse(raw)
		if err != nil || !u.IsAbs() || u.Host == "" {
			return &Error{
				Key:          key,
				Message:      "is not a valid absolute URL",
				CurrentValue: raw,
				Suggestions:  []string{"use an absolute URL including scheme and host"},
			}
		}

		client := &http.Client{Timeout: timeout}
		resp, err := client.Get(raw)
		if err != nil {
			return &Error{
				Key:          key,
				Message:      fmt.Sprintf("could not be reached: %v", err),
				CurrentValue: raw,
				Suggestions:  []string{"verify the endpoint is correct and reachable from this host"},
			}
		}
		defer resp.Body.Close()

		if resp.StatusCode >= http.StatusBadRequest {
			return &Error{
				Key:          key,
				Message:      fmt.Sprintf("returned status %d", resp.StatusCode),
				CurrentValue: raw,
				Suggestions:  []string{"verify the endpoint is correct and reachable from this host"},
			}
		}
		return nil
	})
}
