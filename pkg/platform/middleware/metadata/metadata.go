package metadata

import (
	"net/http"
	"strings"

	"github.com/mssola/useragent"

	"vcpipe/pkg/requestcontext"
)

// ClientMetadata extracts the client IP and User-Agent from the request,
// parses the agent into a requestcontext.Device and stores all three in the
// context. Apply it early in the chain.
func ClientMetadata(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userAgent := r.Header.Get("User-Agent")

		ctx := requestcontext.WithClientMetadata(r.Context(), ClientIPFromRequest(r), userAgent)
		ctx = requestcontext.WithDevice(ctx, ParseDevice(userAgent))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ParseDevice returns the zero Device for an empty agent.
func ParseDevice(userAgent string) requestcontext.Device {
	if userAgent == "" {
		return requestcontext.Device{}
	}
	ua := useragent.New(userAgent)
	browser, _ := ua.Browser()
	return requestcontext.Device{
		Browser: strings.TrimSpace(browser),
		OS:      strings.TrimSpace(ua.OS()),
		Mobile:  ua.Mobile(),
		Bot:     ua.Bot(),
	}
}

// ClientIPFromRequest extracts the real client IP from the request, handling proxies and load balancers.
func ClientIPFromRequest(r *http.Request) string {
	// X-Forwarded-For lists client, proxy1, proxy2...; the first entry is the client.
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if idx := strings.Index(xff, ","); idx != -1 {
			return strings.TrimSpace(xff[:idx])
		}
		return strings.TrimSpace(xff)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	// RemoteAddr is "ip:port" or "[::1]:port".
	if addr := r.RemoteAddr; addr != "" {
		if idx := strings.LastIndex(addr, ":"); idx != -1 {
			return strings.Trim(addr[:idx], "[]")
		}
		return addr
	}

	return "unknown"
}
