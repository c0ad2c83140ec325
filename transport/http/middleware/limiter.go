package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"hotel/shared"
	"hotel/shared/constant"
	"hotel/transport/http/response"

	"github.com/rs/zerolog/log"
)

const (
	cacheKeyRateLimit = "limiter"
)

// RateLimit counts requests per client and user agent in a fixed redis
// window opened by the first request. Cache failures let the request through.
func (a *appMiddleware) RateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if !a.config.App.RateLimiter.Enable {
			next.ServeHTTP(writer, request)

			return
		}

		maxReqs := a.config.App.RateLimiter.MaxRequests
		windowSecs := a.config.App.RateLimiter.WindowSeconds

		cacheKey := shared.BuildCacheKey(cacheKeyRateLimit, clientIP(request), userAgent(request))

		count, err := a.cache.Incr(request.Context(), cacheKey, windowSecs)
		if err != nil {
			log.Warn().Err(err).Msg("rate limiter cache unavailable")
			next.ServeHTTP(writer, request)

			return
		}

		if count > int64(maxReqs) {
			writer.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(windowSecs))
			response.WithRequestLimitExceeded(writer)

			return
		}

		writer.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(maxReqs))
		writer.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.FormatInt(max(0, int64(maxReqs)-count), 10))
		writer.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(windowSecs))

		next.ServeHTTP(writer, request)
	})
}

func userAgent(request *http.Request) string {
	ua := request.Header.Get(constant.RequestHeaderUserAgent)
	if ua == constant.Empty {
		ua = "unknown"
	}

	return ua
}

func clientIP(request *http.Request) string {
	if xff := request.Header.Get(constant.RequestHeaderForwardedFor); xff != constant.Empty {
		// the first entry is the originating client
		if commaIdx := strings.Index(xff, ","); commaIdx > 0 {
			return strings.TrimSpace(xff[:commaIdx])
		}

		return strings.TrimSpace(xff)
	}

	if xri := request.Header.Get(constant.RequestHeaderRealIP); xri != constant.Empty {
		return strings.TrimSpace(xri)
	}

	return request.RemoteAddr
}
