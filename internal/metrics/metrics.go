package metrics

import (
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests by path and status code",
		},
		[]string{"path", "status"},
	)
	Registrations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "registrations_total",
			Help: "Total number of successful registrations",
		},
	)
	FailedLogins = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "failed_logins_total",
			Help: "Total number of failed login attempts",
		},
	)
	FollowRequests = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "successful_follows_total",
			Help: "Total number of successful follow requests",
		},
	)
	UnfollowRequests = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "successful_unfollows_total",
			Help: "Total number of successful unfollow requests",
		},
	)
	PostsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "posts_created_total",
			Help: "Total number of posts created",
		},
	)
)

// Middleware counts requests per path and response status.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			status := c.Response().Status
			if httpErr, ok := err.(*echo.HTTPError); ok {
				status = httpErr.Code
			}
			RequestsTotal.WithLabelValues(c.Path(), strconv.Itoa(status)).Inc()
			return err
		}
	}
}
