package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PostsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "social_posts_created_total",
		Help: "Posts created since process start.",
	})
	LikesToggled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "social_likes_toggled_total",
		Help: "Like toggle operations since process start.",
	})
)
