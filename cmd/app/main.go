package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/ishan-1010/future-social-ishan/configs"
	"github.com/ishan-1010/future-social-ishan/internal/auth"
	"github.com/ishan-1010/future-social-ishan/internal/events"
	"github.com/ishan-1010/future-social-ishan/internal/like"
	"github.com/ishan-1010/future-social-ishan/internal/media"
	"github.com/ishan-1010/future-social-ishan/internal/migrate"
	"github.com/ishan-1010/future-social-ishan/internal/post"
	"github.com/ishan-1010/future-social-ishan/internal/profile"
	"github.com/ishan-1010/future-social-ishan/internal/ratelimit"
	"github.com/ishan-1010/future-social-ishan/internal/shared/db"
	"github.com/ishan-1010/future-social-ishan/internal/shared/httpx"
	"github.com/ishan-1010/future-social-ishan/internal/storage/s3"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"gorm.io/plugin/opentelemetry/tracing"
)

func initOTEL(ctx context.Context) func(context.Context) error {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		endpoint = "otel-collector:4318"
	}
	exp, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpoint(endpoint), otlptracehttp.WithInsecure())
	if err != nil {
		log.Fatalf("otel exporter: %v", err)
	}
	res, _ := resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(os.Getenv("OTEL_SERVICE_NAME")),
		attribute.String("deployment.environment", os.Getenv("ENV")),
	))
	ratio := 1.0
	if s := os.Getenv("OTEL_TRACES_SAMPLER_ARG"); s != "" {
		if f, e := strconv.ParseFloat(s, 64); e == nil && f >= 0 && f <= 1 {
			ratio = f
		}
	}
	tp := trace.NewTracerProvider(
		trace.WithSampler(trace.ParentBased(trace.TraceIDRatioBased(ratio))),
		trace.WithBatcher(exp),
		trace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{}, propagation.Baggage{},
	))
	return tp.Shutdown
}

func main() {
	ctx := context.Background()
	shutdown := initOTEL(ctx)
	defer func() {
		c, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		_ = shutdown(c)
	}()

	cfg := configs.LoadConfig()

	store := db.Open(cfg)
	_ = store.DB.Use(tracing.NewPlugin())

	if os.Getenv("AUTO_MIGRATE") == "true" {
		if err := migrate.AutoMigrateAll(store); err != nil {
			log.Fatalf("migrate: %v", err)
		}
	}

	// Redis backs the write-path rate limiter; skip it when not configured.
	var limiter *ratelimit.Limiter
	if os.Getenv("REDIS_HOST") != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr()})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatalf("redis ping: %v", err)
		}
		limiter = ratelimit.New(rdb)
	}

	producer := events.NewProducer(cfg.KafkaBrokerURL, cfg.KafkaTopic)
	defer producer.Close()

	profileRepo := profile.NewRepository(store)
	profileSvc := profile.NewService(profileRepo)

	authRepo := auth.NewRepository(store)
	authSvc := auth.NewService(authRepo, profileSvc)

	postRepo := post.NewRepository(store)
	postSvc := post.NewService(postRepo, producer)

	likeRepo := like.NewRepository(store)
	likeSvc := like.NewService(likeRepo, postRepo, producer)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	ah := auth.NewHandler(authSvc)
	mux.Handle("POST /auth/register", httpx.Wrap(ah.Register))
	mux.Handle("POST /auth/login", httpx.Wrap(ah.Login))

	protect := func(pattern string, h http.Handler) {
		mux.Handle(pattern, httpx.AuthMiddleware(h))
	}
	limited := func(h http.Handler) http.Handler {
		return limiter.LimitHTTP(60, time.Minute, func(r *http.Request) (string, error) {
			return httpx.UserFromCtx(r)
		}, h)
	}

	ph := post.NewHandler(postSvc)
	protect("GET /posts", httpx.Wrap(ph.List))
	protect("POST /posts", limited(httpx.Wrap(ph.Create)))

	lh := like.NewHandler(likeSvc)
	protect("POST /posts/{post_id}/like", limited(httpx.Wrap(lh.Toggle)))

	prh := profile.NewHandler(profileSvc)
	protect("GET /profile", httpx.Wrap(prh.Get))
	protect("PUT /profile", httpx.Wrap(prh.Update))

	if cfg.S3Endpoint != "" {
		s3store, err := s3.New(s3.Config{
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			Bucket:    cfg.S3Bucket,
		})
		if err != nil {
			log.Fatalf("s3: %v", err)
		}
		if err := s3store.EnsureBucket(ctx); err != nil {
			log.Fatalf("s3 ensure bucket: %v", err)
		}
		mh := media.NewHandler(media.NewService(s3store, cfg.S3PublicURL))
		protect("POST /media/upload", limited(httpx.Wrap(mh.Upload)))
		mux.Handle("GET /media/{key}", httpx.Wrap(mh.RedirectToSignedGet))
	} else {
		log.Println("S3_ENDPOINT not set, media routes disabled")
	}

	srv := &http.Server{
		Addr:              cfg.AppPort,
		Handler:           otelhttp.NewHandler(mux, "http.server"),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       90 * time.Second,
	}
	log.Printf("social-service listening on %s", cfg.AppPort)
	log.Fatal(srv.ListenAndServe())
}
