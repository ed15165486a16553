package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.7.0"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/opentelemetry/tracing"

	chp "github.com/soheekimdev/backend-server-effect-sub000"
	"github.com/soheekimdev/backend-server-effect-sub000/core"
	"github.com/soheekimdev/backend-server-effect-sub000/x/account"
	"github.com/soheekimdev/backend-server-effect-sub000/x/auth"
	"github.com/soheekimdev/backend-server-effect-sub000/x/challenge"
	"github.com/soheekimdev/backend-server-effect-sub000/x/challengeevent"
	"github.com/soheekimdev/backend-server-effect-sub000/x/comment"
	"github.com/soheekimdev/backend-server-effect-sub000/x/message"
	"github.com/soheekimdev/backend-server-effect-sub000/x/post"
	"github.com/soheekimdev/backend-server-effect-sub000/x/tag"
	"github.com/soheekimdev/backend-server-effect-sub000/x/util"
)

type CustomHandler struct {
	slog.Handler
}

func (h *CustomHandler) Handle(ctx context.Context, r slog.Record) error {

	r.AddAttrs(slog.String("type", "app"))

	span := trace.SpanFromContext(ctx)
	if span.SpanContext().IsValid() {
		r.AddAttrs(slog.String("traceID", span.SpanContext().TraceID().String()))
		r.AddAttrs(slog.String("spanID", span.SpanContext().SpanID().String()))
	}

	return h.Handler.Handle(ctx, r)
}

var (
	version      = "unknown"
	buildMachine = "unknown"
	buildTime    = "unknown"
	goVersion    = "unknown"
)

type counter interface {
	Count(ctx context.Context) (int64, error)
}

func main() {

	handler := &CustomHandler{Handler: slog.NewJSONHandler(os.Stdout, nil)}
	slogger := slog.New(handler)
	slog.SetDefault(slogger)

	if version == "unknown" {
		version = util.BuildVersion()
	}

	slog.Info(fmt.Sprintf("challenge api %s starting...", version))

	config := Config{}
	configPath := os.Getenv("CHALLENGE_CONFIG")
	if configPath == "" {
		configPath = "/etc/challenge/config.yaml"
	}

	err := config.Load(configPath)
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	platform := core.SetupConfig(config.Platform)

	slog.Info(fmt.Sprintf("config loaded! serving %s", platform.FQDN))

	e := echo.New()
	e.HidePort = true
	e.HideBanner = true
	e.Validator = util.NewValidator()

	if config.Server.EnableTrace {
		cleanup, err := setupTraceProvider(config.Server.TraceEndpoint, platform.FQDN+"/api", version)
		if err != nil {
			panic(err)
		}
		defer cleanup()

		skipper := otelecho.WithSkipper(
			func(c echo.Context) bool {
				return c.Path() == "/metrics" || c.Path() == "/health"
			},
		)
		e.Use(otelecho.Middleware("api", skipper))
	}

	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace: "chp",
		LabelFuncs: map[string]echoprometheus.LabelValueFunc{
			"url": func(c echo.Context, err error) string {
				return c.Path()
			},
		},
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics" || c.Path() == "/health"
		},
	}))

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             300 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(postgres.Open(config.Server.Dsn), &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	})
	if err != nil {
		panic("failed to connect database")
	}
	sqlDB, err := db.DB() // for pinging
	if err != nil {
		panic("failed to connect database")
	}
	defer sqlDB.Close()

	err = db.Use(tracing.NewPlugin(
		tracing.WithDBName("postgres"),
	))
	if err != nil {
		panic("failed to setup tracing plugin")
	}

	// Migrate the schema
	slog.Info("start migrate")
	err = db.AutoMigrate(
		&core.Account{},
		&core.Post{},
		&core.Comment{},
		&core.Challenge{},
		&core.ChallengeParticipant{},
		&core.ChallengeEvent{},
		&core.ChallengeEventCheck{},
		&core.Like{},
		&core.Tag{},
		&core.TagTarget{},
		&core.Message{},
	)
	if err != nil {
		panic("failed to migrate schema")
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     config.Server.RedisAddr,
		Password: "", // no password set
		DB:       config.Server.RedisDB,
	})
	err = redisotel.InstrumentTracing(
		rdb,
		redisotel.WithAttributes(
			attribute.KeyValue{
				Key:   "db.name",
				Value: attribute.StringValue("redis"),
			},
		),
	)
	if err != nil {
		panic("failed to setup tracing plugin")
	}

	mc := memcache.New(config.Server.MemcachedAddr)
	defer mc.Close()

	captcha, err := auth.NewCaptchaVerifier(platform)
	if err != nil {
		panic(err)
	}

	authService := chp.SetupAuthService(db, rdb, mc, platform)
	authHandler := auth.NewHandler(authService)

	accountService := chp.SetupAccountService(db, mc, platform)
	accountHandler := account.NewHandler(accountService, chp.SetupAccountPolicy(db, mc))

	postService := chp.SetupPostService(db, mc)
	postHandler := post.NewHandler(postService, chp.SetupPostPolicy(db, mc))

	commentService := chp.SetupCommentService(db, mc)
	commentHandler := comment.NewHandler(commentService, chp.SetupCommentPolicy(db, mc))

	challengeService := chp.SetupChallengeService(db, mc)
	challengeHandler := challenge.NewHandler(challengeService, chp.SetupChallengePolicy(db, mc))

	challengeEventService := chp.SetupChallengeEventService(db, mc)
	challengeEventHandler := challengeevent.NewHandler(challengeEventService, chp.SetupChallengeEventPolicy(db, mc))

	tagService := chp.SetupTagService(db, mc)
	tagHandler := tag.NewHandler(tagService, chp.SetupTagPolicy(db, mc))

	likeService := chp.SetupLikeService(db, mc)

	messageService := chp.SetupMessageService(db, rdb, mc)
	messageHandler := message.NewHandler(messageService, chp.SetupMessagePolicy(db, rdb, mc))

	api := e.Group("/api", authService.IdentifyIdentity)

	// account
	api.POST("/accounts/sign-up", accountHandler.SignUp, auth.RequireCaptcha(captcha))
	api.POST("/accounts/sign-in", accountHandler.SignIn)
	api.POST("/accounts/sign-out", authHandler.SignOut, auth.Restrict(auth.ISKNOWN))
	api.GET("/accounts/me", accountHandler.Me, auth.Restrict(auth.ISKNOWN))
	api.GET("/accounts", accountHandler.List)
	api.GET("/accounts/:id", accountHandler.Get)
	api.PATCH("/accounts/:id", accountHandler.Update, auth.Restrict(auth.ISKNOWN))
	api.DELETE("/accounts/:id", accountHandler.Delete, auth.Restrict(auth.ISKNOWN))

	// post
	api.POST("/posts", postHandler.Create, auth.Restrict(auth.ISKNOWN))
	api.GET("/posts", postHandler.List)
	api.GET("/posts/:id", postHandler.Get)
	api.PATCH("/posts/:id", postHandler.Update, auth.Restrict(auth.ISKNOWN))
	api.DELETE("/posts/:id", postHandler.Delete, auth.Restrict(auth.ISKNOWN))
	api.POST("/posts/:id/like", postHandler.Like, auth.Restrict(auth.ISKNOWN))
	api.POST("/posts/:id/dislike", postHandler.Dislike, auth.Restrict(auth.ISKNOWN))
	api.DELETE("/posts/:id/like", postHandler.RemoveLike, auth.Restrict(auth.ISKNOWN))
	api.GET("/posts/:id/tags", tagHandler.ListByPost)
	api.POST("/posts/:id/tags", tagHandler.ConnectPost, auth.Restrict(auth.ISKNOWN))
	api.DELETE("/posts/:id/tags/:tagId", tagHandler.DisconnectPost, auth.Restrict(auth.ISKNOWN))

	// comment
	api.POST("/posts/:postId/comments", commentHandler.Create, auth.Restrict(auth.ISKNOWN))
	api.GET("/posts/:postId/comments", commentHandler.ListByPost)
	api.GET("/comments/:id", commentHandler.Get)
	api.PATCH("/comments/:id", commentHandler.Update, auth.Restrict(auth.ISKNOWN))
	api.DELETE("/comments/:id", commentHandler.Delete, auth.Restrict(auth.ISKNOWN))
	api.GET("/comments/:id/reactions", commentHandler.Reactions)
	api.POST("/comments/:id/like", commentHandler.Like, auth.Restrict(auth.ISKNOWN))
	api.POST("/comments/:id/dislike", commentHandler.Dislike, auth.Restrict(auth.ISKNOWN))
	api.DELETE("/comments/:id/like", commentHandler.RemoveLike, auth.Restrict(auth.ISKNOWN))

	// challenge
	api.POST("/challenges", challengeHandler.Create, auth.Restrict(auth.ISKNOWN))
	api.GET("/challenges", challengeHandler.List)
	api.GET("/challenges/:id", challengeHandler.Get)
	api.PATCH("/challenges/:id", challengeHandler.Update, auth.Restrict(auth.ISKNOWN))
	api.DELETE("/challenges/:id", challengeHandler.Delete, auth.Restrict(auth.ISKNOWN))
	api.POST("/challenges/:id/join", challengeHandler.Join, auth.Restrict(auth.ISKNOWN))
	api.POST("/challenges/:id/leave", challengeHandler.Leave, auth.Restrict(auth.ISKNOWN))
	api.GET("/challenges/:id/participants", challengeHandler.ListParticipants)
	api.POST("/challenges/:id/like", challengeHandler.Like, auth.Restrict(auth.ISKNOWN))
	api.POST("/challenges/:id/dislike", challengeHandler.Dislike, auth.Restrict(auth.ISKNOWN))
	api.DELETE("/challenges/:id/like", challengeHandler.RemoveLike, auth.Restrict(auth.ISKNOWN))
	api.GET("/challenges/:id/tags", tagHandler.ListByChallenge)
	api.POST("/challenges/:id/tags", tagHandler.ConnectChallenge, auth.Restrict(auth.ISKNOWN))
	api.DELETE("/challenges/:id/tags/:tagId", tagHandler.DisconnectChallenge, auth.Restrict(auth.ISKNOWN))

	// challenge event
	api.POST("/challenges/:id/events", challengeEventHandler.Create, auth.Restrict(auth.ISKNOWN))
	api.GET("/challenges/:id/events", challengeEventHandler.ListByChallenge)
	api.GET("/challenges/:id/events/:eventId", challengeEventHandler.Get)
	api.PATCH("/challenges/:id/events/:eventId", challengeEventHandler.Update, auth.Restrict(auth.ISKNOWN))
	api.DELETE("/challenges/:id/events/:eventId", challengeEventHandler.Delete, auth.Restrict(auth.ISKNOWN))
	api.POST("/challenges/:id/events/:eventId/check", challengeEventHandler.Check, auth.Restrict(auth.ISKNOWN))
	api.GET("/challenges/:id/events/:eventId/checks", challengeEventHandler.ListChecks)

	// tag
	api.POST("/tags", tagHandler.Create, auth.Restrict(auth.ISKNOWN))
	api.GET("/tags", tagHandler.List)
	api.GET("/tags/name/:name", tagHandler.GetByName)
	api.GET("/tags/:id", tagHandler.Get)
	api.PATCH("/tags/:id", tagHandler.Update, auth.Restrict(auth.ISADMIN))
	api.DELETE("/tags/:id", tagHandler.Delete, auth.Restrict(auth.ISADMIN))

	// message
	api.POST("/messages", messageHandler.Send, auth.Restrict(auth.ISKNOWN))
	api.GET("/messages", messageHandler.ListInbox, auth.Restrict(auth.ISKNOWN))
	api.GET("/messages/realtime", messageHandler.Realtime, auth.Restrict(auth.ISKNOWN))
	api.GET("/messages/conversations/:accountId", messageHandler.ListConversation, auth.Restrict(auth.ISKNOWN))
	api.GET("/messages/:id", messageHandler.Get, auth.Restrict(auth.ISKNOWN))
	api.POST("/messages/:id/read", messageHandler.MarkRead, auth.Restrict(auth.ISKNOWN))
	api.DELETE("/messages/:id", messageHandler.Delete, auth.Restrict(auth.ISKNOWN))

	// misc
	api.GET("/profile", func(c echo.Context) error {
		profile := config.Profile
		profile.Registration = platform.Registration
		profile.Version = version
		profile.BuildInfo = BuildInfo{
			BuildTime:    buildTime,
			BuildMachine: buildMachine,
			GoVersion:    goVersion,
		}
		profile.SiteKey = platform.SiteKey
		return c.JSON(http.StatusOK, profile)
	})
	e.GET("/health", func(c echo.Context) (err error) {
		ctx := c.Request().Context()

		err = sqlDB.Ping()
		if err != nil {
			return c.String(http.StatusInternalServerError, "db error")
		}

		err = rdb.Ping(ctx).Err()
		if err != nil {
			return c.String(http.StatusInternalServerError, "redis error")
		}

		return c.String(http.StatusOK, "ok")
	})

	var resourceCountMetrics = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "chp_resources_count",
			Help: "resources count",
		},
		[]string{"type"},
	)
	prometheus.MustRegister(resourceCountMetrics)

	var socketConnectionMetrics = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "chp_socket_connections",
			Help: "socket connections",
		},
	)
	prometheus.MustRegister(socketConnectionMetrics)

	counters := map[string]counter{
		"account":         accountService,
		"post":            postService,
		"comment":         commentService,
		"challenge":       challengeService,
		"challenge-event": challengeEventService,
		"like":            likeService,
		"tag":             tagService,
		"message":         messageService,
	}

	go func() {
		for {
			time.Sleep(15 * time.Second)
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			for name, service := range counters {
				count, err := service.Count(ctx)
				if err != nil {
					slog.Error(fmt.Sprintf("failed to count %s: %v", name, err))
					continue
				}
				resourceCountMetrics.WithLabelValues(name).Set(float64(count))
			}
			cancel()

			socketConnectionMetrics.Set(float64(messageService.Connections()))
		}
	}()

	e.GET("/metrics", echoprometheus.NewHandler())

	e.Logger.Fatal(e.Start(config.Server.ListenAddr))
}

func setupTraceProvider(endpoint string, serviceName string, serviceVersion string) (func(), error) {

	exporter, err := otlptracehttp.New(
		context.Background(),
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)

	if err != nil {
		return nil, err
	}

	resource := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
		semconv.ServiceVersionKey.String(serviceVersion),
	)

	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithResource(resource),
	)
	otel.SetTracerProvider(tracerProvider)

	propagator := propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	)
	otel.SetTextMapPropagator(propagator)

	cleanup := func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		if err := tracerProvider.Shutdown(ctx); err != nil {
			slog.Error(fmt.Sprintf("Failed to shutdown tracer provider: %v", err))
		}
	}
	return cleanup, nil
}
