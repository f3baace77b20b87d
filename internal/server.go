package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/traintrack/internal/assistant"
	"github.com/2beens/traintrack/internal/auth"
	"github.com/2beens/traintrack/internal/config"
	"github.com/2beens/traintrack/internal/db"
	"github.com/2beens/traintrack/internal/fitness/sections"
	"github.com/2beens/traintrack/internal/fitness/stats"
	"github.com/2beens/traintrack/internal/fitness/workouts"
	"github.com/2beens/traintrack/internal/habits"
	"github.com/2beens/traintrack/internal/middleware"
	"github.com/2beens/traintrack/internal/telemetry/metrics"
	"github.com/2beens/traintrack/internal/telemetry/tracing"
	"github.com/2beens/traintrack/pkg"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config *config.Config
	dbPool *pgxpool.Pool

	redisClient *redis.Client
	authService *auth.Service

	assistantService *assistant.Service
	statsAnalyzer    *stats.Analyzer

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	TokenSecret             string
	RedisPassword           string
	AssistantAPIKey         string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbPool, err := db.NewPool(
		ctx,
		params.Config.PostgresHost,
		params.Config.PostgresPort,
		params.Config.PostgresDBName,
		params.HoneycombTracingEnabled,
	)
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": params.Config.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("traintrack", "backend", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	authService := auth.NewService(auth.NewServiceParams{
		Users:       auth.NewUsersRepo(dbPool),
		RedisClient: rdb,
		TokenSecret: params.TokenSecret,
		AccessTTL:   time.Duration(params.Config.AccessTokenTTLMinutes) * time.Minute,
		RefreshTTL:  time.Duration(params.Config.RefreshTokenTTLDays) * 24 * time.Hour,
	})

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "traintrack-backend", rdb)
	if err != nil {
		return nil, err
	}

	tracedHttpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	statsAnalyzer := stats.NewAnalyzer(
		sections.NewRepo(dbPool),
		workouts.NewRepo(dbPool),
	)

	assistantClient := assistant.NewClient(
		params.Config.AssistantBaseURL,
		params.AssistantAPIKey,
		params.Config.AssistantModel,
		tracedHttpClient,
	)

	return &Server{
		config:      params.Config,
		dbPool:      dbPool,
		versionInfo: params.VersionInfo,

		redisClient: rdb,
		authService: authService,

		assistantService: assistant.NewService(assistantClient, statsAnalyzer),
		statsAnalyzer:    statsAnalyzer,

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("traintrack-router"))

	workoutsRepo := workouts.NewRepo(s.dbPool)
	workoutsHandler := workouts.NewHandler(workoutsRepo, s.metricsManager)
	workoutsHandler.SetupRoutes(r)

	sectionsHandler := sections.NewHandler(sections.NewRepo(s.dbPool), workoutsRepo)
	sectionsHandler.SetupRoutes(r)

	statsHandler := stats.NewHandler(s.statsAnalyzer)
	statsHandler.SetupRoutes(r)

	habitsHandler := habits.NewHandler(habits.NewRepo(s.dbPool), s.metricsManager)
	habitsHandler.SetupRoutes(r)

	assistantHandler := assistant.NewHandler(s.assistantService, s.metricsManager)
	assistantHandler.SetupRoutes(r)

	authHandler := auth.NewHandler(s.authService)
	authHandler.SetupRoutes(r)

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	r.Handle("/auth/login", middleware.RateLimit(
		reqRateLimiter,
		"login",
		s.config.LoginRateLimitPerMin,
		s.metricsManager,
	)(http.HandlerFunc(authHandler.HandleLogin))).Methods("POST", "OPTIONS").Name("login")

	r.HandleFunc("/version", func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteTextResponseOK(w, s.versionInfo)
	}).Methods("GET").Name("version")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.authService)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(_ context.Context, host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown http server")
	}
	log.Warnln("server shut down")

	if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown metrics http server")
	}
	log.Warnln("metrics server shut down")
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
