package internal

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
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

	"github.com/azylka/pulsefit/internal/activities"
	"github.com/azylka/pulsefit/internal/assistant"
	"github.com/azylka/pulsefit/internal/auth"
	"github.com/azylka/pulsefit/internal/config"
	"github.com/azylka/pulsefit/internal/db"
	"github.com/azylka/pulsefit/internal/exercises"
	fileBox "github.com/azylka/pulsefit/internal/file_box"
	"github.com/azylka/pulsefit/internal/goals"
	"github.com/azylka/pulsefit/internal/middleware"
	"github.com/azylka/pulsefit/internal/misc"
	"github.com/azylka/pulsefit/internal/nutrition"
	"github.com/azylka/pulsefit/internal/progress"
	"github.com/azylka/pulsefit/internal/stats"
	"github.com/azylka/pulsefit/internal/telemetry/metrics"
	"github.com/azylka/pulsefit/internal/telemetry/tracing"
	"github.com/azylka/pulsefit/internal/trainers"
	"github.com/azylka/pulsefit/internal/users"
	"github.com/azylka/pulsefit/internal/workouts"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config     *config.Config
	dbPool     *pgxpool.Pool
	photoStore *fileBox.DiskStore // progress photo binaries

	tipsManager *misc.TipsManager

	redisClient  *redis.Client
	loginChecker *auth.LoginChecker
	authService  *auth.Service

	assistantCompleter assistant.Completer

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	RedisPassword           string
	GeminiAPIKey            string
	OpenAIAPIKey            string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": "pulsefit_db"},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("backend", "main", promRegistry)
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

	authService := auth.NewService(users.NewRepo(dbPool), auth.DefaultTTL, rdb)
	go func() {
		for range time.Tick(time.Hour * 8) {
			authService.ScanAndClean(ctx)
		}
	}()

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "main-backend")
	if err != nil {
		return nil, err
	}

	tracedHttpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	photoStore, err := fileBox.NewDiskStore(params.Config.PhotosRootPath)
	if err != nil {
		return nil, fmt.Errorf("new photo store: %w", err)
	}

	var completer assistant.Completer
	switch params.Config.AssistantProvider {
	case "openai":
		completer = assistant.NewOpenAIClient(params.OpenAIAPIKey, "")
	default:
		completer = assistant.NewGeminiClient(
			"", // default API url
			params.GeminiAPIKey,
			params.Config.GeminiModel,
			tracedHttpClient,
		)
	}

	s := &Server{
		config:      params.Config,
		dbPool:      dbPool,
		versionInfo: params.VersionInfo,
		photoStore:  photoStore,

		redisClient:  rdb,
		authService:  authService,
		loginChecker: auth.NewLoginChecker(auth.DefaultTTL, rdb),

		assistantCompleter: completer,

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}

	tipsCsvFile, err := os.Open(params.Config.TipsCsvPath)
	if err != nil {
		return nil, fmt.Errorf("open tips file: %w", err)
	}
	defer func() {
		if err := tipsCsvFile.Close(); err != nil {
			log.Warnf("close tips csv file: %s", err)
		}
	}()

	s.tipsManager, err = misc.NewTipsManager(csv.NewReader(tipsCsvFile))
	if err != nil {
		return nil, fmt.Errorf("failed to create tips manager: %s", err)
	}

	return s, nil
}

func (s *Server) routerSetup(ctx context.Context) (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	usersRepo := users.NewRepo(s.dbPool)
	usersHandler := users.NewHandler(usersRepo)
	r.HandleFunc("/users/me", usersHandler.HandleMe).Methods("GET", "OPTIONS").Name("get-me")
	r.HandleFunc("/users/preferences", usersHandler.HandleGetPreferences).Methods("GET", "OPTIONS").Name("get-preferences")
	r.HandleFunc("/users/preferences", usersHandler.HandleUpdatePreferences).Methods("PUT", "OPTIONS").Name("update-preferences")

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(s.config.AWSRegion))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	dynamoClient := dynamodb.NewFromConfig(awsCfg)

	workoutsRepo := workouts.NewRepo(s.dbPool)
	workoutsHandler := workouts.NewHandler(workoutsRepo, s.metricsManager)
	videosRepo, err := workouts.NewVideosRepo(dynamoClient, s.config.WorkoutVideosTable)
	if err != nil {
		return nil, fmt.Errorf("new workout videos repo: %w", err)
	}
	videosHandler := workouts.NewVideosHandler(videosRepo)
	// session and video routes go first, so that they are not matched as a plan id
	r.HandleFunc("/workouts/sessions", workoutsHandler.HandleAddSession).Methods("POST", "OPTIONS").Name("new-session")
	r.HandleFunc("/workouts/sessions", workoutsHandler.HandleListSessions).Methods("GET", "OPTIONS").Name("list-sessions")
	r.HandleFunc("/workouts/sessions/{id}", workoutsHandler.HandleDeleteSession).Methods("DELETE", "OPTIONS").Name("remove-session")
	r.HandleFunc("/workouts/videos", videosHandler.HandleList).Methods("GET", "OPTIONS").Name("list-workout-videos")
	r.HandleFunc("/workouts", workoutsHandler.HandleAddPlan).Methods("POST", "OPTIONS").Name("new-plan")
	r.HandleFunc("/workouts", workoutsHandler.HandleListPlans).Methods("GET", "OPTIONS").Name("list-plans")
	r.HandleFunc("/workouts/{id}", workoutsHandler.HandleGetPlan).Methods("GET", "OPTIONS").Name("get-plan")
	r.HandleFunc("/workouts/{id}", workoutsHandler.HandleUpdatePlan).Methods("PUT", "OPTIONS").Name("update-plan")
	r.HandleFunc("/workouts/{id}", workoutsHandler.HandleDeletePlan).Methods("DELETE", "OPTIONS").Name("remove-plan")

	nutritionRepo := nutrition.NewRepo(s.dbPool)
	nutritionHandler := nutrition.NewHandler(nutritionRepo, s.metricsManager)
	r.HandleFunc("/nutrition/calories", nutritionHandler.HandleDailyCalories).Methods("GET", "OPTIONS").Name("daily-calories")
	r.HandleFunc("/nutrition", nutritionHandler.HandleAddMeal).Methods("POST", "OPTIONS").Name("new-meal")
	r.HandleFunc("/nutrition", nutritionHandler.HandleListMeals).Methods("GET", "OPTIONS").Name("list-meals")
	r.HandleFunc("/nutrition/{id}", nutritionHandler.HandleDeleteMeal).Methods("DELETE", "OPTIONS").Name("remove-meal")

	goalsHandler := goals.NewHandler(goals.NewRepo(s.dbPool))
	r.HandleFunc("/goals", goalsHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-goal")
	r.HandleFunc("/goals", goalsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-goals")
	r.HandleFunc("/goals/{id}", goalsHandler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-goal")
	r.HandleFunc("/goals/{id}", goalsHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("remove-goal")

	exercisesRepo, err := exercises.NewRepo(dynamoClient, s.config.ExercisesTable)
	if err != nil {
		return nil, fmt.Errorf("new exercises repo: %w", err)
	}
	exercisesHandler := exercises.NewHandler(exercisesRepo)
	r.HandleFunc("/exercises", exercisesHandler.HandleList).Methods("GET", "OPTIONS").Name("list-exercises")

	activitiesRepo, err := activities.NewRepo(dynamoClient, s.config.ActivitiesTable)
	if err != nil {
		return nil, fmt.Errorf("new activities repo: %w", err)
	}
	activitiesHandler := activities.NewHandler(activitiesRepo)
	r.HandleFunc("/activities", activitiesHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-activity")
	r.HandleFunc("/activities", activitiesHandler.HandleList).Methods("GET", "OPTIONS").Name("list-activities")
	r.HandleFunc("/activities/{id}", activitiesHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("remove-activity")

	trainersHandler := trainers.NewHandler(trainers.NewRepo(s.dbPool))
	r.HandleFunc("/trainers", trainersHandler.HandleList).Methods("GET", "OPTIONS").Name("list-trainers")
	r.HandleFunc("/trainers/me", trainersHandler.HandleGetMyProfile).Methods("GET", "OPTIONS").Name("get-my-trainer-profile")
	r.HandleFunc("/trainers/me", trainersHandler.HandleUpdateMyProfile).Methods("PUT", "OPTIONS").Name("update-my-trainer-profile")
	r.HandleFunc("/trainers/clients", trainersHandler.HandleAddClient).Methods("POST", "OPTIONS").Name("new-trainer-client")
	r.HandleFunc("/trainers/clients", trainersHandler.HandleListClients).Methods("GET", "OPTIONS").Name("list-trainer-clients")
	r.HandleFunc("/trainers/clients/{clientUserId}", trainersHandler.HandleUpdateClientStatus).Methods("PUT", "OPTIONS").Name("update-trainer-client")
	r.HandleFunc("/trainers/{id}", trainersHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-trainer")

	progressRepo := progress.NewRepo(s.dbPool)
	progressHandler := progress.NewHandler(progressRepo, s.photoStore)
	r.HandleFunc("/progress/metrics", progressHandler.HandleAddMetric).Methods("POST", "OPTIONS").Name("new-metric")
	r.HandleFunc("/progress/metrics", progressHandler.HandleListMetrics).Methods("GET", "OPTIONS").Name("list-metrics")
	r.HandleFunc("/progress/metrics/{id}", progressHandler.HandleDeleteMetric).Methods("DELETE", "OPTIONS").Name("remove-metric")
	r.HandleFunc("/progress/photos", progressHandler.HandleUploadPhoto).Methods("POST", "OPTIONS").Name("upload-photo")
	r.HandleFunc("/progress/photos", progressHandler.HandleListPhotos).Methods("GET", "OPTIONS").Name("list-photos")
	r.HandleFunc("/progress/photos/{id}/image", progressHandler.HandleGetPhotoImage).Methods("GET", "OPTIONS").Name("get-photo-image")
	r.HandleFunc("/progress/photos/{id}", progressHandler.HandleDeletePhoto).Methods("DELETE", "OPTIONS").Name("remove-photo")

	statsHandler := stats.NewHandler(stats.NewAggregator(
		workoutsRepo,
		nutrition.NewAnalyzer(nutritionRepo),
		goals.NewRepo(s.dbPool),
		progressRepo,
	))
	r.HandleFunc("/stats/overview", statsHandler.HandleOverview).Methods("GET", "OPTIONS").Name("stats-overview")

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)

	// navigation happens on the client, the response text carries the target
	voiceDispatcher := assistant.NewDispatcher(s.assistantCompleter, nil, s.metricsManager)
	assistantHandler := assistant.NewHandler(voiceDispatcher)
	voiceRouter := r.PathPrefix("/voice").Subrouter()
	voiceRouter.Use(middleware.RateLimit(
		reqRateLimiter, "voice",
		s.config.VoiceRateLimitAllowedPerMin,
		s.metricsManager,
	))
	voiceRouter.HandleFunc("/process", assistantHandler.HandleProcess).Methods("POST", "OPTIONS").Name("voice-process")

	miscHandler := misc.NewHandler(s.tipsManager, s.versionInfo, s.authService)
	miscHandler.SetupRoutes(r, reqRateLimiter, s.metricsManager, s.config.LoginRateLimitAllowedPerMin)

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.loginChecker)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r, nil
}

func (s *Server) Serve(ctx context.Context, host string, port int) {
	router, err := s.routerSetup(ctx)
	if err != nil {
		log.Fatalf("failed to setup router: %s", err)
	}

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
