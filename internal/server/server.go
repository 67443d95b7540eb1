package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	"github.com/victornm/quizduel/internal/api"
	"github.com/victornm/quizduel/internal/auth"
	"github.com/victornm/quizduel/internal/event"
	"github.com/victornm/quizduel/internal/grader"
	"github.com/victornm/quizduel/internal/leaderboard"
	"github.com/victornm/quizduel/internal/match"
	"github.com/victornm/quizduel/internal/matchmaking"
	"github.com/victornm/quizduel/internal/question"
	"github.com/victornm/quizduel/internal/room"
	"github.com/victornm/quizduel/internal/telemetry"
)

type Config struct {
	HTTP struct {
		Port int32
	}

	GRPC struct {
		Port int32
	}

	Redis struct {
		Addrs  []string
		Pass   string
		Prefix string
	}

	Postgres struct {
		Addr    string
		User    string
		Pass    string
		Name    string
		SSLMode string
	}

	Auth struct {
		Secret string
	}

	Match struct {
		TimerPerQuestionSeconds int
		SubmissionGrace         time.Duration
		RoomStaleAfter          time.Duration
		RoomTTL                 time.Duration
	}

	Question struct {
		CacheTTL time.Duration
	}

	Grader struct {
		URL     string
		Timeout time.Duration
	}

	Leaderboard struct {
		MaxRetries int
	}
}

// DefaultConfig is overridden by the config file and the environment.
func DefaultConfig() Config {
	var c Config
	c.HTTP.Port = 8080
	c.GRPC.Port = 8081
	c.Redis.Addrs = []string{"localhost:6379"}
	c.Redis.Prefix = "quizduel"
	c.Postgres.Addr = "localhost:5432"
	c.Postgres.User = "quizduel"
	c.Postgres.Name = "quizduel"
	c.Postgres.SSLMode = "disable"
	c.Match.TimerPerQuestionSeconds = matchmaking.DefaultTimerPerQuestionSeconds
	c.Match.SubmissionGrace = 10 * time.Second
	c.Match.RoomStaleAfter = matchmaking.DefaultStaleAfter
	c.Match.RoomTTL = time.Hour
	c.Question.CacheTTL = 5 * time.Minute
	c.Grader.Timeout = 10 * time.Second
	c.Leaderboard.MaxRetries = 10
	return c
}

// PostgresDSN is the connection string shared by the pool and the migrator.
func (c Config) PostgresDSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.Postgres.User, c.Postgres.Pass),
		Host:   c.Postgres.Addr,
		Path:   c.Postgres.Name,
	}
	if c.Postgres.SSLMode != "" {
		u.RawQuery = url.Values{"sslmode": {c.Postgres.SSLMode}}.Encode()
	}
	return u.String()
}

type Server struct {
	c Config

	eb      *event.Bus
	metrics *telemetry.Metrics

	infra struct {
		redis    redis.UniversalClient
		postgres *pgxpool.Pool
	}

	service struct {
		matchmaking *matchmaking.Service
		match       *match.Service
		leaderboard *leaderboard.Service
		grader      *grader.Service
	}

	verifier *auth.Verifier

	http *http.Server
	grpc *grpc.Server
}

func Init(c Config) (*Server, error) {
	if c.Auth.Secret == "" {
		return nil, fmt.Errorf("server: auth.secret is required")
	}

	s := &Server{c: c}

	s.eb = event.NewBus()
	s.metrics = telemetry.NewMetrics(prometheus.DefaultRegisterer)
	s.verifier = auth.NewVerifier(c.Auth.Secret)

	if err := s.initInfra(); err != nil {
		return nil, fmt.Errorf("server: init infra: %w", err)
	}

	s.initService()
	s.initAPI()
	return s, nil
}

func (s *Server) initInfra() error {
	if err := s.initRedis(); err != nil {
		return fmt.Errorf("redis: %w", err)
	}

	if err := s.initPostgres(); err != nil {
		return fmt.Errorf("postgres: %w", err)
	}

	return nil
}

func (s *Server) initRedis() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	r := redis.NewUniversalClient(&redis.UniversalOptions{
		Addrs:    s.c.Redis.Addrs,
		Password: s.c.Redis.Pass,
	})

	if err := telemetry.MonitorRedis(r); err != nil {
		return err
	}

	if err := r.Ping(ctx).Err(); err != nil {
		return err
	}

	s.infra.redis = r
	return nil
}

func (s *Server) initPostgres() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cc, err := pgxpool.ParseConfig(s.c.PostgresDSN())
	if err != nil {
		return err
	}

	db, err := pgxpool.NewWithConfig(ctx, cc)
	if err != nil {
		return err
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return err
	}

	s.infra.postgres = db
	return nil
}

func (s *Server) initService() {
	questions := question.NewCache(question.NewPostgresLoader(s.infra.postgres), s.c.Question.CacheTTL)
	rooms := room.NewRedisStore(s.infra.redis, s.c.Redis.Prefix, s.c.Match.RoomTTL)
	matches := match.NewPostgresStore(s.infra.postgres)

	s.service.leaderboard = leaderboard.NewService(leaderboard.Config{
		EventBus:   s.eb,
		Redis:      s.infra.redis,
		Prefix:     s.c.Redis.Prefix,
		MaxRetries: s.c.Leaderboard.MaxRetries,
		Metrics:    s.metrics,
	})

	s.service.match = match.NewService(match.Config{
		EventBus:        s.eb,
		Store:           matches,
		Rooms:           rooms,
		Questions:       questions,
		Leaderboard:     s.service.leaderboard,
		Metrics:         s.metrics,
		SubmissionGrace: s.c.Match.SubmissionGrace,
	})

	s.service.matchmaking = matchmaking.NewService(matchmaking.Config{
		EventBus:                s.eb,
		Rooms:                   rooms,
		Questions:               questions,
		Promoter:                s.service.match,
		Metrics:                 s.metrics,
		StaleAfter:              s.c.Match.RoomStaleAfter,
		TimerPerQuestionSeconds: s.c.Match.TimerPerQuestionSeconds,
	})

	if s.c.Grader.URL == "" {
		slog.Warn("server: grader.url not set, composition answers will not be graded")
		return
	}

	s.service.grader = grader.NewService(grader.Config{
		EventBus:  s.eb,
		Evaluator: grader.NewHTTPEvaluator(s.c.Grader.URL, s.c.Grader.Timeout),
		Store:     matches,
	})
}

func (s *Server) initAPI() {
	e := gin.New()
	e.GET("/metrics", gin.WrapH(promhttp.Handler()))
	pprof.Register(e, "/debug/pprof")
	e.Use(gin.Recovery(), s.verifier.Gin())

	s.grpc = grpc.NewServer(telemetry.GRPCServerInterceptor(s.verifier.UnaryServerInterceptor()))

	a := api.New(api.Config{
		GRPC:         s.grpc,
		EventBus:     s.eb,
		Matchmaking:  s.service.matchmaking,
		Match:        s.service.match,
		Leaderboard:  s.service.leaderboard,
		Redis:        s.infra.redis,
		PubsubPrefix: s.c.Redis.Prefix,
	})

	a.RegisterHTTP(e)

	s.http = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.c.HTTP.Port),
		Handler:           e,
		ReadHeaderTimeout: 60 * time.Second,
	}
}

// Start serves gRPC and HTTP until Shutdown is called or a listener fails.
func (s *Server) Start() error {
	ctx := context.TODO()

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", s.c.GRPC.Port))
	if err != nil {
		return fmt.Errorf("grpc server: listen: %w", err)
	}

	var eg errgroup.Group
	eg.Go(func() error {
		slog.InfoContext(ctx, fmt.Sprintf("server: gRPC listening on port %d", s.c.GRPC.Port))
		return s.grpc.Serve(lis)
	})

	eg.Go(func() error {
		slog.InfoContext(ctx, fmt.Sprintf("server: HTTP listening on port %d", s.c.HTTP.Port))
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	return eg.Wait()
}

func (s *Server) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	s.grpc.GracefulStop()
	if err := s.http.Shutdown(ctx); err != nil {
		slog.ErrorContext(ctx, "server: shutdown HTTP failed", "error", err)
	}

	// Pending leaderboard credits and notifications still need redis and postgres.
	s.eb.Stop()

	if err := s.infra.redis.Close(); err != nil {
		slog.ErrorContext(ctx, "server: close redis failed", "error", err)
	}
	s.infra.postgres.Close()

	slog.InfoContext(ctx, "server: shutdown completed")
}
