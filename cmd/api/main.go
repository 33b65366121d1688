package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/hafizmfadli/movie-catalog/internal/data"
	"github.com/hafizmfadli/movie-catalog/internal/jsonlog"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// Application version number
const version = "1.0.0"

// config struct hold all the configuration settings for our application.
type config struct {

	// the network port that we want the server to listen on
	port int

	// current operating environment for the application (dev, staging, prod, etc..)
	env string

	// minimum severity written by the logger
	logLevel string

	// db struct field hold the settings for the optional PostgreSQL database
	// the catalog is seeded from. An empty dsn means the built-in sample catalog.
	db struct {
		dsn          string
		maxOpenConns int
		maxIdleConns int
		maxIdleTime  string
	}

	// limiter struct containing fields for the requests per second and burst
	// values, and a boolean field which we can use to enable/disable rate limiting
	// altogether
	limiter struct {
		rps     float64
		burst   int
		enabled bool
	}

	// profile names the user the session belongs to. When name is empty the
	// catalog keeps its own owner (the sample owner, or none for a database).
	profile struct {
		name        string
		memberSince string
	}
}

// owner returns the profile identity set in the config, if any.
func (cfg config) owner() (data.Owner, bool) {
	if cfg.profile.name == "" {
		return data.Owner{}, false
	}
	return data.Owner{Name: cfg.profile.name, MemberSince: cfg.profile.memberSince}, true
}

// application struct hold the dependencies for our HTTP handlers, helpers, and middleware.
type application struct {
	config config
	logger *jsonlog.Logger
	models data.Models
	// done is closed on shutdown to stop background goroutines; wg tracks them.
	done     chan struct{}
	wg       sync.WaitGroup
	stopOnce sync.Once
}

// newApplication returns an application ready to serve the given catalog.
func newApplication(cfg config, logger *jsonlog.Logger, catalog *data.Catalog) *application {
	return &application{
		config: cfg,
		logger: logger,
		models: data.NewModels(catalog),
		done:   make(chan struct{}),
	}
}

// stopBackground signals every background goroutine to exit and waits for
// them. Safe to call more than once.
func (app *application) stopBackground() {
	app.stopOnce.Do(func() {
		close(app.done)
	})
	app.wg.Wait()
}

func main() {
	// Values from an optional env file become the defaults of the flags below.
	// A missing file is not an error.
	envFile := os.Getenv("CATALOG_ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	envErr := godotenv.Load(envFile)

	cfg, err := parseConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	level, err := jsonlog.ParseLevel(cfg.logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger := jsonlog.New(os.Stdout, level)

	if envErr != nil {
		logger.PrintDebug("env file not loaded", map[string]string{"file": envFile, "error": envErr.Error()})
	}

	catalog, err := loadCatalog(cfg, logger)
	if err != nil {
		logger.PrintFatal(err, nil)
	}

	if owner, ok := cfg.owner(); ok {
		catalog.SetOwner(owner)
	}

	app := newApplication(cfg, logger, catalog)

	err = app.serve()
	if err != nil {
		logger.PrintFatal(err, nil)
	}
}

// parseConfig reads the command-line flags. Defaults come from the
// environment where one applies.
func parseConfig(args []string) (config, error) {
	var cfg config

	port, err := envInt("CATALOG_PORT", 4000)
	if err != nil {
		return config{}, err
	}

	fs := flag.NewFlagSet("api", flag.ContinueOnError)

	fs.IntVar(&cfg.port, "port", port, "API server port")
	fs.StringVar(&cfg.env, "env", envOr("CATALOG_ENV", "development"), "Environment (development|staging|production)")
	fs.StringVar(&cfg.logLevel, "log-level", envOr("CATALOG_LOG_LEVEL", "info"), "Minimum log level (debug|info|error|fatal|off)")
	fs.StringVar(&cfg.db.dsn, "db-dsn", os.Getenv("CATALOG_DB_DSN"), "PostgreSQL DSN to seed the catalog from (empty: built-in sample data)")
	fs.IntVar(&cfg.db.maxOpenConns, "db-max-open-conns", 25, "PostgreSQL max open connections")
	fs.IntVar(&cfg.db.maxIdleConns, "db-max-idle-conns", 25, "PostgreSQL max idle connections")
	fs.StringVar(&cfg.db.maxIdleTime, "db-max-idle-time", "15m", "PostgreSQL max connection idle time")
	fs.Float64Var(&cfg.limiter.rps, "limiter-rps", 2, "Rate limiter maximum requests per second")
	fs.IntVar(&cfg.limiter.burst, "limiter-burst", 4, "Rate limiter maximum burst")
	fs.BoolVar(&cfg.limiter.enabled, "limiter-enabled", true, "Enable rate limiter")
	fs.StringVar(&cfg.profile.name, "profile-name", os.Getenv("CATALOG_PROFILE_NAME"), "Name shown on the profile (empty: catalog default)")
	fs.StringVar(&cfg.profile.memberSince, "profile-member-since", os.Getenv("CATALOG_PROFILE_MEMBER_SINCE"), "Month the profile owner joined (YYYY-MM)")

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}

	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: must be an integer value", key)
	}
	return i, nil
}

// loadCatalog builds the session catalog, from PostgreSQL when a DSN is set
// and from the built-in sample data otherwise. The database is only read
// once; the connection pool is closed before returning.
func loadCatalog(cfg config, logger *jsonlog.Logger) (*data.Catalog, error) {
	if cfg.db.dsn == "" {
		logger.PrintInfo("using built-in sample catalog", nil)
		return data.NewSampleCatalog(), nil
	}

	db, err := openDB(cfg)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	logger.PrintInfo("database connection pool established", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	catalog, err := data.LoadCatalog(ctx, db)
	if err != nil {
		return nil, err
	}

	logger.PrintInfo("catalog loaded from database", map[string]string{
		"movies":  fmt.Sprint(len(catalog.Movies())),
		"reviews": fmt.Sprint(len(catalog.Reviews())),
	})
	return catalog, nil
}

// openDB returns a sql.DB connection pool
func openDB(cfg config) (*sql.DB, error) {
	// create an empty connection pool
	db, err := sql.Open("postgres", cfg.db.dsn)
	if err != nil {
		return nil, err
	}

	// Set the maximum number of open (in-use + idle) connections in the pool.
	// Note that passing a value less than or equal to 0 will mean there is no limit.
	db.SetMaxOpenConns(cfg.db.maxOpenConns)

	// Set the maximum number of idle connections in the pool. Again, passing a value
	// less than or equal to 0 will mean there is no limit.
	db.SetMaxIdleConns(cfg.db.maxIdleConns)

	duration, err := time.ParseDuration(cfg.db.maxIdleTime)
	if err != nil {
		db.Close()
		return nil, err
	}

	// Set the maximum idle timeout
	db.SetConnMaxIdleTime(duration)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// establish a new connection to the database. If the connection couldn't be
	// established successfully within the 5 second deadline, then this will return an error
	err = db.PingContext(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}
