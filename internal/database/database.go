// Package database implement connection to database service and initialize ORM.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	// Register the "pgx" database/sql driver
	_ "github.com/jackc/pgx/v5/stdlib"
	// Load .env file to environments
	_ "github.com/joho/godotenv/autoload"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Gokulvemuri/job-application-manager/internal/model"
)

const pingTimeout = 5 * time.Second

// DBinstanceStruct is a struct that holds the GORM DB instance and related information.
type DBinstanceStruct struct {
	*gorm.DB
	// Config
	Config *DBConfig
	sqlDB  *sql.DB
}

// PoolConfig holds connection pool limits
type PoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// DBConfig holds the configuration parameters for connecting to a database.
type DBConfig struct {
	Host        string
	Port        string
	User        string
	Password    string
	DBName      string
	SSLMode     string
	Constr      string
	UseConstr   bool
	AutoMigrate bool
	Pool        PoolConfig
}

// ErrIncompleteConfig is returned when neither a connection string nor
// every host/port/user/password/database value is set.
var ErrIncompleteConfig = errors.New("database configuration is incomplete")

// DSN returns the connection string described by the config
func (d *DBConfig) DSN() (string, error) {
	if d.UseConstr {
		if d.Constr == "" {
			return "", fmt.Errorf("%w: DB_CONNECTION_STR is empty", ErrIncompleteConfig)
		}
		return d.Constr, nil
	}
	if d.Host == "" || d.Port == "" || d.User == "" || d.Password == "" || d.DBName == "" {
		return "", ErrIncompleteConfig
	}
	sslMode := d.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     d.Host + ":" + d.Port,
		Path:     d.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(sslMode),
	}
	return u.String(), nil
}

// ConfigFromEnv reads the database configuration from environment variables.
func ConfigFromEnv() (*DBConfig, error) {
	config := &DBConfig{
		Host:     os.Getenv("DB_HOST"),
		Port:     os.Getenv("DB_PORT"),
		User:     os.Getenv("DB_USERNAME"),
		Password: os.Getenv("DB_PASSWORD"),
		DBName:   os.Getenv("DB_DATABASE"),
		SSLMode:  os.Getenv("DB_SSLMODE"),
		Constr:   os.Getenv("DB_CONNECTION_STR"),
		Pool: PoolConfig{
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 30 * time.Minute,
		},
	}

	var err error
	if config.UseConstr, err = envBool("USE_CONNECTION_STR"); err != nil {
		return nil, err
	}
	if config.AutoMigrate, err = envBool("DB_AUTO_MIGRATE"); err != nil {
		return nil, err
	}
	if v := os.Getenv("DB_MAX_OPEN_CONNS"); v != "" {
		if config.Pool.MaxOpenConns, err = strconv.Atoi(v); err != nil {
			return nil, fmt.Errorf("DB_MAX_OPEN_CONNS environments variables are invalid: %w", err)
		}
	}
	if v := os.Getenv("DB_MAX_IDLE_CONNS"); v != "" {
		if config.Pool.MaxIdleConns, err = strconv.Atoi(v); err != nil {
			return nil, fmt.Errorf("DB_MAX_IDLE_CONNS environments variables are invalid: %w", err)
		}
	}
	if v := os.Getenv("DB_CONN_MAX_LIFETIME"); v != "" {
		if config.Pool.ConnMaxLifetime, err = time.ParseDuration(v); err != nil {
			return nil, fmt.Errorf("DB_CONN_MAX_LIFETIME environments variables are invalid: %w", err)
		}
	}

	return config, nil
}

func envBool(key string) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s environments variables are invalid: %w", key, err)
	}
	return b, nil
}

// NewDBInstance opens the connection pool described by config, verifies it
// with a ping and returns the wrapped GORM instance.
func NewDBInstance(config *DBConfig) (*DBinstanceStruct, error) {
	dsn, err := config.DSN()
	if err != nil {
		return nil, err
	}

	sqlDB, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	sqlDB.SetMaxOpenConns(config.Pool.MaxOpenConns)
	sqlDB.SetMaxIdleConns(config.Pool.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(config.Pool.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	newDb, err := NewDBInstanceFromConn(sqlDB, config)
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	if config.AutoMigrate {
		if err := newDb.Migrate(); err != nil {
			_ = sqlDB.Close()
			return nil, fmt.Errorf("create tables: %w", err)
		}
	}

	return newDb, nil
}

// NewDBInstanceFromConn wraps an already opened pool with GORM.
// Every query runs as a single statement, so GORM's implicit
// write transaction is disabled.
func NewDBInstanceFromConn(conn *sql.DB, config *DBConfig) (*DBinstanceStruct, error) {
	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open gorm: %w", err)
	}

	if gin.IsDebugging() {
		gdb = gdb.Debug()
	}

	return &DBinstanceStruct{
		DB:     gdb,
		Config: config,
		sqlDB:  conn,
	}, nil
}

// Raw returns the underlying *sql.DB
func (d *DBinstanceStruct) Raw() (*sql.DB, error) {
	if d == nil {
		return nil, fmt.Errorf("DBinstanceStruct is nil")
	}
	if d.sqlDB != nil {
		return d.sqlDB, nil
	}
	if d.DB == nil {
		return nil, fmt.Errorf("gorm DB is nil")
	}
	return d.DB.DB()
}

// Migrate creates the companies table when it does not exist yet
func (d *DBinstanceStruct) Migrate() error {
	return d.AutoMigrate(model.MigrateAble...)
}

// Health checks the health of the database connection by pinging the database.
// It returns a map with keys indicating various health statistics.
func (d *DBinstanceStruct) Health() map[string]string {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	stats := make(map[string]string)

	oriDB, err := d.Raw()
	if err != nil {
		stats["status"] = "down"
		stats["error"] = fmt.Sprintf("db down: %v", err)
		return stats
	}

	if err := oriDB.PingContext(ctx); err != nil {
		stats["status"] = "down"
		stats["error"] = fmt.Sprintf("db down: %v", err)
		return stats
	}

	stats["status"] = "up"
	stats["message"] = "It's healthy"

	dbStats := oriDB.Stats()
	stats["open_connections"] = strconv.Itoa(dbStats.OpenConnections)
	stats["in_use"] = strconv.Itoa(dbStats.InUse)
	stats["idle"] = strconv.Itoa(dbStats.Idle)
	stats["wait_count"] = strconv.FormatInt(dbStats.WaitCount, 10)
	stats["wait_duration"] = dbStats.WaitDuration.String()
	stats["max_idle_closed"] = strconv.FormatInt(dbStats.MaxIdleClosed, 10)
	stats["max_lifetime_closed"] = strconv.FormatInt(dbStats.MaxLifetimeClosed, 10)

	if limit := dbStats.MaxOpenConnections; limit > 0 && dbStats.InUse >= limit {
		stats["message"] = "The database is experiencing heavy load."
	}

	if dbStats.WaitCount > 1000 {
		stats["message"] = "The database has a high number of wait events, indicating potential bottlenecks."
	}

	return stats
}

// Close closes the connection pool.
func (d *DBinstanceStruct) Close() error {
	oriDB, err := d.Raw()
	if err != nil {
		return err
	}
	return oriDB.Close()
}
