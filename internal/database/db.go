package database

import (
	"context"
	"crypto/tls"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"protomilk/internal/config"
)

func Connect(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string (check DATABASE_URL): %w", err)
	}

	relaxTLS(&poolConfig.ConnConfig.Config)

	poolConfig.MaxConns = cfg.MaxConns
	poolConfig.MinConns = 1
	if poolConfig.MinConns > poolConfig.MaxConns {
		poolConfig.MinConns = poolConfig.MaxConns
	}
	poolConfig.MaxConnLifetime = 5 * time.Minute
	poolConfig.MaxConnIdleTime = 1 * time.Minute

	log.Printf("Connecting to database at %s:%d/%s", poolConfig.ConnConfig.Host, poolConfig.ConnConfig.Port, poolConfig.ConnConfig.Database)

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("Database connection pool established successfully")
	return pool, nil
}

// relaxTLS keeps TLS toward the store but accepts certificates that cannot be
// verified, matching managed Postgres hosts that present self-signed chains.
// verify-ca checks the chain in VerifyPeerCertificate, so that hook is cleared too.
func relaxTLS(cfg *pgconn.Config) {
	skipVerify(cfg.TLSConfig)
	for _, fb := range cfg.Fallbacks {
		skipVerify(fb.TLSConfig)
	}
}

func skipVerify(tlsConfig *tls.Config) {
	if tlsConfig == nil {
		return
	}
	tlsConfig.InsecureSkipVerify = true
	tlsConfig.VerifyPeerCertificate = nil
	tlsConfig.VerifyConnection = nil
}

func Close(pool *pgxpool.Pool) {
	if pool != nil {
		pool.Close()
		log.Println("Database connection pool closed")
	}
}
