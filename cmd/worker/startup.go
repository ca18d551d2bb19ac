package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/redis/go-redis/v9/maintnotifications"
	"github.com/rs/zerolog/log"
)

const probeTimeout = 3 * time.Second

// pinger is anything the readiness probe can check
type pinger interface {
	Ping(ctx context.Context) error
}

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

// Probes backs the /health and /ready endpoints of the worker
type Probes struct {
	redisClient *redis.Client
	checks      map[string]pinger
}

// newProbes opens the Redis client used by the probes and checks every
// dependency once; the worker refuses to start when one is down.
func newProbes(ctx context.Context, cfg *Config, media pinger) (*Probes, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
		MaintNotificationsConfig: &maintnotifications.Config{
			Mode: maintnotifications.ModeDisabled,
		},
	})

	p := &Probes{
		redisClient: client,
		checks: map[string]pinger{
			"redis": pingFunc(func(ctx context.Context) error { return client.Ping(ctx).Err() }),
			"minio": media,
		},
	}

	for name, status := range p.run(ctx) {
		if status != "ok" {
			client.Close()
			return nil, fmt.Errorf("%s check failed: %s", name, status)
		}
		log.Info().Str("check", name).Msg("[Startup] Check OK")
	}
	return p, nil
}

// run pings every dependency and returns "ok" or the error per check
func (p *Probes) run(ctx context.Context) map[string]string {
	out := make(map[string]string, len(p.checks))
	for name, check := range p.checks {
		checkCtx, cancel := context.WithTimeout(ctx, probeTimeout)
		if err := check.Ping(checkCtx); err != nil {
			out[name] = err.Error()
		} else {
			out[name] = "ok"
		}
		cancel()
	}
	return out
}

func (p *Probes) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{"status": "UP", "service": "vitrine-worker"})
	})
	mux.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		checks := p.run(r.Context())
		status, code := "READY", http.StatusOK
		for _, v := range checks {
			if v != "ok" {
				status, code = "DEGRADED", http.StatusServiceUnavailable
				break
			}
		}
		writeJSON(w, code, map[string]interface{}{"status": status, "checks": checks})
	})
	return mux
}

// Serve exposes the probes on port in the background
func (p *Probes) Serve(port string) *http.Server {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           p.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Info().Str("port", port).Msg("[Health] Starting health check server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("[Health] Failed to start")
		}
	}()
	return srv
}

func (p *Probes) Close() error {
	return p.redisClient.Close()
}

func writeJSON(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}
