package api

import (
	"context"
	"net/http"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/sketchwire/sketchwire/pkg/cache"
)

// diagReport is the /test payload. It mirrors what an operator needs when a
// deployment comes up blank: which env vars are set, whether the cache and
// database answer, and what the database actually contains.
type diagReport struct {
	Status      string   `json:"status"`
	EnvDatabase bool     `json:"database_url_set"`
	EnvDBName   bool     `json:"database_name_set"`
	EnvPort     string   `json:"port,omitempty"`
	Cache       string   `json:"cache"`
	Mongo       string   `json:"mongo"`
	Collections []string `json:"collections,omitempty"`
	Error       string   `json:"error,omitempty"`
}

// handleDiagnostics reports connectivity without ever failing the process.
// Probe errors go into the payload, not the status code.
func (s *Server) handleDiagnostics(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	report := diagReport{
		Status:      "ok",
		EnvDatabase: os.Getenv("DATABASE_URL") != "",
		EnvDBName:   os.Getenv("DATABASE_NAME") != "",
		EnvPort:     os.Getenv("PORT"),
		Cache:       s.probeCache(ctx),
		Mongo:       "not configured",
	}

	if s.cfg.MongoURI != "" {
		status, collections, err := probeMongo(ctx, s.cfg.MongoURI, s.cfg.DatabaseName)
		report.Mongo = status
		report.Collections = collections
		if err != nil {
			report.Status = "degraded"
			report.Error = err.Error()
			s.logger.Warn("mongo probe failed", "err", err)
		}
	}

	s.writeJSON(w, http.StatusOK, report)
}

func (s *Server) probeCache(ctx context.Context) string {
	rc, ok := s.runner.Cache.(*cache.RedisCache)
	if !ok {
		return "local"
	}
	if err := rc.Ping(ctx); err != nil {
		return "redis unreachable: " + err.Error()
	}
	return "redis ok"
}

func probeMongo(ctx context.Context, uri, dbName string) (string, []string, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return "connect failed", nil, err
	}
	defer func() { _ = client.Disconnect(ctx) }()

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return "ping failed", nil, err
	}
	if dbName == "" {
		return "ok", nil, nil
	}

	names, err := client.Database(dbName).ListCollectionNames(ctx, map[string]any{})
	if err != nil {
		return "ok (collections unavailable)", nil, err
	}
	if len(names) > 10 {
		names = names[:10]
	}
	return "ok", names, nil
}
