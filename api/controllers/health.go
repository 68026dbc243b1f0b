package controllers

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/multierr"

	"github.com/ilmsadmin/zbase-pricing/api/responses"
	"github.com/ilmsadmin/zbase-pricing/pkg/config"
	pkgerrors "github.com/ilmsadmin/zbase-pricing/pkg/errors"
	"github.com/ilmsadmin/zbase-pricing/pkg/logger"
)

const readinessTimeout = 5 * time.Second

// Pinger is the health-check surface shared by the DB and Redis clients.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Zbase-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings every wired dependency; nil pingers (optional deps)
// are skipped. Failures are aggregated so a single probe reports all
// unhealthy dependencies at once.
func HealthReady(cfg *config.Config, logg *logger.Logger, deps map[string]Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Zbase-Env", cfg.App.Env)

		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		var combined error
		failing := map[string]string{}
		for name, dep := range deps {
			if dep == nil {
				continue
			}
			if err := dep.Ping(ctx); err != nil {
				combined = multierr.Append(combined, err)
				failing[name] = err.Error()
			}
		}

		if combined != nil {
			err := pkgerrors.Wrap(pkgerrors.CodeDependency, combined, "dependency ping failed").
				WithDetails(failing)
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}

// ReadinessDeps assembles the named dependency set for HealthReady.
func ReadinessDeps(database, cache Pinger) map[string]Pinger {
	deps := map[string]Pinger{}
	if database != nil {
		deps["database"] = database
	}
	if cache != nil {
		deps["redis"] = cache
	}
	return deps
}
