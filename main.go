package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"reflect"
	"strings"
	"syscall"
	"time"

	"github.com/Drolfothesgnir/bbforum/api"
	db "github.com/Drolfothesgnir/bbforum/db/sqlc"
	"github.com/Drolfothesgnir/bbforum/sanitize"
	"github.com/Drolfothesgnir/bbforum/tmpstore"
	"github.com/Drolfothesgnir/bbforum/token"
	"github.com/Drolfothesgnir/bbforum/util"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

var interruptSignals = []os.Signal{
	os.Interrupt,
	syscall.SIGTERM,
	syscall.SIGINT,
}

func main() {
	config, err := util.LoadConfig(".")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot read config file")
	}

	if config.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	useJSONFieldNames()

	ctx, stop := signal.NotifyContext(context.Background(), interruptSignals...)
	defer stop()

	pool, err := pgxpool.New(ctx, config.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to the database")
	}

	migrateUp(config.MigrationURL, config.DBSource)

	store := db.NewStore(pool)

	// the render cache is optional
	renderCache := tmpstore.NewStore(&config)
	if err := renderCache.Ping(ctx); err != nil {
		log.Warn().Err(err).Str("addr", config.RedisAddress).Msg("redis is not reachable, rendering without cache")
	}

	group, ctx := errgroup.WithContext(ctx)

	if err := serve(ctx, group, config, store, renderCache); err != nil {
		log.Fatal().Err(err).Msg("cannot create HTTP service")
	}

	if err := group.Wait(); err != nil {
		log.Fatal().Err(err).Msg("error from wait group")
	}
}

// useJSONFieldNames makes the validation errors refer to the request fields by their json names.
func useJSONFieldNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
}

// migrateUp applies the pending emoji settings migrations.
func migrateUp(migrationURL string, dbSource string) {
	mig, err := migrate.New(migrationURL, dbSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create new migrate instance")
	}

	if err = mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatal().Err(err).Msg("failed to run migrate up")
	}

	log.Info().Msg("db migrated successfully")
}

// serve starts the render service in the group and stops it, along with its
// store and cache, once ctx is done.
func serve(
	ctx context.Context,
	group *errgroup.Group,
	config util.Config,
	store *db.SQLStore,
	renderCache *tmpstore.RedisStore,
) error {
	tokenMaker, err := token.NewJWTMaker(config.TokenSymmetricKey)
	if err != nil {
		return err
	}

	service, err := api.NewService(config, store, tokenMaker, renderCache, sanitize.NewPolicy())
	if err != nil {
		return err
	}

	group.Go(func() error {
		log.Info().
			Str("addr", config.HTTPServerAddress).
			Dur("cache_ttl", config.RenderCacheTTL).
			Int("max_input", config.MaxInputLength).
			Msg("start render service")

		if err := service.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("render service failed")
			return err
		}

		return nil
	})

	group.Go(func() error {
		<-ctx.Done()

		log.Info().Msg("render service: graceful shutdown")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		err := service.Shutdown(shutdownCtx)
		if err != nil {
			log.Error().Err(err).Msg("cannot shutdown render service gracefully")
		}

		store.Shutdown()
		if err := renderCache.Close(); err != nil {
			log.Error().Err(err).Msg("cannot close redis client")
		}

		log.Info().Msg("render service is stopped")

		return err
	})

	return nil
}
