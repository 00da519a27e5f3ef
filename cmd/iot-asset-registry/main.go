package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/diwise/iot-asset-registry/internal/pkg/application/registry"
	"github.com/diwise/iot-asset-registry/internal/pkg/infrastructure/router"
	"github.com/diwise/iot-asset-registry/internal/pkg/infrastructure/storage"
	"github.com/diwise/iot-asset-registry/internal/pkg/presentation/api"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

const serviceName string = "iot-asset-registry"

type flagType int
type flagMap map[flagType]string

const (
	listenAddress flagType = iota
	servicePort

	policiesFile
	seedFile

	dbHost
	dbUser
	dbPassword
	dbPort
	dbName
	dbSSLMode
)

func defaultFlags() flagMap {
	return flagMap{
		listenAddress: "0.0.0.0",
		servicePort:   "8080",

		policiesFile: "/opt/diwise/config/authz.rego",
		seedFile:     "/opt/diwise/config/seed.yaml",

		dbHost:     "",
		dbUser:     "",
		dbPassword: "",
		dbPort:     "5432",
		dbName:     "diwise",
		dbSSLMode:  "disable",
	}
}

func main() {
	ctx, flags := parseExternalConfig(context.Background(), defaultFlags())

	serviceVersion := buildinfo.SourceVersion()
	ctx, logger, cleanup := o11y.Init(ctx, serviceName, serviceVersion, "json")
	defer cleanup()

	policies, err := os.Open(flags[policiesFile])
	exitIf(err, logger, "unable to open opa policy file")
	defer policies.Close()

	s, err := newStorage(ctx, flags)
	exitIf(err, logger, "could not create or connect to database")
	defer s.Close()

	err = s.Initialize(ctx)
	exitIf(err, logger, "could not initialize database")

	messenger, err := messaging.Initialize(ctx, messaging.LoadConfiguration(ctx, serviceName, logger))
	exitIf(err, logger, "failed to init messenger")
	messenger.Start()
	defer messenger.Close()

	svc := registry.New(s, messenger)

	seed, err := os.Open(flags[seedFile])
	if err == nil {
		err = registry.Seed(ctx, svc, seed)
		seed.Close()
		exitIf(err, logger, "failed to seed registry")
	} else {
		logger.Info("no seed file found, skipping", "file", flags[seedFile])
	}

	mux, err := api.RegisterHandlers(ctx, router.New(serviceName), policies, svc)
	exitIf(err, logger, "failed to register handlers")

	apiPort := fmt.Sprintf("%s:%s", flags[listenAddress], flags[servicePort])

	logger.Info("starting to listen for incoming connections", "address", apiPort)

	err = http.ListenAndServe(apiPort, mux)
	exitIf(err, logger, "failed to start request router")
}

// newStorage retries the initial database connection for a while, the
// database container often comes up a bit after the service does.
func newStorage(ctx context.Context, flags flagMap) (*storage.Storage, error) {
	log := logging.GetFromContext(ctx)

	config := storage.NewConfig(
		flags[dbHost], flags[dbUser], flags[dbPassword],
		flags[dbPort], flags[dbName], flags[dbSSLMode],
	)

	var s *storage.Storage
	var err error

	for i := 0; i < 10; i++ {
		s, err = storage.New(ctx, config)
		if err == nil {
			return s, nil
		}

		log.Warn("could not connect to database, retrying", "attempt", i+1, "err", err.Error())
		time.Sleep(time.Duration(i+1) * time.Second)
	}

	return nil, err
}

func parseExternalConfig(ctx context.Context, flags flagMap) (context.Context, flagMap) {
	// Allow environment variables to override certain defaults
	envOrDef := env.GetVariableOrDefault

	flags[listenAddress] = envOrDef(ctx, "LISTEN_ADDRESS", flags[listenAddress])
	flags[servicePort] = envOrDef(ctx, "SERVICE_PORT", flags[servicePort])

	flags[policiesFile] = envOrDef(ctx, "POLICIES_FILE", flags[policiesFile])
	flags[seedFile] = envOrDef(ctx, "SEED_FILE", flags[seedFile])

	flags[dbHost] = envOrDef(ctx, "POSTGRES_HOST", flags[dbHost])
	flags[dbPort] = envOrDef(ctx, "POSTGRES_PORT", flags[dbPort])
	flags[dbName] = envOrDef(ctx, "POSTGRES_DBNAME", flags[dbName])
	flags[dbUser] = envOrDef(ctx, "POSTGRES_USER", flags[dbUser])
	flags[dbPassword] = envOrDef(ctx, "POSTGRES_PASSWORD", flags[dbPassword])
	flags[dbSSLMode] = envOrDef(ctx, "POSTGRES_SSLMODE", flags[dbSSLMode])

	apply := func(f flagType) func(string) error {
		return func(value string) error {
			flags[f] = value
			return nil
		}
	}

	// Allow command line arguments to override defaults and environment variables
	flag.Func("policies", "an authorization policy file", apply(policiesFile))
	flag.Func("seed", "a seed data file", apply(seedFile))
	flag.Parse()

	return ctx, flags
}

func exitIf(err error, logger *slog.Logger, msg string, args ...any) {
	if err != nil {
		logger.With(args...).Error(msg, "err", err.Error())
		time.Sleep(2 * time.Second)
		os.Exit(1)
	}
}
