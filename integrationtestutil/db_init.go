package integrationtestutil

import (
	"context"
	"log"
	"log/slog"

	"github.com/l3montree-dev/trackforge/database"
	"github.com/l3montree-dev/trackforge/shared"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

// InitDatabaseContainer starts a throwaway postgres container, connects to
// it and applies the embedded migrations. The returned cleanup function
// terminates the container.
func InitDatabaseContainer() (shared.DB, func()) {
	ctx := context.Background()

	dbName := "trackforge"
	dbUser := "user"
	dbPassword := "password"

	postgresC, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		postgres.BasicWaitStrategies(),
	)

	terminate := func() {
		if err := testcontainers.TerminateContainer(postgresC); err != nil {
			log.Printf("failed to terminate container: %s", err)
		}
	}
	if err != nil {
		slog.Info("failed to start postgres container", "error", err)
		panic(err)
	}

	host, _ := postgresC.Host(ctx)
	port, _ := postgresC.MappedPort(ctx, "5432")

	db, _, err := database.NewConnection(
		database.DefaultPoolConfig(host, dbUser, dbPassword, dbName, port.Port()),
	)
	if err != nil {
		log.Printf("failed to connect to database: %s", err)
		panic(err)
	}

	if err := database.RunMigrationsWithDB(db); err != nil {
		log.Printf("failed to run migrations: %s", err)
		panic(err)
	}

	return db, terminate
}
