package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sportomic/metrics-api/infrastructure/database/postgres"
	"github.com/sportomic/metrics-api/infrastructure/repository"
	"github.com/sportomic/metrics-api/internal/api"
	"github.com/sportomic/metrics-api/internal/config"
	"github.com/sportomic/metrics-api/internal/scheduler"
	"github.com/sportomic/metrics-api/internal/usecases/reporting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	venueRepo := repository.NewVenueRepository(pgConn)
	memberRepo := repository.NewMemberRepository(pgConn)
	bookingRepo := repository.NewBookingRepository(pgConn)
	transactionRepo := repository.NewTransactionRepository(pgConn)
	snapshotRepo := repository.NewMetricsSnapshotRepository(pgConn)

	reportingService := reporting.NewService(bookingRepo, transactionRepo, memberRepo, venueRepo)

	// Agendador que pré-calcula snapshots diários de métricas
	snapshotSyncService := scheduler.NewSnapshotSyncService(
		reportingService,
		snapshotRepo,
		venueRepo,
		cfg,
	)

	if err := snapshotSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshots de métricas")
	} else {
		logrus.Info("Agendador de snapshots de métricas iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		reportingService,
		snapshotRepo,
		snapshotSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
