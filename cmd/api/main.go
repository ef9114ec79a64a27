package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jgm-source/cliente-davi-gomez/infrastructure/database/postgres"
	"github.com/jgm-source/cliente-davi-gomez/infrastructure/repository"
	"github.com/jgm-source/cliente-davi-gomez/internal/api"
	"github.com/jgm-source/cliente-davi-gomez/internal/config"
	"github.com/jgm-source/cliente-davi-gomez/internal/scheduler"
	"github.com/jgm-source/cliente-davi-gomez/internal/usecases/authenticating"
	"github.com/jgm-source/cliente-davi-gomez/internal/usecases/credentialing"
	"github.com/jgm-source/cliente-davi-gomez/internal/usecases/dashboarding"
)

func main() {
	// Inicializa configuração de logs
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
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	credentialRepo := repository.NewCredentialRepository(pgConn)
	eventRepo := repository.NewEventRepository(pgConn)

	authenticator := authenticating.NewService(cfg)

	configurationService := credentialing.NewService(credentialRepo)
	dashboardService := dashboarding.NewService(
		eventRepo,
		credentialRepo,
		cfg.Dashboard.Location(),
		cfg.Dashboard.RecentEventsLimit,
	)

	// Inicializa o agendador de sessões do painel
	dashboardSyncService := scheduler.NewDashboardSyncService(dashboardService, cfg)

	if err := dashboardSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sessões do painel")
	} else {
		logrus.Info("Agendador de sessões do painel iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		configurationService,
		dashboardService,
		authenticator,
		dashboardSyncService,
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
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

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
