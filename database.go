package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	go_ora "github.com/sijms/go-ora/v2"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	oraclePort     = "1521/tcp"
	oracleService  = "FREEPDB1"
	oracleUser     = "system"
	oraclePassword = "histgen"
)

// OracleManager runs a throwaway Oracle Database Free container
type OracleManager struct {
	image     string
	container testcontainers.Container
	db        *sql.DB
	connStr   string
	logger    *slog.Logger
}

func NewOracleManager(image string, logger *slog.Logger) DatabaseManager {
	return &OracleManager{image: image, logger: logger}
}

func (o *OracleManager) Setup(ctx context.Context) error {
	o.logger.Debug("starting oracle container", "image", o.image)
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        o.image,
			ExposedPorts: []string{oraclePort},
			Env: map[string]string{
				"ORACLE_PASSWORD": oraclePassword,
			},
			WaitingFor: wait.ForLog("DATABASE IS READY TO USE!").
				WithStartupTimeout(10 * time.Minute),
		},
		Started: true,
	})
	if container != nil {
		o.container = container
	}
	if err != nil {
		return fmt.Errorf("failed to start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return fmt.Errorf("failed to get container host: %w", err)
	}
	port, err := container.MappedPort(ctx, oraclePort)
	if err != nil {
		return fmt.Errorf("failed to get mapped port: %w", err)
	}

	o.connStr = go_ora.BuildUrl(host, port.Int(), oracleService, oracleUser, oraclePassword, nil)
	o.logger.Debug("got database connection string", "host", host, "port", port.Int(), "service", oracleService)

	db, err := sql.Open("oracle", o.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database connection: %w", err)
	}
	o.db = db

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	o.logger.Info("oracle container ready")
	return nil
}

func (o *OracleManager) Close(ctx context.Context) error {
	if o.db != nil {
		o.db.Close()
	}
	if o.container != nil {
		return o.container.Terminate(ctx)
	}
	return nil
}

func (o *OracleManager) Exec(ctx context.Context, statement string) error {
	if o.db == nil {
		return fmt.Errorf("database is not set up")
	}
	if _, err := o.db.ExecContext(ctx, statement); err != nil {
		return fmt.Errorf("failed to execute statement: %w", err)
	}
	return nil
}

func (o *OracleManager) InvalidObjects(ctx context.Context, owner string) ([]string, error) {
	if o.db == nil {
		return nil, fmt.Errorf("database is not set up")
	}
	rows, err := o.db.QueryContext(ctx,
		`SELECT object_type || ' ' || object_name FROM all_objects WHERE owner = :1 AND status = 'INVALID' ORDER BY object_name`,
		owner)
	if err != nil {
		return nil, fmt.Errorf("failed to query invalid objects: %w", err)
	}
	defer rows.Close()

	var invalid []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan invalid object: %w", err)
		}
		invalid = append(invalid, name)
	}
	return invalid, rows.Err()
}

func (o *OracleManager) GetDB() *sql.DB {
	return o.db
}
