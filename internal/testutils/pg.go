// Copyright Debezium Go Contributors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package testutils provides a throwaway PostgreSQL container for
// integration tests of the catalog introspector.
package testutils

import (
	"context"
	"fmt"

	"github.com/docker/go-connections/nat"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testContainerDatabase = "testdb"
	testContainerUser     = "testuser"
	testContainerPassword = "testpassword"
)

const (
	pgTestContainerPort        nat.Port = "5432"
	pgTestContainerImage                = "postgres:17"
	pgTestContainerExposedPort          = "5432/tcp"
)

// PgContainerSuite starts one PostgreSQL container per suite and runs
// SetupSQL against it before the first test. Embed it and set SetupSQL in
// the embedding suite's constructor or SetupSuite override.
type PgContainerSuite struct {
	suite.Suite
	Container testcontainers.Container

	// SetupSQL - schema DDL executed once after the container is ready
	SetupSQL string
}

func (s *PgContainerSuite) SetupSuite() {
	ctx := context.Background()
	req := testcontainers.ContainerRequest{
		Image:        pgTestContainerImage,
		ExposedPorts: []string{pgTestContainerExposedPort},
		Env: map[string]string{
			"POSTGRES_USER":     testContainerUser,
			"POSTGRES_PASSWORD": testContainerPassword,
			"POSTGRES_DB":       testContainerDatabase,
		},
		WaitingFor: wait.ForSQL(pgTestContainerExposedPort, "pgx", func(host string, port nat.Port) string {
			return fmt.Sprintf(
				"postgres://%s:%s@%s:%s/%s?sslmode=disable",
				testContainerUser, testContainerPassword, host, port.Port(), testContainerDatabase,
			)
		}),
	}

	var err error
	s.Container, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	s.Require().NoErrorf(err, "failed to start PostgreSQL Container")

	if s.SetupSQL != "" {
		pool, err := s.GetPool(ctx)
		s.Require().NoErrorf(err, "failed to connect to PostgreSQL")
		defer pool.Close()
		_, err = pool.Exec(ctx, s.SetupSQL)
		s.Require().NoErrorf(err, "failed to run setup SQL")
	}
}

func (s *PgContainerSuite) TearDownSuite() {
	err := s.Container.Terminate(context.Background())
	s.Assert().NoErrorf(err, "failed to terminate PostgreSQL Container")
}

// GetURI returns a connection string for the running container.
func (s *PgContainerSuite) GetURI(ctx context.Context) (string, error) {
	host, err := s.Container.Host(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get Container host: %w", err)
	}
	port, err := s.Container.MappedPort(ctx, pgTestContainerPort)
	if err != nil {
		return "", fmt.Errorf("failed to get Container port: %w", err)
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		testContainerUser, testContainerPassword, host, port.Port(), testContainerDatabase,
	), nil
}

// GetPool opens a pgx pool against the running container. The caller owns
// the pool.
func (s *PgContainerSuite) GetPool(ctx context.Context) (*pgxpool.Pool, error) {
	uri, err := s.GetURI(ctx)
	if err != nil {
		return nil, err
	}
	return pgxpool.New(ctx, uri)
}
