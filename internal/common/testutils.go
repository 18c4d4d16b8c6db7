package common

import (
	"context"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"github.com/testcontainers/testcontainers-go/modules/rabbitmq"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestRabbitMQ(t *testing.T) string {
	ctx := context.Background()

	container, err := rabbitmq.Run(ctx, "rabbitmq:3.12.11-management-alpine", rabbitmq.WithAdminUsername("guest"), rabbitmq.WithAdminPassword("guest"))
	if err != nil {
		t.Fatalf("could not start rabbitmq container: %v", err)
	}

	connURL, err := container.AmqpURL(ctx)
	if err != nil {
		t.Fatalf("could not get rabbitmq connection URL: %v", err)
	}

	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Fatalf("could not terminate container: %v", err)
		}
	})

	return connURL
}

func TestDB(t *testing.T) *mongo.Database {
	ctx := context.Background()

	c, err := mongodb.Run(ctx, "docker.io/mongo:7.0.8")
	if err != nil {
		t.Fatalf("could not start mongodb container: %v", err)
	}

	connURL, err := c.ConnectionString(ctx)
	if err != nil {
		t.Fatalf("failed to get connection string: %s", err)
	}

	db, err := NewDB(connURL, "testdb", 10*time.Second)
	if err != nil {
		t.Fatalf("could not connect to database: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Drop(ctx)
		_ = CloseDB(db)
		_ = c.Terminate(ctx)
	})

	return db
}
