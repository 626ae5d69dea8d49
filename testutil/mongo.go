package testutil

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kimberlabs/staking-ledger/internal/config"
)

const (
	mongoDatabase = "test-database"
	replicaSet    = "rs0"

	// this version corresponds to docker tag for mongodb
	// it should be in sync with mongo version used in production
	mongoVersion = "7.0.5"
)

// SetupMongoContainer starts a single node mongodb replica set (transactions
// are not available on a standalone server) and returns its config together
// with a cleanup function that MUST be called to release docker resources.
func SetupMongoContainer(namePrefix string) (*config.DbConfig, func(), error) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return nil, nil, err
	}

	name, err := ContainerName(namePrefix)
	if err != nil {
		return nil, nil, err
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Name:       name,
		Repository: "mongo",
		Tag:        mongoVersion,
		Cmd:        []string{"--replSet", replicaSet, "--bind_ip_all"},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		err := pool.Purge(resource)
		if err != nil {
			log.Fatalf("failed to purge resource: %v", err)
		}
	}

	// get host port (randomly chosen) that is mapped to mongo port inside container
	hostPort := resource.GetPort("27017/tcp")
	address := fmt.Sprintf("mongodb://localhost:%s/?directConnection=true", hostPort)

	pool.MaxWait = 2 * time.Minute
	if err := pool.Retry(func() error { return initiateReplicaSet(address) }); err != nil {
		cleanup()
		return nil, nil, err
	}

	return &config.DbConfig{
		DbName:  mongoDatabase,
		Address: address,
	}, cleanup, nil
}

func initiateReplicaSet(address string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(address))
	if err != nil {
		return err
	}
	defer client.Disconnect(ctx) //nolint:errcheck

	admin := client.Database("admin")
	err = admin.RunCommand(ctx, bson.D{{Key: "replSetInitiate", Value: bson.M{
		"_id": replicaSet,
		"members": bson.A{
			bson.M{"_id": 0, "host": "localhost:27017"},
		},
	}}}).Err()
	if err != nil && !strings.Contains(err.Error(), "already initialized") {
		return err
	}

	var hello bson.M
	if err := admin.RunCommand(ctx, bson.D{{Key: "hello", Value: 1}}).Decode(&hello); err != nil {
		return err
	}
	if primary, _ := hello["isWritablePrimary"].(bool); !primary {
		return errors.New("replica set has no primary yet")
	}
	return nil
}

// ResetDatabase drops every document of the given collections.
func ResetDatabase(ctx context.Context, cfg *config.DbConfig, collections ...string) error {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Address))
	if err != nil {
		return err
	}
	defer client.Disconnect(ctx) //nolint:errcheck

	for _, name := range collections {
		if _, err := client.Database(cfg.DbName).Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			return fmt.Errorf("failed to reset collection %s: %w", name, err)
		}
	}
	return nil
}
