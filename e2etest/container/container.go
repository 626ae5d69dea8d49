package container

import (
	"fmt"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/kimberlabs/staking-ledger/testutil"
)

const (
	RabbitMQUser     = "user"
	RabbitMQPassword = "password"
)

// Manager is a wrapper around all docker instances and the dockertest pool.
type Manager struct {
	cfg       ImageConfig
	pool      *dockertest.Pool
	resources map[string]*dockertest.Resource
}

func NewManager(t *testing.T) (*Manager, error) {
	t.Helper()

	pool, err := dockertest.NewPool("")
	if err != nil {
		return nil, err
	}
	pool.MaxWait = 2 * time.Minute

	return &Manager{
		cfg:       NewImageConfig(),
		pool:      pool,
		resources: make(map[string]*dockertest.Resource),
	}, nil
}

// RunRabbitMQResource starts a broker and waits until it accepts
// connections. It returns the host:port the broker listens on.
func (m *Manager) RunRabbitMQResource(t *testing.T) (string, error) {
	t.Helper()

	name, err := testutil.ContainerName("rabbitmq-e2e")
	if err != nil {
		return "", err
	}

	resource, err := m.pool.RunWithOptions(&dockertest.RunOptions{
		Name:       name,
		Repository: m.cfg.RabbitMQRepository,
		Tag:        m.cfg.RabbitMQVersion,
		Env: []string{
			"RABBITMQ_DEFAULT_USER=" + RabbitMQUser,
			"RABBITMQ_DEFAULT_PASS=" + RabbitMQPassword,
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return "", err
	}
	m.resources[name] = resource

	addr := fmt.Sprintf("localhost:%s", resource.GetPort("5672/tcp"))
	err = m.pool.Retry(func() error {
		conn, err := amqp.Dial(fmt.Sprintf("amqp://%s:%s@%s", RabbitMQUser, RabbitMQPassword, addr))
		if err != nil {
			return err
		}
		return conn.Close()
	})
	if err != nil {
		return "", err
	}
	return addr, nil
}

// ClearResources removes all outstanding Docker resources created by the Manager.
func (m *Manager) ClearResources() error {
	for name, resource := range m.resources {
		if err := m.pool.Purge(resource); err != nil {
			return fmt.Errorf("failed to purge %s: %w", name, err)
		}
		delete(m.resources, name)
	}
	return nil
}
