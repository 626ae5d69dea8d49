//go:build e2e

package e2etest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/lightningnetwork/lnd/clock"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kimberlabs/staking-ledger/e2etest/container"
	"github.com/kimberlabs/staking-ledger/internal/api"
	"github.com/kimberlabs/staking-ledger/internal/clients/tokenclient"
	"github.com/kimberlabs/staking-ledger/internal/config"
	"github.com/kimberlabs/staking-ledger/internal/db"
	"github.com/kimberlabs/staking-ledger/internal/db/model"
	"github.com/kimberlabs/staking-ledger/internal/queue"
	"github.com/kimberlabs/staking-ledger/internal/services"
	"github.com/kimberlabs/staking-ledger/testutil"
)

const (
	eventuallyWaitTimeOut = 20 * time.Second
	eventuallyPollTime    = 200 * time.Millisecond

	t0 = 1_700_000_000
)

var (
	ledgerAddress   = common.HexToAddress("0x1000000000000000000000000000000000000001")
	stakedToken     = common.HexToAddress("0x2000000000000000000000000000000000000002")
	rewardToken     = common.HexToAddress("0x3000000000000000000000000000000000000003")
	rewardsVault    = common.HexToAddress("0x4000000000000000000000000000000000000004")
	emissionManager = common.HexToAddress("0x5000000000000000000000000000000000000005")
)

type TestManager struct {
	Config    *config.Config
	Clock     *clock.TestClock
	DbClient  *db.Database
	Service   *services.Service
	Server    *httptest.Server
	Messages  <-chan amqp.Delivery
	manager   *container.Manager
	publisher *queue.QueueManager
	consumer  *amqp.Connection
	cleanupDb func()
}

func defaultLedgerConfig() *config.Config {
	return &config.Config{
		Ledger: config.LedgerConfig{
			Name:            "Staked Kimber",
			Symbol:          "stkKIMBER",
			Decimals:        18,
			ChainID:         31337,
			Address:         ledgerAddress.Hex(),
			StakedToken:     stakedToken.Hex(),
			RewardToken:     rewardToken.Hex(),
			RewardsVault:    rewardsVault.Hex(),
			EmissionManager: emissionManager.Hex(),
			Cooldown:        time.Hour,
			UnstakeWindow:   2 * time.Hour,
			DistributionEnd: t0 + 365*24*3600,
		},
		Server: config.ServerConfig{
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 5 * time.Second,
			IdleTimeout:  5 * time.Second,
		},
		Poller: config.PollerConfig{StatsPollingInterval: time.Second},
		Queue: &config.QueueConfig{
			User:             container.RabbitMQUser,
			Password:         container.RabbitMQPassword,
			Exchange:         "staking-ledger",
			PublishTimeout:   5 * time.Second,
			MaxRetryAttempts: 5,
			RetryInterval:    time.Second,
		},
	}
}

// StartManager runs mongodb and rabbitmq in docker and serves the api from
// an in process http server backed by them.
func StartManager(t *testing.T) *TestManager {
	ctx := context.Background()

	manager, err := container.NewManager(t)
	require.NoError(t, err)

	brokerAddr, err := manager.RunRabbitMQResource(t)
	require.NoError(t, err)

	dbCfg, cleanupDb, err := testutil.SetupMongoContainer("mongo-e2e")
	require.NoError(t, err)
	require.NoError(t, model.Setup(ctx, dbCfg))

	cfg := defaultLedgerConfig()
	cfg.Db = *dbCfg
	cfg.Queue.Url = brokerAddr

	dbClient, err := db.New(ctx, cfg.Db)
	require.NoError(t, err)

	publisher, err := queue.NewQueueManager(ctx, cfg.Queue, zap.NewNop())
	require.NoError(t, err)

	consumer, messages := consumeLedgerEvents(t, cfg.Queue)

	clk := clock.NewTestClock(time.Unix(t0, 0))
	store := db.NewDbWithMetrics(dbClient)
	token := tokenclient.NewTokenClientWithMetrics(tokenclient.NewClient(store))
	service := services.NewService(cfg, store, token, publisher, clk)
	require.NoError(t, service.Bootstrap(ctx))

	server := httptest.NewServer(api.NewRouter(&cfg.Server, api.NewHandler(service)))

	return &TestManager{
		Config:    cfg,
		Clock:     clk,
		DbClient:  dbClient,
		Service:   service,
		Server:    server,
		Messages:  messages,
		manager:   manager,
		publisher: publisher,
		consumer:  consumer,
		cleanupDb: cleanupDb,
	}
}

// consumeLedgerEvents binds an exclusive queue to every ledger routing key.
// The exchange was declared by the publisher.
func consumeLedgerEvents(t *testing.T, cfg *config.QueueConfig) (*amqp.Connection, <-chan amqp.Delivery) {
	conn, err := amqp.Dial(fmt.Sprintf("amqp://%s:%s@%s", cfg.User, cfg.Password, cfg.Url))
	require.NoError(t, err)
	ch, err := conn.Channel()
	require.NoError(t, err)

	q, err := ch.QueueDeclare("", false, true, true, false, nil)
	require.NoError(t, err)
	require.NoError(t, ch.QueueBind(q.Name, "ledger.#", cfg.Exchange, false, nil))

	messages, err := ch.Consume(q.Name, "", true, true, false, false, nil)
	require.NoError(t, err)
	return conn, messages
}

func (tm *TestManager) Stop(t *testing.T) {
	tm.Server.Close()
	tm.publisher.Shutdown()
	require.NoError(t, tm.consumer.Close())
	require.NoError(t, tm.DbClient.Disconnect(context.Background()))
	tm.cleanupDb()
	require.NoError(t, tm.manager.ClearResources())
}

// Do sends a json request as caller and returns the status with the raw body.
func (tm *TestManager) Do(t *testing.T, method, path string, caller common.Address, body any) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, tm.Server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if caller != (common.Address{}) {
		req.Header.Set(api.CallerHeader, caller.Hex())
	}

	resp, err := tm.Server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

// WaitForMessage returns the next published message for operation, skipping
// others.
func (tm *TestManager) WaitForMessage(t *testing.T, operation string) queue.LedgerEventMessage {
	t.Helper()

	timeout := time.After(eventuallyWaitTimeOut)
	for {
		select {
		case delivery := <-tm.Messages:
			var msg queue.LedgerEventMessage
			require.NoError(t, json.Unmarshal(delivery.Body, &msg))
			if msg.Operation == operation {
				return msg
			}
		case <-timeout:
			t.Fatalf("no %s message published within %s", operation, eventuallyWaitTimeOut)
		}
	}
}
