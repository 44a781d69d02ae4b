package auth

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/petpal/petpal/pkg/email"
	"github.com/petpal/petpal/pkg/logger"
)

const testSecret = "test-secret-32-chars-long-123456"

type testEnv struct {
	svc     *Service
	storage *MemoryStorage
	clock   *fakeClock
	logs    *bytes.Buffer
}

func testConfig() Config {
	return Config{
		JWTSecret:  testSecret,
		AppBaseURL: "http://petpal.test",
		BcryptCost: bcrypt.MinCost,
	}
}

func newTestEnv(t *testing.T, mailer email.EmailSender) *testEnv {
	t.Helper()

	env := &testEnv{
		storage: NewMemoryStorage(),
		clock:   newFakeClock(),
		logs:    &bytes.Buffer{},
	}
	svc, err := NewService(testConfig(), env.storage, mailer,
		WithClock(env.clock.Now),
		WithLogger(logger.New(logger.WithOutput(env.logs))),
	)
	require.NoError(t, err)
	env.svc = svc
	return env
}

func (e *testEnv) register(t *testing.T, addr, password string) *User {
	t.Helper()
	u, err := e.svc.Register(context.Background(), RegisterInput{Email: addr, Password: password})
	require.NoError(t, err)
	return u
}

func ptr(s string) *string { return &s }

func mustUUID(t *testing.T) uuid.UUID {
	t.Helper()
	id, err := uuid.NewRandom()
	require.NoError(t, err)
	return id
}
