package backend

import (
	"context"
	"testing"

	"translationflow/internal/config"
	apperrors "translationflow/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestOpen_UnknownBackend(t *testing.T) {
	_, err := Open(context.Background(), &config.Config{RepositoryBackend: "sqlite"})

	assert.ErrorIs(t, err, apperrors.ErrUnknownRepositoryBackend)
}

func TestOpen_MongoWithoutURI(t *testing.T) {
	_, err := Open(context.Background(), &config.Config{RepositoryBackend: config.BackendMongo})

	assert.ErrorIs(t, err, apperrors.ErrMongoURIMissing)
}

func TestBackendClose_Noop(t *testing.T) {
	assert.NoError(t, (&Backend{}).Close())
}
