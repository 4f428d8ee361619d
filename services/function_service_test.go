package services

import (
	"context"
	"encoding/base64"
	"strings"
	"testing"

	"abc-retail/models"
	"abc-retail/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFunctionService_UploadToBlob(t *testing.T) {
	env := newTestEnv(t)

	result, err := env.funcs.UploadToBlob(context.Background(), []byte("hello"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(result.Name, "file-"))

	data, ok := env.blobs.Blob(FunctionBlobContainer, result.Name)
	require.True(t, ok)
	assert.Equal(t, "hello", string(data))
}

func TestFunctionService_UploadToFileShare(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	result, err := env.funcs.UploadToFileShare(ctx, []byte("hello"))
	require.NoError(t, err)

	data, err := env.share.Read(ctx, FunctionFileShare, "", result.Name)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestFunctionService_SendToQueue(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	result, err := env.funcs.SendToQueue(ctx, []byte("hello"))
	require.NoError(t, err)

	messages, err := env.queue.Receive(ctx, "messages", 32, 0)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, result.Name, messages[0].ID)
	decoded, err := base64.StdEncoding.DecodeString(messages[0].Text)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(decoded))
}

func TestFunctionService_StoreToTable(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	meta, err := env.funcs.StoreToTable(ctx, []byte(`{"row_key":"p1","product_name":"Widget","price":"9.99"}`))
	require.NoError(t, err)
	assert.Equal(t, models.ProductMetadataPartition, meta.PartitionKey)
	assert.Equal(t, 1, env.store.Count(repositories.TableProductMetadata))

	_, err = env.funcs.StoreToTable(ctx, []byte(`{"row_key":"p1","product_name":"Widget","price":"9.99"}`))
	assert.ErrorIs(t, err, models.ErrValidation)

	_, err = env.funcs.StoreToTable(ctx, []byte(`not json`))
	assert.ErrorIs(t, err, models.ErrValidation)

	generated, err := env.funcs.StoreToTable(ctx, []byte(`{"product_name":"Gadget","price":3}`))
	require.NoError(t, err)
	assert.NotEmpty(t, generated.RowKey)
}
