package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"abc-retail/libs"
	"abc-retail/models"
	"abc-retail/repositories"
	"abc-retail/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	FunctionBlobContainer = "files"
	FunctionFileShare     = "fileshare"
)

// FunctionService writes raw request bodies straight into the storage primitives.
type FunctionService struct {
	blobs         libs.BlobStore
	share         libs.FileShare
	queue         libs.Queue
	functionQueue string
	metadataRepo  *repositories.ProductMetadataRepository
}

func NewFunctionService(blobs libs.BlobStore, share libs.FileShare, queue libs.Queue, functionQueue string, metadataRepo *repositories.ProductMetadataRepository) *FunctionService {
	return &FunctionService{
		blobs:         blobs,
		share:         share,
		queue:         queue,
		functionQueue: functionQueue,
		metadataRepo:  metadataRepo,
	}
}

func (s *FunctionService) UploadToBlob(ctx context.Context, body []byte) (*models.FunctionResult, error) {
	if s.blobs == nil {
		return nil, fmt.Errorf("%w: blob store", models.ErrUnavailable)
	}

	name := utils.TextFileName()
	url, err := s.blobs.Upload(ctx, FunctionBlobContainer, name, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	zap.S().Infow("function uploaded blob", "name", name)
	return &models.FunctionResult{Name: name, URL: url}, nil
}

func (s *FunctionService) UploadToFileShare(ctx context.Context, body []byte) (*models.FunctionResult, error) {
	name := utils.TextFileName()
	if err := s.share.Write(ctx, FunctionFileShare, "", name, bytes.NewReader(body)); err != nil {
		return nil, err
	}

	zap.S().Infow("function wrote file", "share", FunctionFileShare, "name", name)
	return &models.FunctionResult{Name: name, Location: FunctionFileShare + "/" + name}, nil
}

func (s *FunctionService) SendToQueue(ctx context.Context, body []byte) (*models.FunctionResult, error) {
	id, err := s.queue.Send(ctx, s.functionQueue, base64.StdEncoding.EncodeToString(body))
	if err != nil {
		return nil, err
	}

	zap.S().Infow("function queued message", "queue", s.functionQueue, "message", id)
	return &models.FunctionResult{Name: id, Location: s.functionQueue}, nil
}

func (s *FunctionService) StoreToTable(ctx context.Context, body []byte) (*models.ProductMetadata, error) {
	var meta models.ProductMetadata
	if err := json.Unmarshal(body, &meta); err != nil {
		return nil, validationError("body must be a product JSON document")
	}
	if strings.TrimSpace(meta.ProductName) == "" {
		return nil, validationError("product_name is required")
	}
	if meta.PartitionKey == "" {
		meta.PartitionKey = models.ProductMetadataPartition
	}
	if meta.RowKey == "" {
		meta.RowKey = uuid.NewString()
	}

	if err := s.metadataRepo.Create(ctx, &meta); err != nil {
		return nil, err
	}

	zap.S().Infof("Stored product %s to table.", meta.ProductName)
	return &meta, nil
}
