package libs

import (
	"context"
	"io"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// BlobStore stores named binary objects grouped by container and hands back a public URL.
type BlobStore interface {
	Upload(ctx context.Context, container, name string, content io.Reader) (string, error)
	Delete(ctx context.Context, container, name string) error
}

type CloudinaryConfig struct {
	URL       string
	CloudName string
	APIKey    string
	APISecret string
}

func (c CloudinaryConfig) Enabled() bool {
	return c.URL != "" || (c.CloudName != "" && c.APIKey != "" && c.APISecret != "")
}

type CloudinaryBlobStore struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryBlobStore(cfg CloudinaryConfig) (*CloudinaryBlobStore, error) {
	var cld *cloudinary.Cloudinary
	var err error

	switch {
	case cfg.CloudName != "" && cfg.APIKey != "" && cfg.APISecret != "":
		cld, err = cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	case cfg.URL != "":
		cld, err = cloudinary.NewFromURL(cfg.URL)
	default:
		return nil, errors.New("cloudinary credentials not configured")
	}
	if err != nil {
		return nil, errors.Wrap(err, "initialize cloudinary")
	}

	return &CloudinaryBlobStore{cld: cld}, nil
}

// publicID maps container/name onto a cloudinary public id; images drop their
// extension because cloudinary derives the format itself.
func publicID(container, name string) (string, string) {
	resourceType := "raw"
	switch strings.ToLower(path.Ext(name)) {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
		resourceType = "image"
		name = strings.TrimSuffix(name, path.Ext(name))
	}
	return container + "/" + name, resourceType
}

func (s *CloudinaryBlobStore) Upload(ctx context.Context, container, name string, content io.Reader) (string, error) {
	id, resourceType := publicID(container, name)

	result, err := s.cld.Upload.Upload(ctx, content, uploader.UploadParams{
		PublicID:     id,
		ResourceType: resourceType,
	})
	if err != nil {
		return "", errors.Wrapf(err, "upload %s", id)
	}
	if result.Error.Message != "" {
		return "", errors.Errorf("upload %s: %s", id, result.Error.Message)
	}

	zap.S().Debugf("blob uploaded: %s", result.PublicID)
	if result.SecureURL != "" {
		return result.SecureURL, nil
	}
	return result.URL, nil
}

func (s *CloudinaryBlobStore) Delete(ctx context.Context, container, name string) error {
	id, resourceType := publicID(container, name)

	result, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     id,
		ResourceType: resourceType,
	})
	if err != nil {
		return errors.Wrapf(err, "destroy %s", id)
	}
	if result.Result != "ok" {
		return errors.Errorf("destroy %s: %s", id, result.Result)
	}

	return nil
}
