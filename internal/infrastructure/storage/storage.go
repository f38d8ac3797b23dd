package storage

import (
	"fmt"

	"github.com/prism-finance/prism/internal/application/common"
	"github.com/prism-finance/prism/internal/shared/config"
	"github.com/prism-finance/prism/internal/shared/logger"
)

const (
	DriverLocal = "local"
	DriverS3    = "s3"
)

// NewBlobStore builds the store selected by cfg.Driver. An empty driver
// means local.
func NewBlobStore(cfg config.StorageConfig, logger logger.Interface) (common.BlobStore, error) {
	switch cfg.Driver {
	case "", DriverLocal:
		return NewLocalBlobStore(cfg.Local.Root, logger)
	case DriverS3:
		return NewS3BlobStore(cfg.S3, logger)
	default:
		return nil, fmt.Errorf("unsupported storage driver: %s", cfg.Driver)
	}
}
