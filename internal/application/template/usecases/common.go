package usecases

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/google/uuid"

	"github.com/prism-finance/prism/internal/application/common"
	"github.com/prism-finance/prism/internal/application/template/dto"
	"github.com/prism-finance/prism/internal/domain/template"
	"github.com/prism-finance/prism/internal/shared/authorization"
	apperrors "github.com/prism-finance/prism/internal/shared/errors"
	"github.com/prism-finance/prism/internal/shared/logger"
)

// ContractCounter reports how many contracts reference a template.
type ContractCounter interface {
	CountByTemplateID(ctx context.Context, templateID string) (int64, error)
}

// TransactionManager runs fn in a database transaction carried by ctx.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

func templateFileKey(companyID, fileName string) string {
	base := unsafeFileChars.ReplaceAllString(filepath.Base(fileName), "_")
	return fmt.Sprintf("templates/%s/%s_%s", companyID, uuid.NewString(), base)
}

// extractFromDocument converts the file and returns its placeholders. Any
// conversion failure, unsupported formats included, yields an empty set so
// the upload still succeeds.
func extractFromDocument(ctx context.Context, converter common.DocumentConverter, log logger.Interface, file dto.UploadedFile) []string {
	html, err := converter.ToHTML(ctx, file.FileName, file.Data)
	if err != nil {
		log.Warnw("failed to extract template variables",
			"file_name", file.FileName,
			"unsupported_format", errors.Is(err, template.ErrUnsupportedFormat),
			"error", err,
		)
		return []string{}
	}
	return template.ExtractVariables(html)
}

// loadManaged fetches a template the caller administers.
func loadManaged(ctx context.Context, repo template.Repository, log logger.Interface, identity *authorization.Identity, id string) (*template.Template, error) {
	tpl, err := repo.GetByID(ctx, id)
	if err != nil {
		log.Errorw("failed to load template", "id", id, "error", err)
		return nil, apperrors.NewInternalError("failed to load template")
	}
	if tpl == nil {
		return nil, apperrors.NewNotFoundError("template not found")
	}
	if !identity.IsAdminFor(tpl.CompanyID()) {
		return nil, apperrors.NewForbiddenError("access to this template is not allowed")
	}
	return tpl, nil
}

func storeFile(ctx context.Context, store common.BlobStore, log logger.Interface, companyID string, file dto.UploadedFile) (string, error) {
	if len(file.Data) == 0 {
		return "", apperrors.NewValidationError("template file is empty")
	}
	key := templateFileKey(companyID, file.FileName)
	if err := store.Put(ctx, key, file.Data, ""); err != nil {
		log.Errorw("failed to store template file", "key", key, "error", err)
		return "", apperrors.NewUpstreamError("failed to store template file")
	}
	return key, nil
}

// discardFile removes a stored file that no record points to.
func discardFile(ctx context.Context, store common.BlobStore, log logger.Interface, key string) {
	if err := store.Delete(ctx, key); err != nil {
		log.Warnw("failed to remove orphaned template file", "key", key, "error", err)
	}
}
