package handlers

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/prism-finance/prism/internal/shared/authorization"
	"github.com/prism-finance/prism/internal/shared/constants"
	"github.com/prism-finance/prism/internal/shared/errors"
	"github.com/prism-finance/prism/internal/shared/utils"
)

const defaultMaxUploadBytes int64 = 20 << 20

// requireIdentity writes a 401 and returns false when the auth middleware
// did not run.
func requireIdentity(c *gin.Context) (*authorization.Identity, bool) {
	identity := authorization.FromContext(c.Request.Context())
	if identity == nil {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError(constants.ErrMsgUnauthorized))
		return nil, false
	}
	return identity, true
}

// readUpload returns the named multipart file, refusing anything larger
// than maxBytes.
func readUpload(c *gin.Context, field string, maxBytes int64) (string, []byte, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return "", nil, errors.NewValidationError(field + " is required")
	}
	if fh.Size > maxBytes {
		return "", nil, errors.NewValidationError(fmt.Sprintf("%s exceeds the %d MB limit", field, maxBytes>>20))
	}

	f, err := fh.Open()
	if err != nil {
		return "", nil, errors.NewBadRequestError("failed to read uploaded file")
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxBytes+1))
	if err != nil {
		return "", nil, errors.NewBadRequestError("failed to read uploaded file")
	}
	if int64(len(data)) > maxBytes {
		return "", nil, errors.NewValidationError(fmt.Sprintf("%s exceeds the %d MB limit", field, maxBytes>>20))
	}
	return filepath.Base(fh.Filename), data, nil
}

// sendFile streams a stored file as an attachment.
func sendFile(c *gin.Context, fileName, contentType string, data []byte) {
	if contentType == "" {
		contentType = mime.TypeByExtension(filepath.Ext(fileName))
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": fileName}))
	c.Data(http.StatusOK, contentType, data)
}
