package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prism-finance/prism/internal/application/common"
	"github.com/prism-finance/prism/internal/shared/config"
	"github.com/prism-finance/prism/internal/shared/logger"
)

func TestLocalBlobStore_RoundTrip(t *testing.T) {
	store, err := NewLocalBlobStore(t.TempDir(), logger.NewDiscard())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "contracts/contract_a.html", []byte("<p>hi</p>"), "text/html"))
	data, err := store.Get(ctx, "contracts/contract_a.html")
	require.NoError(t, err)
	assert.Equal(t, "<p>hi</p>", string(data))

	require.NoError(t, store.Put(ctx, "contracts/contract_a.html", []byte("v2"), "text/html"))
	data, err = store.Get(ctx, "contracts/contract_a.html")
	require.NoError(t, err)
	assert.Equal(t, "v2", string(data))

	require.NoError(t, store.Delete(ctx, "contracts/contract_a.html"))
	_, err = store.Get(ctx, "contracts/contract_a.html")
	assert.ErrorIs(t, err, common.ErrBlobNotFound)
	require.NoError(t, store.Delete(ctx, "contracts/contract_a.html"))
}

func TestLocalBlobStore_RejectsEscapingKeys(t *testing.T) {
	store, err := NewLocalBlobStore(t.TempDir(), logger.NewDiscard())
	require.NoError(t, err)

	for _, key := range []string{"", "/etc/passwd", "../outside", "a/../../b", `a\b`} {
		t.Run(key, func(t *testing.T) {
			err := store.Put(context.Background(), key, []byte("x"), "")
			assert.ErrorIs(t, err, ErrInvalidKey)
		})
	}
}

type fakeUploader struct {
	inputs []*s3manager.UploadInput
	bodies [][]byte
}

func (f *fakeUploader) UploadWithContext(_ aws.Context, input *s3manager.UploadInput, _ ...func(*s3manager.Uploader)) (*s3manager.UploadOutput, error) {
	body, err := io.ReadAll(input.Body)
	if err != nil {
		return nil, err
	}
	f.inputs = append(f.inputs, input)
	f.bodies = append(f.bodies, body)
	return &s3manager.UploadOutput{}, nil
}

type fakeObjects struct {
	objects map[string][]byte
	deleted []string
	getErr  error
}

func (f *fakeObjects) GetObjectWithContext(_ aws.Context, input *s3.GetObjectInput, _ ...request.Option) (*s3.GetObjectOutput, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	data, ok := f.objects[aws.StringValue(input.Key)]
	if !ok {
		return nil, awserr.New(s3.ErrCodeNoSuchKey, "missing", nil)
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}

func (f *fakeObjects) DeleteObjectWithContext(_ aws.Context, input *s3.DeleteObjectInput, _ ...request.Option) (*s3.DeleteObjectOutput, error) {
	f.deleted = append(f.deleted, aws.StringValue(input.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func TestS3BlobStore_PrefixesKeys(t *testing.T) {
	up := &fakeUploader{}
	objs := &fakeObjects{objects: map[string][]byte{"tenant/templates/t.md": []byte("# T")}}
	store := NewS3BlobStoreWithClients(objs, up, "prism-bucket", "/tenant/", logger.NewDiscard())
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "templates/t.md", []byte("# T"), "text/markdown"))
	require.Len(t, up.inputs, 1)
	assert.Equal(t, "prism-bucket", aws.StringValue(up.inputs[0].Bucket))
	assert.Equal(t, "tenant/templates/t.md", aws.StringValue(up.inputs[0].Key))
	assert.Equal(t, "text/markdown", aws.StringValue(up.inputs[0].ContentType))
	assert.Equal(t, "# T", string(up.bodies[0]))

	data, err := store.Get(ctx, "templates/t.md")
	require.NoError(t, err)
	assert.Equal(t, "# T", string(data))

	require.NoError(t, store.Delete(ctx, "templates/t.md"))
	assert.Equal(t, []string{"tenant/templates/t.md"}, objs.deleted)
}

func TestS3BlobStore_MapsMissingKey(t *testing.T) {
	store := NewS3BlobStoreWithClients(&fakeObjects{objects: map[string][]byte{}}, &fakeUploader{}, "b", "", logger.NewDiscard())

	_, err := store.Get(context.Background(), "nope.html")
	assert.ErrorIs(t, err, common.ErrBlobNotFound)
}

func TestS3BlobStore_WrapsOtherErrors(t *testing.T) {
	store := NewS3BlobStoreWithClients(&fakeObjects{getErr: errors.New("timeout")}, &fakeUploader{}, "b", "", logger.NewDiscard())

	_, err := store.Get(context.Background(), "a.html")
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrBlobNotFound)
}

func TestNewBlobStore_SelectsDriver(t *testing.T) {
	store, err := NewBlobStore(config.StorageConfig{Local: config.LocalStorageConfig{Root: t.TempDir()}}, logger.NewDiscard())
	require.NoError(t, err)
	assert.IsType(t, &LocalBlobStore{}, store)

	_, err = NewBlobStore(config.StorageConfig{Driver: "ftp"}, logger.NewDiscard())
	assert.Error(t, err)
}
