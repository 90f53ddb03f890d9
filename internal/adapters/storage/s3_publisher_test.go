package storage

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dappctl/dappctl/internal/domain/config"
	"github.com/dappctl/dappctl/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type putCall struct {
	bucket, key, contentType string
	body                     []byte
}

type fakeS3 struct {
	calls []putCall
	err   error
}

func (f *fakeS3) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	body, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	f.calls = append(f.calls, putCall{
		bucket:      aws.ToString(params.Bucket),
		key:         aws.ToString(params.Key),
		contentType: aws.ToString(params.ContentType),
		body:        body,
	})
	return &s3.PutObjectOutput{}, nil
}

var testLog = slog.New(slog.NewTextHandler(io.Discard, nil))

var frontendFiles = []models.FrontendFile{
	{Name: "contract-address.json", Content: []byte(`{"Voting": "0x5FbDB2315678afecb367f032d93F642f64180aa3"}`)},
	{Name: "Voting.json", Content: []byte(`{"contractName": "voting"}`)},
}

func TestS3Publisher_Enabled(t *testing.T) {
	assert.False(t, NewS3Publisher(&config.RuntimeConfig{}, testLog).Enabled())
	assert.True(t, NewS3Publisher(&config.RuntimeConfig{FrontendBucket: "dapp-site"}, testLog).Enabled())
}

func TestS3Publisher_Publish(t *testing.T) {
	client := &fakeS3{}
	p := NewS3PublisherWithClient("dapp-site", "/static/contracts/", client, testLog)

	location, err := p.Publish(context.Background(), frontendFiles)
	require.NoError(t, err)
	assert.Equal(t, "s3://dapp-site/static/contracts", location)

	require.Len(t, client.calls, 2)
	assert.Equal(t, "dapp-site", client.calls[0].bucket)
	assert.Equal(t, "static/contracts/contract-address.json", client.calls[0].key)
	assert.Equal(t, "application/json", client.calls[0].contentType)
	assert.Equal(t, frontendFiles[0].Content, client.calls[0].body)
	assert.Equal(t, "static/contracts/Voting.json", client.calls[1].key)
}

func TestS3Publisher_PublishWithoutPrefix(t *testing.T) {
	client := &fakeS3{}
	p := NewS3PublisherWithClient("dapp-site", "", client, testLog)

	location, err := p.Publish(context.Background(), frontendFiles[:1])
	require.NoError(t, err)
	assert.Equal(t, "s3://dapp-site", location)
	assert.Equal(t, "contract-address.json", client.calls[0].key)
}

func TestS3Publisher_PublishError(t *testing.T) {
	client := &fakeS3{err: errors.New("access denied")}
	p := NewS3PublisherWithClient("dapp-site", "", client, testLog)

	_, err := p.Publish(context.Background(), frontendFiles)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "s3://dapp-site/contract-address.json")
	assert.Contains(t, err.Error(), "access denied")
}

func TestS3Publisher_DisabledIsNoop(t *testing.T) {
	client := &fakeS3{}
	p := NewS3PublisherWithClient("", "", client, testLog)

	location, err := p.Publish(context.Background(), frontendFiles)
	require.NoError(t, err)
	assert.Empty(t, location)
	assert.Empty(t, client.calls)
}
