package secrets

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatic_APIKey(t *testing.T) {
	key, err := NewStatic("tvly-abc").APIKey(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tvly-abc", key)
}

func TestStatic_APIKey_Unconfigured(t *testing.T) {
	_, err := NewStatic("").APIKey(context.Background())
	assert.ErrorIs(t, err, ErrSecretNotConfigured)
}

// countingProvider tracks how often the inner provider is hit.
type countingProvider struct {
	key   string
	err   error
	calls int
}

func (p *countingProvider) APIKey(ctx context.Context) (string, error) {
	p.calls++
	if p.err != nil {
		return "", p.err
	}
	return p.key, nil
}

func TestCached_APIKey_HitsInnerOnce(t *testing.T) {
	inner := &countingProvider{key: "k"}
	cached := NewCached(inner, time.Minute)

	for i := 0; i < 5; i++ {
		key, err := cached.APIKey(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "k", key)
	}

	assert.Equal(t, 1, inner.calls)
}

func TestCached_APIKey_RefetchesAfterTTL(t *testing.T) {
	inner := &countingProvider{key: "k"}
	cached := NewCached(inner, 20*time.Millisecond)

	_, err := cached.APIKey(context.Background())
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)

	_, err = cached.APIKey(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, inner.calls)
}

func TestCached_APIKey_ErrorsNotCached(t *testing.T) {
	inner := &countingProvider{err: errors.New("store down")}
	cached := NewCached(inner, time.Minute)

	_, err := cached.APIKey(context.Background())
	require.Error(t, err)

	inner.err = nil
	inner.key = "recovered"

	key, err := cached.APIKey(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "recovered", key)
	assert.Equal(t, 2, inner.calls)
}

// fakeSecretStore fakes the Secrets Manager API slice.
type fakeSecretStore struct {
	value string
	err   error
}

func (f *fakeSecretStore) GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &secretsmanager.GetSecretValueOutput{SecretString: aws.String(f.value)}, nil
}

func TestSecretsManager_APIKey(t *testing.T) {
	p := &SecretsManager{
		client:    &fakeSecretStore{value: "tvly-secret"},
		secretARN: "arn:aws:secretsmanager:eu-central-1:123:secret:tavily",
	}

	key, err := p.APIKey(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tvly-secret", key)
}

func TestSecretsManager_APIKey_StoreFailure(t *testing.T) {
	p := &SecretsManager{
		client:    &fakeSecretStore{err: errors.New("access denied")},
		secretARN: "arn:aws:secretsmanager:eu-central-1:123:secret:tavily",
	}

	_, err := p.APIKey(context.Background())
	assert.ErrorContains(t, err, "failed to retrieve secret")
}

func TestSecretsManager_APIKey_EmptyValue(t *testing.T) {
	p := &SecretsManager{
		client:    &fakeSecretStore{value: ""},
		secretARN: "arn:x",
	}

	_, err := p.APIKey(context.Background())
	assert.ErrorContains(t, err, "has no string value")
}

func TestNewSecretsManager_MissingARN(t *testing.T) {
	_, err := NewSecretsManager(context.Background(), "eu-central-1", "")
	assert.ErrorIs(t, err, ErrSecretNotConfigured)
}
