package secrets

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// secretValueGetter is the slice of the Secrets Manager client this
// package uses, kept narrow so tests can fake the store.
type secretValueGetter interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// SecretsManager retrieves the API key from AWS Secrets Manager by ARN.
type SecretsManager struct {
	client    secretValueGetter
	secretARN string
}

// NewSecretsManager creates a provider backed by AWS Secrets Manager.
// An empty secretARN is a configuration error.
func NewSecretsManager(ctx context.Context, region, secretARN string) (*SecretsManager, error) {
	if secretARN == "" {
		return nil, ErrSecretNotConfigured
	}

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &SecretsManager{
		client:    secretsmanager.NewFromConfig(cfg),
		secretARN: secretARN,
	}, nil
}

// APIKey fetches the secret value. Store failures are returned as-is;
// this layer never retries.
func (p *SecretsManager) APIKey(ctx context.Context) (string, error) {
	out, err := p.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(p.secretARN),
	})
	if err != nil {
		return "", fmt.Errorf("failed to retrieve secret: %w", err)
	}
	if out.SecretString == nil || *out.SecretString == "" {
		return "", fmt.Errorf("secret %s has no string value", p.secretARN)
	}
	return *out.SecretString, nil
}
