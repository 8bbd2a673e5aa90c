package secretsinfra

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/whatsapp-orchestrator/internal/config"
)

// ErrNoSecretString is returned for secrets stored as binary.
var ErrNoSecretString = errors.New("secret has no string value")

// secretsAPI is the subset of the Secrets Manager client the store uses.
type secretsAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// Store reads string secrets from AWS Secrets Manager.
type Store struct {
	client secretsAPI
}

// NewClient creates a Secrets Manager client. When cfg.AWSEndpointURL is set
// (LocalStack), it overrides the endpoint so all traffic goes to the local instance.
func NewClient(ctx context.Context, cfg *config.Config) (*secretsmanager.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.AWSRegion),
	}

	if cfg.AWSAccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	clientOpts := []func(*secretsmanager.Options){}
	if cfg.AWSEndpointURL != "" {
		clientOpts = append(clientOpts, func(o *secretsmanager.Options) {
			o.BaseEndpoint = aws.String(cfg.AWSEndpointURL)
		})
	}

	return secretsmanager.NewFromConfig(awsCfg, clientOpts...), nil
}

// NewStore creates a Store backed by the given client.
func NewStore(client secretsAPI) *Store {
	return &Store{client: client}
}

// GetString returns the current string value of secretID.
func (s *Store) GetString(ctx context.Context, secretID string) (string, error) {
	out, err := s.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretID),
	})
	if err != nil {
		return "", fmt.Errorf("get secret value %s: %w", secretID, err)
	}
	if out.SecretString == nil {
		return "", fmt.Errorf("secret %s: %w", secretID, ErrNoSecretString)
	}
	return *out.SecretString, nil
}

// Opener returns a constructor ResolveVerifyToken calls only when the secret
// store is actually needed.
func Opener(cfg *config.Config) func(context.Context) (SecretGetter, error) {
	return func(ctx context.Context) (SecretGetter, error) {
		client, err := NewClient(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return NewStore(client), nil
	}
}
