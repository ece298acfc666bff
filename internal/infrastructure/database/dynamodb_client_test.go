package database

import (
	"context"
	"testing"

	appconfig "npc_garage/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

func TestLoadAWSConfig(t *testing.T) {
	cfg, err := LoadAWSConfig(context.Background(), appconfig.AWSConfig{
		Region:          "sa-east-1",
		AccessKeyID:     "local",
		SecretAccessKey: "secret",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Region != "sa-east-1" {
		t.Fatalf("unexpected region %q", cfg.Region)
	}
	creds, err := cfg.Credentials.Retrieve(context.Background())
	if err != nil {
		t.Fatalf("retrieve credentials: %v", err)
	}
	if creds.AccessKeyID != "local" || creds.SecretAccessKey != "secret" {
		t.Fatalf("unexpected credentials: %+v", creds)
	}
}

func TestEndpointOption(t *testing.T) {
	var o dynamodb.Options
	endpointOption("")(&o)
	if o.BaseEndpoint != nil {
		t.Fatalf("expected default endpoint")
	}
	endpointOption("http://localhost:8000")(&o)
	if aws.ToString(o.BaseEndpoint) != "http://localhost:8000" {
		t.Fatalf("unexpected endpoint %q", aws.ToString(o.BaseEndpoint))
	}
}
