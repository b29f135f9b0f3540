// Package classify starts sensitive-data classification jobs in the external
// classification service. The service scans the uploaded object store bucket
// asynchronously and exports its findings document on completion; this
// package only triggers the job, it never polls or retries it.
package classify

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/macie2"
	macietypes "github.com/aws/aws-sdk-go-v2/service/macie2/types"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/google/uuid"

	"github.com/complyradar/complyradar/pkg/logger"
)

// MacieAPI is the slice of the Macie client the trigger uses.
type MacieAPI interface {
	CreateClassificationJob(ctx context.Context, params *macie2.CreateClassificationJobInput, optFns ...func(*macie2.Options)) (*macie2.CreateClassificationJobOutput, error)
}

// STSAPI resolves the caller's account for the job bucket definition.
type STSAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// JobTrigger starts one-time classification jobs against a bucket.
type JobTrigger struct {
	macie    MacieAPI
	sts      STSAPI
	logger   logger.Logger
	now      func() time.Time
	newToken func() string
}

// NewJobTrigger creates a trigger from an AWS configuration.
func NewJobTrigger(cfg aws.Config) *JobTrigger {
	return NewJobTriggerWithLogger(cfg, logger.GetGlobalLogger())
}

// NewJobTriggerWithLogger creates a trigger with a custom logger.
func NewJobTriggerWithLogger(cfg aws.Config, log logger.Logger) *JobTrigger {
	return &JobTrigger{
		macie:    macie2.NewFromConfig(cfg),
		sts:      sts.NewFromConfig(cfg),
		logger:   log,
		now:      time.Now,
		newToken: uuid.NewString,
	}
}

// NewJobTriggerWithClients wires explicit clients; used by tests.
func NewJobTriggerWithClients(macie MacieAPI, stsClient STSAPI, log logger.Logger) *JobTrigger {
	return &JobTrigger{
		macie:    macie,
		sts:      stsClient,
		logger:   log,
		now:      time.Now,
		newToken: uuid.NewString,
	}
}

// StartScan starts a one-time classification job covering the given bucket.
// The client token makes the call idempotent on retry by the surrounding
// service; the trigger itself never retries. Returns the job ID.
func (t *JobTrigger) StartScan(ctx context.Context, bucket, key string) (string, error) {
	identity, err := t.sts.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", fmt.Errorf("resolving account: %w", err)
	}
	accountID := aws.ToString(identity.Account)

	jobName := fmt.Sprintf("MacieScanJob_%d", t.now().Unix())
	token := t.newToken()

	t.logger.Info("Starting classification job",
		"job", jobName, "bucket", bucket, "key", key, "account", accountID)

	out, err := t.macie.CreateClassificationJob(ctx, &macie2.CreateClassificationJobInput{
		Name:        aws.String(jobName),
		Description: aws.String("Scan uploaded CSV for sensitive data"),
		ClientToken: aws.String(token),
		JobType:     macietypes.JobTypeOneTime,
		S3JobDefinition: &macietypes.S3JobDefinition{
			BucketDefinitions: []macietypes.S3BucketDefinitionForJob{
				{
					AccountId: aws.String(accountID),
					Buckets:   []string{bucket},
				},
			},
		},
		CustomDataIdentifierIds: []string{},
	})
	if err != nil {
		return "", fmt.Errorf("creating classification job %q: %w", jobName, err)
	}

	jobID := aws.ToString(out.JobId)
	t.logger.Info("Classification job started", "job", jobName, "job_id", jobID)
	return jobID, nil
}
