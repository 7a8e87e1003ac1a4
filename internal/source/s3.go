package source

import (
	"context"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/pkg/errors"
)

// ObjectGetter is the subset of *s3.Client used by S3.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3 reads resources stored as objects under Prefix in Bucket.
type S3 struct {
	Client ObjectGetter
	Bucket string
	Prefix string
}

func (s *S3) Name() string {
	return "s3"
}

func (s *S3) Read(ctx context.Context, resource string) ([]byte, error) {
	key := s.Prefix + resource
	out, err := s.Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, unavailable(errors.New("no such key "+key), resource)
		}
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			return nil, unavailable(errors.Wrapf(err, "s3 %s", apiErr.ErrorCode()), resource)
		}
		return nil, unavailable(err, resource)
	}
	defer out.Body.Close()

	b, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, unavailable(err, resource)
	}
	return b, nil
}
