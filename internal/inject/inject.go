package inject

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmorgan81/pollinations"
	"github.com/dmorgan81/pollinations/internal/log"
	"github.com/dmorgan81/pollinations/store"
	"github.com/samber/do"
)

// Setup wires the demo dependencies. When BUCKET is set, generated images
// are published to S3; otherwise they land on the local disk.
func Setup(ctx context.Context) *do.Injector {
	logger := log.FromContextOrDiscard(ctx)

	injector := do.NewWithOpts(&do.InjectorOpts{
		Logf: func(format string, args ...any) {
			logger.Info(fmt.Sprintf(format, args...))
		},
	})

	do.ProvideNamedValue[string](injector, "bucket", os.Getenv("BUCKET"))
	do.ProvideNamedValue[time.Duration](injector, "timeout", pollinations.DefaultTimeout)

	do.Provide[aws.Config](injector, func(i *do.Injector) (aws.Config, error) {
		return awsconfig.LoadDefaultConfig(ctx)
	})
	do.Provide[*s3.Client](injector, func(i *do.Injector) (*s3.Client, error) {
		return s3.NewFromConfig(do.MustInvoke[aws.Config](i)), nil
	})
	do.Provide[store.Uploader](injector, func(i *do.Injector) (store.Uploader, error) {
		if bucket := do.MustInvokeNamed[string](i, "bucket"); bucket != "" {
			return &store.S3Uploader{Client: do.MustInvoke[*s3.Client](i), Bucket: bucket}, nil
		}
		return &store.FileUploader{}, nil
	})
	do.Provide[*pollinations.Client](injector, func(i *do.Injector) (*pollinations.Client, error) {
		client := pollinations.New(do.MustInvokeNamed[time.Duration](i, "timeout"))
		client.ImageClient().Uploader = do.MustInvoke[store.Uploader](i)
		return client, nil
	})

	return injector
}
