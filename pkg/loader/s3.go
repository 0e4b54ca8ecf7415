/*
Copyright © 2024-2025 Macaroni OS Linux
See AUTHORS and LICENSE for the license details and contributors.
*/
package loader

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	specs "github.com/macaroni-os/jessica/pkg/specs"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
)

// S3Loader reads templates from an S3 compatible object storage. Template
// paths are object keys under Prefix.
type S3Loader struct {
	*LoaderCommon

	MinioClient *minio.Client
	Bucket      string
	Prefix      string
}

func NewS3Loader(c *specs.JessicaConfig, opts map[string]string) (*S3Loader, error) {
	for _, k := range []string{"minio-bucket", "minio-endpoint", "minio-keyid", "minio-secret"} {
		if v, ok := opts[k]; !ok || v == "" {
			return nil, fmt.Errorf("option %s is mandatory for the s3 backend", k)
		}
	}

	ans := &S3Loader{
		LoaderCommon: NewLoaderCommon(c),
		Bucket:       opts["minio-bucket"],
		Prefix:       opts["minio-prefix"],
	}

	mOpts := &minio.Options{
		Creds: credentials.NewStaticV4(
			opts["minio-keyid"],
			opts["minio-secret"],
			"",
		),
		Secure: opts["minio-ssl"] != "false",
	}
	if region := opts["minio-region"]; region != "" {
		mOpts.Region = region
	}

	mClient, err := minio.New(opts["minio-endpoint"], mOpts)
	if err != nil {
		return nil, errors.Wrap(err, "error on create minio client")
	}
	ans.MinioClient = mClient

	found, err := ans.MinioClient.BucketExists(context.Background(), ans.Bucket)
	if err != nil {
		return nil, errors.Wrapf(err, "error on check bucket %s", ans.Bucket)
	}
	if !found {
		return nil, fmt.Errorf("bucket %s not found", ans.Bucket)
	}

	return ans, nil
}

func (l *S3Loader) GetType() string { return "s3" }

func (l *S3Loader) GetObjectKey(f string) string {
	key := strings.TrimPrefix(path.Clean("/"+f), "/")
	if l.Prefix != "" {
		key = path.Join(l.Prefix, key)
	}
	return key
}

func (l *S3Loader) ReadFile(ctx context.Context, f string) (string, error) {
	key := l.GetObjectKey(f)

	object, err := l.MinioClient.GetObject(ctx, l.Bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return "", errors.Wrapf(err, "error on get object %s", key)
	}
	defer object.Close()

	data, err := io.ReadAll(object)
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return "", &notFound{path: key, cause: err}
		}
		return "", errors.Wrapf(err, "error on read object %s", key)
	}

	l.Logger.Debug(fmt.Sprintf(":package:Read s3://%s/%s (%d bytes)", l.Bucket, key, len(data)))

	return toText(key, data)
}
