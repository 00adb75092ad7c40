package loader

import (
	"bytes"
	"io"
	"io/ioutil"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

const S3Scheme = "s3://"

var (
	// DefaultS3Source Source used by Open for s3:// paths.
	DefaultS3Source = &S3Source{}
)

// Open opens a local file or an s3://bucket/key object for reading.
func Open(source string) (io.ReadCloser, error) {
	if strings.HasPrefix(source, S3Scheme) {
		return DefaultS3Source.Open(source)
	}
	return os.Open(source)
}

// S3Source Downloads data objects from S3.
type S3Source struct {
	Region string

	downloader *s3manager.Downloader
}

// ParseS3Path splits s3://bucket/key into bucket and key.
func ParseS3Path(source string) (bucket string, key string, err error) {
	if !strings.HasPrefix(source, S3Scheme) {
		return "", "", ErrUnsupportedSource
	}
	parts := strings.SplitN(strings.TrimPrefix(source, S3Scheme), "/", 2)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", ErrUnsupportedSource
	}
	return parts[0], parts[1], nil
}

func (s *S3Source) Open(source string) (io.ReadCloser, error) {
	bucket, key, err := ParseS3Path(source)
	if err != nil {
		return nil, err
	}

	if s.downloader == nil {
		sess, err := session.NewSession(&aws.Config{
			Region: aws.String(s.Region),
		})
		if err != nil {
			return nil, err
		}
		s.downloader = s3manager.NewDownloader(sess, func(d *s3manager.Downloader) {
			d.Concurrency = 1
		})
	}

	buff := aws.NewWriteAtBuffer([]byte{})
	n, err := s.downloader.Download(buff, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, err
	}
	log.Debug("Downloaded %d bytes from %s", n, source)
	return ioutil.NopCloser(bytes.NewReader(buff.Bytes())), nil
}
