package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

type StorageTestSuite struct {
	suite.Suite
	l *logrus.Logger
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageTestSuite))
}

func (s *StorageTestSuite) SetupTest() {
	s.l = logrus.New()
	s.l.SetOutput(io.Discard)
}

func (s *StorageTestSuite) TestConfigValidation() {
	_, err := NewS3ObjectStorage(context.Background(), Config{AccessKey: "a", SecretKey: "b"}, s.l)
	s.ErrorIs(err, ErrBucketRequired)

	_, err = NewS3ObjectStorage(context.Background(), Config{Bucket: "files", AccessKey: "a"}, s.l)
	s.ErrorIs(err, ErrCredentialsRequired)

	_, err = NewS3ObjectStorage(context.Background(), Config{
		Bucket: "files", AccessKey: "a", SecretKey: "b", Endpoint: "not a url",
	}, s.l)
	s.Error(err)
}

func (s *StorageTestSuite) TestPresignGet() {
	st, err := NewS3ObjectStorage(context.Background(), Config{
		Endpoint:     "http://localhost:9000",
		Bucket:       "files",
		AccessKey:    "access",
		SecretKey:    "secret",
		UsePathStyle: true,
	}, s.l)
	s.Require().NoError(err)

	link, err := st.PresignGet(context.Background(), "attachments/a.png")
	s.Require().NoError(err)
	s.True(strings.HasPrefix(link, "http://localhost:9000/files/attachments/a.png?"))
	s.Contains(link, "X-Amz-Signature=")

	_, err = st.PresignGet(context.Background(), "")
	s.ErrorIs(err, ErrEmptyKey)
}

func (s *StorageTestSuite) TestObjectKey() {
	key := ObjectKey("certificates", `C:\docs\CAC.PDF`)
	s.True(strings.HasPrefix(key, "certificates/"))
	s.True(strings.HasSuffix(key, ".pdf"))
	s.NotEqual(key, ObjectKey("certificates", "CAC.PDF"))
}
