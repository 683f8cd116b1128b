package psswd

import (
	"strings"
	"testing"

	"github.com/fsdevblog/village-connect/internal/domain"
	"github.com/stretchr/testify/suite"
)

type PasswordHashTestSuite struct {
	suite.Suite
	hasher PasswordHash
}

func TestPasswordHashSuite(t *testing.T) {
	suite.Run(t, new(PasswordHashTestSuite))
}

func (s *PasswordHashTestSuite) TestHashAndCompare() {
	password := strings.Repeat("a", MaxPasswordBytes)
	hash, err := s.hasher.HashPassword(password)
	s.Require().NoError(err)
	s.True(s.hasher.ComparePassword(password, hash))
	s.False(s.hasher.ComparePassword("password1", hash))
}

func (s *PasswordHashTestSuite) TestTooLong() {
	_, err := s.hasher.HashPassword(strings.Repeat("a", 100))
	s.Require().Error(err)

	var ve *domain.ValidationError
	s.Require().ErrorAs(err, &ve)
	s.Equal("password", ve.Field)
}
