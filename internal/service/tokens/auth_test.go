package tokens

import (
	"testing"
	"time"

	"github.com/fsdevblog/village-connect/internal/domain"
	"github.com/stretchr/testify/suite"
)

type TokensTestSuite struct {
	suite.Suite
	key []byte
}

func TestTokensSuite(t *testing.T) {
	suite.Run(t, new(TokensTestSuite))
}

func (s *TokensTestSuite) SetupTest() {
	s.key = []byte("secret")
}

func (s *TokensTestSuite) TestRoundTrip() {
	tokenString, err := GenerateUserJWT(42, domain.UserTypeDelivery, time.Minute, s.key)
	s.Require().NoError(err)

	token, err := ValidateUserJWT(tokenString, s.key)
	s.Require().NoError(err)

	claims, ok := token.Claims.(*UserClaims)
	s.Require().True(ok)
	s.Equal(int64(42), claims.ID)
	s.Equal(domain.UserTypeDelivery, claims.Role)
}

func (s *TokensTestSuite) TestExpired() {
	tokenString, err := GenerateUserJWT(1, domain.UserTypeRegular, -time.Minute, s.key)
	s.Require().NoError(err)

	_, err = ValidateUserJWT(tokenString, s.key)
	s.ErrorIs(err, ErrTokenExpired)
}

func (s *TokensTestSuite) TestWrongKey() {
	tokenString, err := GenerateUserJWT(1, domain.UserTypeRegular, time.Minute, s.key)
	s.Require().NoError(err)

	_, err = ValidateUserJWT(tokenString, []byte("other"))
	s.Error(err)
	s.NotErrorIs(err, ErrTokenExpired)
}
