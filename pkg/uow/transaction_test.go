package uow

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type TransactionTestSuite struct {
	suite.Suite
}

func TestTransactionSuite(t *testing.T) {
	suite.Run(t, new(TransactionTestSuite))
}

type fakeRepo struct {
	dbtx DBTX
}

type otherRepo struct{}

func (s *TransactionTestSuite) TestGetCachesRepository() {
	var calls int
	repos := map[RepositoryName]RepositoryFactory{
		"fake": func(dbtx DBTX) Repository {
			calls++
			return &fakeRepo{dbtx: dbtx}
		},
	}
	tx := NewTransaction(nil, repos)

	first, err := tx.Get("fake")
	s.Require().NoError(err)
	second, err := tx.Get("fake")
	s.Require().NoError(err)

	s.Same(first, second)
	s.Equal(1, calls)
}

func (s *TransactionTestSuite) TestGetAs() {
	repos := map[RepositoryName]RepositoryFactory{
		"fake": func(dbtx DBTX) Repository { return &fakeRepo{dbtx: dbtx} },
	}
	tx := NewTransaction(nil, repos)

	repo, err := GetAs[*fakeRepo](tx, "fake")
	s.Require().NoError(err)
	s.NotNil(repo)

	_, err = GetAs[*otherRepo](tx, "fake")
	s.Require().ErrorIs(err, ErrInvalidRepositoryType)

	_, err = GetAs[*fakeRepo](tx, "missing")
	s.Require().ErrorIs(err, ErrRepositoryNotRegistered)
}

func (s *TransactionTestSuite) TestRegisterTwice() {
	u := NewUnitOfWork(nil)
	factory := func(dbtx DBTX) Repository { return &fakeRepo{dbtx: dbtx} }

	s.Require().NoError(u.Register("fake", factory))
	s.Require().ErrorIs(u.Register("fake", factory), ErrRepositoryAlreadyRegistered)
}
