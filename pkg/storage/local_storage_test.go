package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/quizdeck/quizdeck-cli/internal/testcommon"
	"github.com/quizdeck/quizdeck-cli/pkg/protocol"
)

func TestLocalStorage(t *testing.T) {
	suite.Run(t, &Suite{})
}

type Suite struct {
	testcommon.Suite
	storage  *LocalStorage
	tempPath string
}

func (s *Suite) SetupTest() {
	s.tempPath = s.T().TempDir()
	s.storage = NewLocalStorage(s.tempPath)
	s.Require().NotNil(s.storage)

	err := s.storage.Initialize()
	s.Require().NoError(err)
}

func (s *Suite) TestIdentityStorage() {
	s.Require().Empty(s.storage.UserID())
	s.Require().Empty(s.storage.DisplayName())

	id := protocol.UserID(uuid.NewString())
	err := s.storage.SetUserID(id)
	s.Require().NoError(err)
	s.Require().Equal(id, s.storage.UserID())
	s.Require().Empty(s.storage.DisplayName())

	name := gofakeit.Username()
	err = s.storage.SetDisplayName(name)
	s.Require().NoError(err)
	s.Require().Equal(id, s.storage.UserID())
	s.Require().Equal(name, s.storage.DisplayName())
}

func (s *Suite) TestTokenStorage() {
	s.Require().Empty(s.storage.AuthToken())
	s.Require().Empty(s.storage.SessionToken())

	authToken := gofakeit.LetterN(32)
	err := s.storage.SetAuthToken(authToken)
	s.Require().NoError(err)
	s.Require().Equal(authToken, s.storage.AuthToken())

	sessionToken := gofakeit.LetterN(32)
	err = s.storage.SetSessionToken(sessionToken)
	s.Require().NoError(err)
	s.Require().Equal(authToken, s.storage.AuthToken())
	s.Require().Equal(sessionToken, s.storage.SessionToken())
}

func (s *Suite) TestPersistsAcrossInstances() {
	id := protocol.UserID(uuid.NewString())
	err := s.storage.SetUserID(id)
	s.Require().NoError(err)

	reopened := NewLocalStorage(s.tempPath)
	err = reopened.Initialize()
	s.Require().NoError(err)
	s.Require().Equal(id, reopened.UserID())
}

func (s *Suite) TestResetIdentity() {
	err := s.storage.SetUserID(protocol.UserID(uuid.NewString()))
	s.Require().NoError(err)
	err = s.storage.SetAuthToken(gofakeit.LetterN(32))
	s.Require().NoError(err)

	err = s.storage.ResetIdentity()
	s.Require().NoError(err)
	s.Require().Empty(s.storage.UserID())
	s.Require().Empty(s.storage.AuthToken())
}

func (s *Suite) TestCorruptStorageIsCleared() {
	err := s.storage.SetUserID(protocol.UserID(uuid.NewString()))
	s.Require().NoError(err)

	path := filepath.Join(s.tempPath, identityFileName)
	err = os.WriteFile(path, []byte(`{broken json`), 0644)
	s.Require().NoError(err)

	reopened := NewLocalStorage(s.tempPath)
	err = reopened.Initialize()
	s.Require().NoError(err)
	s.Require().Empty(reopened.UserID())
}
