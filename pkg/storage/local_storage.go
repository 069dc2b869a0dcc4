package storage

import (
	"encoding/json"
	"sync"

	"github.com/pkg/errors"
	"github.com/shibukawa/configdir"
	"go.uber.org/zap"

	"github.com/quizdeck/quizdeck-cli/internal/config"
	"github.com/quizdeck/quizdeck-cli/pkg/protocol"
)

const identityFileName = "identity.json"

type LocalStorage struct {
	identity identityStorage

	configDirs configdir.ConfigDir
	mutex      *sync.RWMutex
}

type identityStorage struct {
	UserID       protocol.UserID `json:"id"`
	DisplayName  string          `json:"displayName"`
	AuthToken    string          `json:"authToken"`
	SessionToken string          `json:"sessionToken"`
}

func NewLocalStorage(localPath string) *LocalStorage {
	storage := &LocalStorage{
		configDirs: configdir.New(config.VendorName, config.ApplicationName),
		mutex:      &sync.RWMutex{},
	}
	storage.configDirs.LocalPath = localPath
	return storage
}

func (s *LocalStorage) Initialize() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	err := s.readIdentity()
	config.Logger.Info("storage initialized",
		zap.String("userID", s.identity.UserID.String()),
		zap.Error(err),
	)
	return err
}

func (s *LocalStorage) readIdentity() error {
	folder := s.configDirs.QueryFolderContainsFile(identityFileName)
	if folder == nil {
		config.Logger.Info("no identity storage found")
		return nil
	}

	data, err := folder.ReadFile(identityFileName)
	if err != nil {
		return errors.Wrap(err, "failed to read identity data")
	}

	err = json.Unmarshal(data, &s.identity)
	if err == nil {
		return nil
	}

	config.Logger.Error("failed to parse identity storage, clearing storage", zap.Error(err))

	err = s.resetIdentityLocked()
	if err != nil {
		config.Logger.Error("failed to reset identity storage", zap.Error(err))
	}

	return nil
}

func (s *LocalStorage) saveIdentityStorage() error {
	identityJson, err := json.Marshal(s.identity)
	if err != nil {
		return errors.Wrap(err, "failed to marshal identity storage")
	}

	folders := s.queryFolders()
	err = folders[0].WriteFile(identityFileName, identityJson)
	if err != nil {
		return errors.Wrap(err, "failed to save identity storage")
	}

	return nil
}

func (s *LocalStorage) queryFolders() []*configdir.Config {
	if s.configDirs.LocalPath != "" {
		return s.configDirs.QueryFolders(configdir.Local)
	}
	return s.configDirs.QueryFolders(configdir.Global)
}

func (s *LocalStorage) ResetIdentity() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.resetIdentityLocked()
}

func (s *LocalStorage) resetIdentityLocked() error {
	s.identity = identityStorage{}
	return s.saveIdentityStorage()
}

func (s *LocalStorage) UserID() protocol.UserID {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.identity.UserID
}

func (s *LocalStorage) SetUserID(id protocol.UserID) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.identity.UserID = id
	return s.saveIdentityStorage()
}

func (s *LocalStorage) DisplayName() string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.identity.DisplayName
}

func (s *LocalStorage) SetDisplayName(name string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.identity.DisplayName = name
	return s.saveIdentityStorage()
}

func (s *LocalStorage) AuthToken() string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.identity.AuthToken
}

func (s *LocalStorage) SetAuthToken(token string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.identity.AuthToken = token
	return s.saveIdentityStorage()
}

func (s *LocalStorage) SessionToken() string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.identity.SessionToken
}

func (s *LocalStorage) SetSessionToken(token string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.identity.SessionToken = token
	return s.saveIdentityStorage()
}
