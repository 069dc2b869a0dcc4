package testcommon

import (
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/quizdeck/quizdeck-cli/internal/config"
)

// Suite is the shared base for package test suites: it installs a
// development logger into the global config so code under test logs
// through the same path as the real binary.
type Suite struct {
	suite.Suite
	Logger *zap.Logger
}

func (s *Suite) SetupSuite() {
	s.Logger = SetupConfigLogger(s.T())
}

func (s *Suite) TearDownSuite() {
	_ = config.Logger.Sync()
}
