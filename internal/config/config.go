package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/shibukawa/configdir"
	"go.uber.org/zap"
)

const logsDirectory = "logs"

const VendorName = "quizdeck"
const ApplicationName = "quizdeck"

const DefaultServerURL = "wss://play.quizdeck.app"

const ChunkDuration = 60 * time.Second

const UserColor = lipgloss.Color("#7D56F4")
const ForegroundShadeColor = lipgloss.Color("#555555")

var serverURL string
var displayName string
var host bool
var debug bool
var anonymous bool
var initialAction string

var Logger *zap.Logger
var LogFilePath string

func SetupLogger() {
	var c zap.Config
	if debug {
		c = zap.NewDevelopmentConfig()
	} else {
		c = zap.NewProductionConfig()
	}

	LogFilePath = createLogFile()
	c.OutputPaths = []string{LogFilePath}
	c.Development = false
	logger, err := c.Build()
	if err != nil {
		panic(err)
	}
	Logger = logger
}

func createLogFile() string {
	name := fmt.Sprintf("quizdeck-%s.log", time.Now().UTC().Format(time.RFC3339))
	name = strings.Replace(name, ":", "-", -1)

	configDirs := configdir.New(VendorName, ApplicationName)
	folders := configDirs.QueryFolders(configdir.Global)
	path := filepath.Join(folders[0].Path, logsDirectory, name)

	if err := os.MkdirAll(filepath.Dir(path), 0770); err != nil {
		panic(err)
	}

	if _, err := os.Create(path); err != nil {
		panic(err)
	}

	return path
}

func ParseArguments() {
	flag.StringVar(&serverURL, "server", DefaultServerURL, "Event server base URL")
	flag.StringVar(&displayName, "name", "", "Display name")
	flag.BoolVar(&host, "host", false, "Drive the quiz flow as the event host")
	flag.BoolVar(&debug, "debug", false, "Show debug info")
	flag.BoolVar(&anonymous, "anonymous", false, "Anonymous mode, nothing is persisted")
	flag.Parse()

	initialAction = strings.Join(flag.Args(), " ")
}

func GenerateDisplayName() string {
	return fmt.Sprintf("guest-%d", time.Now().Unix())
}

func ServerURL() string {
	return serverURL
}

func DisplayName() string {
	return displayName
}

func Host() bool {
	return host
}

func Debug() bool {
	return debug
}

func Anonymous() bool {
	return anonymous
}

func InitialAction() string {
	return initialAction
}
