package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiPortEnvKey       = "API_PORT"
	dbConnEnvKey        = "DB_CONNECTION_URL"
	providerURLEnvKey   = "CHAIN_PROVIDER_URL"
	providerKeyEnvKey   = "CHAIN_PROVIDER_PROJECT_ID"
	redisAddrEnvKey     = "REDIS_ADDR"
	jwtSecretEnvKey     = "JWT_SECRET"
	explorerURLEnvKey   = "EXPLORER_BASE_URL"
	pollIntervalEnvKey  = "POLL_INTERVAL_SECONDS"
	signTimeoutEnvKey   = "SIGN_TIMEOUT_SECONDS"
	submitTimeoutEnvKey = "SUBMIT_TIMEOUT_SECONDS"
	pinOnLedgerEnvKey   = "PIN_ON_LEDGER"
	networkEnvKey       = "CHAIN_NETWORK"
	sessionTTLEnvKey    = "SESSION_TTL_SECONDS"
	txExpiryEnvKey      = "TX_EXPIRY_MINUTES"
	maxRetriesEnvKey    = "TX_MAX_RETRY_COUNT"
)

const (
	defaultPollInterval  = 10
	defaultSignTimeout   = 300
	defaultSubmitTimeout = 60
	defaultSessionTTL    = 86400
	defaultTxExpiry      = 30
	defaultMaxRetries    = 5
)

type App struct {
	Port            string
	DBConnectionURL string
	ProviderURL     string
	ProviderKey     string
	RedisAddr       string
	JWTSecret       string
	ExplorerBaseURL string
	Network         string
	PollInterval    time.Duration
	SignTimeout     time.Duration
	SubmitTimeout   time.Duration
	SessionTTL      time.Duration
	TxExpiry        time.Duration
	MaxRetries      int
	PinOnLedger     bool
}

func NewApp() (App, error) {

	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	providerURL, ok := os.LookupEnv(providerURLEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, providerURLEnvKey)
	}

	providerKey, ok := os.LookupEnv(providerKeyEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, providerKeyEnvKey)
	}

	redisAddr, ok := os.LookupEnv(redisAddrEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, redisAddrEnvKey)
	}

	jwtSecret, ok := os.LookupEnv(jwtSecretEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, jwtSecretEnvKey)
	}

	explorerURL, ok := os.LookupEnv(explorerURLEnvKey)
	if !ok {
		explorerURL = "https://preview.cardanoscan.io"
	}

	network, ok := os.LookupEnv(networkEnvKey)
	if !ok {
		network = "preview"
	}

	return App{
		Port:            port,
		DBConnectionURL: dbConn,
		ProviderURL:     providerURL,
		ProviderKey:     providerKey,
		RedisAddr:       redisAddr,
		JWTSecret:       jwtSecret,
		ExplorerBaseURL: explorerURL,
		Network:         network,
		PollInterval:    secondsOrDefault(pollIntervalEnvKey, defaultPollInterval),
		SignTimeout:     secondsOrDefault(signTimeoutEnvKey, defaultSignTimeout),
		SubmitTimeout:   secondsOrDefault(submitTimeoutEnvKey, defaultSubmitTimeout),
		SessionTTL:      secondsOrDefault(sessionTTLEnvKey, defaultSessionTTL),
		TxExpiry:        minutesOrDefault(txExpiryEnvKey, defaultTxExpiry),
		MaxRetries:      intOrDefault(maxRetriesEnvKey, defaultMaxRetries),
		PinOnLedger:     os.Getenv(pinOnLedgerEnvKey) == "true",
	}, nil
}

func secondsOrDefault(key string, def int) time.Duration {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return time.Duration(def) * time.Second
	}
	secs, err := strconv.Atoi(raw)
	if err != nil || secs <= 0 {
		return time.Duration(def) * time.Second
	}
	return time.Duration(secs) * time.Second
}

func minutesOrDefault(key string, def int) time.Duration {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return time.Duration(def) * time.Minute
	}
	mins, err := strconv.Atoi(raw)
	if err != nil || mins <= 0 {
		return time.Duration(def) * time.Minute
	}
	return time.Duration(mins) * time.Minute
}

func intOrDefault(key string, def int) int {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val <= 0 {
		return def
	}
	return val
}
