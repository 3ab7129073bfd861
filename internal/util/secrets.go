package util

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Secrets struct {
	Port       int              `json:"port"`
	Storage    StorageSecrets   `json:"storage"`
	Broker     BrokerSecrets    `json:"broker"`
	Gpt        string           `json:"gpt"`
	DappRadar  ApiKeySecrets    `json:"dappRadar"`
	CryptoRank ApiKeySecrets    `json:"cryptoRank"`
	RateLimit  RateLimitSecrets `json:"rateLimit"`
}

type StorageSecrets struct {
	// one of memory, file, postgres, sqlite
	Driver string    `json:"driver"`
	Path   string    `json:"path"`
	Db     DbSecrets `json:"db"`
}

type BrokerSecrets struct {
	Endpoint        string `json:"endpoint"`
	ProviderAddress string `json:"providerAddress"`
	Prompt          string `json:"prompt"`
	UseMock         bool   `json:"useMock"`
}

type ApiKeySecrets struct {
	ApiKey string `json:"apiKey"`
}

type RateLimitSecrets struct {
	IntervalMs int `json:"intervalMs"`
	Burst      int `json:"burst"`
}

type DbSecrets struct {
	Host      string `json:"host"`
	User      string `json:"user"`
	Port      string `json:"port"`
	Password  string `json:"password"`
	Database  string `json:"database"`
	EnableSsl bool   `json:"enableSsl"`
}

func (t DbSecrets) ToConnectionStr() string {
	x := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s",
		t.Host, t.Port, t.User, t.Password, t.Database)
	if !t.EnableSsl {
		x += " sslmode=disable"
	}
	return x
}

const (
	DefaultPort            = 4000
	DefaultProviderAddress = "0x3feE5a4dd5FDb8a32dDA97Bed899830605dBD9D3"
	DefaultPrompt          = "say I am busy for every hello"
)

func secretsFile() string {
	switch strings.ToLower(os.Getenv("LAUNCHPAD_ENV")) {
	case "dev":
		return "secrets-dev.json"
	case "test":
		return "secrets-test.json"
	}
	return "/go/src/app/secrets.json"
}

// LoadSecrets reads the secrets file for the current LAUNCHPAD_ENV, then
// applies overrides from the environment (and .env, when present). A
// missing secrets file is fine as long as the environment covers it.
func LoadSecrets() (*Secrets, error) {
	// .env is optional
	_ = godotenv.Load()

	secrets := Secrets{}
	f, err := os.ReadFile(secretsFile())
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("could not open secrets file: %w", err)
	}
	if err == nil {
		if err := json.Unmarshal(f, &secrets); err != nil {
			return nil, fmt.Errorf("failed to parse secrets file: %w", err)
		}
	}

	if err := applyEnvOverrides(&secrets); err != nil {
		return nil, err
	}
	applyDefaults(&secrets)

	return &secrets, nil
}

func applyEnvOverrides(s *Secrets) error {
	if v, ok := os.LookupEnv("PORT"); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		s.Port = port
	}
	if v, ok := os.LookupEnv("DAPP_RADAR_API_KEY"); ok {
		s.DappRadar.ApiKey = v
	}
	if v, ok := os.LookupEnv("CRYPTO_RANK_API_KEY"); ok {
		s.CryptoRank.ApiKey = v
	}
	if v, ok := os.LookupEnv("OPENAI_API_KEY"); ok {
		s.Gpt = v
	}
	if v, ok := os.LookupEnv("BROKER_ENDPOINT"); ok {
		s.Broker.Endpoint = v
	}
	if v, ok := os.LookupEnv("STORAGE_DRIVER"); ok {
		s.Storage.Driver = v
	}
	if v, ok := os.LookupEnv("STORAGE_PATH"); ok {
		s.Storage.Path = v
	}
	return nil
}

func applyDefaults(s *Secrets) {
	if s.Port == 0 {
		s.Port = DefaultPort
	}
	if s.Storage.Driver == "" {
		s.Storage.Driver = "file"
	}
	if s.Storage.Path == "" {
		s.Storage.Path = "data"
	}
	if s.Broker.ProviderAddress == "" {
		s.Broker.ProviderAddress = DefaultProviderAddress
	}
	if s.Broker.Prompt == "" {
		s.Broker.Prompt = DefaultPrompt
	}
	if s.RateLimit.IntervalMs == 0 {
		s.RateLimit.IntervalMs = 100
	}
	if s.RateLimit.Burst == 0 {
		s.RateLimit.Burst = 30
	}
}
