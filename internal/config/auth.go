package config

import "time"

type AuthConfig struct {
	JWTSecret     string
	JWTTTL        time.Duration
	NonceTTL      time.Duration
	DevToken      string
	SIWEDomain    string
	SIWEURI       string
	SIWEStatement string
	SIWEChainID   uint64
}

func loadAuth(missing *[]string) AuthConfig {
	return AuthConfig{
		JWTSecret:     mustenv("JWT_SECRET", missing),
		JWTTTL:        durationEnvHours("JWT_TTL", 24*time.Hour),
		NonceTTL:      durationEnvSeconds("SIWE_NONCE_TTL", 5*time.Minute),
		DevToken:      getenv("DEV_TOKEN", ""),
		SIWEDomain:    getenv("SIWE_DOMAIN", ""),
		SIWEURI:       getenv("SIWE_URI", ""),
		SIWEStatement: getenv("SIWE_STATEMENT", ""),
		SIWEChainID:   u64env("SIWE_CHAIN_ID", 0),
	}
}
