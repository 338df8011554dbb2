package config

type SignerConfig struct {
	RootKey string
}

func loadSigner(missing *[]string) SignerConfig {
	return SignerConfig{
		RootKey: mustenv("SIGNER_ROOT_KEY", missing),
	}
}
