package config

import "strings"

// AdminConfig names the owner account. It is the only caller allowed to
// change chain, paymaster and fee state, and the default fee receiver.
type AdminConfig struct {
	Address string
}

func loadAdmin() AdminConfig {
	addr := strings.TrimSpace(strings.ToLower(getenv("ADMIN_ADDRESS", "")))
	if addr != "" && !strings.HasPrefix(addr, "0x") {
		addr = "0x" + addr
	}
	return AdminConfig{Address: addr}
}
