package main

import (
	"fmt"
	"os"
)

// @title Sentra Gas Station API
// @version 1.0
// @description Gas estimates, paymaster reservations and fee administration for cross-chain calls.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
