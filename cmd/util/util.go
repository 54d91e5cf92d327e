package util

import (
	"strings"

	"github.com/ValentinKolb/etcdc/client"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	// Wrap is the number of characters to Wrap the help text at
	Wrap int = 50
)

// WrapString wraps a string at Wrap characters
func WrapString(text string) string {
	var wrappedLines []string
	var currentLine strings.Builder
	lineWidth := 0

	for _, word := range strings.Fields(text) {
		wordWidth := len(word)

		// Check if we need to wrap
		if lineWidth > 0 && lineWidth+1+wordWidth > Wrap {
			wrappedLines = append(wrappedLines, currentLine.String())
			currentLine.Reset()
			lineWidth = 0
		}

		// Add space before word (if not first word on line)
		if lineWidth > 0 {
			currentLine.WriteString(" ")
			lineWidth++
		}

		// Add the word
		currentLine.WriteString(word)
		lineWidth += wordWidth
	}

	// Add any remaining text
	if currentLine.Len() > 0 {
		wrappedLines = append(wrappedLines, currentLine.String())
	}

	return strings.Join(wrappedLines, "\n")
}

// SetupClientFlags adds the common connection flags to a command
func SetupClientFlags(cmd *cobra.Command) {
	key := "endpoints"
	cmd.PersistentFlags().String(key, "http://localhost:2379", WrapString("The addresses of the etcd cluster members as a comma-separated list. The order defines the failover priority"))

	key = "timeout"
	cmd.PersistentFlags().Int(key, 10, WrapString("The timeout in seconds for a single request (0 disables the timeout)"))

	key = "username"
	cmd.PersistentFlags().String(key, "", WrapString("Username for HTTP basic auth"))

	key = "password"
	cmd.PersistentFlags().String(key, "", WrapString("Password for HTTP basic auth"))

	key = "tls-ca"
	cmd.PersistentFlags().String(key, "", WrapString("Path to the CA bundle for HTTPS endpoints"))

	key = "tls-cert"
	cmd.PersistentFlags().String(key, "", WrapString("Path to the client certificate for HTTPS endpoints"))

	key = "tls-key"
	cmd.PersistentFlags().String(key, "", WrapString("Path to the client certificate key for HTTPS endpoints"))

	key = "log-level"
	cmd.PersistentFlags().String(key, "info", WrapString("Log level (debug, info, warn, error)"))
}

// InitClientConfig initializes configuration from environment variables
func InitClientConfig() {
	// load env files
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	// initialize viper
	viper.SetEnvPrefix("etcdc")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match
}

// GetClientConfig reads client configuration from viper
func GetClientConfig() client.ClientConfig {
	return client.ClientConfig{
		Endpoints:     strings.Split(viper.GetString("endpoints"), ","),
		TimeoutSecond: viper.GetInt("timeout"),
		Username:      viper.GetString("username"),
		Password:      viper.GetString("password"),
		TLSCaFile:     viper.GetString("tls-ca"),
		TLSCertFile:   viper.GetString("tls-cert"),
		TLSKeyFile:    viper.GetString("tls-key"),
		LogLevel:      viper.GetString("log-level"),
	}
}

// NewClient creates a client from the current configuration
func NewClient() (*client.Client, error) {
	config := GetClientConfig()
	client.InitLoggers(config)
	return client.New(config)
}

// BindCommandFlags binds a command's flags to viper
func BindCommandFlags(cmd *cobra.Command) error {
	return viper.BindPFlags(cmd.Flags())
}
