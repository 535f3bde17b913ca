package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from args (normally os.Args[1:]).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN (postgres URL or sqlite file path)
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "24h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-session-cleanup-interval expired session purge interval
//	-seed seed demo learning content on startup
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var sessionCleanupInterval time.Duration
	var seedDemoData bool

	flags := flag.NewFlagSet("learnhub-server", flag.ContinueOnError)
	flags.Var(&serverAddress, "a", "Net address host:port")
	flags.StringVar(&databaseDSN, "d", "", "Database DSN")
	flags.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flags.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flags.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flags.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flags.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 24h, 30m)")
	flags.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flags.DurationVar(&sessionCleanupInterval, "session-cleanup-interval", 0, "Expired session purge interval")
	flags.BoolVar(&seedDemoData, "seed", false, "Seed demo learning content on startup")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			SeedDemoData: seedDemoData,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			SessionCleanupInterval: sessionCleanupInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns the address in host:port form, or the empty string if the
// address was never set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
