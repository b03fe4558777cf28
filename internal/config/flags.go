package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
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

// parseFlags parses the server command line.
//
// Flags:
//
//	-a            http server address in format [host]:[port]
//	-grpc-address grpc server address in format [host]:[port]
//	-d            database DSN
//	-tag-db       tag database JSON file
//	-gauth-db     PIN database JSON file
//	-audit-log    audit journal file
//	-master-secret key for anti-tamper derivations
//	-c/-config    json file path with configs
//	-request-timeout inbound request timeout (e.g. "5s")
//	-mqtt-broker  MQTT broker URL for the door actuator
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("door-keeper", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var serverAddress, grpcServerAddress NetAddress
	var databaseDSN, tagDB, gauthDB, auditLog string
	var masterSecret, jsonConfigPath, mqttBroker string
	var requestTimeout time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&tagDB, "tag-db", "", "Tag database JSON file")
	fs.StringVar(&gauthDB, "gauth-db", "", "PIN database JSON file")
	fs.StringVar(&auditLog, "audit-log", "", "Audit journal file")
	fs.StringVar(&masterSecret, "master-secret", "", "Master secret for tag key derivation")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 5s)")
	fs.StringVar(&mqttBroker, "mqtt-broker", "", "MQTT broker URL")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			MasterSecret: masterSecret,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Files: Files{
				TagDBPath:    tagDB,
				GAuthDBPath:  gauthDB,
				AuditLogPath: auditLog,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			MQTTBroker: mqttBroker,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns host:port, or "" when neither part is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses host:port. The host must be an IP address or "localhost".
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
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
