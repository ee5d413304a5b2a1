package admin

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl"
	"github.com/segmentio/kafka-go/sasl/aws_msk_iam_v2"
	"github.com/segmentio/kafka-go/sasl/plain"
	"github.com/segmentio/kafka-go/sasl/scram"
	log "github.com/sirupsen/logrus"
)

const defaultConnTimeout = 10 * time.Second

// SASLMechanism is the name of a SASL mechanism that will be used for client
// authentication.
type SASLMechanism string

const (
	SASLMechanismAWSMSKIAM   SASLMechanism = "aws-msk-iam"
	SASLMechanismPlain       SASLMechanism = "plain"
	SASLMechanismScramSHA256 SASLMechanism = "scram-sha-256"
	SASLMechanismScramSHA512 SASLMechanism = "scram-sha-512"
)

// ConnectorConfig contains the configuration used to contruct a connector.
type ConnectorConfig struct {
	BrokerAddr  string
	ConnTimeout time.Duration
	TLS         TLSConfig
	SASL        SASLConfig
}

// TLSConfig stores the TLS-related configuration for a connection.
type TLSConfig struct {
	Enabled    bool
	CertPath   string
	KeyPath    string
	CACertPath string
	ServerName string
	SkipVerify bool
}

// SASLConfig stores the SASL-related configuration for a connection. If
// SecretsManagerArn is set, the username and password are fetched from AWS
// Secrets Manager instead of being read from the config directly.
type SASLConfig struct {
	Enabled           bool
	Mechanism         SASLMechanism
	Username          string
	Password          string
	SecretsManagerArn string
}

// Connector is a wrapper around the low-level, kafka-go dialer and client.
type Connector struct {
	Config      ConnectorConfig
	Dialer      *kafka.Dialer
	KafkaClient *kafka.Client
}

// NewConnector contructs a new Connector instance given the argument config.
func NewConnector(config ConnectorConfig) (*Connector, error) {
	connector := &Connector{
		Config: config,
	}

	timeout := config.ConnTimeout
	if timeout <= 0 {
		timeout = defaultConnTimeout
	}

	var mechanismClient sasl.Mechanism
	var tlsConfig *tls.Config
	var err error

	if config.SASL.Enabled {
		mechanismClient, err = saslMechanismClient(context.Background(), config.SASL)
		if err != nil {
			return nil, err
		}
	}

	if config.TLS.Enabled {
		var certs []tls.Certificate
		var caCertPool *x509.CertPool

		if config.TLS.CertPath != "" && config.TLS.KeyPath != "" {
			log.Debugf(
				"Loading key pair from %s and %s",
				config.TLS.CertPath,
				config.TLS.KeyPath,
			)
			cert, err := tls.LoadX509KeyPair(config.TLS.CertPath, config.TLS.KeyPath)
			if err != nil {
				return nil, err
			}
			certs = append(certs, cert)
		}

		if config.TLS.CACertPath != "" {
			log.Debugf("Adding CA certs from %s", config.TLS.CACertPath)
			caCertPool = x509.NewCertPool()
			caCertContents, err := os.ReadFile(config.TLS.CACertPath)
			if err != nil {
				return nil, err
			}
			if ok := caCertPool.AppendCertsFromPEM(caCertContents); !ok {
				return nil, fmt.Errorf(
					"Could not append CA certs from %s",
					config.TLS.CACertPath,
				)
			}
		}

		tlsConfig = &tls.Config{
			Certificates:       certs,
			RootCAs:            caCertPool,
			InsecureSkipVerify: config.TLS.SkipVerify,
			ServerName:         config.TLS.ServerName,
		}
	}

	connector.Dialer = &kafka.Dialer{
		SASLMechanism: mechanismClient,
		Timeout:       timeout,
		TLS:           tlsConfig,
	}

	log.Debugf("Connecting to cluster on address %s with TLS enabled=%v, SASL enabled=%v",
		config.BrokerAddr,
		config.TLS.Enabled,
		config.SASL.Enabled,
	)
	connector.KafkaClient = &kafka.Client{
		Addr:    kafka.TCP(config.BrokerAddr),
		Timeout: timeout,
		Transport: &kafka.Transport{
			Dial:        connector.Dialer.DialFunc,
			DialTimeout: timeout,
			SASL:        mechanismClient,
			TLS:         tlsConfig,
			MetadataTTL: 10 * time.Minute,
		},
	}

	return connector, nil
}

func saslMechanismClient(ctx context.Context, config SASLConfig) (sasl.Mechanism, error) {
	username := config.Username
	password := config.Password

	if config.SecretsManagerArn != "" {
		var err error
		username, password, err = fetchSecretCredentials(ctx, config.SecretsManagerArn)
		if err != nil {
			return nil, err
		}
	}

	switch config.Mechanism {
	case SASLMechanismAWSMSKIAM:
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, err
		}
		return aws_msk_iam_v2.NewMechanism(awsCfg), nil
	case SASLMechanismPlain:
		return plain.Mechanism{
			Username: username,
			Password: password,
		}, nil
	case SASLMechanismScramSHA256:
		return scram.Mechanism(scram.SHA256, username, password)
	case SASLMechanismScramSHA512:
		return scram.Mechanism(scram.SHA512, username, password)
	default:
		return nil, fmt.Errorf("Unrecognized SASL mechanism: %s", config.Mechanism)
	}
}

// fetchSecretCredentials pulls a {"username": ..., "password": ...} secret
// out of AWS Secrets Manager.
func fetchSecretCredentials(ctx context.Context, arn string) (string, string, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return "", "", err
	}

	client := secretsmanager.NewFromConfig(awsCfg)
	output, err := client.GetSecretValue(
		ctx,
		&secretsmanager.GetSecretValueInput{
			SecretId: aws.String(arn),
		},
	)
	if err != nil {
		return "", "", err
	}

	credentials := struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}{}
	if err := json.Unmarshal([]byte(aws.ToString(output.SecretString)), &credentials); err != nil {
		return "", "", fmt.Errorf("Error parsing secret value from %s: %+v", arn, err)
	}

	return credentials.Username, credentials.Password, nil
}

// SASLNameToMechanism converts the argument SASL mechanism name string to a valid instance of
// the SASLMechanism enum.
func SASLNameToMechanism(name string) (SASLMechanism, error) {
	normalizedName := strings.ReplaceAll(strings.ToLower(name), "_", "-")
	mechanism := SASLMechanism(normalizedName)

	switch mechanism {
	case SASLMechanismAWSMSKIAM,
		SASLMechanismPlain,
		SASLMechanismScramSHA256,
		SASLMechanismScramSHA512:
		return mechanism, nil
	default:
		return mechanism, fmt.Errorf(
			"SASL mechanism '%s' is not valid; choices are AWS-MSK-IAM, PLAIN, SCRAM-SHA-256, and SCRAM-SHA-512",
			mechanism,
		)
	}
}
