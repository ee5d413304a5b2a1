package admin

import (
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConnectorDefaultTimeout(t *testing.T) {
	connector, err := NewConnector(
		ConnectorConfig{
			BrokerAddr: "localhost:9092",
		},
	)
	require.NoError(t, err)

	assert.Equal(t, 10*time.Second, connector.Dialer.Timeout)
	assert.Equal(t, 10*time.Second, connector.KafkaClient.Timeout)

	transport, ok := connector.KafkaClient.Transport.(*kafka.Transport)
	require.True(t, ok)
	assert.Equal(t, 10*time.Second, transport.DialTimeout)
}

func TestNewConnectorCustomTimeout(t *testing.T) {
	connector, err := NewConnector(
		ConnectorConfig{
			BrokerAddr:  "localhost:9092",
			ConnTimeout: 15 * time.Second,
		},
	)
	require.NoError(t, err)

	assert.Equal(t, 15*time.Second, connector.Dialer.Timeout)
	assert.Equal(t, 15*time.Second, connector.KafkaClient.Timeout)

	transport, ok := connector.KafkaClient.Transport.(*kafka.Transport)
	require.True(t, ok)
	assert.Equal(t, 15*time.Second, transport.DialTimeout)
}

func TestSASLNameToMechanism(t *testing.T) {
	mechanism, err := SASLNameToMechanism("scram-sha-512")
	assert.NoError(t, err)
	assert.Equal(t, SASLMechanismScramSHA512, mechanism)

	mechanism, err = SASLNameToMechanism("SCRAM_SHA_512")
	assert.NoError(t, err)
	assert.Equal(t, SASLMechanismScramSHA512, mechanism)

	mechanism, err = SASLNameToMechanism("PLAIN")
	assert.NoError(t, err)
	assert.Equal(t, SASLMechanismPlain, mechanism)

	_, err = SASLNameToMechanism("not-a-mechanism")
	assert.Error(t, err)
}
