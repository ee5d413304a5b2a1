package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClusterValidate(t *testing.T) {
	type testCase struct {
		description   string
		clusterConfig ClusterConfig
		expError      bool
	}

	testCases := []testCase{
		{
			description: "all good",
			clusterConfig: ClusterConfig{
				Meta: ClusterMeta{
					Name:        "test-cluster",
					Region:      "test-region",
					Environment: "test-environment",
					Description: "test-description",
				},
				Spec: ClusterSpec{
					BootstrapAddrs: []string{"broker-addr"},
				},
			},
			expError: false,
		},
		{
			description: "missing meta fields",
			clusterConfig: ClusterConfig{
				Meta: ClusterMeta{
					Environment: "test-environment",
					Description: "test-description",
				},
				Spec: ClusterSpec{
					BootstrapAddrs: []string{"broker-addr"},
				},
			},
			expError: true,
		},
		{
			description: "missing bootstrap addresses",
			clusterConfig: ClusterConfig{
				Meta: ClusterMeta{
					Name:        "test-cluster",
					Region:      "test-region",
					Environment: "test-environment",
					Description: "test-description",
				},
				Spec: ClusterSpec{},
			},
			expError: true,
		},
		{
			description: "negative connection timeout",
			clusterConfig: ClusterConfig{
				Meta: ClusterMeta{
					Name:        "test-cluster",
					Region:      "test-region",
					Environment: "test-environment",
					Description: "test-description",
				},
				Spec: ClusterSpec{
					BootstrapAddrs: []string{"broker-addr"},
					ConnTimeoutSec: -5,
				},
			},
			expError: true,
		},
		{
			description: "valid sasl mechanism",
			clusterConfig: ClusterConfig{
				Meta: ClusterMeta{
					Name:        "test-cluster",
					Region:      "test-region",
					Environment: "test-environment",
					Description: "test-description",
				},
				Spec: ClusterSpec{
					BootstrapAddrs: []string{"broker-addr"},
					SASL: SASLConfig{
						Enabled:   true,
						Mechanism: "SCRAM-SHA-512",
						Username:  "test-user",
						Password:  "test-password",
					},
				},
			},
			expError: false,
		},
		{
			description: "invalid sasl mechanism",
			clusterConfig: ClusterConfig{
				Meta: ClusterMeta{
					Name:        "test-cluster",
					Region:      "test-region",
					Environment: "test-environment",
					Description: "test-description",
				},
				Spec: ClusterSpec{
					BootstrapAddrs: []string{"broker-addr"},
					SASL: SASLConfig{
						Enabled:   true,
						Mechanism: "not-a-mechanism",
					},
				},
			},
			expError: true,
		},
	}

	for _, testCase := range testCases {
		err := testCase.clusterConfig.Validate()
		if testCase.expError {
			assert.Error(t, err, testCase.description)
		} else {
			assert.NoError(t, err, testCase.description)
		}
	}
}
