package config

import (
	"errors"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/segmentio/groupctl/pkg/admin"
)

// ClusterConfig stores information about a cluster whose consumer groups are
// inspected by the tool. These configs should reflect the reality of what's
// been set up externally; there's no way to "apply" these at the moment.
type ClusterConfig struct {
	Meta ClusterMeta `json:"meta"`
	Spec ClusterSpec `json:"spec"`

	// RootDir is the directory that this config was loaded from, if set.
	RootDir string `json:"-"`
}

// ClusterMeta contains (mostly immutable) metadata about the cluster. Inspired
// by the meta fields in Kubernetes objects.
type ClusterMeta struct {
	Name        string `json:"name"`
	Region      string `json:"region"`
	Environment string `json:"environment"`
	Description string `json:"description"`
}

// ClusterSpec contains the details necessary to communicate with a kafka cluster.
type ClusterSpec struct {
	// BootstrapAddrs is a list of one or more broker bootstrap addresses. These can use IPs
	// or DNS names.
	BootstrapAddrs []string `json:"bootstrapAddrs"`

	// ConnTimeout is the timeout used for broker connections, in seconds. If unset, a
	// reasonable default is used instead.
	ConnTimeoutSec int `json:"connTimeoutSec"`

	// MemberDelimiter is the delimiter used to split member IDs into replica keys when
	// planning assignments for this cluster. If unset, a default of "-" is used.
	MemberDelimiter string `json:"memberDelimiter"`

	// TLS stores the TLS settings used for cluster connections.
	TLS TLSConfig `json:"tls"`

	// SASL stores the SASL settings used for cluster connections.
	SASL SASLConfig `json:"sasl"`
}

// TLSConfig stores the TLS settings in a cluster config.
type TLSConfig struct {
	Enabled    bool   `json:"enabled"`
	CACertPath string `json:"caCertPath"`
	CertPath   string `json:"certPath"`
	KeyPath    string `json:"keyPath"`
	ServerName string `json:"serverName"`
	SkipVerify bool   `json:"skipVerify"`
}

// SASLConfig stores the SASL settings in a cluster config.
type SASLConfig struct {
	Enabled           bool   `json:"enabled"`
	Mechanism         string `json:"mechanism"`
	Username          string `json:"username"`
	Password          string `json:"password"`
	SecretsManagerArn string `json:"secretsManagerArn"`
}

// Validate evaluates whether the cluster config is valid.
func (c ClusterConfig) Validate() error {
	var err error

	if c.Meta.Name == "" {
		err = multierror.Append(err, errors.New("Name must be set"))
	}
	if c.Meta.Region == "" {
		err = multierror.Append(err, errors.New("Region must be set"))
	}
	if c.Meta.Environment == "" {
		err = multierror.Append(err, errors.New("Environment must be set"))
	}

	if len(c.Spec.BootstrapAddrs) == 0 {
		err = multierror.Append(
			err,
			errors.New("At least one bootstrap broker address must be set"),
		)
	}
	if c.Spec.ConnTimeoutSec < 0 {
		err = multierror.Append(err, errors.New("Connection timeout must not be negative"))
	}

	if c.Spec.SASL.Enabled && c.Spec.SASL.Mechanism != "" {
		if _, mechErr := admin.SASLNameToMechanism(c.Spec.SASL.Mechanism); mechErr != nil {
			err = multierror.Append(err, mechErr)
		}
	}

	return err
}

// NewAdminClient returns a new admin client using the parameters in the
// current cluster config.
func (c ClusterConfig) NewAdminClient() (*admin.Client, error) {
	saslMechanism := admin.SASLMechanism("")
	if c.Spec.SASL.Enabled && c.Spec.SASL.Mechanism != "" {
		var err error
		saslMechanism, err = admin.SASLNameToMechanism(c.Spec.SASL.Mechanism)
		if err != nil {
			return nil, err
		}
	}

	return admin.NewClient(
		admin.ConnectorConfig{
			BrokerAddr:  c.Spec.BootstrapAddrs[0],
			ConnTimeout: time.Duration(c.Spec.ConnTimeoutSec) * time.Second,
			TLS: admin.TLSConfig{
				Enabled:    c.Spec.TLS.Enabled,
				CACertPath: c.Spec.TLS.CACertPath,
				CertPath:   c.Spec.TLS.CertPath,
				KeyPath:    c.Spec.TLS.KeyPath,
				ServerName: c.Spec.TLS.ServerName,
				SkipVerify: c.Spec.TLS.SkipVerify,
			},
			SASL: admin.SASLConfig{
				Enabled:           c.Spec.SASL.Enabled,
				Mechanism:         saslMechanism,
				Username:          c.Spec.SASL.Username,
				Password:          c.Spec.SASL.Password,
				SecretsManagerArn: c.Spec.SASL.SecretsManagerArn,
			},
		},
	)
}
