package config

import (
	"os"
	"testing"

	"github.com/segmentio/groupctl/pkg/assign"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCluster(t *testing.T) {
	os.Setenv("GROUPCTL_TEST_ENV_VAR", "test-region")
	defer os.Unsetenv("GROUPCTL_TEST_ENV_VAR")

	clusterConfig, err := LoadClusterFile("testdata/test-cluster/cluster.yaml", true)
	assert.NoError(t, err)

	// Empty RootDir since this will vary based on where test is run.
	clusterConfig.RootDir = ""

	assert.Equal(
		t,
		ClusterConfig{
			Meta: ClusterMeta{
				Name:        "test-cluster",
				Region:      "test-region",
				Environment: "test-env",
				Description: "Test cluster\n",
			},
			Spec: ClusterSpec{
				BootstrapAddrs: []string{
					"bootstrap-addr:9092",
				},
				ConnTimeoutSec:  15,
				MemberDelimiter: ":",
			},
		},
		clusterConfig,
	)
	assert.NoError(t, clusterConfig.Validate())

	clusterConfig, err = LoadClusterFile("testdata/test-cluster/cluster-invalid.yaml", true)
	assert.NoError(t, err)
	assert.Error(t, clusterConfig.Validate())

	_, err = LoadClusterFile("testdata/test-cluster/cluster-extra-fields.yaml", true)
	assert.Error(t, err)
}

func TestLoadPlan(t *testing.T) {
	planConfig, err := LoadPlanFile("testdata/test-cluster/plans/plan-test.yaml", true)
	require.NoError(t, err)

	assert.Equal(
		t,
		PlanConfig{
			Meta: PlanMeta{
				Name:        "plan-test",
				Description: "Test plan\n",
			},
			Spec: PlanSpec{
				Delimiter: "-",
				Members: []PlanMember{
					{
						ID:     "consumer1-a",
						Topics: []string{"topic-test"},
					},
					{
						ID:     "consumer1-b",
						Topics: []string{"topic-test"},
					},
					{
						ID:     "consumer2-a",
						Topics: []string{"topic-test", "topic-other"},
					},
				},
				Topics: []PlanTopic{
					{
						Name:       "topic-test",
						Partitions: 6,
					},
					{
						Name:       "topic-other",
						Partitions: 3,
					},
				},
			},
		},
		planConfig,
	)
	assert.NoError(t, planConfig.Validate())

	assert.Equal(
		t,
		[]assign.Member{
			{
				ID:     "consumer1-a",
				Topics: []string{"topic-test"},
			},
			{
				ID:     "consumer1-b",
				Topics: []string{"topic-test"},
			},
			{
				ID:     "consumer2-a",
				Topics: []string{"topic-test", "topic-other"},
			},
		},
		planConfig.ToMembers(),
	)
	assert.Equal(
		t,
		[]assign.TopicMeta{
			{
				Name:       "topic-test",
				Partitions: 6,
			},
			{
				Name:       "topic-other",
				Partitions: 3,
			},
		},
		planConfig.ToTopics(),
	)

	planConfig, err = LoadPlanFile("testdata/test-cluster/plans/plan-invalid.yaml", true)
	assert.NoError(t, err)
	assert.Error(t, planConfig.Validate())
}
