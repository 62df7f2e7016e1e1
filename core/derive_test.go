package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spiroflow/vo2peak/schema"
)

func TestDeriveMetricsPerKg(t *testing.T) {
	table := schema.NewSampleTable(3)
	table.AddColumn("BodyMass", []*float64{schema.Float(70), schema.Float(70), schema.Float(70)})
	table.AddColumn("V'O2_30s", []*float64{nil, schema.Float(2.1), schema.Float(2.8)})

	DeriveMetrics(table, testConfig())

	perKg, ok := table.Column("V'O2/kg_30s")
	require.True(t, ok)
	assert.Nil(t, perKg[0])
	assert.InDelta(t, 30.0, *perKg[1], 1e-9)
	assert.InDelta(t, 40.0, *perKg[2], 1e-9)
}

func TestDeriveMetricsRER(t *testing.T) {
	table := schema.NewSampleTable(4)
	table.AddColumn("BodyMass", []*float64{schema.Float(70), schema.Float(70), schema.Float(70), schema.Float(70)})
	table.AddColumn("V'O2_30s", []*float64{schema.Float(2.0), schema.Float(0), nil, schema.Float(2.5)})
	table.AddColumn("V'CO2_30s", []*float64{schema.Float(1.8), schema.Float(1.9), schema.Float(2.0), nil})

	DeriveMetrics(table, testConfig())

	rer, ok := table.Column("RER_30s")
	require.True(t, ok)
	assert.InDelta(t, 0.9, *rer[0], 1e-9)
	// Division by zero or a missing operand degrades to missing.
	assert.Nil(t, rer[1])
	assert.Nil(t, rer[2])
	assert.Nil(t, rer[3])
}

func TestDeriveMetricsWithoutSmoothedVO2(t *testing.T) {
	table := schema.NewSampleTable(2)
	table.AddColumn("BodyMass", []*float64{schema.Float(70), schema.Float(70)})

	DeriveMetrics(table, testConfig())

	assert.False(t, table.HasColumn("V'O2/kg_30s"))
	assert.False(t, table.HasColumn("RER_30s"))
}
