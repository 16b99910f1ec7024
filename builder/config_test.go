package builder

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xuebo100/pycnp/crossover"
	"github.com/xuebo100/pycnp/strategy"
)

func TestNewMemeticParamsDefaults(t *testing.T) {
	p, err := NewMemeticParams()
	require.NoError(t, err)
	assert.Equal(t, strategy.CBNSName, p.StrategyName)
	assert.Equal(t, crossover.DBXName, p.CrossoverName)
	assert.Equal(t, DefaultRSCBeta, p.RSCBeta)
}

func TestNewMemeticParamsRejectsUnknownStrategy(t *testing.T) {
	_, err := NewMemeticParams(WithStrategy("bogus"))
	require.ErrorIs(t, err, ErrUnknownStrategy)
}

func TestNewMemeticParamsRejectsUnknownCrossover(t *testing.T) {
	_, err := NewMemeticParams(WithCrossover("bogus"))
	require.ErrorIs(t, err, ErrUnknownCrossover)
}

func TestNewMemeticParamsRejectsBetaOutOfRange(t *testing.T) {
	_, err := NewMemeticParams(WithRSCBeta(2))
	require.ErrorIs(t, err, ErrBetaOutOfRange)
}

func TestWithCrossoverRSCSetsReduceEnabled(t *testing.T) {
	p, err := NewMemeticParams(WithCrossover(crossover.RSCName))
	require.NoError(t, err)
	assert.True(t, p.ReduceEnabled)
}

func TestNewPopulationParamsDefaults(t *testing.T) {
	c, err := NewPopulationParams(strategy.CBNSName, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, DefaultInitialPopSize, c.InitialPopSize)
	assert.True(t, c.Adaptive)
}

func TestNewPopulationParamsRejectsMaxBelowInitial(t *testing.T) {
	_, err := NewPopulationParams(strategy.CBNSName, zerolog.Nop(), WithInitialPopSize(10), WithMaxPopSize(5))
	require.ErrorIs(t, err, ErrMaxPopSizeTooSmall)
}

func TestNewPopulationParamsRejectsNonPositiveInitial(t *testing.T) {
	_, err := NewPopulationParams(strategy.CBNSName, zerolog.Nop(), WithInitialPopSize(0))
	require.ErrorIs(t, err, ErrNonPositivePopSize)
}

func TestNewPopulationParamsRejectsZeroIncreaseWhenAdaptive(t *testing.T) {
	_, err := NewPopulationParams(strategy.CBNSName, zerolog.Nop(), WithAdaptive(true), WithIncreasePopSize(0))
	require.ErrorIs(t, err, ErrNonPositiveIncrease)
}
