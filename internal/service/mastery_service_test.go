package service

import (
	"testing"

	"concept_tutor_backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMastery() *MasteryService {
	return NewMasteryService(repository.NewMasteryRepository())
}

func TestSetMasteryBatch(t *testing.T) {
	svc := newTestMastery()

	svc.SetMastery("alice", map[string]float64{
		"accrual":  0.8,
		"gradient": 1.7,
	})

	um := svc.Model("alice")
	assert.InDelta(t, 0.8, um.Raw("accrual"), 1e-9)
	assert.Equal(t, 1.0, um.Raw("gradient"))
}

func TestSetMasteryEmptyIsNoop(t *testing.T) {
	svc := newTestMastery()
	svc.SetMastery("alice", nil)
	svc.SetMastery("alice", map[string]float64{})

	assert.InDelta(t, 0.2, svc.Model("alice").Raw("accrual"), 1e-9)
}

func TestRecordEventDispatch(t *testing.T) {
	svc := newTestMastery()

	require.NoError(t, svc.RecordEvent("bob", "accrual", EventExposure))
	require.NoError(t, svc.RecordEvent("bob", "accrual", EventConfusion))
	require.NoError(t, svc.RecordEvent("bob", "accrual", EventCorrect))

	state := svc.State("bob")
	assert.Equal(t, 1, state.ExposureCount["accrual"])
	assert.Equal(t, 1, state.ConfusionCount["accrual"])
	// 0.2 - 0.1 + 0.05 = 0.15
	assert.InDelta(t, 0.15, state.Mastery["accrual"], 1e-9)
}

func TestRecordEventUnknownType(t *testing.T) {
	svc := newTestMastery()

	err := svc.RecordEvent("bob", "accrual", "osmosis")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "osmosis")
}

func TestApplyDecayReturnsState(t *testing.T) {
	svc := newTestMastery()
	svc.SetMastery("carol", map[string]float64{"accrual": 0.5})

	state := svc.ApplyDecay("carol")
	// 间隔几乎为零，衰减可忽略
	assert.InDelta(t, 0.5, state.Mastery["accrual"], 1e-6)
}
