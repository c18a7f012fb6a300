package service

import (
	"testing"

	"concept_tutor_backend/internal/model"
	"concept_tutor_backend/internal/repository"
	"concept_tutor_backend/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPlanner(t *testing.T) (*PlanService, *repository.MasteryRepository) {
	t.Helper()
	conceptRepo, err := repository.NewConceptRepository()
	require.NoError(t, err)
	store := repository.NewMasteryRepository()
	graph := NewGraphService(conceptRepo)
	mastery := NewMasteryService(store)
	return NewPlanService(graph, mastery), store
}

func bundleNodeCount(b *TeachingBundle) int {
	return 1 + len(b.WeakPrerequisites) + len(b.StrongPrerequisites)
}

func TestBundleNeverExceedsNodeCap(t *testing.T) {
	planner, store := newTestPlanner(t)
	um := store.Get("cap-user")

	// backpropagation 有8个传递依赖，全部薄弱
	bundle, err := planner.BuildTeachingBundle("backpropagation", um)
	require.NoError(t, err)
	assert.Equal(t, MaxConceptNodes, bundleNodeCount(bundle))
	assert.Len(t, bundle.WeakPrerequisites, 4)
	assert.Empty(t, bundle.StrongPrerequisites)
}

func TestBundleTruncationKeepsWeakFirst(t *testing.T) {
	planner, store := newTestPlanner(t)
	um := store.Get("trunc-user")

	bundle, err := planner.BuildTeachingBundle("backpropagation", um)
	require.NoError(t, err)

	// 由浅到深的前4个薄弱前置保留，其余静默丢弃
	var kept []string
	for _, card := range bundle.WeakPrerequisites {
		kept = append(kept, card.ID)
	}
	assert.Equal(t, []string{"linear_model", "gradient", "perceptron", "activation_function"}, kept)
}

func TestBundleStrongYieldsToWeak(t *testing.T) {
	planner, store := newTestPlanner(t)
	um := store.Get("mixed-user")
	um.SetMastery("linear_model", 0.9)
	um.SetMastery("gradient", 0.9)

	bundle, err := planner.BuildTeachingBundle("backpropagation", um)
	require.NoError(t, err)

	require.Len(t, bundle.WeakPrerequisites, 4)
	// 薄弱占满4席后牢固前置被整组裁掉
	assert.Empty(t, bundle.StrongPrerequisites)
	assert.Equal(t, MaxConceptNodes, bundleNodeCount(bundle))
}

func TestBundlePartitionsByEffectiveMastery(t *testing.T) {
	planner, store := newTestPlanner(t)
	um := store.Get("partition-user")

	// 种子值：entity_concept 0.9 牢固，accrual 0.2 薄弱
	bundle, err := planner.BuildTeachingBundle("matching", um)
	require.NoError(t, err)

	require.Len(t, bundle.WeakPrerequisites, 1)
	assert.Equal(t, "accrual", bundle.WeakPrerequisites[0].ID)
	require.Len(t, bundle.StrongPrerequisites, 1)
	assert.Equal(t, "entity_concept", bundle.StrongPrerequisites[0].ID)

	assert.InDelta(t, 0.9, bundle.MasterySnapshot["entity_concept"], 1e-9)
	assert.InDelta(t, 0.2, bundle.MasterySnapshot["accrual"], 1e-9)
	assert.InDelta(t, 0.1, bundle.MasterySnapshot["matching"], 1e-9)
}

func TestBundleTrimsExamplesByMastery(t *testing.T) {
	planner, store := newTestPlanner(t)
	um := store.Get("trim-user")

	// 掌握度低的目标保留2条例题
	bundle, err := planner.BuildTeachingBundle("matching", um)
	require.NoError(t, err)
	assert.Len(t, bundle.Target.Examples, 2)
	assert.Equal(t, bundle.Target.Examples, bundle.Examples)

	// 掌握度达标后只保留1条
	um.SetMastery("matching", 0.5)
	bundle, err = planner.BuildTeachingBundle("matching", um)
	require.NoError(t, err)
	assert.Len(t, bundle.Target.Examples, 1)
}

func TestBundleExampleCountClampedToAvailable(t *testing.T) {
	planner, store := newTestPlanner(t)
	um := store.Get("clamp-user")

	// gradient 只有1条例题，掌握度再低也只能给1条
	bundle, err := planner.BuildTeachingBundle("gradient", um)
	require.NoError(t, err)
	assert.Len(t, bundle.Target.Examples, 1)
}

func TestBundleUnknownTarget(t *testing.T) {
	planner, store := newTestPlanner(t)
	um := store.Get("unknown-user")

	_, err := planner.BuildTeachingBundle("ghost", um)
	assert.True(t, util.IsNotFound(err))
}

func TestTeachingPlanDepthBoundaries(t *testing.T) {
	planner, _ := newTestPlanner(t)

	cases := []struct {
		mastery float64
		depth   string
	}{
		{0.0, "high"},
		{0.29, "high"},
		{0.3, "medium"},
		{0.7, "medium"},
		{0.71, "low"},
		{1.0, "low"},
	}
	for _, tc := range cases {
		um := model.NewUserMastery()
		um.SetMastery("linear_model", tc.mastery)
		bundle, err := planner.BuildTeachingBundle("linear_model", um)
		require.NoError(t, err)
		plan := planner.BuildTeachingPlan("linear_model", bundle, um)
		assert.Equal(t, tc.depth, plan.ExplanationDepth, "mastery=%v", tc.mastery)
	}
}

func TestTeachingPlanReviewAndSkipLists(t *testing.T) {
	planner, store := newTestPlanner(t)
	um := store.Get("plan-user")

	bundle, err := planner.BuildTeachingBundle("matching", um)
	require.NoError(t, err)
	plan := planner.BuildTeachingPlan("matching", bundle, um)

	assert.Equal(t, "matching", plan.FocusConcept)
	assert.Equal(t, []string{"accrual"}, plan.ReviewConcepts)
	assert.Equal(t, []string{"entity_concept"}, plan.SkipReinforcement)
	assert.Equal(t, "high", plan.ExplanationDepth)
}

func TestConfidenceOneForRootConcepts(t *testing.T) {
	planner, store := newTestPlanner(t)
	um := store.Get("root-user")

	bundle, err := planner.BuildTeachingBundle("linear_model", um)
	require.NoError(t, err)
	assert.Equal(t, 1.0, planner.CalibrateConfidence(bundle))
}

func TestConfidenceCappedWithWeakPrerequisites(t *testing.T) {
	planner, store := newTestPlanner(t)
	um := store.Get("weak-user")

	// entity 0.9 牢固 + accrual 0.2 薄弱：原始分0.54，封顶0.5
	bundle, err := planner.BuildTeachingBundle("matching", um)
	require.NoError(t, err)
	assert.Equal(t, 0.5, planner.CalibrateConfidence(bundle))
}

func TestConfidenceFormulaWithoutWeakPrerequisites(t *testing.T) {
	planner, store := newTestPlanner(t)
	um := store.Get("formula-user")
	um.SetMastery("accrual", 0.8)

	bundle, err := planner.BuildTeachingBundle("matching", um)
	require.NoError(t, err)

	// avg=(0.9+0.8)/2, completeness=1, nodes=(2+1)/5
	// 0.85*0.5 + 1*0.35 + 0.6*0.15 = 0.865
	assert.Equal(t, 0.865, planner.CalibrateConfidence(bundle))
}

func TestConfidenceUsesPostTruncationLists(t *testing.T) {
	planner, store := newTestPlanner(t)
	um := store.Get("post-trunc-user")

	bundle, err := planner.BuildTeachingBundle("backpropagation", um)
	require.NoError(t, err)

	// 裁剪后只剩4个薄弱前置参与标定，且存在薄弱则不超过0.5
	confidence := planner.CalibrateConfidence(bundle)
	assert.LessOrEqual(t, confidence, 0.5)
	assert.GreaterOrEqual(t, confidence, 0.0)
}

func TestStructuredPlanFiltersKnownConcepts(t *testing.T) {
	planner, store := newTestPlanner(t)

	plan, err := planner.BuildStructuredPlan("accounts_unit_2", store.Get("default"))
	require.NoError(t, err)

	// entity_concept 0.9 与 accounting_equation 0.7 已掌握，被过滤
	var ids []string
	for _, entry := range plan.ConceptSequence {
		ids = append(ids, entry.ID)
	}
	assert.Equal(t, []string{"accrual", "matching"}, ids)
	assert.Equal(t, "accounts_unit_2", plan.Topic)
}

func TestStructuredPlanConfusedConceptStaysUnknown(t *testing.T) {
	planner, store := newTestPlanner(t)
	um := store.Get("confused")

	// 原始0.2、困惑1次：有效掌握度0.1，仍属薄弱
	um.RecordConfusion("accrual")
	um.SetMastery("accrual", 0.2)
	assert.InDelta(t, 0.1, um.Effective("accrual"), 1e-9)

	plan, err := planner.BuildStructuredPlan("accounts_unit_2", um)
	require.NoError(t, err)

	var ids []string
	for _, entry := range plan.ConceptSequence {
		ids = append(ids, entry.ID)
	}
	assert.Contains(t, ids, "accrual")
}

func TestStructuredPlanEmptySequenceIsSuccess(t *testing.T) {
	planner, store := newTestPlanner(t)
	um := store.Get("expert")
	um.SetMastery("linear_model", 0.95)
	um.SetMastery("gradient", 0.95)

	plan, err := planner.BuildStructuredPlan("ml_foundations", um)
	require.NoError(t, err)
	assert.Empty(t, plan.ConceptSequence)
	assert.Equal(t, "ml_foundations", plan.Topic)
}

func TestStructuredPlanUnknownTopic(t *testing.T) {
	planner, _ := newTestPlanner(t)

	_, err := planner.BuildStructuredPlan("no_such_topic_xyz", model.NewUserMastery())
	require.Error(t, err)
	assert.True(t, util.IsNotFound(err))
}

func TestStructuredPlanEntriesCarryPlanAndConfidence(t *testing.T) {
	planner, store := newTestPlanner(t)

	plan, err := planner.BuildStructuredPlan("accounts_unit_2", store.Get("carry"))
	require.NoError(t, err)
	require.NotEmpty(t, plan.ConceptSequence)

	for _, entry := range plan.ConceptSequence {
		assert.Equal(t, entry.ID, entry.TeachingPlan.FocusConcept)
		assert.GreaterOrEqual(t, entry.Confidence, 0.0)
		assert.LessOrEqual(t, entry.Confidence, 1.0)
		assert.NotEmpty(t, entry.TeachingPlan.ExplanationDepth)
	}
}

func TestPlanForUserAppliesOverrides(t *testing.T) {
	planner, _ := newTestPlanner(t)

	plan, err := planner.PlanForUser("accounts_unit_2", "override-user", map[string]float64{"accrual": 0.95})
	require.NoError(t, err)

	var ids []string
	for _, entry := range plan.ConceptSequence {
		ids = append(ids, entry.ID)
	}
	assert.Equal(t, []string{"matching"}, ids)
}

func TestPlanForUserRecordsExposure(t *testing.T) {
	planner, store := newTestPlanner(t)

	plan, err := planner.PlanForUser("accounts_unit_2", "exposure-user", nil)
	require.NoError(t, err)
	require.Len(t, plan.ConceptSequence, 2)

	state := store.Get("exposure-user").State()
	assert.Equal(t, 1, state.ExposureCount["accrual"])
	assert.Equal(t, 1, state.ExposureCount["matching"])
	assert.Zero(t, state.ExposureCount["entity_concept"])
}
