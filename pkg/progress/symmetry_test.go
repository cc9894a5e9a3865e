package progress_test

import (
	"testing"

	"github.com/limbo/ascend/pkg/progress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymmetryNoLoad(t *testing.T) {
	shares := progress.Symmetry(nil)
	require.Len(t, shares, 7)
	for i, s := range shares {
		assert.Equal(t, progress.BodyParts[i], s.BodyPart)
		assert.Zero(t, s.Percent)
		assert.Equal(t, progress.BalanceUnder, s.Status)
	}
}

func TestSymmetrySinglePart(t *testing.T) {
	shares := progress.Symmetry(map[progress.BodyPart]float64{progress.BodyPartChest: 100})
	require.Len(t, shares, 7)
	for _, s := range shares {
		if s.BodyPart == progress.BodyPartChest {
			assert.Equal(t, 100.0, s.Percent)
			assert.Equal(t, progress.BalanceOver, s.Status)
			continue
		}
		assert.Zero(t, s.Percent)
		assert.Equal(t, progress.BalanceUnder, s.Status)
	}
}

func TestSymmetryMixed(t *testing.T) {
	shares := progress.Symmetry(map[progress.BodyPart]float64{
		progress.BodyPartChest:     250,
		progress.BodyPartBack:      250,
		progress.BodyPartLegs:      400,
		progress.BodyPartArms:      50,
		progress.BodyPartShoulders: 50,
	})
	byPart := make(map[progress.BodyPart]progress.PartShare)
	for _, s := range shares {
		byPart[s.BodyPart] = s
	}
	assert.Equal(t, progress.BalanceBalanced, byPart[progress.BodyPartChest].Status)
	assert.Equal(t, 25.0, byPart[progress.BodyPartChest].Percent)
	assert.Equal(t, progress.BalanceOver, byPart[progress.BodyPartLegs].Status)
	assert.Equal(t, progress.BalanceUnder, byPart[progress.BodyPartArms].Status)
	assert.Equal(t, 5.0, byPart[progress.BodyPartArms].Percent)
	assert.Equal(t, progress.BalanceUnder, byPart[progress.BodyPartCalves].Status)
}

func TestClassifyShareBounds(t *testing.T) {
	assert.Equal(t, progress.BalanceUnder, progress.ClassifyShare(9.99))
	assert.Equal(t, progress.BalanceBalanced, progress.ClassifyShare(10))
	assert.Equal(t, progress.BalanceBalanced, progress.ClassifyShare(25))
	assert.Equal(t, progress.BalanceOver, progress.ClassifyShare(25.01))
}
