package variant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPresetsValidate(t *testing.T) {
	for _, cfg := range []Config{FiveHanded(), FourHanded(), ThreeHanded()} {
		assert.NoError(t, cfg.Validate(), cfg.Partner.String())
	}
}

func TestValidateRejectsBadDeal(t *testing.T) {
	cfg := FiveHanded()
	cfg.BlindSize = 3
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsBlitzWithoutCracking(t *testing.T) {
	cfg := FiveHanded()
	cfg.Blitzing = true
	assert.Error(t, cfg.Validate())

	cfg.Cracking = true
	assert.NoError(t, cfg.Validate())
}

func TestValidateRejectsCalledAceThreeHanded(t *testing.T) {
	cfg := ThreeHanded()
	cfg.Partner = CalledAce
	assert.Error(t, cfg.Validate())
}

func TestTricksPerHand(t *testing.T) {
	assert.Equal(t, 6, FiveHanded().TricksPerHand())
	assert.Equal(t, 8, FourHanded().TricksPerHand())
	assert.Equal(t, 10, ThreeHanded().TricksPerHand())
}
