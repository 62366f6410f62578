package cleaner

import "regexp"

// miiProNonWordRe matches morphology-tier tokens that annotate
// non-linguistic material.
var miiProNonWordRe = regexp.MustCompile(`(^| )tag\|\S+`)

// JapaneseMiiPro adapts the base chain to the MiiPro Japanese scheme.
type JapaneseMiiPro struct {
	Base
}

func (JapaneseMiiPro) cleanMorphTier(tier string) string {
	tier = miiProNonWordRe.ReplaceAllString(tier, "")
	return RemoveTerminator(tier)
}

func (c JapaneseMiiPro) CleanSegTier(tier string) string   { return c.cleanMorphTier(tier) }
func (c JapaneseMiiPro) CleanGlossTier(tier string) string { return c.cleanMorphTier(tier) }
func (c JapaneseMiiPro) CleanPosTier(tier string) string   { return c.cleanMorphTier(tier) }
