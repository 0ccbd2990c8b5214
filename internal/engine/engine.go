// Package engine derives a Clinker's visual identity from a Farcaster profile.
//
// Everything here is a pure function of its inputs: the same profile and salt
// always yield the same palette, traits and prompt, and a different salt
// rerolls all of them at once. The engine does no I/O and cannot fail;
// out-of-range numeric inputs are clamped, missing optional profile fields
// default to zero values.
package engine

import (
	"github.com/Adefolalu/clinkers/internal/entities"
)

// Palette is the set of colors assigned to a generated character.
type Palette struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
}

// TraitSet is the categorical part of a Clinker's identity.
type TraitSet struct {
	Silhouette  string   `json:"silhouette"`
	Expression  string   `json:"expression"`
	Texture     string   `json:"texture"`
	Accessories []string `json:"accessories"`
}

// Result is a full derived identity plus the instruction block for the image
// generator.
type Result struct {
	Prompt  string
	Palette Palette
	Traits  TraitSet
	Tier    int
}

// Generate derives the visual identity for a profile. salt is an explicit
// reroll counter owned by the caller; salt 0 is the canonical first
// generation for a FID.
func Generate(p entities.Profile, salt uint32) Result {
	tier := ClassifyTier(p.InfluenceScore, p.FollowerCount, p.HasBadge)
	s := deriveSeeds(p, salt)

	traits := TraitSet{
		Silhouette:  pickCategorical(silhouettes, s.silhouette),
		Expression:  pickCategorical(expressions, s.expression),
		Texture:     pickCategorical(textures, s.texture),
		Accessories: pickAccessories(accessoryCandidates(p.Bio), s.accessory),
	}

	pal := derivePalette(s.palette, tier)

	return Result{
		Prompt:  buildPrompt(p, tier, pal, traits),
		Palette: pal,
		Traits:  traits,
		Tier:    tier,
	}
}
