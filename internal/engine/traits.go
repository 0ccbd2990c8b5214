package engine

import (
	"strings"
)

// Candidate pools are fixed ordered lists and selection is seed modulo
// length, so the order of every pool is part of the determinism contract.
var (
	silhouettes = []string{
		"round pebble body with stubby legs",
		"tall angular shard frame",
		"stout boulder build with broad shoulders",
		"squat kiln-pot body with a domed head",
		"lanky slag-stack figure",
		"compact cube form with chipped corners",
		"teardrop lump with a heavy base",
	}

	expressions = []string{
		"wide toothy grin",
		"sleepy half-lidded eyes",
		"mischievous sideways smirk",
		"startled round glowing eyes",
		"calm unbothered gaze",
		"grumpy furrowed brow",
	}

	textures = []string{
		"cracked magma crust with glowing seams",
		"polished obsidian sheen",
		"rough coal grain",
		"glassy slag swirl",
		"soot-dusted matte finish",
		"ember-veined stone",
		"hammered iron patina",
	}

	baseAccessories = []string{
		"tiny copper goggles",
		"cinder-wool scarf",
		"slag-glass monocle",
		"miniature anvil pendant",
		"rivet ear studs",
		"smoldering pocket lantern",
		"furnace-brick backpack",
		"coal-dust freckles",
	}
)

// bioTags unlock extra accessory candidates when one of their keywords shows
// up in the profile bio. The vocabulary is fixed; matching is a plain
// case-insensitive substring check.
var bioTags = []struct {
	tag      string
	keywords []string
	extras   []string
}{
	{"builder", []string{"build", "dev", "code", "engineer", "ship"}, []string{"blueprint scroll", "soldering-iron holster"}},
	{"artist", []string{"art", "design", "draw", "paint", "music"}, []string{"pigment-stained apron", "charcoal stylus behind the ear"}},
	{"degen", []string{"crypto", "nft", "degen", "trade", "onchain"}, []string{"dice-shaped ember charm", "ticker-tape sash"}},
	{"writer", []string{"writer", "writing", "words", "blog", "author"}, []string{"ink-pot hat", "folded manuscript under one arm"}},
	{"collector", []string{"collect", "curator", "gallery", "museum"}, []string{"display-case satchel", "tiny trophy shelf"}},
}

// pickCategorical indexes a fixed pool with seed modulo pool length.
func pickCategorical(pool []string, seed uint32) string {
	return pool[int(seed%uint32(len(pool)))]
}

// accessoryCandidates builds the deduplicated candidate pool for a bio,
// preserving insertion order.
func accessoryCandidates(bio string) []string {
	out := make([]string, 0, len(baseAccessories)+4)
	seen := make(map[string]struct{}, len(baseAccessories)+4)

	add := func(items []string) {
		for _, it := range items {
			if _, ok := seen[it]; ok {
				continue
			}
			seen[it] = struct{}{}
			out = append(out, it)
		}
	}

	add(baseAccessories)

	lower := strings.ToLower(bio)
	for _, t := range bioTags {
		for _, kw := range t.keywords {
			if strings.Contains(lower, kw) {
				add(t.extras)
				break
			}
		}
	}

	return out
}

const (
	minAccessories = 2
	maxAccessories = 4
)

// pickAccessories selects pool items whose index bit of the seed is set,
// capped at four. When fewer than two bits hit the pool (seed 0 hits none),
// the pool is walked from a shifted-seed offset until the minimum is met.
// The result always holds 2 to 4 distinct items.
func pickAccessories(pool []string, seed uint32) []string {
	out := make([]string, 0, maxAccessories)
	for i := range pool {
		if len(out) == maxAccessories {
			break
		}
		if seed>>uint(i)&1 == 1 {
			out = append(out, pool[i])
		}
	}

	if len(out) < minAccessories {
		start := int((seed >> 3) % uint32(len(pool)))
		for i := 0; len(out) < minAccessories && i < len(pool); i++ {
			c := pool[(start+i)%len(pool)]
			if !containsString(out, c) {
				out = append(out, c)
			}
		}
	}

	return out
}

func containsString(s []string, v string) bool {
	for _, it := range s {
		if it == v {
			return true
		}
	}
	return false
}
