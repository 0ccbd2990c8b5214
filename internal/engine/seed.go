package engine

import (
	"strconv"

	"github.com/Adefolalu/clinkers/internal/entities"
)

// FNV-1a 32-bit constants.
const (
	fnvOffsetBasis uint32 = 2166136261
	fnvPrime       uint32 = 16777619
)

// deriveSeed hashes the ':'-joined parts with 32-bit FNV-1a. uint32 arithmetic
// wraps modulo 2^32 on every platform, which stands in for the explicit
// masking the algorithm requires in languages without fixed-width integers.
func deriveSeed(parts ...string) uint32 {
	h := fnvOffsetBasis
	for i, p := range parts {
		if i > 0 {
			h ^= uint32(':')
			h *= fnvPrime
		}
		for j := 0; j < len(p); j++ {
			h ^= uint32(p[j])
			h *= fnvPrime
		}
	}
	return h
}

// seedSet carries one independent seed per trait dimension so that hue,
// texture and accessories don't move in lockstep between profiles.
type seedSet struct {
	palette    uint32
	silhouette uint32
	expression uint32
	texture    uint32
	accessory  uint32
}

// deriveSeeds builds the per-dimension seeds from the stable profile fields
// (fid, handle, follower count) plus the regeneration salt. Every dimension
// folds the salt in, so a reroll changes the whole identity.
func deriveSeeds(p entities.Profile, salt uint32) seedSet {
	fid := strconv.FormatUint(p.FID, 10)
	followers := strconv.FormatUint(p.FollowerCount, 10)
	s := strconv.FormatUint(uint64(salt), 10)

	return seedSet{
		palette:    deriveSeed("palette", fid, p.Handle, followers, s),
		silhouette: deriveSeed("silhouette", p.Handle, fid, s),
		expression: deriveSeed("expression", fid, p.Handle, s),
		texture:    deriveSeed("texture", p.Handle, followers, fid, s),
		accessory:  deriveSeed("accessory", fid, followers, p.Handle, s),
	}
}
