package costmodel

import (
	"fmt"
	"sort"
)

const (
	// DefaultSystem is the profile used when no system is selected.
	DefaultSystem = "aztec"
)

// Profile describes one proving system at the 128-bit reference point.
type Profile struct {
	Key             string  `json:"key" validate:"required,profile_key"`
	Name            string  `json:"name" validate:"required"`
	Family          string  `json:"family"`
	Description     string  `json:"description"`
	BaseMsPerProof  float64 `json:"baseMsPerProof" validate:"gt=0,finite"`
	BaseUSDPerProof float64 `json:"baseUsdPerProof" validate:"gt=0,finite"`
	ScalingFactor   float64 `json:"scalingFactor" validate:"gt=0,finite"`
}

var builtinProfiles = []Profile{
	{
		Key:             "aztec",
		Name:            "Aztec-style zk SNARK System",
		Family:          "zk-snark",
		Description:     "Privacy-focused zk rollup proving for encrypted state and contracts.",
		BaseMsPerProof:  420.0,
		BaseUSDPerProof: 0.18,
		ScalingFactor:   0.85,
	},
	{
		Key:             "zama",
		Name:            "Zama-style FHE + Proof Hybrid",
		Family:          "fhe-hybrid",
		Description:     "FHE-heavy design where zk proofs attest to encrypted compute pipelines.",
		BaseMsPerProof:  780.0,
		BaseUSDPerProof: 0.35,
		ScalingFactor:   0.72,
	},
	{
		Key:             "soundness",
		Name:            "Soundness-first Minimal Circuit System",
		Family:          "verified-zk",
		Description:     "Formally specified circuits tuned for clarity and soundness over raw speed.",
		BaseMsPerProof:  500.0,
		BaseUSDPerProof: 0.22,
		ScalingFactor:   0.90,
	},
}

// Catalog is a read-only set of profiles keyed by Profile.Key.
// A Catalog is never modified after construction and is safe for concurrent use.
type Catalog struct {
	profiles map[string]Profile
}

// NewCatalog builds a Catalog from the given profiles.
// It fails if a key is empty or appears more than once.
func NewCatalog(profiles ...Profile) (*Catalog, error) {
	c := &Catalog{profiles: make(map[string]Profile, len(profiles))}
	for _, p := range profiles {
		if p.Key == "" {
			return nil, fmt.Errorf("profile %q has an empty key", p.Name)
		}
		if _, exists := c.profiles[p.Key]; exists {
			return nil, fmt.Errorf("duplicate profile key %q", p.Key)
		}
		c.profiles[p.Key] = p
	}
	return c, nil
}

// DefaultCatalog returns the built-in profiles.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(builtinProfiles...)
	if err != nil {
		panic(err)
	}
	return c
}

// With returns a new Catalog holding c's profiles plus overrides.
// An override replaces the profile with the same key.
func (c *Catalog) With(overrides ...Profile) *Catalog {
	res := &Catalog{profiles: make(map[string]Profile, len(c.profiles)+len(overrides))}
	for k, p := range c.profiles {
		res.profiles[k] = p
	}
	for _, p := range overrides {
		res.profiles[p.Key] = p
	}
	return res
}

// Get looks up a profile by key.
func (c *Catalog) Get(key string) (Profile, bool) {
	p, ok := c.profiles[key]
	return p, ok
}

// Keys returns the profile keys in ascending order.
func (c *Catalog) Keys() []string {
	keys := make([]string, 0, len(c.profiles))
	for k := range c.profiles {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Profiles returns all profiles ordered by key.
func (c *Catalog) Profiles() []Profile {
	res := make([]Profile, 0, len(c.profiles))
	for _, k := range c.Keys() {
		res = append(res, c.profiles[k])
	}
	return res
}

// Len returns the number of profiles.
func (c *Catalog) Len() int { return len(c.profiles) }
