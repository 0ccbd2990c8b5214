package metadata

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	d := Build(Params{
		FID:         239396,
		Handle:      "alice",
		Phase:       4,
		Silhouette:  "hulking slab-bodied brute",
		Expression:  "wide grin",
		Texture:     "cracked magma veins",
		Accessories: []string{"ember crown", "slag hammer"},
		Primary:     "#E81135",
		Secondary:   "#DCD132",
		Accent:      "#35E9B6",
		Image:       "ipfs://QmArtwork",
		ExternalURL: "https://clinkers.example/clinkers/239396",
	})

	require.True(t, Validate(d))

	assert.Equal(t, "Clinker #239396", d.Name)
	assert.Contains(t, d.Description, "@alice")
	assert.Equal(t, "ipfs://QmArtwork", d.Image)
	assert.Equal(t, []Attribute{
		{TraitType: TraitPhase, Value: "Molten"},
		{TraitType: TraitSilhouette, Value: "hulking slab-bodied brute"},
		{TraitType: TraitExpression, Value: "wide grin"},
		{TraitType: TraitTexture, Value: "cracked magma veins"},
		{TraitType: TraitAccessory, Value: "ember crown"},
		{TraitType: TraitAccessory, Value: "slag hammer"},
		{TraitType: TraitPrimary, Value: "#E81135"},
		{TraitType: TraitSecondary, Value: "#DCD132"},
		{TraitType: TraitAccent, Value: "#35E9B6"},
	}, d.Attributes)
}

func TestBuild_NoHandle(t *testing.T) {
	d := Build(Params{
		FID:        7,
		Phase:      1,
		Silhouette: "s", Expression: "e", Texture: "t",
		Primary: "#000000", Secondary: "#000000", Accent: "#000000",
		Image: "ipfs://QmArtwork",
	})

	assert.Contains(t, d.Description, "fid 7")
	assert.NotContains(t, d.Description, "@")
}

func TestBuild_JSON(t *testing.T) {
	d := Build(Params{
		FID:        1,
		Handle:     "bob",
		Phase:      2,
		Silhouette: "s", Expression: "e", Texture: "t",
		Primary: "#0A0B0C", Secondary: "#0D0E0F", Accent: "#101112",
		Image: "ipfs://QmArtwork",
	})

	b, err := json.Marshal(d)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"name": "Clinker #1",
		"description": "A creature of slag and cooled ember, forged one per Farcaster identity. This one burns for @bob.",
		"image": "ipfs://QmArtwork",
		"attributes": [
			{"trait_type": "Phase", "value": "Kindled"},
			{"trait_type": "Silhouette", "value": "s"},
			{"trait_type": "Expression", "value": "e"},
			{"trait_type": "Texture", "value": "t"},
			{"trait_type": "Primary Color", "value": "#0A0B0C"},
			{"trait_type": "Secondary Color", "value": "#0D0E0F"},
			{"trait_type": "Accent Color", "value": "#101112"}
		]
	}`, string(b))
}

func TestPhaseName(t *testing.T) {
	tt := []struct {
		phase int
		name  string
	}{
		{1, "Ember"},
		{2, "Kindled"},
		{3, "Roaring"},
		{4, "Molten"},
		{0, "Unknown"},
		{5, "Unknown"},
	}

	for i := range tt {
		tc := tt[i]
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.name, PhaseName(tc.phase))
		})
	}
}

func TestValidate(t *testing.T) {
	base := func() Document {
		return Build(Params{
			FID:        1,
			Phase:      3,
			Silhouette: "s", Expression: "e", Texture: "t",
			Primary: "#000000", Secondary: "#000000", Accent: "#000000",
			Image: "ipfs://QmArtwork",
		})
	}

	tt := []struct {
		name   string
		mutate func(d *Document)
		valid  bool
	}{
		{
			name:   "valid",
			mutate: func(d *Document) {},
			valid:  true,
		},
		{
			name:   "valid http image",
			mutate: func(d *Document) { d.Image = "https://cdn.example.com/1.png" },
			valid:  true,
		},
		{
			name:   "valid external url",
			mutate: func(d *Document) { d.ExternalURL = "https://clinkers.example/clinkers/1" },
			valid:  true,
		},
		{
			name:   "empty name",
			mutate: func(d *Document) { d.Name = "" },
			valid:  false,
		},
		{
			name:   "empty description",
			mutate: func(d *Document) { d.Description = "" },
			valid:  false,
		},
		{
			name:   "bad image",
			mutate: func(d *Document) { d.Image = "not a url" },
			valid:  false,
		},
		{
			name:   "bad external url",
			mutate: func(d *Document) { d.ExternalURL = "not a url" },
			valid:  false,
		},
		{
			name:   "no attributes",
			mutate: func(d *Document) { d.Attributes = nil },
			valid:  false,
		},
		{
			name:   "empty attribute value",
			mutate: func(d *Document) { d.Attributes[0].Value = "" },
			valid:  false,
		},
	}

	for i := range tt {
		tc := tt[i]
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			d := base()
			tc.mutate(&d)

			assert.Equal(t, tc.valid, Validate(d))
		})
	}
}
