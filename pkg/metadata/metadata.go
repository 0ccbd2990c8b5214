// Package metadata builds and validates the ERC-721 token metadata documents
// Clinkers pins to IPFS. The document layout follows the common marketplace
// convention: name, description, image and a flat list of trait attributes.
package metadata

import (
	"fmt"
	"strings"

	valid "github.com/asaskevich/govalidator"
)

// ipfsScheme prefixes content-addressed locators in Image and token URIs.
const ipfsScheme = "ipfs://"

// Trait types exposed to marketplaces.
const (
	TraitPhase      = "Phase"
	TraitSilhouette = "Silhouette"
	TraitExpression = "Expression"
	TraitTexture    = "Texture"
	TraitAccessory  = "Accessory"
	TraitPrimary    = "Primary Color"
	TraitSecondary  = "Secondary Color"
	TraitAccent     = "Accent Color"
)

// phaseNames maps forging phases (1-4, lowest to highest) to their display
// names.
var phaseNames = map[int]string{
	1: "Ember",
	2: "Kindled",
	3: "Roaring",
	4: "Molten",
}

// PhaseName returns the display name of a forging phase. Out-of-range phases
// resolve to "Unknown" rather than failing, the document stays pinnable.
func PhaseName(phase int) string {
	if n, ok := phaseNames[phase]; ok {
		return n
	}
	return "Unknown"
}

// Attribute is a single trait entry.
type Attribute struct {
	TraitType string `json:"trait_type"`
	Value     string `json:"value"`
}

// Document is the token metadata pinned for a Clinker.
type Document struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Image       string      `json:"image"`
	ExternalURL string      `json:"external_url,omitempty"`
	Attributes  []Attribute `json:"attributes"`
}

// Params carries everything a document is derived from.
type Params struct {
	FID    uint64
	Handle string

	Phase       int
	Silhouette  string
	Expression  string
	Texture     string
	Accessories []string

	Primary   string
	Secondary string
	Accent    string

	// Image is the locator of the pinned artwork, usually an ipfs uri.
	Image string
	// ExternalURL points at the clinker's page in the mini app, optional.
	ExternalURL string
}

// Build assembles the metadata document for a Clinker.
func Build(p Params) Document {
	attrs := make([]Attribute, 0, 7+len(p.Accessories))
	attrs = append(attrs,
		Attribute{TraitType: TraitPhase, Value: PhaseName(p.Phase)},
		Attribute{TraitType: TraitSilhouette, Value: p.Silhouette},
		Attribute{TraitType: TraitExpression, Value: p.Expression},
		Attribute{TraitType: TraitTexture, Value: p.Texture},
	)

	for _, a := range p.Accessories {
		attrs = append(attrs, Attribute{TraitType: TraitAccessory, Value: a})
	}

	attrs = append(attrs,
		Attribute{TraitType: TraitPrimary, Value: p.Primary},
		Attribute{TraitType: TraitSecondary, Value: p.Secondary},
		Attribute{TraitType: TraitAccent, Value: p.Accent},
	)

	who := fmt.Sprintf("fid %d", p.FID)
	if p.Handle != "" {
		who = "@" + p.Handle
	}

	return Document{
		Name: fmt.Sprintf("Clinker #%d", p.FID),
		Description: fmt.Sprintf(
			"A creature of slag and cooled ember, forged one per Farcaster identity. This one burns for %s.", who),
		Image:       p.Image,
		ExternalURL: p.ExternalURL,
		Attributes:  attrs,
	}
}

// Validate reports whether the document is complete enough to pin.
func Validate(d Document) bool {
	if d.Name == "" || d.Description == "" {
		return false
	}

	if !strings.HasPrefix(d.Image, ipfsScheme) && !valid.IsURL(d.Image) {
		return false
	}

	if d.ExternalURL != "" && !valid.IsURL(d.ExternalURL) {
		return false
	}

	if len(d.Attributes) == 0 {
		return false
	}

	for _, a := range d.Attributes {
		if a.TraitType == "" || a.Value == "" {
			return false
		}
	}

	return true
}
