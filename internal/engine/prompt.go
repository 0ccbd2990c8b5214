package engine

import (
	"fmt"
	"strings"

	"github.com/Adefolalu/clinkers/internal/entities"
)

// tierDescriptions are keyed by tier, index 0 unused.
var tierDescriptions = [5]string{
	"",
	"This one is a young ember clinker, freshly raked from the furnace: small, a little rough around the edges, its inner glow faint but steady.",
	"This one is a kindled clinker with a dependable inner fire; warm light leaks from its seams and it carries itself with quiet confidence.",
	"This one is a roaring clinker, hardened by long heats; bright fire shows through every crack and its stance is bold.",
	"This one is a molten clinker of legendary temper: white-hot light pours from its core, wisps of smoke curl off its shoulders, and it radiates presence.",
}

// buildPrompt renders the instruction block sent to the image generator.
// Pure string templating; it cannot fail.
func buildPrompt(p entities.Profile, tier int, pal Palette, t TraitSet) string {
	var b strings.Builder

	b.WriteString("A portrait of a Clinker, a small creature born from furnace slag, drawn as a collectible character belonging to ")
	if p.DisplayName != "" {
		b.WriteString(p.DisplayName)
	} else {
		b.WriteString(p.Handle)
	}
	b.WriteString(". ")
	b.WriteString(tierDescriptions[tier])
	b.WriteString("\n\nDesign spec:\n")
	fmt.Fprintf(&b, "- primary color: %s\n", pal.Primary)
	fmt.Fprintf(&b, "- secondary color: %s\n", pal.Secondary)
	fmt.Fprintf(&b, "- accent color: %s\n", pal.Accent)
	fmt.Fprintf(&b, "- silhouette: %s\n", t.Silhouette)
	fmt.Fprintf(&b, "- expression: %s\n", t.Expression)
	fmt.Fprintf(&b, "- surface texture: %s\n", t.Texture)
	fmt.Fprintf(&b, "- accessories: %s\n", strings.Join(t.Accessories, ", "))

	b.WriteString("\nInstructions for the renderer:\n")
	b.WriteString("- use exactly the hex colors listed above, nothing else dominant\n")
	b.WriteString("- one single character, centered, full body visible\n")
	b.WriteString("- plain solid background, a darker shade of the primary color\n")
	b.WriteString("- no text, letters, numerals, watermarks or logos anywhere in the image\n")

	return b.String()
}
