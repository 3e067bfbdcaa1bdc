// Package icon renders CLI status and format-kind symbols in the variant chosen by the user.
package icon

import (
	"github.com/spf13/viper"
	"github.com/tubefetch/tubefetch/key"
)

// Visual Variant Constants - these define the supported aesthetic styles for icon rendering.
const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants returns a slice of all registered icon style identifiers.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

// iconDef encapsulates the visual representations of a single UI symbol across all supported variants.
type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

// Get retrieves the visual representation for the receiver Def based on the global icons variant configuration.
func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case kaomoji:
		return d.kaomoji
	case squares:
		return d.squares
	default:
		return ""
	}
}

// Icon identifies a symbol in the registry.
type Icon int

const (
	Success Icon = iota
	Fail
	Progress
	Audio
	Video
	AudioVideo
	Locked
	Download
)

var icons = map[Icon]*iconDef{
	Success:    {emoji: "🎉", nerd: "\uf00c ", plain: "OK", kaomoji: "(ᵔ◡ᵔ)", squares: "🟩"},
	Fail:       {emoji: "👹", nerd: "\uf00d ", plain: "Error", kaomoji: "(╯°□°)╯︵ ┻━┻", squares: "🟥"},
	Progress:   {emoji: "⏳", nerd: "\uf110 ", plain: "...", kaomoji: "(ーー;)", squares: "🟨"},
	Audio:      {emoji: "🎧", nerd: "\uf025 ", plain: "A", kaomoji: "♪", squares: "🟦"},
	Video:      {emoji: "🎞", nerd: "\uf03d ", plain: "V", kaomoji: "▶", squares: "🟧"},
	AudioVideo: {emoji: "📺", nerd: "\uf26c ", plain: "AV", kaomoji: "♪▶", squares: "🟫"},
	Locked:     {emoji: "🔒", nerd: "\uf023 ", plain: "(ciphered)", kaomoji: "(¬_¬)", squares: "⬛"},
	Download:   {emoji: "📥", nerd: "\uf019 ", plain: "->", kaomoji: "(☞ﾟヮﾟ)☞", squares: "⬜"},
}

// Get returns the rendered string for a specified Icon identifier from the global registry.
func Get(i Icon) string {
	def, ok := icons[i]
	if !ok {
		return ""
	}
	return def.Get()
}
