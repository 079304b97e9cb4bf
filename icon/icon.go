// Package icon renders status symbols in the variant chosen by icons.variant.
//
// Icons can be displayed as emoji, nerd-font glyphs, plain ASCII, kaomoji,
// or Unicode squares depending on user preference.
package icon

import (
	"github.com/spf13/viper"
	"github.com/tubedl/tubedl/key"
)

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

// Icon identifies a symbol in the registry.
type Icon int

const (
	Success Icon = iota
	Fail
	Skip
	Progress
	Video
	Playlist
)

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

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

var icons = map[Icon]*iconDef{
	Success:  {emoji: "🎉", nerd: "", plain: "✓", kaomoji: "(ᵔ◡ᵔ)", squares: "▣"},
	Fail:     {emoji: "💀", nerd: "", plain: "✖", kaomoji: "(╥﹏╥)", squares: "▨"},
	Skip:     {emoji: "⏭️", nerd: "", plain: "»", kaomoji: "(¬_¬)", squares: "▢"},
	Progress: {emoji: "⏳", nerd: "", plain: "…", kaomoji: "(・_・;)", squares: "▤"},
	Video:    {emoji: "🎞️", nerd: "", plain: "▶", kaomoji: "(⌐■_■)", squares: "▶"},
	Playlist: {emoji: "📚", nerd: "", plain: "≡", kaomoji: "(◕‿◕)", squares: "▦"},
}

// Get returns the rendered string for an Icon in the configured variant.
func Get(i Icon) string {
	return icons[i].Get()
}
