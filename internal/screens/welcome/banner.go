package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/passagequiz/internal/ui/theme"
)

const bannerArt = `
 ██████╗  █████╗ ███████╗███████╗ █████╗  ██████╗ ███████╗
 ██╔══██╗██╔══██╗██╔════╝██╔════╝██╔══██╗██╔════╝ ██╔════╝
 ██████╔╝███████║███████╗███████╗███████║██║  ███╗█████╗
 ██╔═══╝ ██╔══██║╚════██║╚════██║██╔══██║██║   ██║██╔══╝
 ██║     ██║  ██║███████║███████║██║  ██║╚██████╔╝███████╗
 ╚═╝     ╚═╝  ╚═╝╚══════╝╚══════╝╚═╝  ╚═╝ ╚═════╝ ╚══════╝
                         Q U I Z`

const bannerCompact = "P A S S A G E Q U I Z"

// RenderBanner returns the banner styled in the primary color. Uses a
// compact fallback for terminals narrower than 60 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 60 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
