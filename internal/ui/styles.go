package ui

import (
	styles "github.com/charmbracelet/lipgloss"

	"leadscore/internal/leads"
)

var (
	accentColor = styles.AdaptiveColor{Light: "0", Dark: "9"}
	borderColor = styles.AdaptiveColor{Light: "#555", Dark: "#555"}
	errorColor  = styles.AdaptiveColor{Light: "1", Dark: "9"}
	warnColor   = styles.AdaptiveColor{Light: "3", Dark: "11"}
	mutedColor  = styles.AdaptiveColor{Light: "8", Dark: "8"}

	accentFg = styles.NewStyle().Foreground(accentColor)
	borderFg = styles.NewStyle().Foreground(borderColor)
	mutedFg  = styles.NewStyle().Foreground(mutedColor)
	errorFg  = styles.NewStyle().Foreground(errorColor)
	warnFg   = styles.NewStyle().Foreground(warnColor)

	paneStyle = styles.NewStyle().
			BorderStyle(styles.NormalBorder()).
			BorderForeground(borderColor)

	paneTitle = styles.NewStyle().Bold(true).Padding(0, 1)

	fieldLabel   = mutedFg
	fieldFocused = accentFg.Bold(true)

	scoreStyles = map[leads.Bucket]styles.Style{
		leads.BucketVeryHigh: styles.NewStyle().Foreground(styles.AdaptiveColor{Light: "2", Dark: "10"}),
		leads.BucketHigh:     styles.NewStyle().Foreground(styles.AdaptiveColor{Light: "2", Dark: "2"}),
		leads.BucketMedium:   styles.NewStyle().Foreground(styles.AdaptiveColor{Light: "3", Dark: "11"}),
		leads.BucketLow:      styles.NewStyle().Foreground(styles.AdaptiveColor{Light: "3", Dark: "3"}),
		leads.BucketVeryLow:  styles.NewStyle().Foreground(styles.AdaptiveColor{Light: "1", Dark: "9"}),
	}
)

func scoreStyle(score float64) styles.Style {
	return scoreStyles[leads.ScoreBucket(score)]
}
