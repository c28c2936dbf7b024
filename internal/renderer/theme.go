package renderer

import (
	"portfolio-generator/internal/model"
)

// style parameterizes the single portfolio layout. The three themes differ
// only in these values; section structure and content precedence never
// diverge between them.
type style struct {
	PageBackground string
	PageColor      string
	FontFamily     string
	CardBackground string
	CardBorder     string
	CardShadow     string
	CardBlur       bool
	HeadingColor   string
	TaglineColor   string
	BodyColor      string
	Accent         string
	AccentGradient string
	TagBackground  string
	TagColor       string
	LinkBackground string
	LinkColor      string
	FooterColor    string
}

func themeStyle(t model.Theme) style {
	switch t {
	case model.ThemeMinimalDark:
		return style{
			PageBackground: "#0d0d0d",
			PageColor:      "#e0e0e0",
			FontFamily:     "'Inter', 'Helvetica Neue', Arial, sans-serif",
			CardBackground: "#161616",
			CardBorder:     "1px solid #2a2a2a",
			CardShadow:     "none",
			HeadingColor:   "#ffffff",
			TaglineColor:   "#888888",
			BodyColor:      "#b0b0b0",
			Accent:         "#4fd1c5",
			AccentGradient: "linear-gradient(135deg, #4fd1c5, #38a89d)",
			TagBackground:  "#1f2a2a",
			TagColor:       "#4fd1c5",
			LinkBackground: "#1f1f1f",
			LinkColor:      "#4fd1c5",
			FooterColor:    "#555555",
		}
	case model.ThemeCreativeGradient:
		return style{
			PageBackground: "linear-gradient(45deg, #ff6b6b, #feca57, #48dbfb, #ff9ff3)",
			PageColor:      "#2d2d2d",
			FontFamily:     "'Poppins', 'Segoe UI', sans-serif",
			CardBackground: "rgba(255, 255, 255, 0.92)",
			CardBorder:     "none",
			CardShadow:     "0 15px 40px rgba(0, 0, 0, 0.2)",
			HeadingColor:   "#2d2d2d",
			TaglineColor:   "#ff6b6b",
			BodyColor:      "#555555",
			Accent:         "#ff6b6b",
			AccentGradient: "linear-gradient(45deg, #ff6b6b, #feca57)",
			TagBackground:  "#fff0f0",
			TagColor:       "#ff6b6b",
			LinkBackground: "linear-gradient(45deg, #ff6b6b, #feca57)",
			LinkColor:      "#ffffff",
			FooterColor:    "#ffffff",
		}
	default: // ModernGlass
		return style{
			PageBackground: "linear-gradient(135deg, #667eea 0%, #764ba2 100%)",
			PageColor:      "#333333",
			FontFamily:     "-apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif",
			CardBackground: "rgba(255, 255, 255, 0.95)",
			CardBorder:     "1px solid rgba(255, 255, 255, 0.5)",
			CardShadow:     "0 20px 60px rgba(0, 0, 0, 0.15)",
			CardBlur:       true,
			HeadingColor:   "#333333",
			TaglineColor:   "#667eea",
			BodyColor:      "#666666",
			Accent:         "#667eea",
			AccentGradient: "linear-gradient(135deg, #667eea, #764ba2)",
			TagBackground:  "linear-gradient(135deg, #667eea, #764ba2)",
			TagColor:       "#ffffff",
			LinkBackground: "linear-gradient(135deg, #667eea, #764ba2)",
			LinkColor:      "#ffffff",
			FooterColor:    "rgba(255, 255, 255, 0.85)",
		}
	}
}
