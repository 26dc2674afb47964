package domain

type ThemeColors struct {
	Primary       string `json:"primary"`
	Secondary     string `json:"secondary"`
	Accent        string `json:"accent"`
	Background    string `json:"background"`
	Surface       string `json:"surface"`
	Text          string `json:"text"`
	TextSecondary string `json:"textSecondary"`
	Border        string `json:"border"`
	Error         string `json:"error"`
	Success       string `json:"success"`
	Warning       string `json:"warning"`
	Info          string `json:"info"`
}

type ThemeTypography struct {
	FontFamily        string  `json:"fontFamily"`
	FontFamilyHeading string  `json:"fontFamilyHeading,omitempty"`
	BaseFontSize      string  `json:"baseFontSize"`
	LineHeight        float64 `json:"lineHeight"`
	Scale             string  `json:"scale"`
}

type ThemeSpacing struct {
	// 基准间距，单位 px
	Unit  int   `json:"unit"`
	Scale []int `json:"scale"`
}

type ThemeRadius struct {
	SM   string `json:"sm"`
	MD   string `json:"md"`
	LG   string `json:"lg"`
	XL   string `json:"xl"`
	Full string `json:"full"`
}

type ThemeShadows struct {
	SM string `json:"sm"`
	MD string `json:"md"`
	LG string `json:"lg"`
	XL string `json:"xl"`
}

type ThemeBreakpoints struct {
	Mobile  string `json:"mobile"`
	Tablet  string `json:"tablet"`
	Desktop string `json:"desktop"`
	Wide    string `json:"wide"`
}

type Theme struct {
	Colors       ThemeColors      `json:"colors"`
	Typography   ThemeTypography  `json:"typography"`
	Spacing      ThemeSpacing     `json:"spacing"`
	BorderRadius ThemeRadius      `json:"borderRadius"`
	Shadows      ThemeShadows     `json:"shadows"`
	Breakpoints  ThemeBreakpoints `json:"breakpoints"`
}

// IsZero 模板缺主题时校验只给警告，不拦截
func (t Theme) IsZero() bool {
	return t.Colors == ThemeColors{} &&
		t.Typography == ThemeTypography{} &&
		t.Spacing.Unit == 0 && len(t.Spacing.Scale) == 0
}

// DefaultTheme 内置模板与新建模板的缺省主题
func DefaultTheme() Theme {
	return Theme{
		Colors: ThemeColors{
			Primary:       "#3B82F6",
			Secondary:     "#6366F1",
			Accent:        "#8B5CF6",
			Background:    "#FFFFFF",
			Surface:       "#F9FAFB",
			Text:          "#111827",
			TextSecondary: "#6B7280",
			Border:        "#E5E7EB",
			Error:         "#EF4444",
			Success:       "#10B981",
			Warning:       "#F59E0B",
			Info:          "#3B82F6",
		},
		Typography: ThemeTypography{
			FontFamily:        "Inter, system-ui, sans-serif",
			FontFamilyHeading: "Inter, system-ui, sans-serif",
			BaseFontSize:      "16px",
			LineHeight:        1.5,
			Scale:             "major-third",
		},
		Spacing: ThemeSpacing{
			Unit:  4,
			Scale: []int{0, 1, 2, 3, 4, 5, 6, 8, 10, 12, 16, 20, 24, 32, 40, 48, 64},
		},
		BorderRadius: ThemeRadius{
			SM:   "0.25rem",
			MD:   "0.5rem",
			LG:   "0.75rem",
			XL:   "1rem",
			Full: "9999px",
		},
		Shadows: ThemeShadows{
			SM: "0 1px 2px 0 rgba(0, 0, 0, 0.05)",
			MD: "0 4px 6px -1px rgba(0, 0, 0, 0.1)",
			LG: "0 10px 15px -3px rgba(0, 0, 0, 0.1)",
			XL: "0 20px 25px -5px rgba(0, 0, 0, 0.1)",
		},
		Breakpoints: ThemeBreakpoints{
			Mobile:  "640px",
			Tablet:  "768px",
			Desktop: "1024px",
			Wide:    "1280px",
		},
	}
}
