package themes

// The built-in palettes. Each one fills every Palette field so templates
// never render an empty CSS variable.

var darkRed = Palette{
	Primary:      "#e63946",
	PrimaryHover: "#c1121f",
	Secondary:    "#9d0208",
	Accent:       "#ffb703",
	AccentHover:  "#fb8500",
	Bg0:          "#0d0d0f",
	Bg1:          "#161619",
	Card:         "#1c1c21",
	Text:         "#f1f1f3",
	TextInverse:  "#0d0d0f",
	Muted:        "#9a9aa5",
	Border:       "#2c2c33",
	NavBg:        "rgba(13, 13, 15, 0.92)",
	NavText:      "#f1f1f3",
	NavActive:    "#e63946",
	FooterBg:     "#0a0a0c",
	FooterText:   "#9a9aa5",
	LinkColor:    "#e63946",
	LinkHover:    "#ff6b76",
	ButtonBg:     "#e63946",
	ButtonText:   "#ffffff",
	ButtonHover:  "#c1121f",
	InputBg:      "#161619",
	InputBorder:  "#2c2c33",
	InputText:    "#f1f1f3",
	Success:      "#2dc653",
	Warning:      "#ffb703",
	Danger:       "#e63946",
	Info:         "#4cc9f0",
	Shadow:       "rgba(0, 0, 0, 0.45)",
	Overlay:      "rgba(13, 13, 15, 0.75)",
	HeroGradient: "linear-gradient(135deg, #2b090c 0%, #0d0d0f 100%)",
	CardGradient: "linear-gradient(180deg, #1c1c21 0%, #161619 100%)",
	ScrollThumb:  "#e63946",
	TagBg:        "rgba(230, 57, 70, 0.15)",
	TagText:      "#ff6b76",
}

var darkBlue = Palette{
	Primary:      "#3a86ff",
	PrimaryHover: "#2667cc",
	Secondary:    "#023e8a",
	Accent:       "#00b4d8",
	AccentHover:  "#0096c7",
	Bg0:          "#0a0e1a",
	Bg1:          "#111627",
	Card:         "#171d31",
	Text:         "#eef1f8",
	TextInverse:  "#0a0e1a",
	Muted:        "#8e97b3",
	Border:       "#242c47",
	NavBg:        "rgba(10, 14, 26, 0.92)",
	NavText:      "#eef1f8",
	NavActive:    "#3a86ff",
	FooterBg:     "#070a13",
	FooterText:   "#8e97b3",
	LinkColor:    "#3a86ff",
	LinkHover:    "#74a9ff",
	ButtonBg:     "#3a86ff",
	ButtonText:   "#ffffff",
	ButtonHover:  "#2667cc",
	InputBg:      "#111627",
	InputBorder:  "#242c47",
	InputText:    "#eef1f8",
	Success:      "#2dc653",
	Warning:      "#ffb703",
	Danger:       "#ef476f",
	Info:         "#00b4d8",
	Shadow:       "rgba(0, 0, 0, 0.45)",
	Overlay:      "rgba(10, 14, 26, 0.75)",
	HeroGradient: "linear-gradient(135deg, #0a1f44 0%, #0a0e1a 100%)",
	CardGradient: "linear-gradient(180deg, #171d31 0%, #111627 100%)",
	ScrollThumb:  "#3a86ff",
	TagBg:        "rgba(58, 134, 255, 0.15)",
	TagText:      "#74a9ff",
}

var darkGreen = Palette{
	Primary:      "#2dc653",
	PrimaryHover: "#25a244",
	Secondary:    "#1b4332",
	Accent:       "#b7e4c7",
	AccentHover:  "#95d5b2",
	Bg0:          "#0b120d",
	Bg1:          "#121a14",
	Card:         "#18231b",
	Text:         "#eef6f0",
	TextInverse:  "#0b120d",
	Muted:        "#8fa796",
	Border:       "#24352a",
	NavBg:        "rgba(11, 18, 13, 0.92)",
	NavText:      "#eef6f0",
	NavActive:    "#2dc653",
	FooterBg:     "#080d09",
	FooterText:   "#8fa796",
	LinkColor:    "#2dc653",
	LinkHover:    "#5bd97c",
	ButtonBg:     "#2dc653",
	ButtonText:   "#0b120d",
	ButtonHover:  "#25a244",
	InputBg:      "#121a14",
	InputBorder:  "#24352a",
	InputText:    "#eef6f0",
	Success:      "#2dc653",
	Warning:      "#ffb703",
	Danger:       "#e63946",
	Info:         "#4cc9f0",
	Shadow:       "rgba(0, 0, 0, 0.45)",
	Overlay:      "rgba(11, 18, 13, 0.75)",
	HeroGradient: "linear-gradient(135deg, #10301d 0%, #0b120d 100%)",
	CardGradient: "linear-gradient(180deg, #18231b 0%, #121a14 100%)",
	ScrollThumb:  "#2dc653",
	TagBg:        "rgba(45, 198, 83, 0.15)",
	TagText:      "#5bd97c",
}

var darkPurple = Palette{
	Primary:      "#9d4edd",
	PrimaryHover: "#7b2cbf",
	Secondary:    "#3c096c",
	Accent:       "#ff9e00",
	AccentHover:  "#ff8500",
	Bg0:          "#0f0a16",
	Bg1:          "#170f22",
	Card:         "#1e142c",
	Text:         "#f3eefa",
	TextInverse:  "#0f0a16",
	Muted:        "#a396b5",
	Border:       "#2e2142",
	NavBg:        "rgba(15, 10, 22, 0.92)",
	NavText:      "#f3eefa",
	NavActive:    "#9d4edd",
	FooterBg:     "#0a0710",
	FooterText:   "#a396b5",
	LinkColor:    "#9d4edd",
	LinkHover:    "#c77dff",
	ButtonBg:     "#9d4edd",
	ButtonText:   "#ffffff",
	ButtonHover:  "#7b2cbf",
	InputBg:      "#170f22",
	InputBorder:  "#2e2142",
	InputText:    "#f3eefa",
	Success:      "#2dc653",
	Warning:      "#ffb703",
	Danger:       "#ef476f",
	Info:         "#4cc9f0",
	Shadow:       "rgba(0, 0, 0, 0.45)",
	Overlay:      "rgba(15, 10, 22, 0.75)",
	HeroGradient: "linear-gradient(135deg, #2a0a4a 0%, #0f0a16 100%)",
	CardGradient: "linear-gradient(180deg, #1e142c 0%, #170f22 100%)",
	ScrollThumb:  "#9d4edd",
	TagBg:        "rgba(157, 78, 221, 0.15)",
	TagText:      "#c77dff",
}

// cyberpunk keeps the two constants the theme has always shipped with:
// bg0 #0a0a0a and primary #00ff88.
var cyberpunk = Palette{
	Primary:      "#00ff88",
	PrimaryHover: "#00cc6d",
	Secondary:    "#ff00aa",
	Accent:       "#00e5ff",
	AccentHover:  "#00b8cc",
	Bg0:          "#0a0a0a",
	Bg1:          "#121212",
	Card:         "#181818",
	Text:         "#e6ffe6",
	TextInverse:  "#0a0a0a",
	Muted:        "#7fa88f",
	Border:       "#1f3b2c",
	NavBg:        "rgba(10, 10, 10, 0.92)",
	NavText:      "#e6ffe6",
	NavActive:    "#00ff88",
	FooterBg:     "#050505",
	FooterText:   "#7fa88f",
	LinkColor:    "#00ff88",
	LinkHover:    "#66ffb8",
	ButtonBg:     "#00ff88",
	ButtonText:   "#0a0a0a",
	ButtonHover:  "#00cc6d",
	InputBg:      "#121212",
	InputBorder:  "#1f3b2c",
	InputText:    "#e6ffe6",
	Success:      "#00ff88",
	Warning:      "#ffe600",
	Danger:       "#ff2975",
	Info:         "#00e5ff",
	Shadow:       "rgba(0, 255, 136, 0.12)",
	Overlay:      "rgba(10, 10, 10, 0.8)",
	HeroGradient: "linear-gradient(135deg, #001a10 0%, #0a0a0a 60%, #14001a 100%)",
	CardGradient: "linear-gradient(180deg, #181818 0%, #121212 100%)",
	ScrollThumb:  "#00ff88",
	TagBg:        "rgba(0, 255, 136, 0.12)",
	TagText:      "#66ffb8",
}

var midnight = Palette{
	Primary:      "#7aa2f7",
	PrimaryHover: "#5d87e0",
	Secondary:    "#414868",
	Accent:       "#bb9af7",
	AccentHover:  "#a383e0",
	Bg0:          "#1a1b26",
	Bg1:          "#1f2335",
	Card:         "#24283b",
	Text:         "#c0caf5",
	TextInverse:  "#1a1b26",
	Muted:        "#565f89",
	Border:       "#32395c",
	NavBg:        "rgba(26, 27, 38, 0.92)",
	NavText:      "#c0caf5",
	NavActive:    "#7aa2f7",
	FooterBg:     "#15161e",
	FooterText:   "#565f89",
	LinkColor:    "#7aa2f7",
	LinkHover:    "#a6c0fa",
	ButtonBg:     "#7aa2f7",
	ButtonText:   "#1a1b26",
	ButtonHover:  "#5d87e0",
	InputBg:      "#1f2335",
	InputBorder:  "#32395c",
	InputText:    "#c0caf5",
	Success:      "#9ece6a",
	Warning:      "#e0af68",
	Danger:       "#f7768e",
	Info:         "#7dcfff",
	Shadow:       "rgba(0, 0, 0, 0.5)",
	Overlay:      "rgba(26, 27, 38, 0.75)",
	HeroGradient: "linear-gradient(135deg, #24283b 0%, #1a1b26 100%)",
	CardGradient: "linear-gradient(180deg, #24283b 0%, #1f2335 100%)",
	ScrollThumb:  "#7aa2f7",
	TagBg:        "rgba(122, 162, 247, 0.15)",
	TagText:      "#a6c0fa",
}

var crimson = Palette{
	Primary:      "#dc143c",
	PrimaryHover: "#b01030",
	Secondary:    "#640d14",
	Accent:       "#ffd700",
	AccentHover:  "#e6c200",
	Bg0:          "#140608",
	Bg1:          "#1d0a0d",
	Card:         "#260d11",
	Text:         "#fdf0f2",
	TextInverse:  "#140608",
	Muted:        "#b08a90",
	Border:       "#3c161c",
	NavBg:        "rgba(20, 6, 8, 0.92)",
	NavText:      "#fdf0f2",
	NavActive:    "#dc143c",
	FooterBg:     "#0e0405",
	FooterText:   "#b08a90",
	LinkColor:    "#dc143c",
	LinkHover:    "#ff5470",
	ButtonBg:     "#dc143c",
	ButtonText:   "#ffffff",
	ButtonHover:  "#b01030",
	InputBg:      "#1d0a0d",
	InputBorder:  "#3c161c",
	InputText:    "#fdf0f2",
	Success:      "#2dc653",
	Warning:      "#ffd700",
	Danger:       "#dc143c",
	Info:         "#4cc9f0",
	Shadow:       "rgba(0, 0, 0, 0.5)",
	Overlay:      "rgba(20, 6, 8, 0.8)",
	HeroGradient: "linear-gradient(135deg, #450a12 0%, #140608 100%)",
	CardGradient: "linear-gradient(180deg, #260d11 0%, #1d0a0d 100%)",
	ScrollThumb:  "#dc143c",
	TagBg:        "rgba(220, 20, 60, 0.15)",
	TagText:      "#ff5470",
}

var ocean = Palette{
	Primary:      "#00b4d8",
	PrimaryHover: "#0096c7",
	Secondary:    "#03045e",
	Accent:       "#90e0ef",
	AccentHover:  "#67d0e6",
	Bg0:          "#03111c",
	Bg1:          "#071a29",
	Card:         "#0b2234",
	Text:         "#e6f6fb",
	TextInverse:  "#03111c",
	Muted:        "#7fa0b3",
	Border:       "#143349",
	NavBg:        "rgba(3, 17, 28, 0.92)",
	NavText:      "#e6f6fb",
	NavActive:    "#00b4d8",
	FooterBg:     "#020b13",
	FooterText:   "#7fa0b3",
	LinkColor:    "#00b4d8",
	LinkHover:    "#48cae4",
	ButtonBg:     "#00b4d8",
	ButtonText:   "#03111c",
	ButtonHover:  "#0096c7",
	InputBg:      "#071a29",
	InputBorder:  "#143349",
	InputText:    "#e6f6fb",
	Success:      "#2dc653",
	Warning:      "#ffb703",
	Danger:       "#ef476f",
	Info:         "#90e0ef",
	Shadow:       "rgba(0, 0, 0, 0.45)",
	Overlay:      "rgba(3, 17, 28, 0.75)",
	HeroGradient: "linear-gradient(135deg, #023e58 0%, #03111c 100%)",
	CardGradient: "linear-gradient(180deg, #0b2234 0%, #071a29 100%)",
	ScrollThumb:  "#00b4d8",
	TagBg:        "rgba(0, 180, 216, 0.15)",
	TagText:      "#48cae4",
}

var forest = Palette{
	Primary:      "#80b918",
	PrimaryHover: "#6a9c15",
	Secondary:    "#2b9348",
	Accent:       "#eeef20",
	AccentHover:  "#d4d61c",
	Bg0:          "#101407",
	Bg1:          "#161c0b",
	Card:         "#1d250f",
	Text:         "#f4f7e8",
	TextInverse:  "#101407",
	Muted:        "#9aa785",
	Border:       "#2c3a18",
	NavBg:        "rgba(16, 20, 7, 0.92)",
	NavText:      "#f4f7e8",
	NavActive:    "#80b918",
	FooterBg:     "#0b0e05",
	FooterText:   "#9aa785",
	LinkColor:    "#80b918",
	LinkHover:    "#aacc00",
	ButtonBg:     "#80b918",
	ButtonText:   "#101407",
	ButtonHover:  "#6a9c15",
	InputBg:      "#161c0b",
	InputBorder:  "#2c3a18",
	InputText:    "#f4f7e8",
	Success:      "#80b918",
	Warning:      "#eeef20",
	Danger:       "#e63946",
	Info:         "#4cc9f0",
	Shadow:       "rgba(0, 0, 0, 0.45)",
	Overlay:      "rgba(16, 20, 7, 0.75)",
	HeroGradient: "linear-gradient(135deg, #23380d 0%, #101407 100%)",
	CardGradient: "linear-gradient(180deg, #1d250f 0%, #161c0b 100%)",
	ScrollThumb:  "#80b918",
	TagBg:        "rgba(128, 185, 24, 0.15)",
	TagText:      "#aacc00",
}

var monochrome = Palette{
	Primary:      "#e0e0e0",
	PrimaryHover: "#bdbdbd",
	Secondary:    "#616161",
	Accent:       "#ffffff",
	AccentHover:  "#eeeeee",
	Bg0:          "#0f0f0f",
	Bg1:          "#171717",
	Card:         "#1e1e1e",
	Text:         "#f5f5f5",
	TextInverse:  "#0f0f0f",
	Muted:        "#9e9e9e",
	Border:       "#2e2e2e",
	NavBg:        "rgba(15, 15, 15, 0.92)",
	NavText:      "#f5f5f5",
	NavActive:    "#ffffff",
	FooterBg:     "#0a0a0a",
	FooterText:   "#9e9e9e",
	LinkColor:    "#e0e0e0",
	LinkHover:    "#ffffff",
	ButtonBg:     "#e0e0e0",
	ButtonText:   "#0f0f0f",
	ButtonHover:  "#bdbdbd",
	InputBg:      "#171717",
	InputBorder:  "#2e2e2e",
	InputText:    "#f5f5f5",
	Success:      "#a5d6a7",
	Warning:      "#ffe082",
	Danger:       "#ef9a9a",
	Info:         "#90caf9",
	Shadow:       "rgba(0, 0, 0, 0.6)",
	Overlay:      "rgba(15, 15, 15, 0.8)",
	HeroGradient: "linear-gradient(135deg, #2a2a2a 0%, #0f0f0f 100%)",
	CardGradient: "linear-gradient(180deg, #1e1e1e 0%, #171717 100%)",
	ScrollThumb:  "#e0e0e0",
	TagBg:        "rgba(224, 224, 224, 0.12)",
	TagText:      "#eeeeee",
}
