package icon

// Icon identifies a UI symbol in the registry.
type Icon int

const (
	Fail Icon = iota
	Success
	Progress
	Live
	Muted
	Unmuted
	Active
	Drag
	Fullscreen
	Link
)

var icons = map[Icon]*iconDef{
	Fail: {
		emoji:   "💀",
		nerd:    "",
		plain:   "x",
		kaomoji: "(×﹏×)",
		squares: "🟥",
	},
	Success: {
		emoji:   "🎉",
		nerd:    "",
		plain:   "v",
		kaomoji: "(ᵔ◡ᵔ)",
		squares: "🟩",
	},
	Progress: {
		emoji:   "👾",
		nerd:    "",
		plain:   "~",
		kaomoji: "┐(￣ヘ￣;)┌",
		squares: "🟦",
	},
	Live: {
		emoji:   "🔴",
		nerd:    "",
		plain:   "LIVE",
		kaomoji: "(◉‿◉)",
		squares: "🟥",
	},
	Muted: {
		emoji:   "🔇",
		nerd:    "\U000f075f",
		plain:   "[muted]",
		kaomoji: "(－_－) zzZ",
		squares: "⬛",
	},
	Unmuted: {
		emoji:   "🔊",
		nerd:    "\U000f057e",
		plain:   "[sound]",
		kaomoji: "♪(´▽｀)",
		squares: "🟨",
	},
	Active: {
		emoji:   "⭐",
		nerd:    "",
		plain:   "*",
		kaomoji: "(★‿★)",
		squares: "🟪",
	},
	Drag: {
		emoji:   "✋",
		nerd:    "",
		plain:   "=",
		kaomoji: "ヽ(°〇°)ﾉ",
		squares: "🟧",
	},
	Fullscreen: {
		emoji:   "⛶",
		nerd:    "",
		plain:   "[ ]",
		kaomoji: "[(◕‿◕)]",
		squares: "🔲",
	},
	Link: {
		emoji:   "🔗",
		nerd:    "",
		plain:   "->",
		kaomoji: "(°ロ°)☝",
		squares: "🟫",
	},
}
