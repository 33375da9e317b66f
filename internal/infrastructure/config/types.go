package config

// DisplayConfig is the root config for display.json
type DisplayConfig struct {
	Window     WindowConfig `json:"window"`
	HUD        HUDConfig    `json:"hud"`
	Font       FontConfig   `json:"font"`
	Background string       `json:"background"`
	Colors     ColorConfig  `json:"colors"`
}

type WindowConfig struct {
	Title     string `json:"title"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Framerate int    `json:"framerate"`
}

// HUDConfig sizes the panel below the board, in board rows
type HUDConfig struct {
	Rows    int     `json:"rows"`
	Border  float64 `json:"border"`
	APSlots int     `json:"apSlots"`
}

type FontConfig struct {
	File      string  `json:"file"`
	Size      float64 `json:"size"`
	SmallSize float64 `json:"smallSize"`
}

// ColorConfig holds "#rrggbb" or "#rrggbbaa" strings
type ColorConfig struct {
	Panel       string `json:"panel"`
	PanelInner  string `json:"panelInner"`
	Text        string `json:"text"`
	Button      string `json:"button"`
	ButtonHover string `json:"buttonHover"`
	Health      string `json:"health"`
	ActionPoint string `json:"actionPoint"`
	Charge      string `json:"charge"`
	Selection   string `json:"selection"`
	Blocked     string `json:"blocked"`
	Overlay     string `json:"overlay"`
}

// SpritesConfig is the root config for sprites.json
type SpritesConfig struct {
	Player SheetConfig `json:"player"`
	Enemy  SheetConfig `json:"enemy"`
}

// SheetConfig describes the sprite sheets of one fighter kind
type SheetConfig struct {
	Dir        string                     `json:"dir"`
	Animations map[string]AnimationConfig `json:"animations"` // keyed by animation state
}

// AnimationConfig is one horizontal strip per facing
type AnimationConfig struct {
	Left      string  `json:"left"`
	Right     string  `json:"right"`
	Frames    int     `json:"frames"`
	FrameTime float64 `json:"frameTime"`
}
