package catalog

import (
	"strings"

	"monkey-boards/models"
)

// pedals is the full catalog. Defined at process start, never mutated.
// Footprints are in millimeters; Boss compact pedals share the 73x129 chassis,
// Strymon large-format pedals the 171x187 one.
var pedals = []models.Pedal{
	{
		ID:       "boss-ds1",
		Brand:    "Boss",
		Model:    "DS-1 Distortion",
		Category: "distortion",
		Width:    73,
		Height:   129,
		ImageURL: "https://media.sweetwater.com/api/i/f-webp__q-82__ha-4259a7b2d99c48c0__hmac-8bf8eb81c5fbb2a3e60a4a078073c5daec0b2ba6/images/items/750/DS1-large.jpg",
		Color:    "#f97316",
	},
	{
		ID:       "boss-bd2",
		Brand:    "Boss",
		Model:    "BD-2 Blues Driver",
		Category: "overdrive",
		Width:    73,
		Height:   129,
		ImageURL: "https://media.sweetwater.com/api/i/f-webp__q-82__ha-4259a7b2d99c48c0__hmac-8bf8eb81c5fbb2a3e60a4a078073c5daec0b2ba6/images/items/750/BD2-large.jpg",
		Color:    "#e4b200",
	},
	{
		ID:       "mxr-carbon-copy",
		Brand:    "MXR",
		Model:    "M169 Carbon Copy Analog Delay",
		Category: "delay",
		Width:    73,
		Height:   129,
		ImageURL: "https://media.sweetwater.com/api/i/f-webp__q-82__ha-0c49ba2cc4f5b5fff5c2171f2be9a0a4bd70529a/images/items/750/M169-large.jpg",
		Color:    "#85b6d9",
	},
	{
		ID:       "ibanez-ts9",
		Brand:    "Ibanez",
		Model:    "TS9 Tube Screamer",
		Category: "overdrive",
		Width:    70,
		Height:   120,
		ImageURL: "https://media.sweetwater.com/api/i/f-webp__q-82__ha-6a1e082e7c2af7b5692de71627c6e889b9b7c8d2/images/items/750/TS9-large.jpg",
		Color:    "#70a700",
	},
	{
		ID:       "proco-rat2",
		Brand:    "ProCo",
		Model:    "RAT 2",
		Category: "distortion",
		Width:    73,
		Height:   129,
		ImageURL: "https://media.sweetwater.com/api/i/f-webp__q-82__ha-c9dd433be2f385319c3e00cb04e2d8a67fbdec4d/images/items/750/RAT2-large.jpg",
		Color:    "#606060",
	},
	{
		ID:       "boss-sd1",
		Brand:    "Boss",
		Model:    "SD-1 Super Overdrive",
		Category: "overdrive",
		Width:    73,
		Height:   129,
		ImageURL: "https://media.sweetwater.com/api/i/f-webp__q-82__ha-9f1bbd80119f63f1eeb2878e902695d927f7b549/images/items/750/SD1-large.jpg",
		Color:    "#ffc600",
	},
	{
		ID:       "electro-harmonix-big-muff-pi",
		Brand:    "Electro-Harmonix",
		Model:    "Big Muff Pi",
		Category: "fuzz",
		Width:    86,
		Height:   145,
		ImageURL: "https://media.sweetwater.com/api/i/f-webp__q-82__ha-a7e5fcbca54344c25f6fe6160ee6c808cd117038/images/items/750/BMP-large.jpg",
		Color:    "#3a3a3a",
	},
	{
		ID:       "boss-tu3",
		Brand:    "Boss",
		Model:    "TU-3 Chromatic Tuner",
		Category: "utility",
		Width:    73,
		Height:   129,
		ImageURL: "https://media.sweetwater.com/api/i/f-webp__q-82__ha-ffebfebadea1a5285678334d1e7bd10824459ace/images/items/750/TU3-large.jpg",
		Color:    "#ffffff",
	},
	{
		ID:       "boss-dd3",
		Brand:    "Boss",
		Model:    "DD-3 Digital Delay",
		Category: "delay",
		Width:    73,
		Height:   129,
		ImageURL: "https://media.sweetwater.com/api/i/f-webp__q-82__ha-40d43bfedf35058c2cb673e58f374c33a8d48ef5/images/items/750/DD3-large.jpg",
		Color:    "#99d8ff",
	},
	{
		ID:       "mxr-phase90",
		Brand:    "MXR",
		Model:    "Phase 90",
		Category: "modulation",
		Width:    73,
		Height:   129,
		ImageURL: "https://media.sweetwater.com/api/i/f-webp__q-82__ha-5df3e270a1f823943a5f3b3fc8c2d80ad3f4af19/images/items/750/Phase90-large.jpg",
		Color:    "#ff9900",
	},
	{
		ID:       "strymon-bigsky",
		Brand:    "Strymon",
		Model:    "BigSky",
		Category: "reverb",
		Width:    171,
		Height:   187,
		ImageURL: "https://media.sweetwater.com/api/i/f-webp__q-82__ha-d4e9b256e0d6b651fd9bcc8b3ee27253ce328db6/images/items/750/BigSky-large.jpg",
		Color:    "#2c3a5d",
	},
	{
		ID:       "strymon-timeline",
		Brand:    "Strymon",
		Model:    "TimeLine",
		Category: "delay",
		Width:    171,
		Height:   187,
		ImageURL: "https://media.sweetwater.com/api/i/f-webp__q-82__ha-869c6fd91974edf63010b244c1b4955a131a3402/images/items/750/TimeLine-large.jpg",
		Color:    "#4d4f68",
	},
	{
		ID:       "strymon-mobius",
		Brand:    "Strymon",
		Model:    "Mobius",
		Category: "modulation",
		Width:    171,
		Height:   187,
		ImageURL: "https://media.sweetwater.com/api/i/f-webp__q-82__ha-4a23ab2f5f5c93b134a5aef3b0cd87a9fd66d12d/images/items/750/Mobius-large.jpg",
		Color:    "#3b5b7f",
	},
	{
		ID:       "strymon-elcapistan",
		Brand:    "Strymon",
		Model:    "El Capistan",
		Category: "delay",
		Width:    171,
		Height:   187,
		ImageURL: "https://media.sweetwater.com/api/i/f-webp__q-82__ha-2cb0c3e6f82099fa03f5b1c24a632fd62e314f0a/images/items/750/ElCapistan-large.jpg",
		Color:    "#4a2e2e",
	},
	{
		ID:       "strymon-flint",
		Brand:    "Strymon",
		Model:    "Flint",
		Category: "tremolo/reverb",
		Width:    171,
		Height:   187,
		ImageURL: "https://media.sweetwater.com/api/i/f-webp__q-82__ha-71d3a4e5a11e1a98102c1c10b66d6e8f063622c0/images/items/750/Flint-large.jpg",
		Color:    "#8c5e2f",
	},
	{
		ID:       "strymon-dig",
		Brand:    "Strymon",
		Model:    "DIG Dual Digital Delay",
		Category: "delay",
		Width:    171,
		Height:   187,
		ImageURL: "https://media.sweetwater.com/api/i/f-webp__q-82__ha-9c4c437f0c2b6b6d26e5d80a8ee0e20463f5480f/images/items/750/DIG-large.jpg",
		Color:    "#3e3e3e",
	},
	{
		ID:       "strymon-brigadier",
		Brand:    "Strymon",
		Model:    "Brigadier",
		Category: "delay",
		Width:    171,
		Height:   187,
		ImageURL: "https://media.sweetwater.com/api/i/f-webp__q-82__ha-5bdb76ed28a7aa9dcbf44c35d3de9142f7a9f2b2/images/items/750/Brig-large.jpg",
		Color:    "#5c5c5c",
	},
	{
		ID:       "strymon-compadre",
		Brand:    "Strymon",
		Model:    "Compadre",
		Category: "compressor/boost",
		Width:    171,
		Height:   187,
		ImageURL: "https://media.sweetwater.com/api/i/f-webp__q-82__ha-7b7c0f1234abcd5678efab12c34ef56789012abc/images/items/750/Compadre-large.jpg",
		Color:    "#d4a35e",
	},
	{
		ID:       "strymon-lex",
		Brand:    "Strymon",
		Model:    "Lex",
		Category: "rotary/modulation",
		Width:    171,
		Height:   187,
		ImageURL: "https://media.sweetwater.com/api/i/f-webp__q-82__ha-8f8d1234abcd567890efab12c34ef56789012abc/images/items/750/Lex-large.jpg",
		Color:    "#607c99",
	},
	{
		ID:       "strymon-iridium",
		Brand:    "Strymon",
		Model:    "Iridium",
		Category: "amp simulator",
		Width:    171,
		Height:   187,
		ImageURL: "https://media.sweetwater.com/api/i/f-webp__q-82__ha-2f2e1234abcd567890efab12c34ef56789012abc/images/items/750/Iridium-large.jpg",
		Color:    "#3f3f3f",
	},
}

// Categories is the fixed filter list shown by the planner sidebar.
var Categories = []models.Category{
	{Value: "overdrive", Label: "Overdrive"},
	{Value: "distortion", Label: "Distortion"},
	{Value: "fuzz", Label: "Fuzz"},
	{Value: "delay", Label: "Delay"},
	{Value: "reverb", Label: "Reverb"},
	{Value: "modulation", Label: "Modulation"},
	{Value: "compressor", Label: "Compressor"},
	{Value: "compressor/boost", Label: "Compressor/Boost"},
	{Value: "eq", Label: "EQ"},
	{Value: "wah", Label: "Wah"},
	{Value: "tuner", Label: "Tuner"},
	{Value: "utility", Label: "Utility"},
	{Value: "looper", Label: "Looper"},
	{Value: "tremolo/reverb", Label: "Tremolo/Reverb"},
	{Value: "ambient/reverb", Label: "Ambient/Reverb"},
	{Value: "rotary/modulation", Label: "Rotary/Modulation"},
	{Value: "amp simulator", Label: "Amp Simulator"},
	{Value: "other", Label: "Other"},
}

// Pedals returns the full catalog in definition order.
func Pedals() []models.Pedal {
	out := make([]models.Pedal, len(pedals))
	copy(out, pedals)
	return out
}

// LookupByID returns the pedal with the given id. Absence is not an error.
func LookupByID(id string) (models.Pedal, bool) {
	for _, p := range pedals {
		if p.ID == id {
			return p, true
		}
	}
	return models.Pedal{}, false
}

// ByCategory returns all pedals in the given category.
func ByCategory(category string) []models.Pedal {
	var out []models.Pedal
	for _, p := range pedals {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Search matches text case-insensitively against brand or model substrings.
// An empty query matches everything.
func Search(text string) []models.Pedal {
	q := strings.ToLower(text)
	var out []models.Pedal
	for _, p := range pedals {
		if strings.Contains(strings.ToLower(p.Brand), q) ||
			strings.Contains(strings.ToLower(p.Model), q) {
			out = append(out, p)
		}
	}
	return out
}

// Filter applies both the search query and the category filter, the way the
// planner sidebar combines them. Category "all" or "" disables the category
// filter.
func Filter(text, category string) []models.Pedal {
	var out []models.Pedal
	for _, p := range Search(text) {
		if category == "" || category == "all" || p.Category == category {
			out = append(out, p)
		}
	}
	return out
}
