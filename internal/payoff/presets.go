package payoff

import (
	"fmt"
	"strings"

	"payoff-studio/internal/models"
)

// Preset identifies a well-known multi-leg strategy shape.
type Preset string

const (
	PresetStraddle       Preset = "straddle"
	PresetStrangle       Preset = "strangle"
	PresetBullCallSpread Preset = "bull-call-spread"
	PresetBearPutSpread  Preset = "bear-put-spread"
	PresetIronCondor     Preset = "iron-condor"
	PresetButterfly      Preset = "butterfly"
)

// PresetInfo describes a preset for listings.
type PresetInfo struct {
	Name        Preset `json:"name"`
	Description string `json:"description"`
}

// Presets lists the available strategy presets.
func Presets() []PresetInfo {
	return []PresetInfo{
		{PresetStraddle, "Buy ATM Call + Put"},
		{PresetStrangle, "Buy OTM Call + Put"},
		{PresetBullCallSpread, "Buy lower strike Call, Sell higher strike Call"},
		{PresetBearPutSpread, "Buy higher strike Put, Sell lower strike Put"},
		{PresetIronCondor, "Sell OTM Call + Put, Buy further OTM Call + Put"},
		{PresetButterfly, "Buy 1 ITM, Sell 2 ATM, Buy 1 OTM"},
	}
}

// BuildPreset generates the legs for a preset around an at-the-money
// strike. Width spaces the wings; a non-positive width defaults to 5% of
// the ATM strike. Expiry is attached to every leg unmodified.
func BuildPreset(p Preset, atm, width float64, expiry string) ([]models.Leg, error) {
	atm = Sanitize(atm, 0)
	if atm <= 0 {
		return nil, fmt.Errorf("invalid ATM strike: %v", atm)
	}
	width = Sanitize(width, 0)
	if width <= 0 {
		width = atm * 0.05
	}

	leg := func(side models.Side, typ models.OptionType, strike float64) models.Leg {
		return models.Leg{Side: side, Type: typ, Quantity: 1, Strike: strike, Expiry: expiry}
	}

	switch Preset(strings.ToLower(string(p))) {
	case PresetStraddle:
		return []models.Leg{
			leg(models.SideLong, models.OptionCall, atm),
			leg(models.SideLong, models.OptionPut, atm),
		}, nil
	case PresetStrangle:
		return []models.Leg{
			leg(models.SideLong, models.OptionCall, atm+width),
			leg(models.SideLong, models.OptionPut, atm-width),
		}, nil
	case PresetBullCallSpread:
		return []models.Leg{
			leg(models.SideLong, models.OptionCall, atm),
			leg(models.SideShort, models.OptionCall, atm+width),
		}, nil
	case PresetBearPutSpread:
		return []models.Leg{
			leg(models.SideLong, models.OptionPut, atm),
			leg(models.SideShort, models.OptionPut, atm-width),
		}, nil
	case PresetIronCondor:
		return []models.Leg{
			leg(models.SideShort, models.OptionPut, atm-width),
			leg(models.SideLong, models.OptionPut, atm-2*width),
			leg(models.SideShort, models.OptionCall, atm+width),
			leg(models.SideLong, models.OptionCall, atm+2*width),
		}, nil
	case PresetButterfly:
		legs := []models.Leg{
			leg(models.SideLong, models.OptionCall, atm-width),
			leg(models.SideShort, models.OptionCall, atm),
			leg(models.SideLong, models.OptionCall, atm+width),
		}
		legs[1].Quantity = 2
		return legs, nil
	default:
		return nil, fmt.Errorf("unknown preset: %q", p)
	}
}
