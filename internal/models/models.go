// Package models provides domain models for the payoff studio.
package models

import (
	"fmt"
	"strings"
	"time"
)

// Side represents the direction of an option leg.
type Side string

const (
	SideLong  Side = "LONG"
	SideShort Side = "SHORT"
)

// Sign returns the payoff multiplier for the side: +1 for long, -1 for short.
func (s Side) Sign() float64 {
	if s == SideShort {
		return -1
	}
	return 1
}

// ParseSide parses a side string (case-insensitive).
func ParseSide(s string) (Side, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "LONG", "BUY":
		return SideLong, nil
	case "SHORT", "SELL":
		return SideShort, nil
	default:
		return "", fmt.Errorf("invalid side: %q (must be LONG or SHORT)", s)
	}
}

// OptionType represents the type of an option contract.
type OptionType string

const (
	OptionCall OptionType = "CALL"
	OptionPut  OptionType = "PUT"
)

// ParseOptionType parses an option type string (case-insensitive).
func ParseOptionType(s string) (OptionType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "CALL", "CE", "C":
		return OptionCall, nil
	case "PUT", "PE", "P":
		return OptionPut, nil
	default:
		return "", fmt.Errorf("invalid option type: %q (must be CALL or PUT)", s)
	}
}

// Leg represents one option position within a multi-leg strategy.
// Expiry is informational only and does not affect the payoff computation.
type Leg struct {
	Side     Side       `json:"side"`
	Type     OptionType `json:"type"`
	Quantity float64    `json:"quantity"`
	Strike   float64    `json:"strike"`
	Expiry   string     `json:"expiry,omitempty"`
}

// Quote represents the current price of an underlying.
type Quote struct {
	Symbol string  `json:"symbol"`
	Price  float64 `json:"price"`
}

// Strategy represents a named, persistable option strategy.
type Strategy struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Symbol    string    `json:"symbol"`
	Legs      []Leg     `json:"legs"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
