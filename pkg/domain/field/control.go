package field

import (
	"github.com/NeuralTrust/FormGuard/pkg/i18n"
)

type ControlKind string

const (
	ControlHeader       ControlKind = "header"
	ControlText         ControlKind = "text"
	ControlReadonly     ControlKind = "readonly"
	ControlCheckbox     ControlKind = "checkbox"
	ControlRange        ControlKind = "range"
	ControlDisplayRules ControlKind = "display_rules"
)

const MainTab = "Root.Main"

// Control describes one admin configuration control. The admin UI renders
// controls in the order they are returned.
type Control struct {
	Kind        ControlKind   `json:"kind"`
	Name        string        `json:"name"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Tab         string        `json:"tab"`
	Value       interface{}   `json:"value,omitempty"`
	Range       *RangeOptions `json:"range,omitempty"`
}

type RangeStop struct {
	Key   string `json:"key"`
	Value int    `json:"value"`
}

type RangeOptions struct {
	Min           int         `json:"min"`
	Max           int         `json:"max"`
	Step          int         `json:"step"`
	Snap          bool        `json:"snap"`
	DecimalPlaces int         `json:"decimal_places"`
	ShowPips      bool        `json:"show_pips"`
	Start         []int       `json:"start"`
	Stops         []RangeStop `json:"stops"`
}

// Names of the generic controls every field type may offer.
const (
	ControlName               = "Name"
	ControlTitle              = "Title"
	ControlExtraClass         = "ExtraClass"
	ControlDefault            = "Default"
	ControlRightTitle         = "RightTitle"
	ControlRequired           = "Required"
	ControlCustomErrorMessage = "CustomErrorMessage"
	ControlPlaceholder        = "Placeholder"
	ControlDisplayRulesName   = "DisplayRules"
)

// BaseControls returns every generic control for f in their canonical order.
func BaseControls(tr i18n.Translator, f *EditableField) []Control {
	tr = i18n.OrNoop(tr)
	return []Control{
		{Kind: ControlReadonly, Name: ControlName, Title: tr.T("FormGuard.NAME", "Name"), Tab: MainTab, Value: f.Name},
		{Kind: ControlText, Name: ControlTitle, Title: tr.T("FormGuard.TITLE", "Title"), Tab: MainTab, Value: f.Title},
		{Kind: ControlText, Name: ControlExtraClass, Title: tr.T("FormGuard.EXTRACLASS", "Extra CSS classes"), Tab: MainTab, Value: f.ExtraClass},
		{Kind: ControlText, Name: ControlDefault, Title: tr.T("FormGuard.DEFAULT", "Default value"), Tab: MainTab, Value: f.Default},
		{Kind: ControlText, Name: ControlRightTitle, Title: tr.T("FormGuard.RIGHTTITLE", "Right title"), Tab: MainTab, Value: f.RightTitle},
		{Kind: ControlCheckbox, Name: ControlRequired, Title: tr.T("FormGuard.REQUIRED", "Is this field Required?"), Tab: "Root.Validation", Value: f.Required},
		{Kind: ControlText, Name: ControlCustomErrorMessage, Title: tr.T("FormGuard.CUSTOMERROR", "Custom error message"), Tab: "Root.Validation", Value: f.CustomErrorMessage},
		{Kind: ControlText, Name: ControlPlaceholder, Title: tr.T("FormGuard.PLACEHOLDER", "Placeholder"), Tab: MainTab, Value: f.Placeholder},
		{Kind: ControlDisplayRules, Name: ControlDisplayRulesName, Title: tr.T("FormGuard.DISPLAYRULES", "Display rules"), Tab: "Root.DisplayRules"},
	}
}

// SelectControls keeps the controls named in allow, in allow-list order.
func SelectControls(controls []Control, allow ...string) []Control {
	byName := make(map[string]Control, len(controls))
	for _, c := range controls {
		byName[c.Name] = c
	}
	out := make([]Control, 0, len(allow))
	for _, name := range allow {
		if c, ok := byName[name]; ok {
			out = append(out, c)
		}
	}
	return out
}
