package recaptchav3

import (
	"fmt"

	"github.com/NeuralTrust/FormGuard/pkg/domain/field"
	"github.com/NeuralTrust/FormGuard/pkg/i18n"
)

const (
	ControlHeader = "reCAPTCHAv3Header"
	ControlScore  = "Score"
	ControlAction = "Action"

	rangeStep = 10
	stopEvery = 5
)

// CMSFields lists the admin controls of the field. Generic controls are
// opt-in: the field is invisible and always present, so extra classes,
// defaults, right titles, the required flag, placeholders and display rules
// are never offered.
func (f *Field) CMSFields(tr i18n.Translator) []field.Control {
	tr = i18n.OrNoop(tr)

	controls := field.SelectControls(
		field.BaseControls(tr, &f.EditableField),
		field.ControlName,
		field.ControlTitle,
		field.ControlCustomErrorMessage,
	)

	return append(controls,
		field.Control{
			Kind:  field.ControlHeader,
			Name:  ControlHeader,
			Title: tr.T("FormGuard.RECAPTCHA_SETTINGS", "reCAPTCHA v3 settings"),
			Tab:   field.MainTab,
		},
		field.Control{
			Kind:  field.ControlRange,
			Name:  ControlScore,
			Title: tr.T("FormGuard.SCORE_HUMAN", "Choose a score"),
			Description: tr.T("FormGuard.SCORE_DESCRIPTION_HUMAN",
				"A submission with a score below the selected value will be allowed."+
					" A submission score of 0 will almost certainly be a valid form submission,"+
					" while a submission score of 100 will almost certainly be from an automated form submission"),
			Tab:   field.MainTab,
			Value: f.Score,
			Range: &field.RangeOptions{
				Min:           minScore,
				Max:           maxScore,
				Step:          rangeStep,
				Snap:          true,
				DecimalPlaces: 0,
				ShowPips:      true,
				Start:         []int{f.Score},
				Stops:         scoreStops(),
			},
		},
		field.Control{
			Kind:  field.ControlText,
			Name:  ControlAction,
			Title: tr.T("FormGuard.ACTION_HUMAN", "Set a custom action"),
			Description: tr.T("FormGuard.ACTION_DESCRIPTION",
				"This is used for analytics in the reCAPTCHA console. Allowed characters are 'a-z 0-9 /'"+
					" and it may not be personally identifiable"),
			Tab:   field.MainTab,
			Value: f.Action,
		},
	)
}

// scoreStops marks every 5 points between the bounds.
func scoreStops() []field.RangeStop {
	stops := []field.RangeStop{{Key: fmt.Sprint(minScore), Value: minScore}}
	for i := minScore + stopEvery; i < maxScore; i += stopEvery {
		stops = append(stops, field.RangeStop{Key: fmt.Sprintf("%.2f", float64(i)), Value: i})
	}
	return append(stops, field.RangeStop{Key: fmt.Sprint(maxScore), Value: maxScore})
}
