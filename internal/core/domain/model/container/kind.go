package container

import (
	"fmt"
	"strings"

	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/iso6346"
)

// Kind tells the container variants apart.
type Kind int

const (
	// KindUnknown is the zero value and is never valid.
	KindUnknown Kind = iota
	KindDry
	KindRefrigerated
	KindHeatedRefrigerated
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		KindUnknown:            "Unknown",
		KindDry:                "Dry",
		KindRefrigerated:       "Refrigerated",
		KindHeatedRefrigerated: "HeatedRefrigerated",
	}
}

// Validate rejects KindUnknown and values outside the declared constants.
func (k Kind) Validate() error {
	if k <= KindUnknown || k > KindHeatedRefrigerated {
		return errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%d is not a valid container kind", k))
	}
	return nil
}

func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "Unknown"
}

// IsTemperatureControlled reports whether containers of this kind carry a temperature.
func (k Kind) IsTemperatureControlled() bool {
	return k == KindRefrigerated || k == KindHeatedRefrigerated
}

// Category is the ISO 6346 category embedded in codes of this kind. Dry
// containers use the formatter's default.
func (k Kind) Category() iso6346.Category {
	if k.IsTemperatureControlled() {
		return iso6346.Refrigerated
	}
	return ""
}

// ParseKind accepts the String form of a valid kind, ignoring case.
func ParseKind(s string) (Kind, error) {
	for kind, str := range getKindStrings() {
		if kind != KindUnknown && strings.EqualFold(str, strings.TrimSpace(s)) {
			return kind, nil
		}
	}
	return KindUnknown, errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%q is not a valid container kind", s))
}
