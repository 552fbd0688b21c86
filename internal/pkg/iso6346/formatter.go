package iso6346

import (
	"fmt"
	"strconv"
)

// Formatter turns numeric serials into codes. It is stateless and safe for
// concurrent use.
type Formatter struct{}

func NewFormatter() Formatter {
	return Formatter{}
}

// Format zero-pads serial to six digits and creates the code.
func (Formatter) Format(ownerCode string, serial int64, category Category) (string, error) {
	if serial < 0 || serial > MaxSerial {
		return "", &FormatError{
			Field:  "serial",
			Value:  strconv.FormatInt(serial, 10),
			Reason: fmt.Sprintf("must be between 0 and %d", MaxSerial),
		}
	}

	return Create(ownerCode, fmt.Sprintf("%0*d", serialLength, serial), category)
}
