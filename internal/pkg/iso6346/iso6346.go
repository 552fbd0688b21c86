// Package iso6346 creates and parses ISO 6346 freight container codes.
//
// A code is eleven characters long: a three letter owner code, a one letter
// equipment category, a six digit serial number and a check digit, for
// example CSQU3054383.
package iso6346

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrFormat is wrapped by every FormatError.
var ErrFormat = errors.New("malformed container code")

const (
	ownerCodeLength = 3
	serialLength    = 6
	codeLength      = ownerCodeLength + 1 + serialLength + 1

	// MaxSerial is the largest serial that fits six digits.
	MaxSerial = 999999
)

// Category is the equipment category identifier.
type Category string

const (
	// Freight is used when no category is given.
	Freight Category = "U"
	// Detachable marks detachable freight container equipment.
	Detachable Category = "J"
	// Trailer marks trailers and chassis.
	Trailer Category = "Z"
	// Refrigerated marks temperature controlled units.
	Refrigerated Category = "R"
)

// FormatError describes which part of a code could not be used.
type FormatError struct {
	Field  string
	Value  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: %s %q %s", ErrFormat, e.Field, e.Value, e.Reason)
}

func (e *FormatError) Unwrap() error {
	return ErrFormat
}

// Code is a parsed container code.
type Code struct {
	OwnerCode  string
	Category   Category
	Serial     string
	CheckDigit int
}

// SerialNumber returns the serial as an integer.
func (c Code) SerialNumber() int64 {
	n, _ := strconv.ParseInt(c.Serial, 10, 64)
	return n
}

func (c Code) String() string {
	return c.OwnerCode + string(c.Category) + c.Serial + strconv.Itoa(c.CheckDigit)
}

// Create builds a full code from its parts. Owner codes are upper-cased; an
// empty category means Freight.
func Create(ownerCode, serial string, category Category) (string, error) {
	ownerCode = strings.ToUpper(ownerCode)
	if category == "" {
		category = Freight
	}
	category = Category(strings.ToUpper(string(category)))

	if err := errors.Join(
		validateOwnerCode(ownerCode),
		validateCategory(category),
		validateSerial(serial),
	); err != nil {
		return "", err
	}

	raw := ownerCode + string(category) + serial
	digit, err := CheckDigit(raw)
	if err != nil {
		return "", err
	}

	return raw + strconv.Itoa(digit), nil
}

// CheckDigit computes the check digit of the first ten characters of a code.
func CheckDigit(raw string) (int, error) {
	if len(raw) != codeLength-1 {
		return 0, &FormatError{Field: "code", Value: raw, Reason: fmt.Sprintf("must have %d characters", codeLength-1)}
	}

	sum := 0
	for i := range len(raw) {
		v, err := charValue(raw[i])
		if err != nil {
			return 0, err
		}
		sum += v << i
	}

	return sum % 11 % 10, nil
}

// Parse splits a full code and verifies its check digit.
func Parse(code string) (Code, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != codeLength {
		return Code{}, &FormatError{Field: "code", Value: code, Reason: fmt.Sprintf("must have %d characters", codeLength)}
	}

	c := Code{
		OwnerCode: code[:ownerCodeLength],
		Category:  Category(code[ownerCodeLength : ownerCodeLength+1]),
		Serial:    code[ownerCodeLength+1 : codeLength-1],
	}
	if err := errors.Join(
		validateOwnerCode(c.OwnerCode),
		validateCategory(c.Category),
		validateSerial(c.Serial),
	); err != nil {
		return Code{}, err
	}

	digit, err := strconv.Atoi(code[codeLength-1:])
	if err != nil {
		return Code{}, &FormatError{Field: "check digit", Value: code[codeLength-1:], Reason: "is not a digit"}
	}

	expected, err := CheckDigit(code[:codeLength-1])
	if err != nil {
		return Code{}, err
	}
	if digit != expected {
		return Code{}, &FormatError{
			Field:  "check digit",
			Value:  strconv.Itoa(digit),
			Reason: fmt.Sprintf("does not match computed %d", expected),
		}
	}
	c.CheckDigit = digit

	return c, nil
}

// charValue maps digits to themselves and letters to 10..38, skipping
// multiples of eleven.
func charValue(ch byte) (int, error) {
	switch {
	case ch >= '0' && ch <= '9':
		return int(ch - '0'), nil
	case ch >= 'A' && ch <= 'Z':
		v := int(ch-'A') + 10
		return v + (v-1)/10, nil
	default:
		return 0, &FormatError{Field: "character", Value: string(ch), Reason: "is neither A-Z nor 0-9"}
	}
}

func validateOwnerCode(ownerCode string) error {
	if len(ownerCode) != ownerCodeLength || !isLetters(ownerCode) {
		return &FormatError{Field: "owner code", Value: ownerCode, Reason: "must be three letters"}
	}
	return nil
}

func validateCategory(category Category) error {
	if len(category) != 1 || !isLetters(string(category)) {
		return &FormatError{Field: "category", Value: string(category), Reason: "must be a single letter"}
	}
	return nil
}

func validateSerial(serial string) error {
	if len(serial) != serialLength || !isDigits(serial) {
		return &FormatError{Field: "serial", Value: serial, Reason: "must be six digits"}
	}
	return nil
}

func isLetters(s string) bool {
	for i := range len(s) {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}

func isDigits(s string) bool {
	for i := range len(s) {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
