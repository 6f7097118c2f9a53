// Package prompt provides interactive terminal prompts for CLI commands.
package prompt

import (
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
)

// ErrAborted is returned when the user aborts a prompt (Ctrl+C).
var ErrAborted = errors.New("aborted")

// ErrPasswordMismatch indicates the confirmation did not match.
var ErrPasswordMismatch = errors.New("passwords do not match")

// IsAborted reports whether the error means the user aborted.
func IsAborted(err error) bool {
	return errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrAbort) || errors.Is(err, ErrAborted)
}

func wrapError(err error) error {
	if err == nil {
		return nil
	}
	if IsAborted(err) {
		return ErrAborted
	}
	return err
}

// Input prompts for text input with an optional default value.
func Input(label, defaultValue string) (string, error) {
	p := promptui.Prompt{
		Label:   label,
		Default: defaultValue,
	}

	result, err := p.Run()
	return result, wrapError(err)
}

// InputRequired prompts for text input that must be non-empty.
func InputRequired(label string) (string, error) {
	p := promptui.Prompt{
		Label: label,
		Validate: func(input string) error {
			if input == "" {
				return errors.New("value is required")
			}
			return nil
		},
	}

	result, err := p.Run()
	return result, wrapError(err)
}

// Password prompts for a masked password with minimum length validation.
func Password(label string, minLength int) (string, error) {
	p := promptui.Prompt{
		Label: label,
		Mask:  '*',
		Validate: func(input string) error {
			if len(input) < minLength {
				return fmt.Errorf("password must be at least %d characters", minLength)
			}
			return nil
		},
	}

	result, err := p.Run()
	return result, wrapError(err)
}

// NewPassword prompts for a password and its confirmation. It returns
// ErrPasswordMismatch when the two entries differ.
func NewPassword(minLength int) (string, error) {
	password, err := Password("Password", minLength)
	if err != nil {
		return "", err
	}

	confirm, err := Password("Confirm password", 0)
	if err != nil {
		return "", err
	}

	if password != confirm {
		return "", ErrPasswordMismatch
	}
	return password, nil
}

// Confirm asks a yes/no question and returns the answer.
func Confirm(label string) (bool, error) {
	p := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}

	_, err := p.Run()
	if err != nil {
		// promptui reports "no" as ErrAbort.
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}
		return false, wrapError(err)
	}
	return true, nil
}
