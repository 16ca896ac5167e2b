// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package prompt

import (
	"errors"
	"strconv"

	"github.com/manifoldco/promptui"

	"github.com/ava-labs/counter-cli/utils"
)

var (
	ErrInputEmpty      = errors.New("input is empty")
	ErrIndexOutOfRange = errors.New("index out-of-range")
)

// ValidateChoice checks that [input] is an index in [0, maxChoice).
func ValidateChoice(input string, maxChoice int) error {
	if len(input) == 0 {
		return ErrInputEmpty
	}
	index, err := strconv.Atoi(input)
	if err != nil {
		return err
	}
	if index >= maxChoice || index < 0 {
		return ErrIndexOutOfRange
	}
	return nil
}

func Choice(label string, maxChoice int) (int, error) {
	if maxChoice == 1 {
		utils.Outf("{{yellow}}%s:{{/}} 0 [auto-selected]\n", label)
		return 0, nil
	}
	promptText := promptui.Prompt{
		Label: label,
		Validate: func(input string) error {
			return ValidateChoice(input, maxChoice)
		},
	}
	rawIndex, err := promptText.Run()
	if err != nil {
		return -1, err
	}
	return strconv.Atoi(rawIndex)
}
