package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

// MenuChoice identifies one entry of the interactive category menu.
type MenuChoice int

const (
	// ChoiceInvalid is returned for unrecognized input.
	ChoiceInvalid MenuChoice = iota
	// ChoiceNeutral generates 5 neutral expression variations.
	ChoiceNeutral
	// ChoiceSobbing generates 5 sobbing expression variations.
	ChoiceSobbing
	// ChoiceSnapchat generates one variation per snapchat expression type.
	ChoiceSnapchat
	// ChoiceSnapchatSameOutfit generates the snapchat set with one shared outfit.
	ChoiceSnapchatSameOutfit
	// ChoiceQuit exits the menu loop.
	ChoiceQuit
)

// PromptMenu displays the category menu and reads one choice from stdin.
func PromptMenu() MenuChoice {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 50))
	fmt.Println("Image Variation Generator - Menu")
	fmt.Println(strings.Repeat("=", 50))
	fmt.Println("1. Generate 5 neutral expression variations")
	fmt.Println("2. Generate 5 sobbing expression variations")
	fmt.Println("3. Generate 5 Snapchat variations (one of each type)")
	fmt.Println("4. Generate 5 Snapchat variations with same outfit")
	fmt.Println("5. Quit")
	fmt.Println(strings.Repeat("=", 50))
	fmt.Print("Enter your choice (1, 2, 3, 4, or 5): ")

	switch readLine() {
	case "1":
		return ChoiceNeutral
	case "2":
		return ChoiceSobbing
	case "3":
		return ChoiceSnapchat
	case "4":
		return ChoiceSnapchatSameOutfit
	case "5":
		return ChoiceQuit
	default:
		return ChoiceInvalid
	}
}

// PromptContinue asks whether the user wants to generate more variations.
func PromptContinue() bool {
	fmt.Print("\nWould you like to generate more variations? (y/n): ")
	answer := strings.ToLower(readLine())
	return answer == "y" || answer == "yes"
}

// readLine reads one trimmed line from stdin; an empty string on error.
func readLine() string {
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		log.Warn().Err(err).Msg("Failed to read input")
		return ""
	}
	return strings.TrimSpace(input)
}
