package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crossing/internal/sprite"
)

var avatarsCmd = &cobra.Command{
	Use:   "avatars",
	Short: "List all selectable characters",
	Long:  `Shows every character that can be picked with --avatar or in the in-game picker.`,
	Run:   runAvatars,
}

func runAvatars(cmd *cobra.Command, args []string) {
	avatars := sprite.Avatars()
	atlas := sprite.DefaultAtlas()

	fmt.Println("Available avatars:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, a := range avatars {
		if len(a.Name) > maxNameLen {
			maxNameLen = len(a.Name)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-7s  %s\n", maxNameLen, "Name", "Look", "Sprite")
	fmt.Printf("  %-*s  %-7s  %s\n", maxNameLen, "----", "----", "------")

	for _, a := range avatars {
		look := "?"
		if s, err := atlas.Get(a.Sprite); err == nil && len(s.Rows) > 0 {
			look = strings.TrimSpace(s.Rows[0])
		}
		fmt.Printf("  %-*s  %-7s  %s\n", maxNameLen, a.Name, look, a.Sprite)
	}

	fmt.Println()
	fmt.Println("Run 'crossing play --avatar <name>' to play as a character.")
}
